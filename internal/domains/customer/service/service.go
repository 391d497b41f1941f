package service

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/customer/model"
	"hotel/internal/domains/customer/model/dto"
	"hotel/internal/domains/customer/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	cachePrefix = "customer:"
	cacheGetAll = "customer:all"
	cacheGet    = "customer:get"
)

type Customer interface {
	GetAll(ctx context.Context) ([]dto.CustomerResponse, error)
	Get(ctx context.Context, id string) (dto.CustomerResponse, error)
	Create(ctx context.Context, req dto.CreateCustomerRequest) (dto.CustomerResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateCustomerRequest) (dto.CustomerResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Customer
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Customer, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Customer {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if shared.LoadCache(ctx, s.cache, cacheGetAll, &res) {
		return res, nil
	}

	models, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get customers")

		return nil, fmt.Errorf("failed to get customers: %w", err)
	}

	res = dto.FromModels(models)

	shared.SaveCache(ctx, s.cache, cacheGetAll, res, s.cfg.Cache.TTL)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGet, id)

	if shared.LoadCache(ctx, s.cache, cacheKey, &res) {
		return res, nil
	}

	customer, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get customer")

		return res, shared.StoreFailure(fmt.Errorf("failed to get customer: %w", err), model.EntityName)
	}

	res.FromModel(customer)

	shared.SaveCache(ctx, s.cache, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCustomerRequest) (res dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	customer, err := s.repo.Insert(ctx, req.ToModel(shared.Actor(ctx)))
	if err != nil {
		log.Error().Err(err).Msg("failed to create customer")

		return res, fmt.Errorf("failed to create customer: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cachePrefix)

	res.FromModel(customer)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateCustomerRequest) (res dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor := shared.Actor(ctx)

	customer, err := s.repo.Update(ctx, id, func(customer *model.Customer) error {
		req.Apply(customer)
		customer.Touch(actor)

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update customer")

		return res, shared.StoreFailure(fmt.Errorf("failed to update customer: %w", err), model.EntityName)
	}

	shared.InvalidateCaches(ctx, s.cache, cachePrefix)

	res.FromModel(customer)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete customer")

		return shared.StoreFailure(fmt.Errorf("failed to delete customer: %w", err), model.EntityName)
	}

	shared.InvalidateCaches(ctx, s.cache, cachePrefix)

	return nil
}

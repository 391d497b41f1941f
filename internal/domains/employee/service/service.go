package service

import (
	"context"
	"fmt"
	"strings"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/employee/model"
	"hotel/internal/domains/employee/model/dto"
	"hotel/internal/domains/employee/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cachePrefix = "employee:"
	cacheGetAll = "employee:all"
	cacheGet    = "employee:get"
	cacheRole   = "employee:role"
)

var errIDMismatch = failure.BadRequestFromString("id in body does not match the path")

type Employee interface {
	GetAll(ctx context.Context) ([]dto.EmployeeResponse, error)
	Get(ctx context.Context, id string) (dto.EmployeeResponse, error)
	GetByRole(ctx context.Context, role string) ([]dto.EmployeeResponse, error)
	Search(ctx context.Context, query string) ([]dto.EmployeeResponse, error)
	Create(ctx context.Context, req dto.EmployeeRequest) (dto.EmployeeResponse, error)
	Update(ctx context.Context, id string, req dto.EmployeeRequest) (dto.EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Employee
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Employee, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Employee {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.EmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if shared.LoadCache(ctx, s.cache, cacheGetAll, &res) {
		return res, nil
	}

	models, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get employees")

		return nil, fmt.Errorf("failed to get employees: %w", err)
	}

	res = dto.FromModels(models)

	shared.SaveCache(ctx, s.cache, cacheGetAll, res, s.cfg.Cache.TTL)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.EmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGet, id)

	if shared.LoadCache(ctx, s.cache, cacheKey, &res) {
		return res, nil
	}

	employee, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get employee")

		return res, shared.StoreFailure(fmt.Errorf("failed to get employee: %w", err), model.EntityName)
	}

	res.FromModel(employee)

	shared.SaveCache(ctx, s.cache, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

// GetByRole lists the employees whose job title equals role.
func (s *serviceImpl) GetByRole(ctx context.Context, role string) (res []dto.EmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByRole")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheRole, role)

	if shared.LoadCache(ctx, s.cache, cacheKey, &res) {
		return res, nil
	}

	models, err := s.repo.FindByJobTitle(ctx, role)
	if err != nil {
		log.Error().Err(err).Str("role", role).Msg("failed to get employees by role")

		return nil, fmt.Errorf("failed to get employees by role: %w", err)
	}

	res = dto.FromModels(models)

	shared.SaveCache(ctx, s.cache, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

// Search lists employees whose name, email or phone contains query. A blank query lists everyone.
func (s *serviceImpl) Search(ctx context.Context, query string) (res []dto.EmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query = strings.TrimSpace(query)
	if query == "" {
		return s.GetAll(ctx)
	}

	models, err := s.repo.Search(ctx, query)
	if err != nil {
		log.Error().Err(err).Str("query", query).Msg("failed to search employees")

		return nil, fmt.Errorf("failed to search employees: %w", err)
	}

	return dto.FromModels(models), nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.EmployeeRequest) (res dto.EmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	employee, err := req.ToModel(shared.Actor(ctx))
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	employee, err = s.repo.Insert(ctx, employee)
	if err != nil {
		log.Error().Err(err).Msg("failed to create employee")

		return res, fmt.Errorf("failed to create employee: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cachePrefix)

	res.FromModel(employee)

	return res, nil
}

// Update replaces the stored employee. A body id, when given, must equal the path id.
func (s *serviceImpl) Update(ctx context.Context, id string, req dto.EmployeeRequest) (res dto.EmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.ID != "" && req.ID != id {
		return res, errIDMismatch
	}

	actor := shared.Actor(ctx)

	employee, err := s.repo.Update(ctx, id, func(employee *model.Employee) error {
		if err := req.Apply(employee); err != nil {
			return err //nolint:wrapcheck
		}

		employee.Touch(actor)

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update employee")

		return res, shared.StoreFailure(fmt.Errorf("failed to update employee: %w", err), model.EntityName)
	}

	shared.InvalidateCaches(ctx, s.cache, cachePrefix)

	res.FromModel(employee)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete employee")

		return shared.StoreFailure(fmt.Errorf("failed to delete employee: %w", err), model.EntityName)
	}

	shared.InvalidateCaches(ctx, s.cache, cachePrefix)

	return nil
}

package service

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/bill/model"
	"hotel/internal/domains/bill/model/dto"
	"hotel/internal/domains/bill/repository"
	bookingModel "hotel/internal/domains/booking/model"
	bookingRepository "hotel/internal/domains/booking/repository"
	customerModel "hotel/internal/domains/customer/model"
	customerRepository "hotel/internal/domains/customer/repository"
	employeeModel "hotel/internal/domains/employee/model"
	employeeRepository "hotel/internal/domains/employee/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/event"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cachePrefix         = "bill:"
	cacheGetAll         = "bill:all"
	cacheGet            = "bill:get"
	cacheListByCustomer = "bill:customer"
)

var errRangeRequired = failure.BadRequestFromString("startDate and endDate are required")

type Bill interface {
	GetAll(ctx context.Context) ([]dto.BillResponse, error)
	Get(ctx context.Context, id string) (dto.BillResponse, error)
	GetByCustomer(ctx context.Context, customerID string) ([]dto.BillResponse, error)
	GetByDateRange(ctx context.Context, startDate, endDate string) ([]dto.BillResponse, error)
	Total(ctx context.Context, id string) (float64, error)
	Create(ctx context.Context, req dto.CreateBillRequest) (dto.BillResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateBillRequest) (dto.BillResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Bill
	customers customerRepository.Customer
	bookings  bookingRepository.Booking
	employees employeeRepository.Employee
	publisher event.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.Bill,
	customers customerRepository.Customer,
	bookings bookingRepository.Booking,
	employees employeeRepository.Employee,
	publisher event.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Bill {
	return &serviceImpl{
		repo:      repo,
		customers: customers,
		bookings:  bookings,
		employees: employees,
		publisher: publisher,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.BillResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if shared.LoadCache(ctx, s.cache, cacheGetAll, &res) {
		return res, nil
	}

	models, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bills")

		return nil, fmt.Errorf("failed to get bills: %w", err)
	}

	res = dto.FromModels(models)

	shared.SaveCache(ctx, s.cache, cacheGetAll, res, s.cfg.Cache.TTL)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BillResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGet, id)

	if shared.LoadCache(ctx, s.cache, cacheKey, &res) {
		return res, nil
	}

	bill, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get bill")

		return res, shared.StoreFailure(fmt.Errorf("failed to get bill: %w", err), model.EntityName)
	}

	res.FromModel(bill)

	shared.SaveCache(ctx, s.cache, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

func (s *serviceImpl) GetByCustomer(ctx context.Context, customerID string) (res []dto.BillResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByCustomer")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheListByCustomer, customerID)

	if shared.LoadCache(ctx, s.cache, cacheKey, &res) {
		return res, nil
	}

	models, err := s.repo.FindByCustomer(ctx, customerID)
	if err != nil {
		log.Error().Err(err).Str("customer_id", customerID).Msg("failed to get bills by customer")

		return nil, fmt.Errorf("failed to get bills by customer: %w", err)
	}

	res = dto.FromModels(models)

	shared.SaveCache(ctx, s.cache, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

// GetByDateRange returns bills issued inside [startDate, endDate].
func (s *serviceImpl) GetByDateRange(ctx context.Context, startDate, endDate string) (res []dto.BillResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByDateRange")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	start, err := gDto.ParseDateField(constant.RequestParamStartDate, startDate)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	end, err := gDto.ParseRangeEndField(constant.RequestParamEndDate, endDate)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if start == nil || end == nil {
		return nil, errRangeRequired
	}

	models, err := s.repo.FindIssuedBetween(ctx, *start, *end)
	if err != nil {
		log.Error().Err(err).Str("start", startDate).Str("end", endDate).Msg("failed to get bills by date range")

		return nil, fmt.Errorf("failed to get bills by date range: %w", err)
	}

	return dto.FromModels(models), nil
}

// Total returns the stored amount of the bill.
func (s *serviceImpl) Total(ctx context.Context, id string) (total float64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Total")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bill, err := s.Get(ctx, id)
	if err != nil {
		return 0, err
	}

	return bill.TotalAmount, nil
}

func (s *serviceImpl) ensureReferences(ctx context.Context, customerID, bookingID, issuedBy *string) error {
	enforce := s.cfg.RejectDanglingReferences()
	if !enforce {
		return nil
	}

	checks := []struct {
		entity string
		id     *string
		exists shared.Exists
	}{
		{entity: customerModel.EntityName, id: customerID, exists: shared.ExistsByID(s.customers)},
		{entity: bookingModel.EntityName, id: bookingID, exists: shared.ExistsByID(s.bookings)},
		{entity: employeeModel.EntityName, id: issuedBy, exists: shared.ExistsByID(s.employees)},
	}

	for _, check := range checks {
		if check.id == nil {
			continue
		}

		if err := shared.EnsureReference(ctx, enforce, check.entity, *check.id, check.exists); err != nil {
			return err //nolint:wrapcheck
		}
	}

	return nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBillRequest) (res dto.BillResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor := shared.Actor(ctx)

	bill, err := req.ToModel(actor)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = s.ensureReferences(ctx, &req.CustomerID, &req.BookingID, &req.IssuedBy); err != nil {
		return res, err
	}

	bill, err = s.repo.Insert(ctx, bill)
	if err != nil {
		log.Error().Err(err).Msg("failed to create bill")

		return res, fmt.Errorf("failed to create bill: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cachePrefix)

	res.FromModel(bill)

	s.publisher.Publish(ctx, event.TopicBills, event.New(model.EntityName, event.ActionCreated, bill.ID, actor, res))

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateBillRequest) (res dto.BillResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureReferences(ctx, req.CustomerID, req.BookingID, req.IssuedBy); err != nil {
		return res, err
	}

	actor := shared.Actor(ctx)

	bill, err := s.repo.Update(ctx, id, func(bill *model.Bill) error {
		if err := req.Apply(bill); err != nil {
			return err //nolint:wrapcheck
		}

		bill.Touch(actor)

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update bill")

		return res, shared.StoreFailure(fmt.Errorf("failed to update bill: %w", err), model.EntityName)
	}

	shared.InvalidateCaches(ctx, s.cache, cachePrefix)

	res.FromModel(bill)

	s.publisher.Publish(ctx, event.TopicBills, event.New(model.EntityName, event.ActionUpdated, bill.ID, actor, res))

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete bill")

		return shared.StoreFailure(fmt.Errorf("failed to delete bill: %w", err), model.EntityName)
	}

	shared.InvalidateCaches(ctx, s.cache, cachePrefix)

	s.publisher.Publish(ctx, event.TopicBills, event.New(model.EntityName, event.ActionDeleted, id, shared.Actor(ctx), nil))

	return nil
}

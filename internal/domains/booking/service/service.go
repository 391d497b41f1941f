package service

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	customerModel "hotel/internal/domains/customer/model"
	customerRepository "hotel/internal/domains/customer/repository"
	employeeModel "hotel/internal/domains/employee/model"
	employeeRepository "hotel/internal/domains/employee/repository"
	roomModel "hotel/internal/domains/room/model"
	roomRepository "hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/event"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cachePrefix         = "booking:"
	cacheGetAll         = "booking:all"
	cacheGet            = "booking:get"
	cacheListByCustomer = "booking:customer"
	cacheListByRoom     = "booking:room"
)

var errRangeRequired = failure.BadRequestFromString("startDate and endDate are required")

type Booking interface {
	GetAll(ctx context.Context) ([]dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetByCustomer(ctx context.Context, customerID string) ([]dto.BookingResponse, error)
	GetByRoom(ctx context.Context, roomID string) ([]dto.BookingResponse, error)
	GetByDateRange(ctx context.Context, startDate, endDate string) ([]dto.BookingResponse, error)
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateBookingRequest) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Booking
	customers customerRepository.Customer
	rooms     roomRepository.Room
	employees employeeRepository.Employee
	publisher event.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.Booking,
	customers customerRepository.Customer,
	rooms roomRepository.Room,
	employees employeeRepository.Employee,
	publisher event.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:      repo,
		customers: customers,
		rooms:     rooms,
		employees: employees,
		publisher: publisher,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if shared.LoadCache(ctx, s.cache, cacheGetAll, &res) {
		return res, nil
	}

	models, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	res = dto.FromModels(models)

	shared.SaveCache(ctx, s.cache, cacheGetAll, res, s.cfg.Cache.TTL)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGet, id)

	if shared.LoadCache(ctx, s.cache, cacheKey, &res) {
		return res, nil
	}

	booking, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get booking")

		return res, shared.StoreFailure(fmt.Errorf("failed to get booking: %w", err), model.EntityName)
	}

	res.FromModel(booking)

	shared.SaveCache(ctx, s.cache, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

func (s *serviceImpl) GetByCustomer(ctx context.Context, customerID string) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByCustomer")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheListByCustomer, customerID)

	if shared.LoadCache(ctx, s.cache, cacheKey, &res) {
		return res, nil
	}

	models, err := s.repo.FindByCustomer(ctx, customerID)
	if err != nil {
		log.Error().Err(err).Str("customer_id", customerID).Msg("failed to get bookings by customer")

		return nil, fmt.Errorf("failed to get bookings by customer: %w", err)
	}

	res = dto.FromModels(models)

	shared.SaveCache(ctx, s.cache, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

func (s *serviceImpl) GetByRoom(ctx context.Context, roomID string) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheListByRoom, roomID)

	if shared.LoadCache(ctx, s.cache, cacheKey, &res) {
		return res, nil
	}

	models, err := s.repo.FindByRoom(ctx, roomID)
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to get bookings by room")

		return nil, fmt.Errorf("failed to get bookings by room: %w", err)
	}

	res = dto.FromModels(models)

	shared.SaveCache(ctx, s.cache, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

// GetByDateRange returns bookings that check in on or after startDate and check out on or before endDate.
func (s *serviceImpl) GetByDateRange(ctx context.Context, startDate, endDate string) (res []dto.BookingResponse, err error) {
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

	models, err := s.repo.FindWithin(ctx, *start, *end)
	if err != nil {
		log.Error().Err(err).Str("start", startDate).Str("end", endDate).Msg("failed to get bookings by date range")

		return nil, fmt.Errorf("failed to get bookings by date range: %w", err)
	}

	return dto.FromModels(models), nil
}

func (s *serviceImpl) ensureReferences(ctx context.Context, customerID, roomID, employeeID *string) error {
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
		{entity: roomModel.EntityName, id: roomID, exists: shared.ExistsByID(s.rooms)},
		{entity: employeeModel.EntityName, id: employeeID, exists: shared.ExistsByID(s.employees)},
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

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor := shared.Actor(ctx)

	booking, err := req.ToModel(actor)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = s.ensureReferences(ctx, &req.CustomerID, &req.RoomID, &req.EmployeeID); err != nil {
		return res, err
	}

	booking, err = s.repo.Insert(ctx, booking)
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cachePrefix)

	res.FromModel(booking)

	s.publisher.Publish(ctx, event.TopicBookings, event.New(model.EntityName, event.ActionCreated, booking.ID, actor, res))

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureReferences(ctx, req.CustomerID, req.RoomID, req.EmployeeID); err != nil {
		return res, err
	}

	actor := shared.Actor(ctx)

	booking, err := s.repo.Update(ctx, id, func(booking *model.Booking) error {
		if err := req.Apply(booking); err != nil {
			return err //nolint:wrapcheck
		}

		booking.Touch(actor)

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update booking")

		return res, shared.StoreFailure(fmt.Errorf("failed to update booking: %w", err), model.EntityName)
	}

	shared.InvalidateCaches(ctx, s.cache, cachePrefix)

	res.FromModel(booking)

	s.publisher.Publish(ctx, event.TopicBookings, event.New(model.EntityName, event.ActionUpdated, booking.ID, actor, res))

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete booking")

		return shared.StoreFailure(fmt.Errorf("failed to delete booking: %w", err), model.EntityName)
	}

	shared.InvalidateCaches(ctx, s.cache, cachePrefix)

	s.publisher.Publish(ctx, event.TopicBookings, event.New(model.EntityName, event.ActionDeleted, id, shared.Actor(ctx), nil))

	return nil
}

package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"hotel/config"
	"hotel/infras/otel/mocks"
	bookingMocks "hotel/internal/domains/booking/mocks"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/service"
	customerMocks "hotel/internal/domains/customer/mocks"
	employeeMocks "hotel/internal/domains/employee/mocks"
	roomMocks "hotel/internal/domains/room/mocks"
	"hotel/shared/cache"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/event"
	eventMocks "hotel/shared/event/mocks"
	"hotel/shared/failure"
	gRepo "hotel/shared/repository"
	"hotel/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc       service.Booking
	bookings  *bookingMocks.MockBooking
	customers *customerMocks.MockCustomer
	rooms     *roomMocks.MockRoom
	employees *employeeMocks.MockEmployee
	publisher *eventMocks.MockPublisher
	cache     *cacheMocks.MockRedisCache
}

func newFixture(t *testing.T, policy string) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.App.ReferencePolicy = policy
	cfg.Cache.TTL = 30

	f := fixture{
		bookings:  bookingMocks.NewMockBooking(ctrl),
		customers: customerMocks.NewMockCustomer(ctrl),
		rooms:     roomMocks.NewMockRoom(ctrl),
		employees: employeeMocks.NewMockEmployee(ctrl),
		publisher: eventMocks.NewMockPublisher(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}
	f.svc = service.New(f.bookings, f.customers, f.rooms, f.employees, f.publisher, cfg, f.cache, mocks.NewOtel())

	return f
}

func TestBookingService_Create(t *testing.T) {
	t.Run("publishes created event", func(t *testing.T) {
		f := newFixture(t, config.ReferencePolicyAllow)

		f.bookings.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) (model.Booking, error) {
				return booking.WithKey("DP1"), nil
			})
		f.cache.EXPECT().Clear(gomock.Any(), "booking:*").Return(nil)
		f.publisher.EXPECT().Publish(gomock.Any(), event.TopicBookings, gomock.Any()).
			Do(func(_ context.Context, _ string, evt event.Event) {
				assert.Equal(t, event.ActionCreated, evt.Action)
				assert.Equal(t, "DP1", evt.ID)
			})

		res, err := f.svc.Create(context.Background(), dto.CreateBookingRequest{
			CustomerID:  "KH1",
			RoomID:      "P1",
			CheckInDate: "2025-07-01",
		})

		require.NoError(t, err)
		assert.Equal(t, "DP1", res.ID)
		require.NotNil(t, res.CheckInDate)
	})

	t.Run("rejects unknown room", func(t *testing.T) {
		f := newFixture(t, config.ReferencePolicyReject)

		f.customers.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.rooms.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.Create(context.Background(), dto.CreateBookingRequest{CustomerID: "KH1", RoomID: "P404"})

		require.Error(t, err)
		assert.EqualError(t, err, "room does not exist")
	})

	t.Run("invalid date", func(t *testing.T) {
		f := newFixture(t, config.ReferencePolicyAllow)

		_, err := f.svc.Create(context.Background(), dto.CreateBookingRequest{CheckOutDate: "tomorrow"})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestBookingService_GetByDateRange(t *testing.T) {
	t.Run("missing bound", func(t *testing.T) {
		f := newFixture(t, config.ReferencePolicyAllow)

		_, err := f.svc.GetByDateRange(context.Background(), "2025-07-01", "")

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("invalid bound", func(t *testing.T) {
		f := newFixture(t, config.ReferencePolicyAllow)

		_, err := f.svc.GetByDateRange(context.Background(), "first of july", "2025-07-31")

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("passes parsed bounds", func(t *testing.T) {
		f := newFixture(t, config.ReferencePolicyAllow)

		f.bookings.EXPECT().FindWithin(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, start, end time.Time) ([]model.Booking, error) {
				assert.Equal(t, 1, start.Day())
				assert.Zero(t, start.Hour())
				assert.Equal(t, 31, end.Day())
				assert.Equal(t, 23, end.Hour())
				assert.Equal(t, 59, end.Minute())

				return []model.Booking{{ID: "DP2"}}, nil
			})

		res, err := f.svc.GetByDateRange(context.Background(), "2025-07-01", "2025-07-31")

		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "DP2", res[0].ID)
	})
}

func TestBookingService_GetByDateRangeEndBound(t *testing.T) {
	lateCheckOut := time.Date(2025, 7, 31, 12, 0, 0, 0, timezone.GetLocation())

	tests := []struct {
		name     string
		endDate  string
		included bool
	}{
		{name: "bare date covers the day", endDate: "2025-07-31", included: true},
		{name: "timestamp is exact", endDate: "2025-07-31T10:00:00", included: false},
		{name: "previous day", endDate: "2025-07-30", included: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, config.ReferencePolicyAllow)

			f.bookings.EXPECT().FindWithin(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _, end time.Time) ([]model.Booking, error) {
					assert.Equal(t, tt.included, !lateCheckOut.After(end))

					return nil, nil
				})

			_, err := f.svc.GetByDateRange(context.Background(), "2025-07-01", tt.endDate)

			require.NoError(t, err)
		})
	}
}

func TestBookingService_GetByCustomerAndRoom(t *testing.T) {
	f := newFixture(t, config.ReferencePolicyAllow)

	f.cache.EXPECT().Get(gomock.Any(), "booking:customer:KH1", gomock.Any()).Return(cache.Nil)
	f.bookings.EXPECT().FindByCustomer(gomock.Any(), "KH1").Return([]model.Booking{{ID: "DP1", CustomerID: "KH1"}}, nil)
	f.cache.EXPECT().Save(gomock.Any(), "booking:customer:KH1", gomock.Any(), 30).Return(nil)

	byCustomer, err := f.svc.GetByCustomer(context.Background(), "KH1")
	require.NoError(t, err)
	assert.Len(t, byCustomer, 1)

	f.cache.EXPECT().Get(gomock.Any(), "booking:room:P1", gomock.Any()).Return(cache.Nil)
	f.bookings.EXPECT().FindByRoom(gomock.Any(), "P1").Return([]model.Booking{}, nil)
	f.cache.EXPECT().Save(gomock.Any(), "booking:room:P1", gomock.Any(), 30).Return(nil)

	byRoom, err := f.svc.GetByRoom(context.Background(), "P1")
	require.NoError(t, err)
	assert.Empty(t, byRoom)
}

func TestBookingService_Delete(t *testing.T) {
	t.Run("unknown booking", func(t *testing.T) {
		f := newFixture(t, config.ReferencePolicyAllow)

		f.bookings.EXPECT().Delete(gomock.Any(), "DP9").Return(gRepo.ErrNotFound)

		err := f.svc.Delete(context.Background(), "DP9")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("publishes deleted event", func(t *testing.T) {
		f := newFixture(t, config.ReferencePolicyAllow)

		f.bookings.EXPECT().Delete(gomock.Any(), "DP1").Return(nil)
		f.cache.EXPECT().Clear(gomock.Any(), "booking:*").Return(nil)
		f.publisher.EXPECT().Publish(gomock.Any(), event.TopicBookings, gomock.Any())

		assert.NoError(t, f.svc.Delete(context.Background(), "DP1"))
	})
}

package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"hotel/config"
	"hotel/infras/otel/mocks"
	billMocks "hotel/internal/domains/bill/mocks"
	"hotel/internal/domains/bill/model"
	"hotel/internal/domains/bill/model/dto"
	"hotel/internal/domains/bill/service"
	bookingMocks "hotel/internal/domains/booking/mocks"
	customerMocks "hotel/internal/domains/customer/mocks"
	employeeMocks "hotel/internal/domains/employee/mocks"
	"hotel/shared/cache"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/event"
	eventMocks "hotel/shared/event/mocks"
	"hotel/shared/failure"
	gRepo "hotel/shared/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc       service.Bill
	bills     *billMocks.MockBill
	customers *customerMocks.MockCustomer
	bookings  *bookingMocks.MockBooking
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
		bills:     billMocks.NewMockBill(ctrl),
		customers: customerMocks.NewMockCustomer(ctrl),
		bookings:  bookingMocks.NewMockBooking(ctrl),
		employees: employeeMocks.NewMockEmployee(ctrl),
		publisher: eventMocks.NewMockPublisher(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}
	f.svc = service.New(f.bills, f.customers, f.bookings, f.employees, f.publisher, cfg, f.cache, mocks.NewOtel())

	return f
}

func TestBillService_Total(t *testing.T) {
	t.Run("returns stored amount", func(t *testing.T) {
		f := newFixture(t, config.ReferencePolicyAllow)

		f.cache.EXPECT().Get(gomock.Any(), "bill:get:HD1", gomock.Any()).Return(cache.Nil)
		f.bills.EXPECT().Get(gomock.Any(), "HD1").Return(model.Bill{ID: "HD1", TotalAmount: 250.75}, nil)
		f.cache.EXPECT().Save(gomock.Any(), "bill:get:HD1", gomock.Any(), 30).Return(nil)

		total, err := f.svc.Total(context.Background(), "HD1")

		require.NoError(t, err)
		assert.InDelta(t, 250.75, total, 0.0001)
	})

	t.Run("unknown bill", func(t *testing.T) {
		f := newFixture(t, config.ReferencePolicyAllow)

		f.cache.EXPECT().Get(gomock.Any(), "bill:get:HD9", gomock.Any()).Return(cache.Nil)
		f.bills.EXPECT().Get(gomock.Any(), "HD9").Return(model.Bill{}, gRepo.ErrNotFound)

		_, err := f.svc.Total(context.Background(), "HD9")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.EqualError(t, err, "bill not found")
	})
}

func TestBillService_Create(t *testing.T) {
	t.Run("publishes created event", func(t *testing.T) {
		f := newFixture(t, config.ReferencePolicyAllow)

		f.bills.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, bill model.Bill) (model.Bill, error) {
				assert.InDelta(t, 90.0, bill.TotalAmount, 0.0001)

				return bill.WithKey("HD1"), nil
			})
		f.cache.EXPECT().Clear(gomock.Any(), "bill:*").Return(nil)
		f.publisher.EXPECT().Publish(gomock.Any(), event.TopicBills, gomock.Any()).
			Do(func(_ context.Context, _ string, evt event.Event) {
				assert.Equal(t, event.ActionCreated, evt.Action)
				assert.Equal(t, "HD1", evt.ID)
			})

		res, err := f.svc.Create(context.Background(), dto.CreateBillRequest{
			CustomerID:  "KH1",
			BookingID:   "DP1",
			IssueDate:   "2025-07-05",
			TotalAmount: 90,
		})

		require.NoError(t, err)
		assert.Equal(t, "HD1", res.ID)
		require.NotNil(t, res.IssueDate)
	})

	t.Run("rejects unknown issuer", func(t *testing.T) {
		f := newFixture(t, config.ReferencePolicyReject)

		f.customers.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.bookings.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.employees.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.Create(context.Background(), dto.CreateBillRequest{CustomerID: "KH1", BookingID: "DP1", IssuedBy: "NV9"})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.EqualError(t, err, "employee does not exist")
	})

	t.Run("store failure", func(t *testing.T) {
		f := newFixture(t, config.ReferencePolicyAllow)

		f.bills.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(model.Bill{}, errors.New("connection reset"))

		_, err := f.svc.Create(context.Background(), dto.CreateBillRequest{})

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestBillService_Update(t *testing.T) {
	f := newFixture(t, config.ReferencePolicyAllow)

	issued := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	stored := model.Bill{ID: "HD1", Status: "UNPAID", TotalAmount: 100, IssueDate: &issued}

	f.bills.EXPECT().Update(gomock.Any(), "HD1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, mutate func(*model.Bill) error) (model.Bill, error) {
			bill := stored
			require.NoError(t, mutate(&bill))

			return bill, nil
		})
	f.cache.EXPECT().Clear(gomock.Any(), "bill:*").Return(nil)
	f.publisher.EXPECT().Publish(gomock.Any(), event.TopicBills, gomock.Any())

	status := "PAID"

	res, err := f.svc.Update(context.Background(), "HD1", dto.UpdateBillRequest{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, "PAID", res.Status)
	assert.InDelta(t, 100.0, res.TotalAmount, 0.0001)
	require.NotNil(t, res.IssueDate)
}

func TestBillService_GetByDateRange(t *testing.T) {
	t.Run("missing bound", func(t *testing.T) {
		f := newFixture(t, config.ReferencePolicyAllow)

		_, err := f.svc.GetByDateRange(context.Background(), "", "2025-07-31")

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("queries issue dates", func(t *testing.T) {
		f := newFixture(t, config.ReferencePolicyAllow)

		f.bills.EXPECT().FindIssuedBetween(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Bill{{ID: "HD1"}, {ID: "HD2"}}, nil)

		res, err := f.svc.GetByDateRange(context.Background(), "2025-07-01", "2025-07-31")

		require.NoError(t, err)
		assert.Len(t, res, 2)
	})
}

func TestBillService_Delete(t *testing.T) {
	f := newFixture(t, config.ReferencePolicyAllow)

	f.bills.EXPECT().Delete(gomock.Any(), "HD1").Return(nil)
	f.cache.EXPECT().Clear(gomock.Any(), "bill:*").Return(nil)
	f.publisher.EXPECT().Publish(gomock.Any(), event.TopicBills, gomock.Any()).
		Do(func(_ context.Context, _ string, evt event.Event) {
			assert.Equal(t, event.ActionDeleted, evt.Action)
		})

	assert.NoError(t, f.svc.Delete(context.Background(), "HD1"))
}

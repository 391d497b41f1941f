package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"hotel/config"
	"hotel/infras/otel/mocks"
	customerMocks "hotel/internal/domains/customer/mocks"
	"hotel/internal/domains/customer/model"
	"hotel/internal/domains/customer/model/dto"
	"hotel/internal/domains/customer/service"
	"hotel/shared/cache"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	"hotel/shared/failure"
	gRepo "hotel/shared/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.Customer, *customerMocks.MockCustomer, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func TestCustomerService_GetAll(t *testing.T) {
	t.Run("cache miss loads from store", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), "customer:all", gomock.Any()).Return(cache.Nil)
		mockRepo.EXPECT().GetAll(gomock.Any()).Return([]model.Customer{{ID: "KH1"}, {ID: "KH2"}}, nil)
		mockCache.EXPECT().Save(gomock.Any(), "customer:all", gomock.Any(), 60).Return(nil)

		res, err := svc.GetAll(context.Background())

		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, "KH1", res[0].ID)
	})

	t.Run("cache hit skips store", func(t *testing.T) {
		svc, _, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), "customer:all", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*(value.(*[]dto.CustomerResponse)) = []dto.CustomerResponse{{ID: "KH9"}}

				return nil
			})

		res, err := svc.GetAll(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "KH9", res[0].ID)
	})

	t.Run("store error", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		mockRepo.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("database error"))

		_, err := svc.GetAll(context.Background())

		assert.Error(t, err)
	})
}

func TestCustomerService_Get(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	mockCache.EXPECT().Get(gomock.Any(), "customer:get:KH7", gomock.Any()).Return(cache.Nil)
	mockRepo.EXPECT().Get(gomock.Any(), "KH7").Return(model.Customer{}, gRepo.ErrNotFound)

	_, err := svc.Get(context.Background(), "KH7")

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestCustomerService_Create(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserLogin, "reception")

	mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, customer model.Customer) (model.Customer, error) {
			assert.Equal(t, "reception", customer.CreatedBy)

			return customer.WithKey("KH1"), nil
		})
	mockCache.EXPECT().Clear(gomock.Any(), "customer:*").Return(nil)

	res, err := svc.Create(ctx, dto.CreateCustomerRequest{FullName: "Nguyen Van A", NationalID: "0123"})

	require.NoError(t, err)
	assert.Equal(t, "KH1", res.ID)
	assert.Equal(t, "0123", res.NationalID)
}

func TestCustomerService_Update(t *testing.T) {
	t.Run("partial copy", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		stored := model.Customer{ID: "KH1", FullName: "Old Name", Email: "keep@example.com"}
		name := "New Name"

		mockRepo.EXPECT().Update(gomock.Any(), "KH1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, mutate func(*model.Customer) error) (model.Customer, error) {
				require.NoError(t, mutate(&stored))

				return stored, nil
			})
		mockCache.EXPECT().Clear(gomock.Any(), "customer:*").Return(nil)

		res, err := svc.Update(context.Background(), "KH1", dto.UpdateCustomerRequest{FullName: &name})

		require.NoError(t, err)
		assert.Equal(t, "New Name", res.FullName)
		assert.Equal(t, "keep@example.com", res.Email)
		assert.Equal(t, constant.ContextGuest, res.ModifiedBy)
	})

	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Update(gomock.Any(), "KH404", gomock.Any()).Return(model.Customer{}, gRepo.ErrNotFound)

		_, err := svc.Update(context.Background(), "KH404", dto.UpdateCustomerRequest{})

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestCustomerService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockRepo.EXPECT().Delete(gomock.Any(), "KH1").Return(nil)
		mockCache.EXPECT().Clear(gomock.Any(), "customer:*").Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), "KH1"))
	})

	t.Run("store failure is internal", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().Delete(gomock.Any(), "KH1").Return(errors.New("connection reset"))

		err := svc.Delete(context.Background(), "KH1")

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

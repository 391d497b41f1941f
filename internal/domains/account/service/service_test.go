package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"hotel/config"
	"hotel/infras/otel/mocks"
	accountMocks "hotel/internal/domains/account/mocks"
	"hotel/internal/domains/account/model"
	"hotel/internal/domains/account/model/dto"
	"hotel/internal/domains/account/service"
	employeeMocks "hotel/internal/domains/employee/mocks"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/event"
	eventMocks "hotel/shared/event/mocks"
	"hotel/shared/failure"
	"hotel/shared/password"
	gRepo "hotel/shared/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc       service.Account
	accounts  *accountMocks.MockAccount
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
		accounts:  accountMocks.NewMockAccount(ctrl),
		employees: employeeMocks.NewMockEmployee(ctrl),
		publisher: eventMocks.NewMockPublisher(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}
	f.svc = service.New(f.accounts, f.employees, f.publisher, cfg, f.cache, mocks.NewOtel())

	return f
}

func storedAccount(t *testing.T, active bool) model.Account {
	t.Helper()

	hash, err := password.Hash("s3cret")
	require.NoError(t, err)

	return model.Account{ID: "TK1", LoginName: "lan", Password: hash, Role: "receptionist", Active: active}
}

func TestAccountService_Register(t *testing.T) {
	t.Run("hashes password and activates", func(t *testing.T) {
		f := newFixture(t, config.ReferencePolicyAllow)

		f.accounts.EXPECT().InsertUnique(gomock.Any(), gomock.Any(), model.FieldLoginName).
			DoAndReturn(func(_ context.Context, account model.Account, _ string) (model.Account, error) {
				assert.True(t, account.Active)
				assert.NotEqual(t, "s3cret", account.Password)
				assert.NoError(t, password.Verify("s3cret", account.Password))

				return account.WithKey("TK1"), nil
			})
		f.cache.EXPECT().Clear(gomock.Any(), "account:*").Return(nil)
		f.publisher.EXPECT().Publish(gomock.Any(), event.TopicAccounts, gomock.Any()).
			Do(func(_ context.Context, _ string, evt event.Event) {
				assert.Equal(t, event.ActionRegistered, evt.Action)
			})

		res, err := f.svc.Register(context.Background(), dto.RegisterRequest{LoginName: "lan", Password: "s3cret"})

		require.NoError(t, err)
		assert.Equal(t, "TK1", res.ID)
		assert.True(t, res.Active)
	})

	t.Run("duplicate login name", func(t *testing.T) {
		f := newFixture(t, config.ReferencePolicyAllow)

		f.accounts.EXPECT().InsertUnique(gomock.Any(), gomock.Any(), model.FieldLoginName).
			Return(model.Account{}, gRepo.ErrDuplicate)

		_, err := f.svc.Register(context.Background(), dto.RegisterRequest{LoginName: "lan", Password: "s3cret"})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.EqualError(t, err, "login name already exists")
	})

	t.Run("unknown employee", func(t *testing.T) {
		f := newFixture(t, config.ReferencePolicyReject)

		f.employees.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.Register(context.Background(), dto.RegisterRequest{EmployeeID: "NV7", LoginName: "lan", Password: "s3cret"})

		assert.EqualError(t, err, "employee does not exist")
	})
}

func TestAccountService_Login(t *testing.T) {
	t.Run("stamps last login", func(t *testing.T) {
		f := newFixture(t, config.ReferencePolicyAllow)
		stored := storedAccount(t, true)
		before := time.Now().Add(-time.Second)

		f.accounts.EXPECT().FindByLogin(gomock.Any(), "lan").Return(stored, nil)
		f.accounts.EXPECT().Update(gomock.Any(), "TK1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, mutate func(*model.Account) error) (model.Account, error) {
				account := stored
				require.NoError(t, mutate(&account))
				require.NotNil(t, account.LastLoginAt)
				assert.True(t, account.LastLoginAt.After(before))

				return account, nil
			})
		f.cache.EXPECT().Clear(gomock.Any(), "account:*").Return(nil)
		f.publisher.EXPECT().Publish(gomock.Any(), event.TopicAccounts, gomock.Any())

		res, err := f.svc.Login(context.Background(), dto.LoginRequest{LoginName: "lan", Password: "s3cret"})

		require.NoError(t, err)
		require.NotNil(t, res.LastLoginAt)
		assert.Equal(t, "receptionist", res.Role)
	})

	tests := []struct {
		name     string
		password string
		stored   func(t *testing.T) (model.Account, error)
	}{
		{
			name:     "unknown login",
			password: "s3cret",
			stored: func(*testing.T) (model.Account, error) {
				return model.Account{}, gRepo.ErrNotFound
			},
		},
		{
			name:     "wrong password",
			password: "guess",
			stored: func(t *testing.T) (model.Account, error) {
				return storedAccount(t, true), nil
			},
		},
		{
			name:     "inactive account",
			password: "s3cret",
			stored: func(t *testing.T) (model.Account, error) {
				return storedAccount(t, false), nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, config.ReferencePolicyAllow)

			f.accounts.EXPECT().FindByLogin(gomock.Any(), "lan").Return(tt.stored(t))

			_, err := f.svc.Login(context.Background(), dto.LoginRequest{LoginName: "lan", Password: tt.password})

			assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
		})
	}
}

func TestAccountService_Update(t *testing.T) {
	t.Run("empty password keeps hash", func(t *testing.T) {
		f := newFixture(t, config.ReferencePolicyAllow)
		stored := storedAccount(t, true)

		f.accounts.EXPECT().Update(gomock.Any(), "TK1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, mutate func(*model.Account) error) (model.Account, error) {
				account := stored
				require.NoError(t, mutate(&account))
				assert.Equal(t, stored.Password, account.Password)
				assert.Equal(t, "manager", account.Role)

				return account, nil
			})
		f.cache.EXPECT().Clear(gomock.Any(), "account:*").Return(nil)
		f.publisher.EXPECT().Publish(gomock.Any(), event.TopicAccounts, gomock.Any())

		role := "manager"

		_, err := f.svc.Update(context.Background(), "TK1", dto.UpdateAccountRequest{Role: &role})

		require.NoError(t, err)
	})

	t.Run("unknown account", func(t *testing.T) {
		f := newFixture(t, config.ReferencePolicyAllow)

		f.accounts.EXPECT().Update(gomock.Any(), "TK404", gomock.Any()).Return(model.Account{}, gRepo.ErrNotFound)

		_, err := f.svc.Update(context.Background(), "TK404", dto.UpdateAccountRequest{Password: "n3w"})

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestAccountService_EnsureAccount(t *testing.T) {
	t.Run("creates once", func(t *testing.T) {
		f := newFixture(t, config.ReferencePolicyAllow)

		f.accounts.EXPECT().InsertUnique(gomock.Any(), gomock.Any(), model.FieldLoginName).
			DoAndReturn(func(_ context.Context, account model.Account, _ string) (model.Account, error) {
				assert.Equal(t, "system", account.CreatedBy)

				return account.WithKey("TK1"), nil
			})
		f.cache.EXPECT().Clear(gomock.Any(), "account:*").Return(nil)

		created, err := f.svc.EnsureAccount(context.Background(), dto.RegisterRequest{LoginName: "admin", Password: "admin123", Role: "admin"})

		require.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("existing login is kept", func(t *testing.T) {
		f := newFixture(t, config.ReferencePolicyAllow)

		f.accounts.EXPECT().InsertUnique(gomock.Any(), gomock.Any(), model.FieldLoginName).
			Return(model.Account{}, gRepo.ErrDuplicate)

		created, err := f.svc.EnsureAccount(context.Background(), dto.RegisterRequest{LoginName: "admin", Password: "admin123"})

		require.NoError(t, err)
		assert.False(t, created)
	})
}

package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Account=MockAccountService

import (
	"context"
	"errors"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/account/model"
	"hotel/internal/domains/account/model/dto"
	"hotel/internal/domains/account/repository"
	employeeModel "hotel/internal/domains/employee/model"
	employeeRepository "hotel/internal/domains/employee/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/shared/event"
	"hotel/shared/failure"
	"hotel/shared/password"
	gRepo "hotel/shared/repository"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cachePrefix = "account:"
	cacheGetAll = "account:all"
	cacheGet    = "account:get"
)

var errLoginTaken = failure.BadRequestFromString("login name already exists")

type Account interface {
	GetAll(ctx context.Context) ([]dto.AccountResponse, error)
	Get(ctx context.Context, id string) (dto.AccountResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) (dto.AccountResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.AccountResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateAccountRequest) (dto.AccountResponse, error)
	Delete(ctx context.Context, id string) error
	EnsureAccount(ctx context.Context, req dto.RegisterRequest) (bool, error)
}

type serviceImpl struct {
	repo      repository.Account
	employees employeeRepository.Employee
	publisher event.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.Account,
	employees employeeRepository.Employee,
	publisher event.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Account {
	return &serviceImpl{
		repo:      repo,
		employees: employees,
		publisher: publisher,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.AccountResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if shared.LoadCache(ctx, s.cache, cacheGetAll, &res) {
		return res, nil
	}

	models, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get accounts")

		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}

	res = dto.FromModels(models)

	shared.SaveCache(ctx, s.cache, cacheGetAll, res, s.cfg.Cache.TTL)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AccountResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGet, id)

	if shared.LoadCache(ctx, s.cache, cacheKey, &res) {
		return res, nil
	}

	account, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get account")

		return res, shared.StoreFailure(fmt.Errorf("failed to get account: %w", err), model.EntityName)
	}

	res.FromModel(account)

	shared.SaveCache(ctx, s.cache, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

// Register creates an active account. Login names are unique across all accounts.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.AccountResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = shared.EnsureReference(ctx, s.cfg.RejectDanglingReferences(), employeeModel.EntityName, req.EmployeeID,
		shared.ExistsByID(s.employees)); err != nil {
		return res, err //nolint:wrapcheck
	}

	account, err := s.insert(ctx, req, shared.Actor(ctx))
	if err != nil {
		if errors.Is(err, gRepo.ErrDuplicate) {
			log.Warn().Str("login", req.LoginName).Msg("login name already exists")

			return res, errLoginTaken
		}

		log.Error().Err(err).Msg("failed to register account")

		return res, fmt.Errorf("failed to register account: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cachePrefix)

	res.FromModel(account)

	s.publisher.Publish(ctx, event.TopicAccounts, event.New(model.EntityName, event.ActionRegistered, account.ID, shared.Actor(ctx), res))

	return res, nil
}

func (s *serviceImpl) insert(ctx context.Context, req dto.RegisterRequest, actor string) (model.Account, error) {
	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to hash password: %w", err)
	}

	account, err := s.repo.InsertUnique(ctx, req.ToModel(actor, hashedPassword), model.FieldLoginName)
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to insert account: %w", err)
	}

	return account, nil
}

// Login authenticates an active account and stamps its last login time.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.AccountResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	account, err := s.repo.FindByLogin(ctx, req.LoginName)
	if err != nil {
		if errors.Is(err, gRepo.ErrNotFound) {
			log.Warn().Str("login", req.LoginName).Msg("login attempt with unknown login name")

			return res, failure.InvalidCredentials
		}

		log.Error().Err(err).Msg("failed to find account")

		return res, fmt.Errorf("failed to find account: %w", err)
	}

	if !account.Active {
		log.Warn().Str("login", req.LoginName).Msg("login attempt on inactive account")

		return res, failure.InvalidCredentials
	}

	if err = password.Verify(req.Password, account.Password); err != nil {
		log.Warn().Str("login", req.LoginName).Msg("login attempt with wrong password")

		return res, failure.InvalidCredentials
	}

	account, err = s.repo.Update(ctx, account.ID, func(account *model.Account) error {
		now := timezone.Now()
		account.LastLoginAt = &now

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("id", account.ID).Msg("failed to record last login")

		return res, fmt.Errorf("failed to record last login: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, cachePrefix)

	res.FromModel(account)

	s.publisher.Publish(ctx, event.TopicAccounts, event.New(model.EntityName, event.ActionLoggedIn, account.ID, account.LoginName, nil))

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateAccountRequest) (res dto.AccountResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var hashedPassword string

	if req.Password != "" {
		if hashedPassword, err = password.Hash(req.Password); err != nil {
			log.Error().Err(err).Msg("failed to hash password")

			return res, fmt.Errorf("failed to hash password: %w", err)
		}
	}

	actor := shared.Actor(ctx)

	account, err := s.repo.Update(ctx, id, func(account *model.Account) error {
		req.Apply(account, hashedPassword)
		account.Touch(actor)

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update account")

		return res, shared.StoreFailure(fmt.Errorf("failed to update account: %w", err), model.EntityName)
	}

	shared.InvalidateCaches(ctx, s.cache, cachePrefix)

	res.FromModel(account)

	s.publisher.Publish(ctx, event.TopicAccounts, event.New(model.EntityName, event.ActionUpdated, account.ID, actor, res))

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete account")

		return shared.StoreFailure(fmt.Errorf("failed to delete account: %w", err), model.EntityName)
	}

	shared.InvalidateCaches(ctx, s.cache, cachePrefix)

	s.publisher.Publish(ctx, event.TopicAccounts, event.New(model.EntityName, event.ActionDeleted, id, shared.Actor(ctx), nil))

	return nil
}

// EnsureAccount registers req unless its login name is already taken. It reports whether an account was created.
func (s *serviceImpl) EnsureAccount(ctx context.Context, req dto.RegisterRequest) (created bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EnsureAccount")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.insert(ctx, req, constant.ContextSystem); err != nil {
		if errors.Is(err, gRepo.ErrDuplicate) {
			return false, nil
		}

		return false, err
	}

	shared.InvalidateCaches(ctx, s.cache, cachePrefix)

	return true, nil
}

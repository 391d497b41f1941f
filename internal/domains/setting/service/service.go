package service

import (
	"context"
	"errors"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/setting/model"
	"hotel/internal/domains/setting/model/dto"
	"hotel/internal/domains/setting/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/shared/event"
	gRepo "hotel/shared/repository"

	"github.com/rs/zerolog/log"
)

const (
	cachePrefix  = "settings:"
	cacheCurrent = "settings:current"
)

type Setting interface {
	Get(ctx context.Context) (dto.SettingsResponse, error)
	Update(ctx context.Context, req dto.UpdateSettingsRequest) (dto.SettingsResponse, error)
	Reset(ctx context.Context) (dto.SettingsResponse, error)
}

type serviceImpl struct {
	repo      repository.Setting
	publisher event.Publisher
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Setting, publisher event.Publisher, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Setting {
	return &serviceImpl{
		repo:      repo,
		publisher: publisher,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

// current loads the default profile, seeding it from configuration on first use.
func (s *serviceImpl) current(ctx context.Context) (model.Setting, error) {
	setting, err := s.repo.FindProfile(ctx, model.DefaultProfile)
	if err == nil || !errors.Is(err, gRepo.ErrNotFound) {
		return setting, err //nolint:wrapcheck
	}

	setting, err = s.repo.InsertUnique(ctx, dto.Defaults(s.cfg, constant.ContextSystem), model.FieldProfile)
	if errors.Is(err, gRepo.ErrDuplicate) {
		return s.repo.FindProfile(ctx, model.DefaultProfile) //nolint:wrapcheck
	}

	if err == nil {
		log.Info().Str("id", setting.ID).Msg("seeded default settings")
	}

	return setting, err //nolint:wrapcheck
}

func (s *serviceImpl) Get(ctx context.Context) (res dto.SettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if shared.LoadCache(ctx, s.cache, cacheCurrent, &res) {
		return res, nil
	}

	setting, err := s.current(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get settings")

		return res, fmt.Errorf("failed to get settings: %w", err)
	}

	res.FromModel(setting)

	shared.SaveCache(ctx, s.cache, cacheCurrent, res, s.cfg.Cache.TTL)

	return res, nil
}

// Update copies the fields present in req onto the stored settings.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateSettingsRequest) (res dto.SettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.save(ctx, event.ActionUpdated, req.Apply)
}

// Reset restores the configured defaults.
func (s *serviceImpl) Reset(ctx context.Context) (res dto.SettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reset")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	defaults := dto.Defaults(s.cfg, constant.ContextSystem)

	return s.save(ctx, event.ActionReset, func(setting *model.Setting) {
		setting.ResetTo(defaults)
	})
}

func (s *serviceImpl) save(ctx context.Context, action string, change func(*model.Setting)) (res dto.SettingsResponse, err error) {
	setting, err := s.current(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load settings")

		return res, fmt.Errorf("failed to load settings: %w", err)
	}

	actor := shared.Actor(ctx)

	setting, err = s.repo.Update(ctx, setting.ID, func(setting *model.Setting) error {
		change(setting)
		setting.Touch(actor)

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("action", action).Msg("failed to save settings")

		return res, shared.StoreFailure(fmt.Errorf("failed to save settings: %w", err), model.EntityName)
	}

	shared.InvalidateCaches(ctx, s.cache, cachePrefix)

	res.FromModel(setting)

	s.publisher.Publish(ctx, event.TopicSettings, event.New(model.EntityName, action, setting.ID, actor, res))

	return res, nil
}

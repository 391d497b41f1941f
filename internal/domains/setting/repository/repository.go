package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/setting/model"
	"hotel/shared"
	gRepo "hotel/shared/repository"
)

type Setting interface {
	FindProfile(ctx context.Context, profile string) (model.Setting, error)
	InsertUnique(ctx context.Context, setting model.Setting, field string) (model.Setting, error)
	Update(ctx context.Context, id string, mutate func(*model.Setting) error) (model.Setting, error)
}

type repositoryImpl struct {
	gRepo.Store[model.Setting]
}

func New(cfg *config.Config, db *postgres.Connection, otel otel.Otel) Setting {
	return &repositoryImpl{
		Store: gRepo.New[model.Setting](cfg, db, otel, gRepo.Definition{
			Entity: model.EntityName,
			Table:  model.TableName,
			Prefix: model.IDPrefix,
		}),
	}
}

// FindProfile returns gRepo.ErrNotFound until the profile has been seeded.
func (r *repositoryImpl) FindProfile(ctx context.Context, profile string) (model.Setting, error) {
	found, err := r.Find(ctx, shared.FilterByField(model.FieldProfile, profile))
	if err != nil {
		return model.Setting{}, fmt.Errorf("failed to find settings profile: %w", err)
	}

	if len(found) == 0 {
		return model.Setting{}, gRepo.ErrNotFound
	}

	return found[0], nil
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/account/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
)

type Account interface {
	GetAll(ctx context.Context) ([]model.Account, error)
	Get(ctx context.Context, id string) (model.Account, error)
	Find(ctx context.Context, filter gDto.FilterGroup) ([]model.Account, error)
	FindByLogin(ctx context.Context, loginName string) (model.Account, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	InsertUnique(ctx context.Context, account model.Account, field string) (model.Account, error)
	Update(ctx context.Context, id string, mutate func(*model.Account) error) (model.Account, error)
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	gRepo.Store[model.Account]
}

func New(cfg *config.Config, db *postgres.Connection, otel otel.Otel) Account {
	return &repositoryImpl{
		Store: gRepo.New[model.Account](cfg, db, otel, gRepo.Definition{
			Entity: model.EntityName,
			Table:  model.TableName,
			Prefix: model.IDPrefix,
		}),
	}
}

// FindByLogin returns gRepo.ErrNotFound when no account carries loginName.
func (r *repositoryImpl) FindByLogin(ctx context.Context, loginName string) (model.Account, error) {
	accounts, err := r.Find(ctx, shared.FilterByField(model.FieldLoginName, loginName))
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to find account by login: %w", err)
	}

	if len(accounts) == 0 {
		return model.Account{}, gRepo.ErrNotFound
	}

	return accounts[0], nil
}

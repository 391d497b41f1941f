package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/room/model"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
)

type Room interface {
	GetAll(ctx context.Context) ([]model.Room, error)
	Get(ctx context.Context, id string) (model.Room, error)
	Find(ctx context.Context, filter gDto.FilterGroup) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Insert(ctx context.Context, room model.Room) (model.Room, error)
	Update(ctx context.Context, id string, mutate func(*model.Room) error) (model.Room, error)
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	gRepo.Store[model.Room]
}

func New(cfg *config.Config, db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Store: gRepo.New[model.Room](cfg, db, otel, gRepo.Definition{
			Entity: model.EntityName,
			Table:  model.TableName,
			Prefix: model.IDPrefix,
		}),
	}
}

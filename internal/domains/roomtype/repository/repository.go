package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/roomtype/model"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
)

type RoomType interface {
	GetAll(ctx context.Context) ([]model.RoomType, error)
	Get(ctx context.Context, id string) (model.RoomType, error)
	Find(ctx context.Context, filter gDto.FilterGroup) ([]model.RoomType, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Insert(ctx context.Context, roomType model.RoomType) (model.RoomType, error)
	Update(ctx context.Context, id string, mutate func(*model.RoomType) error) (model.RoomType, error)
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	gRepo.Store[model.RoomType]
}

func New(cfg *config.Config, db *postgres.Connection, otel otel.Otel) RoomType {
	return &repositoryImpl{
		Store: gRepo.New[model.RoomType](cfg, db, otel, gRepo.Definition{
			Entity: model.EntityName,
			Table:  model.TableName,
			Prefix: model.IDPrefix,
		}),
	}
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/booking/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
)

type Booking interface {
	GetAll(ctx context.Context) ([]model.Booking, error)
	Get(ctx context.Context, id string) (model.Booking, error)
	Find(ctx context.Context, filter gDto.FilterGroup) ([]model.Booking, error)
	FindByCustomer(ctx context.Context, customerID string) ([]model.Booking, error)
	FindByRoom(ctx context.Context, roomID string) ([]model.Booking, error)
	FindWithin(ctx context.Context, start, end time.Time) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Insert(ctx context.Context, booking model.Booking) (model.Booking, error)
	Update(ctx context.Context, id string, mutate func(*model.Booking) error) (model.Booking, error)
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	gRepo.Store[model.Booking]
}

func New(cfg *config.Config, db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Store: gRepo.New[model.Booking](cfg, db, otel, gRepo.Definition{
			Entity: model.EntityName,
			Table:  model.TableName,
			Prefix: model.IDPrefix,
		}),
	}
}

func (r *repositoryImpl) FindByCustomer(ctx context.Context, customerID string) ([]model.Booking, error) {
	return r.Find(ctx, shared.FilterByField(model.FieldCustomerID, customerID)) //nolint:wrapcheck
}

func (r *repositoryImpl) FindByRoom(ctx context.Context, roomID string) ([]model.Booking, error) {
	return r.Find(ctx, shared.FilterByField(model.FieldRoomID, roomID)) //nolint:wrapcheck
}

// FindWithin returns bookings that check in no earlier than start and check out no later than end.
func (r *repositoryImpl) FindWithin(ctx context.Context, start, end time.Time) ([]model.Booking, error) {
	return r.Find(ctx, gDto.FilterGroup{ //nolint:wrapcheck
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldCheckInDate, Operator: gDto.FilterOperatorGreaterEq, Value: start},
			gDto.Filter{Field: model.FieldCheckOutDate, Operator: gDto.FilterOperatorLessEq, Value: end},
		},
	})
}

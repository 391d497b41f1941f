package service_test

import (
	"context"
	"net/http"
	"testing"

	"hotel/config"
	"hotel/infras/otel/mocks"
	roomMocks "hotel/internal/domains/room/mocks"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/service"
	roomTypeMocks "hotel/internal/domains/roomtype/mocks"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/failure"
	gRepo "hotel/shared/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc       service.Room
	rooms     *roomMocks.MockRoom
	roomTypes *roomTypeMocks.MockRoomType
	cache     *cacheMocks.MockRedisCache
}

func newFixture(t *testing.T, policy string) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.App.ReferencePolicy = policy

	f := fixture{
		rooms:     roomMocks.NewMockRoom(ctrl),
		roomTypes: roomTypeMocks.NewMockRoomType(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}
	f.svc = service.New(f.rooms, f.roomTypes, cfg, f.cache, mocks.NewOtel())

	return f
}

func TestRoomService_CreateReferencePolicy(t *testing.T) {
	t.Run("allow skips the lookup", func(t *testing.T) {
		f := newFixture(t, config.ReferencePolicyAllow)

		f.rooms.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, room model.Room) (model.Room, error) {
				return room.WithKey("P1"), nil
			})
		f.cache.EXPECT().Clear(gomock.Any(), "room:*").Return(nil)

		res, err := f.svc.Create(context.Background(), dto.CreateRoomRequest{Name: "101", RoomTypeID: "LP404"})

		require.NoError(t, err)
		assert.Equal(t, "P1", res.ID)
		assert.Equal(t, "LP404", res.RoomTypeID)
	})

	t.Run("reject dangling room type", func(t *testing.T) {
		f := newFixture(t, config.ReferencePolicyReject)

		f.roomTypes.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.Create(context.Background(), dto.CreateRoomRequest{Name: "101", RoomTypeID: "LP404"})

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.EqualError(t, err, "room type does not exist")
	})

	t.Run("reject with existing room type", func(t *testing.T) {
		f := newFixture(t, config.ReferencePolicyReject)

		f.roomTypes.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.rooms.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, room model.Room) (model.Room, error) {
				return room.WithKey("P2"), nil
			})
		f.cache.EXPECT().Clear(gomock.Any(), "room:*").Return(nil)

		res, err := f.svc.Create(context.Background(), dto.CreateRoomRequest{Name: "102", RoomTypeID: "LP1"})

		require.NoError(t, err)
		assert.Equal(t, "P2", res.ID)
	})
}

func TestRoomService_Update(t *testing.T) {
	t.Run("unknown room", func(t *testing.T) {
		f := newFixture(t, config.ReferencePolicyAllow)

		f.rooms.EXPECT().Update(gomock.Any(), "P99", gomock.Any()).Return(model.Room{}, gRepo.ErrNotFound)

		status := "cleaning"
		_, err := f.svc.Update(context.Background(), "P99", dto.UpdateRoomRequest{Status: &status})

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("partial copy", func(t *testing.T) {
		f := newFixture(t, config.ReferencePolicyAllow)

		stored := model.Room{ID: "P1", Name: "101", RoomTypeID: "LP1", Status: "available", Note: "corner"}
		status := "occupied"

		f.rooms.EXPECT().Update(gomock.Any(), "P1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, mutate func(*model.Room) error) (model.Room, error) {
				require.NoError(t, mutate(&stored))

				return stored, nil
			})
		f.cache.EXPECT().Clear(gomock.Any(), "room:*").Return(nil)

		res, err := f.svc.Update(context.Background(), "P1", dto.UpdateRoomRequest{Status: &status})

		require.NoError(t, err)
		assert.Equal(t, "occupied", res.Status)
		assert.Equal(t, "corner", res.Note)
		assert.Equal(t, "LP1", res.RoomTypeID)
	})
}

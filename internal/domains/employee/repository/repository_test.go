package repository_test

import (
	"context"
	"testing"

	"hotel/config"
	"hotel/infras/otel/mocks"
	"hotel/internal/domains/employee/model"
	"hotel/internal/domains/employee/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T) repository.Employee {
	t.Helper()

	repo := repository.New(&config.Config{}, nil, mocks.NewOtel())

	for _, employee := range []model.Employee{
		{FullName: "Nguyen Thi Lan", Email: "lan@hotel.test", Phone: "0901000001", JobTitle: "receptionist"},
		{FullName: "Tran Van Minh", Email: "minh@hotel.test", Phone: "0901000002", JobTitle: "manager"},
		{FullName: "Le Thu Ha", Email: "ha@hotel.test", Phone: "0988777666", JobTitle: "receptionist"},
	} {
		_, err := repo.Insert(context.Background(), employee)
		require.NoError(t, err)
	}

	return repo
}

func ids(employees []model.Employee) []string {
	res := make([]string, len(employees))
	for i, employee := range employees {
		res[i] = employee.ID
	}

	return res
}

func TestFindByJobTitle(t *testing.T) {
	repo := seed(t)

	found, err := repo.FindByJobTitle(context.Background(), "receptionist")
	require.NoError(t, err)
	assert.Equal(t, []string{"NV1", "NV3"}, ids(found))

	found, err = repo.FindByJobTitle(context.Background(), "chef")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestSearch(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{query: "minh", want: []string{"NV2"}},
		{query: "HOTEL.TEST", want: []string{"NV1", "NV2", "NV3"}},
		{query: "0988", want: []string{"NV3"}},
		{query: "Thi", want: []string{"NV1"}},
		{query: "nobody", want: []string{}},
	}

	repo := seed(t)

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			found, err := repo.Search(context.Background(), tt.query)

			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(found))
		})
	}
}

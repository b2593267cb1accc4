package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/praxis/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTherapyRepo_ListSeededCatalog(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTherapyRepo(db)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 9)
	assert.Equal(t, "kg", list[0].Name)
	assert.Equal(t, 50.0, list[0].Cost)
	assert.Equal(t, 100.0, list[0].Income)
}

func TestTherapyRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTherapyRepo(db)
	ctx := context.Background()

	th := testutil.NewTestTherapy("Massage", testutil.WithPrices(30, 75))
	require.NoError(t, repo.Create(ctx, th))
	assert.NotZero(t, th.ID)

	fetched, err := repo.GetByID(ctx, th.ID)
	require.NoError(t, err)
	assert.Equal(t, th, fetched)
}

func TestTherapyRepo_CreateDuplicateName(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTherapyRepo(db)

	err := repo.Create(context.Background(), testutil.NewTestTherapy("kg"))
	assert.ErrorIs(t, err, ErrConflict)
}

func TestTherapyRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTherapyRepo(db)
	ctx := context.Background()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	kg := list[0]
	kg.Income = 120
	require.NoError(t, repo.Update(ctx, kg))

	fetched, err := repo.GetByID(ctx, kg.ID)
	require.NoError(t, err)
	assert.Equal(t, 120.0, fetched.Income)
}

func TestTherapyRepo_UpdateRenameIntoExisting(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTherapyRepo(db)
	ctx := context.Background()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	list[0].Name = list[1].Name
	assert.ErrorIs(t, repo.Update(ctx, list[0]), ErrConflict)
}

func TestTherapyRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTherapyRepo(db)

	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

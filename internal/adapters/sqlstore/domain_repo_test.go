package sqlstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/core2/internal/adapters/sqlstore"
	core2err "github.com/example/core2/internal/errors"
	"github.com/example/core2/internal/ports/secondary"
)

func TestDomainRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := sqlstore.NewDomainRepository(setupTestDB(t))

	created, err := repo.Create(ctx, secondary.DomainInsert{OwnerID: testOwner, Name: "Finance", Code: "FIN"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "FIN", created.Code)
	assert.Empty(t, created.Color)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Finance", got.Name)

	updated, err := repo.Update(ctx, created.ID, secondary.DomainPatch{Color: strPtr("#ff0000"), Code: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", updated.Color)
	assert.Empty(t, updated.Code, "empty patch value clears the column")
	assert.Equal(t, "Finance", updated.Name)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, core2err.ErrNotFound)
}

func TestDomainRepository_ListByOwner_NewestFirstAndPaged(t *testing.T) {
	ctx := context.Background()
	repo := sqlstore.NewDomainRepository(setupTestDB(t))

	for _, name := range []string{"A", "B", "C"} {
		_, err := repo.Create(ctx, secondary.DomainInsert{OwnerID: testOwner, Name: name})
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, secondary.DomainInsert{OwnerID: "someone-else", Name: "X"})
	require.NoError(t, err)

	all, err := repo.ListByOwner(ctx, testOwner, secondary.Page{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"C", "B", "A"}, []string{all[0].Name, all[1].Name, all[2].Name})

	page, err := repo.ListByOwner(ctx, testOwner, secondary.Page{Offset: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "B", page[0].Name)

	none, err := repo.ListByOwner(ctx, "nobody", secondary.Page{})
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestDomainRepository_MissingRows(t *testing.T) {
	ctx := context.Background()
	repo := sqlstore.NewDomainRepository(setupTestDB(t))

	_, err := repo.Update(ctx, "missing", secondary.DomainPatch{Name: strPtr("x")})
	assert.ErrorIs(t, err, core2err.ErrNotFound)

	_, err = repo.Delete(ctx, "missing")
	assert.ErrorIs(t, err, core2err.ErrNotFound)
}

package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/camden-git/hrmbackend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	for i := 1; i <= 4; i++ {
		require.NoError(t, repo.Add(ctx, &models.Account{
			UserName: fmt.Sprintf("user%d", i), Name: "User", PasswordHash: "hash", Role: "viewer", Status: true,
		}))
	}

	exists, err := repo.UserNameExists(ctx, "user2")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.UserNameExists(ctx, "nobody")
	require.NoError(t, err)
	assert.False(t, exists)

	page, err := repo.ListPaginated(ctx, Pagination{Page: 2, PageSize: 3})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "user4", page[0].UserName)

	total, err := repo.TotalRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)

	account, err := repo.FindByUserName(ctx, "user3")
	require.NoError(t, err)
	require.NoError(t, repo.Remove(ctx, account))
	_, err = repo.FindByUserName(ctx, "user3")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAccountRepository_TouchActivity_KeepsConcurrentChanges(t *testing.T) {
	db := newTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, &models.Account{
		UserName: "lan", Name: "Lan", PasswordHash: "hash", Role: "admin", Status: true,
	}))
	loaded, err := repo.FindByUserName(ctx, "lan")
	require.NoError(t, err)

	// another request demotes the account after it was loaded
	require.NoError(t, db.Model(&models.Account{}).Where("id = ?", loaded.ID).Update("role", "viewer").Error)

	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	require.NoError(t, repo.TouchActivity(ctx, loaded.ID, at))

	stored, err := repo.FindByID(ctx, loaded.ID)
	require.NoError(t, err)
	assert.Equal(t, "viewer", stored.Role)
	assert.True(t, at.Equal(stored.LastActivity))
}

func TestAccountRepository_TouchActivity_DoesNotRecreateRemovedAccount(t *testing.T) {
	db := newTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	account := &models.Account{UserName: "vy", Name: "Vy", PasswordHash: "hash", Role: "editor", Status: true}
	require.NoError(t, repo.Add(ctx, account))
	require.NoError(t, repo.Remove(ctx, account))

	err := repo.TouchActivity(ctx, account.ID, time.Now())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.FindByID(ctx, account.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGroupRepository_SearchByName(t *testing.T) {
	db := newTestDB(t)
	repo := NewGroupRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Team Alpha", "Team Beta", "Gamma"} {
		require.NoError(t, repo.Add(ctx, &models.Group{Name: name, Description: name, Status: true}))
	}

	groups, err := repo.SearchByName(ctx, "teama")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Team Alpha", groups[0].Name)

	groups, err = repo.SearchByName(ctx, "team")
	require.NoError(t, err)
	assert.Len(t, groups, 2)
}

func TestTechnologyRepository_ListByCategory(t *testing.T) {
	db := newTestDB(t)
	repo := NewTechnologyRepository(db)
	ctx := context.Background()

	backend := &models.Category{Name: "Backend", Status: true}
	frontend := &models.Category{Name: "Frontend", Status: true}
	require.NoError(t, db.Create(backend).Error)
	require.NoError(t, db.Create(frontend).Error)

	require.NoError(t, repo.Add(ctx, &models.Technology{Name: "Go", CategoryID: backend.ID, Status: true}))
	require.NoError(t, repo.Add(ctx, &models.Technology{Name: "React", CategoryID: frontend.ID, Status: true}))
	retired := &models.Technology{Name: "Perl", CategoryID: backend.ID, Status: true}
	require.NoError(t, repo.Add(ctx, retired))
	retired.Status = false
	require.NoError(t, repo.Update(ctx, retired))

	technologies, err := repo.ListByCategory(ctx, backend.ID)
	require.NoError(t, err)
	require.Len(t, technologies, 1)
	assert.Equal(t, "Go", technologies[0].Name)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

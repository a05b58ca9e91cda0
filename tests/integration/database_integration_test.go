package integration

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"account-service/app/domain"
	"account-service/app/driver/postgres"
	"account-service/app/utils/logger"
)

func TestDatabaseIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	require.NoError(t, WaitForDatabase(ctx), "Database should be ready")

	pool, err := TestDatabaseConnection()
	require.NoError(t, err, "Should connect to test database")
	defer pool.Close()

	require.NoError(t, pool.Ping(ctx), "Should ping database successfully")

	var result int
	err = pool.QueryRow(ctx, "SELECT 1").Scan(&result)
	require.NoError(t, err, "Should execute simple query")
	assert.Equal(t, 1, result, "Query result should be 1")
}

func TestInstitutionRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	require.NoError(t, WaitForDatabase(ctx), "Database should be ready")
	t.Cleanup(func() {
		require.NoError(t, CleanupTestData(context.Background()))
	})

	pool, err := TestDatabaseConnection()
	require.NoError(t, err)
	defer pool.Close()

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	repo := postgres.NewInstitutionRepository(pool, testLogger)

	institution, err := domain.NewInstitution("Integration Academy", "billing@integration.example")
	require.NoError(t, err)

	require.NoError(t, repo.Create(ctx, institution))

	fetched, err := repo.GetByID(ctx, institution.ID)
	require.NoError(t, err)
	assert.Equal(t, institution.Name, fetched.Name)
	assert.Equal(t, domain.SubscriptionPending, fetched.SubscriptionStatus)

	// Conditional activation applies exactly once
	start := time.Now().UTC()
	end := start.AddDate(1, 0, 0)

	applied, err := repo.ActivateIfInactive(ctx, institution.ID, start, end)
	require.NoError(t, err)
	assert.True(t, applied, "First activation should apply")

	applied, err = repo.ActivateIfInactive(ctx, institution.ID, start, end)
	require.NoError(t, err)
	assert.False(t, applied, "Second activation should be a no-op")

	fetched, err = repo.GetByID(ctx, institution.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SubscriptionActive, fetched.SubscriptionStatus)

	require.NoError(t, repo.Delete(ctx, institution.ID))

	_, err = repo.GetByID(ctx, institution.ID)
	assert.ErrorIs(t, err, domain.ErrInstitutionNotFound)
}

func TestProfileRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	require.NoError(t, WaitForDatabase(ctx), "Database should be ready")
	t.Cleanup(func() {
		require.NoError(t, CleanupTestData(context.Background()))
	})

	pool, err := TestDatabaseConnection()
	require.NoError(t, err)
	defer pool.Close()

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	institutions := postgres.NewInstitutionRepository(pool, testLogger)
	profiles := postgres.NewProfileRepository(pool, testLogger)

	institution, err := domain.NewInstitution("Profile Test School", "profiles@integration.example")
	require.NoError(t, err)
	require.NoError(t, institutions.Create(ctx, institution))

	userID := uuid.New()
	profile, err := domain.NewAdminProfile(userID, institution.ID, "admin@integration.example", "Integration Admin")
	require.NoError(t, err)

	require.NoError(t, profiles.Upsert(ctx, profile))

	// Upsert with changed name must update, not conflict
	profile.FullName = "Renamed Admin"
	require.NoError(t, profiles.Upsert(ctx, profile))

	fetched, err := profiles.GetByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Admin", fetched.FullName)
	assert.Equal(t, domain.RoleAdmin, fetched.Role)

	require.NoError(t, profiles.Delete(ctx, userID))

	_, err = profiles.GetByUserID(ctx, userID)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

package auth

import (
	"testing"
	"time"

	"tabletab/internal/database"
	"tabletab/internal/models"

	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.DB().SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSignUpAndLogin(t *testing.T) {
	svc := NewService(setupTestDB(t), "test-secret", time.Hour)

	restaurant, token, err := svc.SignUp("Spice Garden", "owner@example.com", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.NotEqual(t, "s3cret", restaurant.PasswordHash, "password must be hashed")

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, restaurant.ID, claims.AccountID)
	assert.Equal(t, restaurant.ID, claims.RestaurantID)
	assert.Equal(t, models.RoleOwner, claims.Role)

	loginToken, loginClaims, err := svc.Login("owner@example.com", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, loginToken)
	assert.Equal(t, models.RoleOwner, loginClaims.Role)
}

func TestSignUpRequiresCredentials(t *testing.T) {
	svc := NewService(setupTestDB(t), "test-secret", time.Hour)

	_, _, err := svc.SignUp("No Email", "", "pw")
	assert.Error(t, err)

	_, _, err = svc.SignUp("No Password", "a@b.com", "")
	assert.Error(t, err)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := NewService(setupTestDB(t), "test-secret", time.Hour)

	_, _, err := svc.SignUp("Spice Garden", "owner@example.com", "s3cret")
	require.NoError(t, err)

	_, _, err = svc.Login("owner@example.com", "wrong")
	assert.Error(t, err)

	_, _, err = svc.Login("nobody@example.com", "s3cret")
	assert.Error(t, err)
}

func TestWaiterLifecycle(t *testing.T) {
	svc := NewService(setupTestDB(t), "test-secret", time.Hour)

	restaurant, _, err := svc.SignUp("Spice Garden", "owner@example.com", "s3cret")
	require.NoError(t, err)

	waiter, err := svc.CreateWaiter(restaurant.ID, "Asha", "asha@example.com", "waiterpw")
	require.NoError(t, err)
	assert.Equal(t, restaurant.ID, waiter.RestaurantID)

	// Waiter logins carry the waiter role and the owning restaurant.
	token, claims, err := svc.Login("asha@example.com", "waiterpw")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, models.RoleWaiter, claims.Role)
	assert.Equal(t, restaurant.ID, claims.RestaurantID)

	parsed, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, waiter.ID, parsed.AccountID)

	waiters, err := svc.ListWaiters(restaurant.ID)
	require.NoError(t, err)
	require.Len(t, waiters, 1)

	require.NoError(t, svc.DeleteWaiter(restaurant.ID, waiter.ID))
	waiters, err = svc.ListWaiters(restaurant.ID)
	require.NoError(t, err)
	assert.Empty(t, waiters)
}

func TestDeleteWaiterScopedToRestaurant(t *testing.T) {
	svc := NewService(setupTestDB(t), "test-secret", time.Hour)

	restaurant, _, err := svc.SignUp("Spice Garden", "owner@example.com", "s3cret")
	require.NoError(t, err)
	waiter, err := svc.CreateWaiter(restaurant.ID, "Asha", "asha@example.com", "waiterpw")
	require.NoError(t, err)

	// Another restaurant's delete must not touch the record.
	require.NoError(t, svc.DeleteWaiter(restaurant.ID+1, waiter.ID))
	waiters, err := svc.ListWaiters(restaurant.ID)
	require.NoError(t, err)
	assert.Len(t, waiters, 1)
}

func TestParseTokenRejectsTampering(t *testing.T) {
	svc := NewService(setupTestDB(t), "test-secret", time.Hour)
	other := NewService(setupTestDB(t), "different-secret", time.Hour)

	token, err := svc.IssueToken(1, 1, models.RoleOwner)
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err, "token signed with another secret must fail")

	_, err = svc.ParseToken(token + "x")
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := NewService(setupTestDB(t), "test-secret", -time.Minute)

	token, err := svc.IssueToken(1, 1, models.RoleOwner)
	require.NoError(t, err)

	_, err = svc.ParseToken(token)
	assert.Error(t, err)
}

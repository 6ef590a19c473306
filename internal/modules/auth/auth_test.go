package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartmart/pos-backend/internal/modules/accounts"
	"github.com/smartmart/pos-backend/internal/modules/auth"
	"github.com/smartmart/pos-backend/internal/store"
)

const testSecret = "test-secret"

func newService(t *testing.T) auth.Service {
	t.Helper()
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)
	accountsSvc := accounts.NewService(accounts.NewFileRepository(st))
	require.NoError(t, accountsSvc.AddCashier(context.Background(), "cashier1", "pass123"))
	return auth.NewService(accountsSvc, testSecret)
}

func TestSignAndParseToken(t *testing.T) {
	token, err := auth.SignToken([]byte(testSecret), "admin", auth.RoleAdmin, "")
	require.NoError(t, err)

	claims, err := auth.ParseToken([]byte(testSecret), token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, auth.RoleAdmin, claims.Role)
	assert.Empty(t, claims.SessionID)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := auth.SignToken([]byte(testSecret), "admin", auth.RoleAdmin, "")
	require.NoError(t, err)

	_, err = auth.ParseToken([]byte("other-secret"), token)
	assert.Error(t, err)
}

func TestAdminLogin(t *testing.T) {
	svc := newService(t)

	result, err := svc.Login(context.Background(), "admin", "admin123", auth.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, result.Role)
	assert.Empty(t, result.SessionID, "admin logins carry no POS session")

	claims, err := auth.ParseToken([]byte(testSecret), result.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
}

func TestCashierLoginOpensSession(t *testing.T) {
	svc := newService(t)

	result, err := svc.Login(context.Background(), "cashier1", "pass123", auth.RoleCashier)
	require.NoError(t, err)
	require.NotEmpty(t, result.SessionID)

	claims, err := auth.ParseToken([]byte(testSecret), result.Token)
	require.NoError(t, err)
	assert.Equal(t, result.SessionID, claims.SessionID, "session ID rides in the token")
	assert.Equal(t, auth.RoleCashier, claims.Role)
}

func TestLoginFailures(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "admin", "wrong", auth.RoleAdmin)
	assert.ErrorIs(t, err, accounts.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "cashier1", "wrong", auth.RoleCashier)
	assert.ErrorIs(t, err, accounts.ErrInvalidCredentials)

	// role mix-ups must not cross over
	_, err = svc.Login(ctx, "cashier1", "pass123", auth.RoleAdmin)
	assert.ErrorIs(t, err, accounts.ErrInvalidCredentials)

	_, err = svc.Login(ctx, "admin", "admin123", "manager")
	assert.ErrorIs(t, err, auth.ErrUnknownRole)
}

package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/csmaviation/website-api/internal/models"
	appErrors "github.com/csmaviation/website-api/pkg/errors"
)

type mockAuthRepo struct {
	users            map[string]*models.User
	findErr          error
	lastLoginUpdated bool
}

func (m *mockAuthRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockAuthRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockAuthRepo) UpdateLastLogin(ctx context.Context, id string, ts time.Time) error {
	m.lastLoginUpdated = true
	return nil
}

func (m *mockAuthRepo) Upsert(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = "user-" + user.Username
	}
	m.users[user.ID] = user
	return nil
}

func newAuthFixture(t *testing.T, active bool) (*AuthService, *mockAuthRepo, *auditStub) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("Password123!"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &mockAuthRepo{users: map[string]*models.User{
		"user-1": {ID: "user-1", Username: "ops", PasswordHash: string(hash), Role: models.RoleAdmin, Active: active},
	}}
	audit := &auditStub{}
	svc := NewAuthService(repo, audit, nil, nil, AuthConfig{AccessTokenSecret: "secret", Issuer: "csm-aviation-api"})
	return svc, repo, audit
}

func TestAuthServiceLoginSuccess(t *testing.T) {
	svc, repo, audit := newAuthFixture(t, true)

	resp, err := svc.Login(context.Background(), models.LoginRequest{Username: "ops", Password: "Password123!", IP: "10.0.0.1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.EqualValues(t, 3600, resp.ExpiresIn)
	assert.Equal(t, "ops", resp.User.Username)
	assert.True(t, repo.lastLoginUpdated)
	require.Len(t, audit.entries, 1)
	assert.Equal(t, models.AuditActionLogin, audit.entries[0].Action)

	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestAuthServiceLoginFailures(t *testing.T) {
	svc, _, _ := newAuthFixture(t, true)

	_, err := svc.Login(context.Background(), models.LoginRequest{Username: "ops", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrInvalidCredentials))
	assert.Equal(t, "invalid username or password", appErrors.FromError(err).Message)

	_, err = svc.Login(context.Background(), models.LoginRequest{Username: "nobody", Password: "Password123!"})
	assert.True(t, errors.Is(err, appErrors.ErrInvalidCredentials))

	_, err = svc.Login(context.Background(), models.LoginRequest{Username: "", Password: ""})
	assert.True(t, errors.Is(err, appErrors.ErrValidation))

	inactive, _, _ := newAuthFixture(t, false)
	_, err = inactive.Login(context.Background(), models.LoginRequest{Username: "ops", Password: "Password123!"})
	assert.True(t, errors.Is(err, appErrors.ErrInvalidCredentials))
}

func TestAuthServiceValidateTokenRejectsForeignSecret(t *testing.T) {
	svc, _, _ := newAuthFixture(t, true)
	other := NewAuthService(&mockAuthRepo{users: map[string]*models.User{}}, nil, nil, nil, AuthConfig{AccessTokenSecret: "other"})
	token, _, err := other.generateAccessToken(&models.User{ID: "x", Username: "x", Role: models.RoleAdmin})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.True(t, errors.Is(err, appErrors.ErrUnauthorized))
}

func TestAuthServiceCreateAdmin(t *testing.T) {
	svc, repo, _ := newAuthFixture(t, true)

	_, err := svc.CreateAdmin(context.Background(), "ed", "short", "")
	assert.True(t, errors.Is(err, appErrors.ErrValidation))

	user, err := svc.CreateAdmin(context.Background(), "editor", "LongEnough1", models.RoleEditor)
	require.NoError(t, err)
	stored := repo.users[user.ID]
	require.NotNil(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("LongEnough1")))

	resp, err := svc.Login(context.Background(), models.LoginRequest{Username: "editor", Password: "LongEnough1"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleEditor, resp.User.Role)
}

package auth

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/fabtrack/shopfloor-backend-go/internal/domain/auth"
	"github.com/fabtrack/shopfloor-backend-go/internal/domain/user"
)

type fakeUserRepo struct {
	users         map[string]user.User
	updatedHashes map[string]string
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id, tenantID string) (user.User, error) {
	return user.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByUserID(ctx context.Context, id string) (user.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return user.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByEmployeeCode(ctx context.Context, employeeCode string) (user.User, error) {
	return user.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, tenantID, email string) (user.User, error) {
	return user.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByTenantID(ctx context.Context, tenantID string) ([]user.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) HasAny(ctx context.Context) (bool, error) {
	return len(f.users) > 0, nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, userID, passwordHash, updatedBy string) error {
	f.updatedHashes[userID] = passwordHash
	return nil
}

func (f *fakeUserRepo) UpdateRole(ctx context.Context, userID, tenantID string, role user.Role, updatedBy string) error {
	return nil
}

func authedContext(t *testing.T, userID string) context.Context {
	t.Helper()
	tok := jwt.New()
	require.NoError(t, tok.Set("tenant_id", "tenant-1"))
	require.NoError(t, tok.Set("user_id", userID))
	return jwtauth.NewContext(context.Background(), tok, nil)
}

func newChangePasswordFixture(t *testing.T, currentPassword string) (*AuthServiceImpl, *fakeUserRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(currentPassword), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepo{
		users: map[string]user.User{
			"user-1": {
				ID:           "user-1",
				TenantID:     "tenant-1",
				EmployeeCode: "ACME-0001",
				PasswordHash: string(hash),
				IsActive:     true,
			},
		},
		updatedHashes: map[string]string{},
	}
	return &AuthServiceImpl{UserRepository: repo}, repo
}

func TestChangePasswordRotatesHash(t *testing.T) {
	svc, repo := newChangePasswordFixture(t, "oldsecret1")

	err := svc.ChangePassword(authedContext(t, "user-1"), auth.ChangePasswordRequest{
		OldPassword: "oldsecret1",
		NewPassword: "newsecret1",
	})

	require.NoError(t, err)
	stored, ok := repo.updatedHashes["user-1"]
	require.True(t, ok)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("newsecret1")))
}

func TestChangePasswordRejectsWrongCurrentPassword(t *testing.T) {
	svc, repo := newChangePasswordFixture(t, "oldsecret1")

	err := svc.ChangePassword(authedContext(t, "user-1"), auth.ChangePasswordRequest{
		OldPassword: "not-the-password",
		NewPassword: "newsecret1",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	assert.Empty(t, repo.updatedHashes)
}

func TestChangePasswordRejectsReusedPassword(t *testing.T) {
	svc, repo := newChangePasswordFixture(t, "oldsecret1")

	err := svc.ChangePassword(authedContext(t, "user-1"), auth.ChangePasswordRequest{
		OldPassword: "oldsecret1",
		NewPassword: "oldsecret1",
	})

	assert.ErrorIs(t, err, auth.ErrSamePassword)
	assert.Empty(t, repo.updatedHashes)
}

func TestChangePasswordRejectsInactiveUser(t *testing.T) {
	svc, repo := newChangePasswordFixture(t, "oldsecret1")
	u := repo.users["user-1"]
	u.IsActive = false
	repo.users["user-1"] = u

	err := svc.ChangePassword(authedContext(t, "user-1"), auth.ChangePasswordRequest{
		OldPassword: "oldsecret1",
		NewPassword: "newsecret1",
	})

	assert.ErrorIs(t, err, user.ErrUserInactive)
}

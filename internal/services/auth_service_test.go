package services

import (
	"testing"

	"holdup_backend/internal/models"
	"holdup_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeAuthRepo struct {
	users []models.User
	roles []models.Role

	createUserErr error
}

func (f *fakeAuthRepo) CreateUser(_ repositories.SQLExecutor, user *models.User) (int64, error) {
	if f.createUserErr != nil {
		return 0, f.createUserErr
	}
	for _, u := range f.users {
		if u.Email == user.Email {
			return 0, repositories.ErrDuplicateKey
		}
	}
	user.ID = int64(len(f.users) + 1)
	f.users = append(f.users, *user)
	return user.ID, nil
}

func (f *fakeAuthRepo) GetUserByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeAuthRepo) GetUserByID(userID int64) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == userID {
			return &u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeAuthRepo) GetRoleByName(name string) (*models.Role, error) {
	for _, r := range f.roles {
		if r.Name == name {
			return &r, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func seedUser(t *testing.T, repo *fakeAuthRepo, email, password string, active bool) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		ID:           int64(len(repo.users) + 1),
		Name:         "Test User",
		Email:        email,
		PasswordHash: string(hash),
		RoleID:       1,
		IsActive:     active,
		Role:         &models.Role{ID: 1, Name: models.RoleStoreManager},
	}
	repo.users = append(repo.users, user)
	return user
}

func TestRegisterUser(t *testing.T) {
	db, _ := newMockDB(t)
	repo := &fakeAuthRepo{roles: []models.Role{{ID: 3, Name: models.RoleCashier}}}
	svc := NewAuthService(repo, db)

	user, err := svc.RegisterUser(RegisterUserRequest{
		Name:       "New Cashier",
		Email:      "cashier@example.com",
		Password:   "supersecret",
		RoleName:   models.RoleCashier,
		LocationID: int64Ptr(4),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(3), user.RoleID)
	assert.True(t, user.IsActive)
	require.NotNil(t, user.LocationID)
	assert.Equal(t, int64(4), *user.LocationID)
	// Stored hash verifies against the plaintext and is not the plaintext.
	assert.NotEqual(t, "supersecret", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("supersecret")))
}

func TestRegisterUser_UnknownRole(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewAuthService(&fakeAuthRepo{}, db)

	_, err := svc.RegisterUser(RegisterUserRequest{
		Name:     "X",
		Email:    "x@example.com",
		Password: "supersecret",
		RoleName: "Janitor",
	})
	assert.ErrorIs(t, err, ErrRoleNotFound)
}

func TestRegisterUser_DuplicateEmail(t *testing.T) {
	db, _ := newMockDB(t)
	repo := &fakeAuthRepo{roles: []models.Role{{ID: 1, Name: models.RoleStoreManager}}}
	seedUser(t, repo, "taken@example.com", "password123", true)
	svc := NewAuthService(repo, db)

	_, err := svc.RegisterUser(RegisterUserRequest{
		Name:     "X",
		Email:    "taken@example.com",
		Password: "supersecret",
		RoleName: models.RoleStoreManager,
	})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestLoginUser(t *testing.T) {
	db, _ := newMockDB(t)
	repo := &fakeAuthRepo{}
	seedUser(t, repo, "manager@example.com", "password123", true)
	svc := NewAuthService(repo, db)

	resp, err := svc.LoginUser(LoginRequest{Email: "manager@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "manager@example.com", resp.User.Email)
}

func TestLoginUser_WrongPassword(t *testing.T) {
	db, _ := newMockDB(t)
	repo := &fakeAuthRepo{}
	seedUser(t, repo, "manager@example.com", "password123", true)
	svc := NewAuthService(repo, db)

	_, err := svc.LoginUser(LoginRequest{Email: "manager@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUser_UnknownEmailIndistinguishable(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewAuthService(&fakeAuthRepo{}, db)

	// Unknown account and wrong password produce the same error kind.
	_, err := svc.LoginUser(LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUser_Inactive(t *testing.T) {
	db, _ := newMockDB(t)
	repo := &fakeAuthRepo{}
	seedUser(t, repo, "gone@example.com", "password123", false)
	svc := NewAuthService(repo, db)

	_, err := svc.LoginUser(LoginRequest{Email: "gone@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrUserInactive)
}

func TestRefreshToken(t *testing.T) {
	db, _ := newMockDB(t)
	repo := &fakeAuthRepo{}
	user := seedUser(t, repo, "manager@example.com", "password123", true)
	svc := NewAuthService(repo, db)

	login, err := svc.LoginUser(LoginRequest{Email: user.Email, Password: "password123"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(RefreshTokenRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, user.ID, refreshed.User.ID)
}

func TestRefreshToken_Garbage(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewAuthService(&fakeAuthRepo{}, db)

	_, err := svc.RefreshToken(RefreshTokenRequest{RefreshToken: "not-a-jwt"})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"holdup_backend/internal/models"

	"github.com/lib/pq"
)

// AuthRepository defines the interface for user and role database operations.
type AuthRepository interface {
	CreateUser(executor SQLExecutor, user *models.User) (int64, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(userID int64) (*models.User, error)
	GetRoleByName(name string) (*models.Role, error)
}

type authRepository struct {
	db *sql.DB
}

// NewAuthRepository creates a new instance of AuthRepository.
func NewAuthRepository(db *sql.DB) AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) CreateUser(executor SQLExecutor, user *models.User) (int64, error) {
	query := `INSERT INTO users (name, email, password_hash, role_id, location_id, is_active, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          RETURNING id`
	currentTime := time.Now()
	err := executor.QueryRow(query,
		user.Name, user.Email, user.PasswordHash, user.RoleID, user.LocationID,
		user.IsActive, currentTime, currentTime,
	).Scan(&user.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, fmt.Errorf("%w: user email '%s' already exists (constraint: %s)", ErrDuplicateKey, user.Email, pqErr.Constraint)
		}
		return 0, fmt.Errorf("%w: creating user: %v", ErrDatabaseError, err)
	}
	return user.ID, nil
}

func (r *authRepository) GetUserByEmail(email string) (*models.User, error) {
	user := &models.User{}
	role := &models.Role{}
	query := `SELECT u.id, u.name, u.email, u.password_hash, u.role_id, u.location_id,
	                 u.is_active, u.created_at, u.updated_at,
	                 r.id, r.name, r.description
	          FROM users u
	          JOIN roles r ON u.role_id = r.id
	          WHERE u.email = $1`
	err := r.db.QueryRow(query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.RoleID, &user.LocationID,
		&user.IsActive, &user.CreatedAt, &user.UpdatedAt,
		&role.ID, &role.Name, &role.Description,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting user by email: %v", ErrDatabaseError, err)
	}
	user.Role = role
	return user, nil
}

func (r *authRepository) GetUserByID(userID int64) (*models.User, error) {
	user := &models.User{}
	role := &models.Role{}
	query := `SELECT u.id, u.name, u.email, u.password_hash, u.role_id, u.location_id,
	                 u.is_active, u.created_at, u.updated_at,
	                 r.id, r.name, r.description
	          FROM users u
	          JOIN roles r ON u.role_id = r.id
	          WHERE u.id = $1`
	err := r.db.QueryRow(query, userID).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.RoleID, &user.LocationID,
		&user.IsActive, &user.CreatedAt, &user.UpdatedAt,
		&role.ID, &role.Name, &role.Description,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting user by ID %d: %v", ErrDatabaseError, userID, err)
	}
	user.Role = role
	return user, nil
}

func (r *authRepository) GetRoleByName(name string) (*models.Role, error) {
	role := &models.Role{}
	query := `SELECT id, name, description, created_at, updated_at FROM roles WHERE name = $1`
	err := r.db.QueryRow(query, name).Scan(&role.ID, &role.Name, &role.Description, &role.CreatedAt, &role.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting role by name '%s': %v", ErrDatabaseError, name, err)
	}
	return role, nil
}

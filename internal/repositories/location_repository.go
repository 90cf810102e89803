package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"holdup_backend/internal/models"

	"github.com/lib/pq"
)

// LocationRepository defines the interface for location database operations.
type LocationRepository interface {
	CreateLocation(executor SQLExecutor, location *models.Location) (int64, error)
	GetLocationByID(id int64) (*models.Location, error)
	GetLocations() ([]models.Location, error)
	// FindFulfillmentLocation picks the default webhook fulfillment site:
	// the lowest-id Warehouse, falling back to the lowest-id location of any
	// type. Returns ErrNotFound when no locations exist at all.
	FindFulfillmentLocation(executor SQLExecutor) (*models.Location, error)
}

type locationRepository struct {
	db *sql.DB
}

// NewLocationRepository creates a new instance of LocationRepository.
func NewLocationRepository(db *sql.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) CreateLocation(executor SQLExecutor, location *models.Location) (int64, error) {
	query := `INSERT INTO locations (name, type, address, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`
	currentTime := time.Now()
	err := executor.QueryRow(query, location.Name, location.Type, location.Address, currentTime, currentTime).Scan(&location.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return 0, fmt.Errorf("%w: location name '%s' already exists (constraint: %s)", ErrDuplicateKey, location.Name, pqErr.Constraint)
		}
		return 0, fmt.Errorf("%w: creating location: %v", ErrDatabaseError, err)
	}
	return location.ID, nil
}

func (r *locationRepository) GetLocationByID(id int64) (*models.Location, error) {
	location := &models.Location{}
	query := `SELECT id, name, type, address, created_at, updated_at FROM locations WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(
		&location.ID, &location.Name, &location.Type, &location.Address,
		&location.CreatedAt, &location.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting location by ID %d: %v", ErrDatabaseError, id, err)
	}
	return location, nil
}

func (r *locationRepository) GetLocations() ([]models.Location, error) {
	locations := []models.Location{}
	query := `SELECT id, name, type, address, created_at, updated_at FROM locations ORDER BY name`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying locations: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var l models.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Type, &l.Address, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning location: %v", ErrDatabaseError, err)
		}
		locations = append(locations, l)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating location rows: %v", ErrDatabaseError, err)
	}
	return locations, nil
}

func (r *locationRepository) FindFulfillmentLocation(executor SQLExecutor) (*models.Location, error) {
	location := &models.Location{}
	query := `SELECT id, name, type, address, created_at, updated_at FROM locations
	          ORDER BY (type != $1), id
	          LIMIT 1`
	err := executor.QueryRow(query, models.LocationTypeWarehouse).Scan(
		&location.ID, &location.Name, &location.Type, &location.Address,
		&location.CreatedAt, &location.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: finding fulfillment location: %v", ErrDatabaseError, err)
	}
	return location, nil
}

package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"holdup_backend/internal/models"
	"holdup_backend/internal/repositories"
	"holdup_backend/pkg/utils"
)

// CreateLocationRequest is the location creation payload.
type CreateLocationRequest struct {
	Name    string  `json:"name" binding:"required"`
	Type    string  `json:"type" binding:"required"`
	Address *string `json:"address"`
}

// --- LocationService Interface ---

type LocationService interface {
	CreateLocation(req CreateLocationRequest) (*models.Location, error)
	GetLocations() ([]models.Location, error)
}

type locationService struct {
	locationRepo repositories.LocationRepository
	db           *sql.DB
}

// NewLocationService creates a new instance of LocationService.
func NewLocationService(lr repositories.LocationRepository, db *sql.DB) LocationService {
	return &locationService{locationRepo: lr, db: db}
}

func (s *locationService) CreateLocation(req CreateLocationRequest) (*models.Location, error) {
	if utils.IsEmpty(req.Name) {
		return nil, fmt.Errorf("%w: location name is required", ErrValidation)
	}
	switch req.Type {
	case models.LocationTypeWarehouse, models.LocationTypeStore, models.LocationTypeExhibition:
	default:
		return nil, fmt.Errorf("%w: unknown location type '%s'", ErrValidation, req.Type)
	}

	location := &models.Location{
		Name:    strings.TrimSpace(req.Name),
		Type:    req.Type,
		Address: req.Address,
	}
	if _, err := s.locationRepo.CreateLocation(s.db, location); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: location name '%s' already exists", ErrValidation, location.Name)
		}
		return nil, fmt.Errorf("failed to create location: %w", err)
	}
	return location, nil
}

func (s *locationService) GetLocations() ([]models.Location, error) {
	locations, err := s.locationRepo.GetLocations()
	if err != nil {
		return nil, fmt.Errorf("failed to get locations: %w", err)
	}
	return locations, nil
}

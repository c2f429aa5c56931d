package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"matcha-budget/internal/dto"
	"matcha-budget/internal/models"
	"matcha-budget/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrLocationNotFound = errors.New("location not found")

type LocationService struct {
	locationRepo *repository.LocationRepository
	logger       *zap.Logger
}

func NewLocationService(locationRepo *repository.LocationRepository, logger *zap.Logger) *LocationService {
	return &LocationService{
		locationRepo: locationRepo,
		logger:       logger,
	}
}

// Create stores a new cafe location. A client-proposed ID that already
// exists replaces the stored record; location creates never conflict.
func (s *LocationService) Create(ctx context.Context, req *dto.LocationCreateRequest) (*dto.LocationResponse, error) {
	id := uuid.New()
	if req.ID != nil {
		parsed, err := uuid.Parse(*req.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: id must be a valid UUID", ErrValidation)
		}
		id = parsed
	}

	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if req.Street == "" {
		return nil, fmt.Errorf("%w: street is required", ErrValidation)
	}
	if req.City == "" {
		return nil, fmt.Errorf("%w: city is required", ErrValidation)
	}
	if req.Country == "" {
		return nil, fmt.Errorf("%w: country is required", ErrValidation)
	}

	now := time.Now().UTC()
	location := models.Location{
		ID:         id,
		Name:       req.Name,
		Street:     req.Street,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		BestDrink:  req.BestDrink,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.locationRepo.Save(ctx, location); err != nil {
		return nil, err
	}

	s.logger.Info("Location created", zap.String("id", location.ID.String()))
	resp := toLocationResponse(location)
	return &resp, nil
}

// List returns the locations matching every supplied filter, in
// insertion order.
func (s *LocationService) List(ctx context.Context, filter *dto.LocationFilter) ([]dto.LocationResponse, error) {
	locations, err := s.locationRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]dto.LocationResponse, 0, len(locations))
	for _, location := range locations {
		if !matchesLocation(location, filter) {
			continue
		}
		results = append(results, toLocationResponse(location))
	}
	return results, nil
}

func (s *LocationService) Get(ctx context.Context, id uuid.UUID) (*dto.LocationResponse, error) {
	location, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}

	resp := toLocationResponse(location)
	return &resp, nil
}

// Update merges the non-nil fields of req over the stored record and
// refreshes updated_at. Omitted fields keep their stored value.
func (s *LocationService) Update(ctx context.Context, id uuid.UUID, req *dto.LocationUpdateRequest) (*dto.LocationResponse, error) {
	location, err := s.locationRepo.Update(ctx, id, func(l *models.Location) {
		if req.Name != nil {
			l.Name = *req.Name
		}
		if req.Street != nil {
			l.Street = *req.Street
		}
		if req.City != nil {
			l.City = *req.City
		}
		if req.State != nil {
			l.State = *req.State
		}
		if req.PostalCode != nil {
			l.PostalCode = *req.PostalCode
		}
		if req.Country != nil {
			l.Country = *req.Country
		}
		if req.BestDrink != nil {
			l.BestDrink = *req.BestDrink
		}
		l.UpdatedAt = time.Now().UTC()
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}

	s.logger.Info("Location updated", zap.String("id", id.String()))
	resp := toLocationResponse(location)
	return &resp, nil
}

func (s *LocationService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.locationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrLocationNotFound
		}
		return err
	}

	s.logger.Info("Location deleted", zap.String("id", id.String()))
	return nil
}

func matchesLocation(l models.Location, f *dto.LocationFilter) bool {
	if f == nil {
		return true
	}
	if f.Name != nil && l.Name != *f.Name {
		return false
	}
	if f.Street != nil && l.Street != *f.Street {
		return false
	}
	if f.City != nil && l.City != *f.City {
		return false
	}
	if f.State != nil && l.State != *f.State {
		return false
	}
	if f.PostalCode != nil && l.PostalCode != *f.PostalCode {
		return false
	}
	if f.Country != nil && l.Country != *f.Country {
		return false
	}
	if f.BestDrink != nil && l.BestDrink != *f.BestDrink {
		return false
	}
	return true
}

func toLocationResponse(l models.Location) dto.LocationResponse {
	return dto.LocationResponse{
		ID:         l.ID.String(),
		Name:       l.Name,
		Street:     l.Street,
		City:       l.City,
		State:      l.State,
		PostalCode: l.PostalCode,
		Country:    l.Country,
		BestDrink:  l.BestDrink,
		CreatedAt:  l.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:  l.UpdatedAt.Format(time.RFC3339Nano),
	}
}

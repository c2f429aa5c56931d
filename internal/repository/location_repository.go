package repository

import (
	"context"
	"sync"

	"matcha-budget/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LocationRepository keeps the cafe-location collection in process
// memory. Unlike expenses, storing a location with an existing ID
// replaces the stored record in place, keeping its insertion position.
type LocationRepository struct {
	mu        sync.Mutex
	locations map[uuid.UUID]models.Location
	order     []uuid.UUID
	logger    *zap.Logger
}

func NewLocationRepository(logger *zap.Logger) *LocationRepository {
	return &LocationRepository{
		locations: make(map[uuid.UUID]models.Location),
		logger:    logger,
	}
}

func (r *LocationRepository) Save(ctx context.Context, location models.Location) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.locations[location.ID]; !ok {
		r.order = append(r.order, location.ID)
	}
	r.locations[location.ID] = location

	r.logger.Debug("Location stored", zap.String("id", location.ID.String()))
	return nil
}

// List returns every location in insertion order.
func (r *LocationRepository) List(ctx context.Context) ([]models.Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	locations := make([]models.Location, 0, len(r.order))
	for _, id := range r.order {
		locations = append(locations, r.locations[id])
	}
	return locations, nil
}

func (r *LocationRepository) GetByID(ctx context.Context, id uuid.UUID) (models.Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	location, ok := r.locations[id]
	if !ok {
		return models.Location{}, ErrNotFound
	}
	return location, nil
}

// Update applies mutate to the stored record under the repository lock
// and returns the result. The record's ID must not be changed by mutate.
func (r *LocationRepository) Update(ctx context.Context, id uuid.UUID, mutate func(*models.Location)) (models.Location, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	location, ok := r.locations[id]
	if !ok {
		return models.Location{}, ErrNotFound
	}

	mutate(&location)
	r.locations[id] = location
	return location, nil
}

func (r *LocationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.locations[id]; !ok {
		return ErrNotFound
	}

	delete(r.locations, id)
	for i, storedID := range r.order {
		if storedID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	r.logger.Debug("Location deleted", zap.String("id", id.String()))
	return nil
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"matcha-budget/internal/dto"
	"matcha-budget/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newLocationService() *LocationService {
	logger := zap.NewNop()
	return NewLocationService(repository.NewLocationRepository(logger), logger)
}

func validLocationCreate() *dto.LocationCreateRequest {
	return &dto.LocationCreateRequest{
		Name:       "Sorate",
		Street:     "103 Sullivan St",
		City:       "New York",
		State:      "NY",
		PostalCode: "10012",
		Country:    "USA",
		BestDrink:  "Lavender lemon matcha w/ honey",
	}
}

func TestLocationService_CreateAndGet(t *testing.T) {
	svc := newLocationService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validLocationCreate())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.CreatedAt != created.UpdatedAt {
		t.Errorf("created_at %q != updated_at %q on a fresh record", created.CreatedAt, created.UpdatedAt)
	}

	fetched, err := svc.Get(ctx, uuid.MustParse(created.ID))
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if *fetched != *created {
		t.Errorf("Get = %+v, want %+v", *fetched, *created)
	}
}

func TestLocationService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.LocationCreateRequest)
	}{
		{
			name:   "missing name",
			mutate: func(r *dto.LocationCreateRequest) { r.Name = "" },
		},
		{
			name:   "missing street",
			mutate: func(r *dto.LocationCreateRequest) { r.Street = "" },
		},
		{
			name:   "missing city",
			mutate: func(r *dto.LocationCreateRequest) { r.City = "" },
		},
		{
			name:   "missing country",
			mutate: func(r *dto.LocationCreateRequest) { r.Country = "" },
		},
		{
			name:   "malformed id",
			mutate: func(r *dto.LocationCreateRequest) { r.ID = strPtr("not-a-uuid") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newLocationService()

			req := validLocationCreate()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			if !errors.Is(err, ErrValidation) {
				t.Errorf("Create = %v, want ErrValidation", err)
			}
		})
	}
}

func TestLocationService_Create_SameIDNeverConflicts(t *testing.T) {
	svc := newLocationService()
	ctx := context.Background()

	req := validLocationCreate()
	req.ID = strPtr("11111111-1111-4111-8111-111111111111")
	if _, err := svc.Create(ctx, req); err != nil {
		t.Fatalf("first Create returned error: %v", err)
	}

	replacement := validLocationCreate()
	replacement.ID = req.ID
	replacement.Name = "Isshiki"
	if _, err := svc.Create(ctx, replacement); err != nil {
		t.Fatalf("second Create with same ID returned error: %v", err)
	}

	locations, err := svc.List(ctx, nil)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(locations) != 1 {
		t.Fatalf("List returned %d records, want 1", len(locations))
	}
	if locations[0].Name != "Isshiki" {
		t.Errorf("Name = %q, want %q", locations[0].Name, "Isshiki")
	}
}

func TestLocationService_Update_PartialMerge(t *testing.T) {
	svc := newLocationService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validLocationCreate())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	id := uuid.MustParse(created.ID)

	time.Sleep(2 * time.Millisecond)

	updated, err := svc.Update(ctx, id, &dto.LocationUpdateRequest{
		City: strPtr("Boston"),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if updated.City != "Boston" {
		t.Errorf("City = %q, want %q", updated.City, "Boston")
	}
	if updated.Name != "Sorate" {
		t.Errorf("Name = %q, want untouched %q", updated.Name, "Sorate")
	}
	if updated.BestDrink != created.BestDrink {
		t.Errorf("BestDrink = %q, want untouched %q", updated.BestDrink, created.BestDrink)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, updated.CreatedAt)
	if err != nil {
		t.Fatalf("parsing created_at: %v", err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, updated.UpdatedAt)
	if err != nil {
		t.Fatalf("parsing updated_at: %v", err)
	}
	if !updatedAt.After(createdAt) {
		t.Errorf("updated_at %q does not strictly increase over created_at %q", updated.UpdatedAt, updated.CreatedAt)
	}
}

func TestLocationService_UnknownID(t *testing.T) {
	svc := newLocationService()
	ctx := context.Background()
	id := uuid.New()

	if _, err := svc.Get(ctx, id); !errors.Is(err, ErrLocationNotFound) {
		t.Errorf("Get = %v, want ErrLocationNotFound", err)
	}
	if _, err := svc.Update(ctx, id, &dto.LocationUpdateRequest{}); !errors.Is(err, ErrLocationNotFound) {
		t.Errorf("Update = %v, want ErrLocationNotFound", err)
	}
	if err := svc.Delete(ctx, id); !errors.Is(err, ErrLocationNotFound) {
		t.Errorf("Delete = %v, want ErrLocationNotFound", err)
	}
}

func TestLocationService_List_Filters(t *testing.T) {
	svc := newLocationService()
	ctx := context.Background()

	sorate := validLocationCreate()
	isshiki := &dto.LocationCreateRequest{
		Name:       "Isshiki",
		Street:     "183 Grand Street",
		City:       "New York",
		State:      "NY",
		PostalCode: "10013",
		Country:    "USA",
		BestDrink:  "Matcha latte",
	}
	kyoto := &dto.LocationCreateRequest{
		Name:    "Ippodo",
		Street:  "Teramachi Nijo",
		City:    "Kyoto",
		Country: "Japan",
	}
	for _, req := range []*dto.LocationCreateRequest{sorate, isshiki, kyoto} {
		if _, err := svc.Create(ctx, req); err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
	}

	tests := []struct {
		name      string
		filter    *dto.LocationFilter
		wantNames []string
	}{
		{
			name:      "no filters returns all in insertion order",
			filter:    nil,
			wantNames: []string{"Sorate", "Isshiki", "Ippodo"},
		},
		{
			name:      "city filter",
			filter:    &dto.LocationFilter{City: strPtr("New York")},
			wantNames: []string{"Sorate", "Isshiki"},
		},
		{
			name:      "country filter",
			filter:    &dto.LocationFilter{Country: strPtr("Japan")},
			wantNames: []string{"Ippodo"},
		},
		{
			name: "city and name filters are conjunctive",
			filter: &dto.LocationFilter{
				City: strPtr("New York"),
				Name: strPtr("Isshiki"),
			},
			wantNames: []string{"Isshiki"},
		},
		{
			name:      "empty-string filter is distinct from absent",
			filter:    &dto.LocationFilter{State: strPtr("")},
			wantNames: []string{"Ippodo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := svc.List(ctx, tt.filter)
			if err != nil {
				t.Fatalf("List returned error: %v", err)
			}
			if len(results) != len(tt.wantNames) {
				t.Fatalf("List returned %d records, want %d", len(results), len(tt.wantNames))
			}
			for i, want := range tt.wantNames {
				if results[i].Name != want {
					t.Errorf("results[%d].Name = %q, want %q", i, results[i].Name, want)
				}
			}
		})
	}
}

package people

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/one-on-one-manager/internal/usecase/errors"
)

// Service defines the interface for the people use case
type Service interface {
	List(ctx context.Context, filters repositories.PersonFilters) ([]*PersonWithStats, error)
	Get(ctx context.Context, ownerID, id uint) (*PersonWithStats, error)
	Create(ctx context.Context, ownerID uint, input CreateInput) (*PersonWithStats, error)
	Update(ctx context.Context, ownerID, id uint, input UpdateInput) (*PersonWithStats, error)

	// Delete deactivates the person, or removes them with their history when hard is set
	Delete(ctx context.Context, ownerID, id uint, hard bool) error
}

// Ensure PeopleService implements Service interface
var _ Service = (*PeopleService)(nil)

// PersonWithStats is a person with read-time aggregates
type PersonWithStats struct {
	*entities.Person
	Stats repositories.PersonStats
}

// CreateInput represents input for creating a person
type CreateInput struct {
	Name       string
	Role       *string
	Department *string
	Email      *string
	StartDate  *time.Time
	Notes      *string
	PersonType entities.PersonType
}

// UpdateInput holds the fields to change. Nil means unchanged.
type UpdateInput struct {
	Name       *string
	Role       *string
	Department *string
	Email      *string
	StartDate  *time.Time
	Notes      *string
	PersonType *entities.PersonType
	IsActive   *bool
}

// PeopleService handles people business logic
type PeopleService struct {
	personRepo repositories.PersonRepository
}

// NewPeopleService creates a new people service
func NewPeopleService(personRepo repositories.PersonRepository) *PeopleService {
	return &PeopleService{personRepo: personRepo}
}

// List retrieves people with their aggregates
func (s *PeopleService) List(ctx context.Context, filters repositories.PersonFilters) ([]*PersonWithStats, error) {
	people, err := s.personRepo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	return s.withStats(ctx, people)
}

// Get retrieves a person, active or not
func (s *PeopleService) Get(ctx context.Context, ownerID, id uint) (*PersonWithStats, error) {
	person, err := s.find(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return s.one(ctx, person)
}

// Create creates a new active person
func (s *PeopleService) Create(ctx context.Context, ownerID uint, input CreateInput) (*PersonWithStats, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, usecaseErrors.ErrInvalidInput
	}
	personType := input.PersonType
	if personType == "" {
		personType = entities.PersonTypeEmployee
	}
	if !personType.IsValid() {
		return nil, entities.ErrInvalidPersonType
	}

	person := &entities.Person{
		UserID:     &ownerID,
		Name:       name,
		Role:       input.Role,
		Department: input.Department,
		Email:      input.Email,
		StartDate:  input.StartDate,
		Notes:      input.Notes,
		PersonType: personType,
		IsActive:   true,
	}
	if err := s.personRepo.Create(ctx, person); err != nil {
		return nil, fmt.Errorf("failed to create person: %w", err)
	}

	return &PersonWithStats{Person: person}, nil
}

// Update applies the provided fields
func (s *PeopleService) Update(ctx context.Context, ownerID, id uint, input UpdateInput) (*PersonWithStats, error) {
	person, err := s.find(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, usecaseErrors.ErrInvalidInput
		}
		person.Name = name
	}
	if input.Role != nil {
		person.Role = input.Role
	}
	if input.Department != nil {
		person.Department = input.Department
	}
	if input.Email != nil {
		person.Email = input.Email
	}
	if input.StartDate != nil {
		person.StartDate = input.StartDate
	}
	if input.Notes != nil {
		person.Notes = input.Notes
	}
	if input.PersonType != nil {
		if !input.PersonType.IsValid() {
			return nil, entities.ErrInvalidPersonType
		}
		person.PersonType = *input.PersonType
	}
	if input.IsActive != nil {
		person.IsActive = *input.IsActive
	}

	if err := s.personRepo.Update(ctx, person); err != nil {
		return nil, fmt.Errorf("failed to update person: %w", err)
	}
	return s.one(ctx, person)
}

// Delete soft or hard deletes a person
func (s *PeopleService) Delete(ctx context.Context, ownerID, id uint, hard bool) error {
	if _, err := s.find(ctx, ownerID, id); err != nil {
		return err
	}

	if hard {
		if err := s.personRepo.HardDelete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete person: %w", err)
		}
		return nil
	}

	if err := s.personRepo.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("failed to deactivate person: %w", err)
	}
	return nil
}

func (s *PeopleService) find(ctx context.Context, ownerID, id uint) (*entities.Person, error) {
	person, err := s.personRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return nil, usecaseErrors.ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to get person: %w", err)
	}
	return person, nil
}

func (s *PeopleService) one(ctx context.Context, person *entities.Person) (*PersonWithStats, error) {
	rows, err := s.withStats(ctx, []*entities.Person{person})
	if err != nil {
		return nil, err
	}
	return rows[0], nil
}

func (s *PeopleService) withStats(ctx context.Context, people []*entities.Person) ([]*PersonWithStats, error) {
	ids := make([]uint, 0, len(people))
	for _, p := range people {
		ids = append(ids, p.ID)
	}

	stats, err := s.personRepo.Stats(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to compute person stats: %w", err)
	}

	rows := make([]*PersonWithStats, 0, len(people))
	for _, p := range people {
		rows = append(rows, &PersonWithStats{Person: p, Stats: stats[p.ID]})
	}
	return rows, nil
}

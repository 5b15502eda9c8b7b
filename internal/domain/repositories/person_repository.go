package repositories

import (
	"context"
	"time"

	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
)

// PersonRepository defines the interface for people data access
type PersonRepository interface {
	Create(ctx context.Context, person *entities.Person) error

	// FindByID returns the person owned by ownerID, active or not
	FindByID(ctx context.Context, ownerID, id uint) (*entities.Person, error)

	Update(ctx context.Context, person *entities.Person) error

	// Deactivate flips is_active off
	Deactivate(ctx context.Context, id uint) error

	// HardDelete removes the person with their meetings and tasks and
	// unlinks quick notes that referenced them
	HardDelete(ctx context.Context, id uint) error

	List(ctx context.Context, filters PersonFilters) ([]*entities.Person, error)

	// ListByOwner returns every person of ownerID including inactive ones
	ListByOwner(ctx context.Context, ownerID uint) ([]*entities.Person, error)

	// ListIdentities returns id, owner and name of every person in the store
	ListIdentities(ctx context.Context) ([]PersonIdentity, error)

	// Stats computes read-time aggregates for the given people
	Stats(ctx context.Context, ids []uint) (map[uint]PersonStats, error)
}

// PersonFilters represents filter options for listing people
type PersonFilters struct {
	OwnerID    uint
	ActiveOnly bool
	PersonType *entities.PersonType
	Search     string // name, role, department
	Limit      int
	Offset     int
}

// PersonIdentity is the slice of a person row needed for name matching
type PersonIdentity struct {
	ID     uint
	UserID *uint
	Name   string
}

// PersonStats are derived per-person values shown in listings
type PersonStats struct {
	MeetingCount            int64
	LastMeetingDate         *time.Time
	PendingDiscussionTopics int64
}

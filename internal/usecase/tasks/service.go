package tasks

import (
	"context"
	"time"

	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/repositories"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/attribution"
)

// Service defines the interface for the task use case
type Service interface {
	// List returns a page of tasks with status counts over every match
	List(ctx context.Context, filters repositories.TaskFilters) ([]*entities.Task, repositories.TaskCounts, error)

	// My returns the owner's personal tasks
	My(ctx context.Context, ownerID uint, status *entities.Status) ([]*entities.Task, error)

	// DiscussWith returns what to raise with a person, by exact person id
	DiscussWith(ctx context.Context, ownerID, personID uint, includeCompleted bool) ([]*entities.Task, error)

	// Today returns open tasks due by the end of today, overdue included
	Today(ctx context.Context, ownerID uint) ([]*entities.Task, error)

	// AssignedToMe returns tasks other users created about the caller
	AssignedToMe(ctx context.Context, userID uint, includeCompleted bool) ([]attribution.AssignedTask, error)

	Get(ctx context.Context, ownerID, id uint) (*entities.Task, error)
	Create(ctx context.Context, ownerID uint, input CreateInput) (*entities.Task, error)

	// CreateBulk validates every task like Create and stores all or none
	CreateBulk(ctx context.Context, ownerID uint, inputs []CreateInput) ([]*entities.Task, error)
	Update(ctx context.Context, ownerID, id uint, input UpdateInput) (*entities.Task, error)
	Complete(ctx context.Context, ownerID, id uint) (*entities.Task, error)
	Delete(ctx context.Context, ownerID, id uint) error
}

// Ensure TaskService implements Service interface
var _ Service = (*TaskService)(nil)

// CreateInput represents input for creating a task
type CreateInput struct {
	Title       string
	Description *string
	TaskType    entities.TaskType
	Priority    entities.Priority
	Status      entities.Status
	PersonID    *uint
	MeetingID   *uint
	DueDate     *time.Time
}

// UpdateInput holds the task fields to change. Nil means unchanged.
type UpdateInput struct {
	Title       *string
	Description *string
	TaskType    *entities.TaskType
	Priority    *entities.Priority
	Status      *entities.Status
	PersonID    *uint
	MeetingID   *uint
	DueDate     *time.Time
}

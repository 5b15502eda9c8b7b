package repositories

import (
	"context"
	"time"

	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	Create(ctx context.Context, task *entities.Task) error
	CreateBatch(ctx context.Context, tasks []*entities.Task) error
	FindByID(ctx context.Context, ownerID, id uint) (*entities.Task, error)
	Update(ctx context.Context, task *entities.Task) error
	Delete(ctx context.Context, id uint) error

	// List returns a page of tasks plus status counts over the whole filtered set
	List(ctx context.Context, filters TaskFilters) ([]*entities.Task, TaskCounts, error)

	// ListPersonal returns personal tasks, due date ascending with undated last
	ListPersonal(ctx context.Context, ownerID uint, status *entities.Status) ([]*entities.Task, error)

	// ListDiscussWith returns discuss_with tasks for one person
	ListDiscussWith(ctx context.Context, ownerID, personID uint, includeCompleted bool) ([]*entities.Task, error)

	// ListDueBefore returns open tasks due strictly before the cutoff
	ListDueBefore(ctx context.Context, ownerID uint, cutoff time.Time) ([]*entities.Task, error)

	// ListForPeopleByOthers returns tasks linked to personIDs whose owner is
	// set and differs from excludeOwner. Person and creator are preloaded.
	ListForPeopleByOthers(ctx context.Context, personIDs []uint, excludeOwner uint, includeCompleted bool) ([]*entities.Task, error)
}

// TaskFilters represents filter options for listing tasks
type TaskFilters struct {
	OwnerID  uint
	TaskType *entities.TaskType
	Status   *entities.Status
	Priority *entities.Priority
	PersonID *uint
	Limit    int
	Offset   int
}

// TaskCounts summarizes a filtered task set
type TaskCounts struct {
	Total      int64
	Pending    int64
	InProgress int64
	Completed  int64
}

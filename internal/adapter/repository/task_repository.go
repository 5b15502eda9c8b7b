package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/repositories"
)

const (
	priorityOrder = "CASE tasks.priority WHEN 'high' THEN 3 WHEN 'medium' THEN 2 WHEN 'low' THEN 1 ELSE 0 END DESC"
	undatedLast   = "CASE WHEN tasks.due_date IS NULL THEN 1 ELSE 0 END"
)

// taskRepository implements the TaskRepository interface
type taskRepository struct {
	base
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &taskRepository{base{db: db}}
}

// Create creates a new task
func (r *taskRepository) Create(ctx context.Context, task *entities.Task) error {
	return r.conn(ctx).Omit(clause.Associations).Create(task).Error
}

// CreateBatch inserts all tasks in a single statement
func (r *taskRepository) CreateBatch(ctx context.Context, tasks []*entities.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	return r.conn(ctx).Omit(clause.Associations).Create(&tasks).Error
}

// FindByID retrieves a task with its person
func (r *taskRepository) FindByID(ctx context.Context, ownerID, id uint) (*entities.Task, error) {
	var task entities.Task
	err := r.conn(ctx).
		Preload("Person").
		Scopes(ownedBy("tasks", ownerID)).
		Where("tasks.id = ?", id).
		First(&task).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &task, nil
}

// Update saves the task columns
func (r *taskRepository) Update(ctx context.Context, task *entities.Task) error {
	return r.conn(ctx).Omit(clause.Associations).Save(task).Error
}

// Delete removes a task
func (r *taskRepository) Delete(ctx context.Context, id uint) error {
	return r.conn(ctx).Delete(&entities.Task{}, id).Error
}

// List retrieves a page of tasks newest first, with counts over the filtered set
func (r *taskRepository) List(ctx context.Context, filters repositories.TaskFilters) ([]*entities.Task, repositories.TaskCounts, error) {
	var counts repositories.TaskCounts

	filtered := func() *gorm.DB {
		query := r.conn(ctx).Model(&entities.Task{}).Scopes(ownedBy("tasks", filters.OwnerID))
		if filters.TaskType != nil {
			query = query.Where("tasks.task_type = ?", *filters.TaskType)
		}
		if filters.Status != nil {
			query = query.Where("tasks.status = ?", *filters.Status)
		}
		if filters.Priority != nil {
			query = query.Where("tasks.priority = ?", *filters.Priority)
		}
		if filters.PersonID != nil {
			query = query.Where("tasks.person_id = ?", *filters.PersonID)
		}
		return query
	}

	var byStatus []struct {
		Status entities.Status
		Count  int64
	}
	if err := filtered().Select("status, COUNT(*) AS count").Group("status").Scan(&byStatus).Error; err != nil {
		return nil, counts, fmt.Errorf("failed to count tasks: %w", err)
	}
	for _, row := range byStatus {
		counts.Total += row.Count
		switch row.Status {
		case entities.StatusPending:
			counts.Pending = row.Count
		case entities.StatusInProgress:
			counts.InProgress = row.Count
		case entities.StatusCompleted:
			counts.Completed = row.Count
		}
	}

	var tasks []*entities.Task
	err := filtered().
		Preload("Person").
		Order("tasks.created_at DESC").Order("tasks.id DESC").
		Offset(filters.Offset).
		Limit(filters.Limit).
		Find(&tasks).Error
	if err != nil {
		return nil, counts, err
	}
	return tasks, counts, nil
}

// ListPersonal returns the owner's personal tasks
func (r *taskRepository) ListPersonal(ctx context.Context, ownerID uint, status *entities.Status) ([]*entities.Task, error) {
	query := r.conn(ctx).
		Scopes(ownedBy("tasks", ownerID)).
		Where("tasks.task_type = ?", entities.TaskTypePersonal)
	if status != nil {
		query = query.Where("tasks.status = ?", *status)
	}

	var tasks []*entities.Task
	err := query.
		Order(undatedLast).
		Order("tasks.due_date ASC").
		Order("tasks.created_at DESC").Order("tasks.id DESC").
		Find(&tasks).Error
	return tasks, err
}

// ListDiscussWith returns topics to raise with one person, most urgent first
func (r *taskRepository) ListDiscussWith(ctx context.Context, ownerID, personID uint, includeCompleted bool) ([]*entities.Task, error) {
	query := r.conn(ctx).
		Preload("Person").
		Scopes(ownedBy("tasks", ownerID)).
		Where("tasks.task_type = ? AND tasks.person_id = ?", entities.TaskTypeDiscussWith, personID)
	if !includeCompleted {
		query = query.Where("tasks.status <> ?", entities.StatusCompleted)
	}

	var tasks []*entities.Task
	err := query.
		Order(priorityOrder).
		Order("tasks.created_at DESC").Order("tasks.id DESC").
		Find(&tasks).Error
	return tasks, err
}

// ListDueBefore returns open tasks due strictly before cutoff
func (r *taskRepository) ListDueBefore(ctx context.Context, ownerID uint, cutoff time.Time) ([]*entities.Task, error) {
	var tasks []*entities.Task
	err := r.conn(ctx).
		Preload("Person").
		Scopes(ownedBy("tasks", ownerID)).
		Where("tasks.status IN ?", []entities.Status{entities.StatusPending, entities.StatusInProgress}).
		Where("tasks.due_date IS NOT NULL AND tasks.due_date < ?", cutoff).
		Order("tasks.due_date ASC").Order("tasks.id ASC").
		Find(&tasks).Error
	return tasks, err
}

// ListForPeopleByOthers returns tasks on personIDs created by someone other than excludeOwner
func (r *taskRepository) ListForPeopleByOthers(ctx context.Context, personIDs []uint, excludeOwner uint, includeCompleted bool) ([]*entities.Task, error) {
	if len(personIDs) == 0 {
		return nil, nil
	}

	query := r.conn(ctx).
		Preload("Person").
		Preload("User").
		Where("tasks.person_id IN ?", personIDs).
		Where("tasks.user_id IS NOT NULL AND tasks.user_id <> ?", excludeOwner)
	if !includeCompleted {
		query = query.Where("tasks.status <> ?", entities.StatusCompleted)
	}

	var tasks []*entities.Task
	err := query.Order("tasks.id ASC").Find(&tasks).Error
	return tasks, err
}

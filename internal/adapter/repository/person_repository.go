package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/repositories"
	"github.com/johnquangdev/one-on-one-manager/internal/infrastructure/database"
)

// personRepository implements the PersonRepository interface
type personRepository struct {
	base
}

// NewPersonRepository creates a new person repository
func NewPersonRepository(db *gorm.DB) repositories.PersonRepository {
	return &personRepository{base{db: db}}
}

// Create creates a new person
func (r *personRepository) Create(ctx context.Context, person *entities.Person) error {
	return r.conn(ctx).Create(person).Error
}

// FindByID retrieves a person by ID, including inactive ones
func (r *personRepository) FindByID(ctx context.Context, ownerID, id uint) (*entities.Person, error) {
	var person entities.Person
	err := r.conn(ctx).
		Scopes(ownedBy("employees", ownerID)).
		Where("id = ?", id).
		First(&person).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &person, nil
}

// Update updates an existing person
func (r *personRepository) Update(ctx context.Context, person *entities.Person) error {
	return r.conn(ctx).Save(person).Error
}

// Deactivate soft deletes a person
func (r *personRepository) Deactivate(ctx context.Context, id uint) error {
	return r.conn(ctx).Model(&entities.Person{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

// HardDelete removes the person and everything hanging off them
func (r *personRepository) HardDelete(ctx context.Context, id uint) error {
	return database.Transaction(ctx, r.db, func(ctx context.Context) error {
		db := r.conn(ctx)

		meetingIDs := db.Model(&entities.Meeting{}).Select("id").Where("employee_id = ?", id)

		if err := db.Where("meeting_id IN (?)", meetingIDs).Delete(&entities.ActionItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete action items: %w", err)
		}
		if err := db.Where("meeting_id IN (?)", meetingIDs).Delete(&entities.Topic{}).Error; err != nil {
			return fmt.Errorf("failed to delete topics: %w", err)
		}
		// Tasks of other people may still point at these meetings.
		if err := db.Model(&entities.Task{}).
			Where("meeting_id IN (?) AND (person_id IS NULL OR person_id <> ?)", meetingIDs, id).
			Update("meeting_id", nil).Error; err != nil {
			return fmt.Errorf("failed to unlink tasks: %w", err)
		}
		if err := db.Where("person_id = ?", id).Delete(&entities.Task{}).Error; err != nil {
			return fmt.Errorf("failed to delete tasks: %w", err)
		}
		if err := db.Where("employee_id = ?", id).Delete(&entities.Meeting{}).Error; err != nil {
			return fmt.Errorf("failed to delete meetings: %w", err)
		}
		if err := db.Model(&entities.QuickNote{}).
			Where("person_id = ?", id).
			Update("person_id", nil).Error; err != nil {
			return fmt.Errorf("failed to unlink notes: %w", err)
		}
		return db.Delete(&entities.Person{}, id).Error
	})
}

// List retrieves people with filters and pagination
func (r *personRepository) List(ctx context.Context, filters repositories.PersonFilters) ([]*entities.Person, error) {
	var people []*entities.Person

	query := r.conn(ctx).Model(&entities.Person{}).Scopes(ownedBy("employees", filters.OwnerID))

	if filters.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if filters.PersonType != nil {
		query = query.Where("person_type = ?", *filters.PersonType)
	}
	if filters.Search != "" {
		pattern := containsPattern(filters.Search)
		query = query.Where(
			`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(role) LIKE ? ESCAPE '\' OR LOWER(department) LIKE ? ESCAPE '\'`,
			pattern, pattern, pattern,
		)
	}

	err := query.Order("id ASC").
		Offset(filters.Offset).
		Limit(filters.Limit).
		Find(&people).Error
	return people, err
}

// ListByOwner returns all people of one owner
func (r *personRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*entities.Person, error) {
	var people []*entities.Person
	err := r.conn(ctx).Scopes(ownedBy("employees", ownerID)).Order("id ASC").Find(&people).Error
	return people, err
}

// ListIdentities returns the name of every person across all owners
func (r *personRepository) ListIdentities(ctx context.Context) ([]repositories.PersonIdentity, error) {
	var rows []repositories.PersonIdentity
	err := r.conn(ctx).Model(&entities.Person{}).
		Select("id", "user_id", "name").
		Order("id ASC").
		Scan(&rows).Error
	return rows, err
}

// Stats computes meeting count, last meeting date and open discuss_with tasks
func (r *personRepository) Stats(ctx context.Context, ids []uint) (map[uint]repositories.PersonStats, error) {
	stats := make(map[uint]repositories.PersonStats, len(ids))
	if len(ids) == 0 {
		return stats, nil
	}
	db := r.conn(ctx)

	// Dates are folded in Go; MAX() over SQLite datetimes loses the column type.
	var meetings []entities.Meeting
	if err := db.Select("employee_id", "date").Where("employee_id IN ?", ids).Find(&meetings).Error; err != nil {
		return nil, fmt.Errorf("failed to load meeting dates: %w", err)
	}
	for _, m := range meetings {
		s := stats[m.EmployeeID]
		s.MeetingCount++
		if s.LastMeetingDate == nil || m.Date.After(*s.LastMeetingDate) {
			date := m.Date
			s.LastMeetingDate = &date
		}
		stats[m.EmployeeID] = s
	}

	var pending []struct {
		PersonID uint
		Count    int64
	}
	err := db.Model(&entities.Task{}).
		Select("person_id, COUNT(*) AS count").
		Where("person_id IN ? AND task_type = ? AND status <> ?", ids, entities.TaskTypeDiscussWith, entities.StatusCompleted).
		Group("person_id").
		Scan(&pending).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count discussion topics: %w", err)
	}
	for _, p := range pending {
		s := stats[p.PersonID]
		s.PendingDiscussionTopics = p.Count
		stats[p.PersonID] = s
	}

	return stats, nil
}

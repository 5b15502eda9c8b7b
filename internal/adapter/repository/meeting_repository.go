package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/repositories"
	"github.com/johnquangdev/one-on-one-manager/internal/infrastructure/database"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	base
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{base{db: db}}
}

func withChildren(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Employee").
		Preload("ActionItems", func(db *gorm.DB) *gorm.DB { return db.Order("action_items.id ASC") }).
		Preload("Topics", func(db *gorm.DB) *gorm.DB { return db.Order("topics.id ASC") })
}

// Create inserts the meeting and its nested children in one transaction
func (r *meetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	return database.Transaction(ctx, r.db, func(ctx context.Context) error {
		if err := r.conn(ctx).Omit("Employee").Create(meeting).Error; err != nil {
			return fmt.Errorf("failed to create meeting: %w", err)
		}
		return nil
	})
}

// FindByID retrieves a meeting with person, action items and topics
func (r *meetingRepository) FindByID(ctx context.Context, ownerID, id uint) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := r.conn(ctx).
		Scopes(ownedBy("meetings", ownerID), withChildren).
		Where("meetings.id = ?", id).
		First(&meeting).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &meeting, nil
}

// List retrieves meetings newest first
func (r *meetingRepository) List(ctx context.Context, filters repositories.MeetingFilters) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting

	query := r.conn(ctx).Scopes(ownedBy("meetings", filters.OwnerID), withChildren)

	if filters.EmployeeID != nil {
		query = query.Where("meetings.employee_id = ?", *filters.EmployeeID)
	}
	if filters.StartDate != nil {
		query = query.Where("meetings.date >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("meetings.date <= ?", *filters.EndDate)
	}

	err := query.Order("meetings.date DESC").Order("meetings.id DESC").
		Offset(filters.Offset).
		Limit(filters.Limit).
		Find(&meetings).Error
	return meetings, err
}

// Update saves the meeting columns without touching children
func (r *meetingRepository) Update(ctx context.Context, meeting *entities.Meeting) error {
	return r.conn(ctx).Omit(clause.Associations).Save(meeting).Error
}

// StoreAnalysis writes the analyzer output onto an owned meeting
func (r *meetingRepository) StoreAnalysis(ctx context.Context, ownerID, id uint, analysis repositories.MeetingAnalysis) error {
	var holder entities.Meeting
	holder.SetTopicList(analysis.Topics)

	res := r.conn(ctx).Model(&entities.Meeting{}).
		Scopes(ownedBy("meetings", ownerID)).
		Where("meetings.id = ?", id).
		Updates(map[string]interface{}{
			"ai_insights":  analysis.Insights,
			"ai_sentiment": analysis.Sentiment,
			"ai_topics":    holder.AITopics,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entities.ErrNotFound
	}
	return nil
}

// Delete removes the meeting and cascades to its children
func (r *meetingRepository) Delete(ctx context.Context, id uint) error {
	return database.Transaction(ctx, r.db, func(ctx context.Context) error {
		db := r.conn(ctx)
		if err := db.Where("meeting_id = ?", id).Delete(&entities.ActionItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete action items: %w", err)
		}
		if err := db.Where("meeting_id = ?", id).Delete(&entities.Topic{}).Error; err != nil {
			return fmt.Errorf("failed to delete topics: %w", err)
		}
		if err := db.Model(&entities.Task{}).Where("meeting_id = ?", id).Update("meeting_id", nil).Error; err != nil {
			return fmt.Errorf("failed to unlink tasks: %w", err)
		}
		return db.Delete(&entities.Meeting{}, id).Error
	})
}

// CreateActionItem adds an action item to a meeting
func (r *meetingRepository) CreateActionItem(ctx context.Context, item *entities.ActionItem) error {
	return r.conn(ctx).Create(item).Error
}

// FindActionItem retrieves an action item whose meeting belongs to ownerID
func (r *meetingRepository) FindActionItem(ctx context.Context, ownerID, id uint) (*entities.ActionItem, error) {
	var item entities.ActionItem
	err := r.conn(ctx).
		Joins("JOIN meetings ON meetings.id = action_items.meeting_id").
		Scopes(ownedBy("meetings", ownerID)).
		Where("action_items.id = ?", id).
		First(&item).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

// UpdateActionItem saves an action item
func (r *meetingRepository) UpdateActionItem(ctx context.Context, item *entities.ActionItem) error {
	return r.conn(ctx).Save(item).Error
}

// DeleteActionItem removes an action item
func (r *meetingRepository) DeleteActionItem(ctx context.Context, id uint) error {
	return r.conn(ctx).Delete(&entities.ActionItem{}, id).Error
}

// CreateTopic adds a topic to a meeting
func (r *meetingRepository) CreateTopic(ctx context.Context, topic *entities.Topic) error {
	return r.conn(ctx).Create(topic).Error
}

// FindTopic retrieves a topic whose meeting belongs to ownerID
func (r *meetingRepository) FindTopic(ctx context.Context, ownerID, id uint) (*entities.Topic, error) {
	var topic entities.Topic
	err := r.conn(ctx).
		Joins("JOIN meetings ON meetings.id = topics.meeting_id").
		Scopes(ownedBy("meetings", ownerID)).
		Where("topics.id = ?", id).
		First(&topic).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &topic, nil
}

// DeleteTopic removes a topic
func (r *meetingRepository) DeleteTopic(ctx context.Context, id uint) error {
	return r.conn(ctx).Delete(&entities.Topic{}, id).Error
}

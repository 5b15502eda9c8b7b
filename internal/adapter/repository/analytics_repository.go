package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/repositories"
)

// analyticsRepository implements the AnalyticsRepository interface
type analyticsRepository struct {
	base
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) repositories.AnalyticsRepository {
	return &analyticsRepository{base{db: db}}
}

func meetingWindow(ownerID uint, employeeID *uint, from, to time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("meetings.user_id = ? AND meetings.date >= ? AND meetings.date <= ?", ownerID, from, to)
		if employeeID != nil {
			db = db.Where("meetings.employee_id = ?", *employeeID)
		}
		return db
	}
}

// CountActivePeople counts the owner's active people
func (r *analyticsRepository) CountActivePeople(ctx context.Context, ownerID uint) (int64, error) {
	var count int64
	err := r.conn(ctx).Model(&entities.Person{}).
		Scopes(ownedBy("employees", ownerID)).
		Where("is_active = ?", true).
		Count(&count).Error
	return count, err
}

// MeetingDates returns meeting dates in the window
func (r *analyticsRepository) MeetingDates(ctx context.Context, ownerID uint, employeeID *uint, from, to time.Time) ([]time.Time, error) {
	var meetings []entities.Meeting
	err := r.conn(ctx).
		Select("meetings.date").
		Scopes(meetingWindow(ownerID, employeeID, from, to)).
		Order("meetings.date ASC").
		Find(&meetings).Error
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, len(meetings))
	for _, m := range meetings {
		dates = append(dates, m.Date)
	}
	return dates, nil
}

// TopTopics groups topics by name and category, most frequent first
func (r *analyticsRepository) TopTopics(ctx context.Context, ownerID uint, employeeID *uint, from, to time.Time, limit int) ([]repositories.TopicCount, error) {
	var rows []repositories.TopicCount
	err := r.conn(ctx).Model(&entities.Topic{}).
		Select("topics.name AS name, topics.category AS category, COUNT(topics.id) AS count").
		Joins("JOIN meetings ON meetings.id = topics.meeting_id").
		Scopes(meetingWindow(ownerID, employeeID, from, to)).
		Group("topics.name, topics.category").
		Order("count DESC").Order("topics.name ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// SentimentCounts counts analyzed meetings by sentiment label
func (r *analyticsRepository) SentimentCounts(ctx context.Context, ownerID uint, from, to time.Time) (map[string]int64, error) {
	var rows []struct {
		Sentiment string
		Count     int64
	}
	err := r.conn(ctx).Model(&entities.Meeting{}).
		Select("meetings.ai_sentiment AS sentiment, COUNT(meetings.id) AS count").
		Scopes(meetingWindow(ownerID, nil, from, to)).
		Where("meetings.ai_sentiment IS NOT NULL").
		Group("meetings.ai_sentiment").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Sentiment] = row.Count
	}
	return counts, nil
}

// ActionItemCounts counts a person's action items by status
func (r *analyticsRepository) ActionItemCounts(ctx context.Context, employeeID uint) (map[entities.Status]int64, error) {
	var rows []struct {
		Status entities.Status
		Count  int64
	}
	err := r.conn(ctx).Model(&entities.ActionItem{}).
		Select("action_items.status AS status, COUNT(action_items.id) AS count").
		Joins("JOIN meetings ON meetings.id = action_items.meeting_id").
		Where("meetings.employee_id = ?", employeeID).
		Group("action_items.status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[entities.Status]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// PendingActionItems returns open action items ordered by due date, undated last
func (r *analyticsRepository) PendingActionItems(ctx context.Context, ownerID uint, employeeID *uint) ([]repositories.PendingActionItem, error) {
	query := r.conn(ctx).
		Preload("Employee").
		Scopes(ownedBy("meetings", ownerID)).
		Where("meetings.id IN (?)", r.conn(ctx).Model(&entities.ActionItem{}).
			Select("meeting_id").
			Where("status IN ?", []entities.Status{entities.StatusPending, entities.StatusInProgress}))
	if employeeID != nil {
		query = query.Where("meetings.employee_id = ?", *employeeID)
	}

	var meetings []*entities.Meeting
	if err := query.Find(&meetings).Error; err != nil {
		return nil, err
	}
	if len(meetings) == 0 {
		return nil, nil
	}

	byID := make(map[uint]*entities.Meeting, len(meetings))
	ids := make([]uint, 0, len(meetings))
	for _, m := range meetings {
		byID[m.ID] = m
		ids = append(ids, m.ID)
	}

	var items []entities.ActionItem
	err := r.conn(ctx).
		Where("meeting_id IN ? AND status IN ?", ids, []entities.Status{entities.StatusPending, entities.StatusInProgress}).
		Order("CASE WHEN due_date IS NULL THEN 1 ELSE 0 END").
		Order("due_date ASC").Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	result := make([]repositories.PendingActionItem, 0, len(items))
	for _, item := range items {
		m := byID[item.MeetingID]
		row := repositories.PendingActionItem{
			Item:        item,
			EmployeeID:  m.EmployeeID,
			MeetingDate: m.Date,
		}
		if m.Employee != nil {
			row.EmployeeName = m.Employee.Name
		}
		result = append(result, row)
	}
	return result, nil
}

// TopicOccurrences lists every topic in the window with its meeting date
func (r *analyticsRepository) TopicOccurrences(ctx context.Context, ownerID uint, from, to time.Time) ([]repositories.TopicOccurrence, error) {
	var meetings []*entities.Meeting
	err := r.conn(ctx).
		Preload("Topics").
		Scopes(meetingWindow(ownerID, nil, from, to)).
		Order("meetings.date ASC").
		Find(&meetings).Error
	if err != nil {
		return nil, err
	}

	var occurrences []repositories.TopicOccurrence
	for _, m := range meetings {
		for _, t := range m.Topics {
			occurrences = append(occurrences, repositories.TopicOccurrence{Name: t.Name, Date: m.Date})
		}
	}
	return occurrences, nil
}

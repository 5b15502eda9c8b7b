package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/repositories"
	"github.com/johnquangdev/one-on-one-manager/internal/infrastructure/database"
)

// calendarRepository implements the CalendarRepository interface
type calendarRepository struct {
	base
}

// NewCalendarRepository creates a new calendar repository
func NewCalendarRepository(db *gorm.DB) repositories.CalendarRepository {
	return &calendarRepository{base{db: db}}
}

func orderedPrepNotes(db *gorm.DB) *gorm.DB {
	return db.Preload("PrepNotes", func(db *gorm.DB) *gorm.DB {
		return db.Order("meeting_prep_notes.order_index ASC").Order("meeting_prep_notes.id ASC")
	})
}

// Create creates a calendar meeting
func (r *calendarRepository) Create(ctx context.Context, meeting *entities.CalendarMeeting) error {
	return duplicate(r.conn(ctx).Create(meeting).Error)
}

// FindByID retrieves a calendar meeting with its prep notes
func (r *calendarRepository) FindByID(ctx context.Context, ownerID, id uint) (*entities.CalendarMeeting, error) {
	var meeting entities.CalendarMeeting
	err := r.conn(ctx).
		Scopes(ownedBy("calendar_meetings", ownerID), orderedPrepNotes).
		Where("calendar_meetings.id = ?", id).
		First(&meeting).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &meeting, nil
}

// FindByExternalID retrieves a calendar meeting by its external calendar id
func (r *calendarRepository) FindByExternalID(ctx context.Context, externalID string) (*entities.CalendarMeeting, error) {
	var meeting entities.CalendarMeeting
	err := r.conn(ctx).
		Scopes(orderedPrepNotes).
		Where("external_id = ?", externalID).
		First(&meeting).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &meeting, nil
}

// ListBetween returns meetings starting within [from, to]
func (r *calendarRepository) ListBetween(ctx context.Context, ownerID uint, from, to time.Time) ([]*entities.CalendarMeeting, error) {
	var meetings []*entities.CalendarMeeting
	err := r.conn(ctx).
		Scopes(ownedBy("calendar_meetings", ownerID), orderedPrepNotes).
		Where("start_time >= ? AND start_time <= ?", from, to).
		Order("start_time ASC").Order("id ASC").
		Find(&meetings).Error
	return meetings, err
}

// Update saves the meeting columns
func (r *calendarRepository) Update(ctx context.Context, meeting *entities.CalendarMeeting) error {
	return r.conn(ctx).Omit(clause.Associations).Save(meeting).Error
}

// Delete removes a calendar meeting and its prep notes
func (r *calendarRepository) Delete(ctx context.Context, id uint) error {
	return database.Transaction(ctx, r.db, func(ctx context.Context) error {
		db := r.conn(ctx)
		if err := db.Where("calendar_meeting_id = ?", id).Delete(&entities.PrepNote{}).Error; err != nil {
			return fmt.Errorf("failed to delete prep notes: %w", err)
		}
		return db.Delete(&entities.CalendarMeeting{}, id).Error
	})
}

// CountPrepNotes counts the notes on a meeting
func (r *calendarRepository) CountPrepNotes(ctx context.Context, meetingID uint) (int64, error) {
	var count int64
	err := r.conn(ctx).Model(&entities.PrepNote{}).
		Where("calendar_meeting_id = ?", meetingID).
		Count(&count).Error
	return count, err
}

// CreatePrepNote adds a prep note
func (r *calendarRepository) CreatePrepNote(ctx context.Context, note *entities.PrepNote) error {
	return r.conn(ctx).Create(note).Error
}

// FindPrepNote retrieves a prep note of a meeting
func (r *calendarRepository) FindPrepNote(ctx context.Context, meetingID, noteID uint) (*entities.PrepNote, error) {
	var note entities.PrepNote
	err := r.conn(ctx).
		Where("id = ? AND calendar_meeting_id = ?", noteID, meetingID).
		First(&note).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &note, nil
}

// UpdatePrepNote saves a prep note
func (r *calendarRepository) UpdatePrepNote(ctx context.Context, note *entities.PrepNote) error {
	return r.conn(ctx).Save(note).Error
}

// DeletePrepNote removes a prep note. Siblings keep their order_index.
func (r *calendarRepository) DeletePrepNote(ctx context.Context, id uint) error {
	return r.conn(ctx).Delete(&entities.PrepNote{}, id).Error
}

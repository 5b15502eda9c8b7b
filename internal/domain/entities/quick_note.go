package entities

import "time"

// NoteCategory groups quick notes
type NoteCategory string

const (
	NoteCategoryGeneral    NoteCategory = "general"
	NoteCategoryLink       NoteCategory = "link"
	NoteCategoryCredential NoteCategory = "credential"
	NoteCategoryContact    NoteCategory = "contact"
	NoteCategorySnippet    NoteCategory = "snippet"
)

// IsValid checks if the category is valid
func (c NoteCategory) IsValid() bool {
	switch c {
	case NoteCategoryGeneral, NoteCategoryLink, NoteCategoryCredential, NoteCategoryContact, NoteCategorySnippet:
		return true
	}
	return false
}

// QuickNote is a short piece of saved information. Pinned notes sort first.
type QuickNote struct {
	ID        uint         `json:"id" gorm:"primaryKey"`
	UserID    *uint        `json:"user_id,omitempty" gorm:"index"`
	Title     string       `json:"title" gorm:"type:varchar(200);not null"`
	Content   string       `json:"content" gorm:"type:text;not null"`
	Category  NoteCategory `json:"category" gorm:"type:varchar(20);not null;default:'general';index"`
	PersonID  *uint        `json:"person_id,omitempty" gorm:"index"`
	Person    *Person      `json:"-" gorm:"foreignKey:PersonID"`
	IsPinned  bool         `json:"is_pinned" gorm:"not null;default:false"`
	CreatedAt time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for QuickNote
func (QuickNote) TableName() string {
	return "quick_notes"
}

// PersonName returns the loaded person's name if present
func (n *QuickNote) PersonName() *string {
	if n.Person == nil {
		return nil
	}
	name := n.Person.Name
	return &name
}

package entities

import "time"

// PersonType classifies a tracked person relative to the user
type PersonType string

const (
	PersonTypeEmployee  PersonType = "employee" // reports to the user
	PersonTypeColleague PersonType = "colleague"
	PersonTypeManager   PersonType = "manager"
)

// IsValid checks if the person type is valid
func (t PersonType) IsValid() bool {
	switch t {
	case PersonTypeEmployee, PersonTypeColleague, PersonTypeManager:
		return true
	}
	return false
}

// Person is someone the user meets with. Stored in the employees table.
type Person struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	UserID     *uint      `json:"user_id,omitempty" gorm:"index"`
	Name       string     `json:"name" gorm:"type:varchar(100);not null"`
	Role       *string    `json:"role,omitempty" gorm:"type:varchar(100)"`
	Department *string    `json:"department,omitempty" gorm:"type:varchar(100)"`
	Email      *string    `json:"email,omitempty" gorm:"type:varchar(100)"`
	StartDate  *time.Time `json:"start_date,omitempty"`
	Notes      *string    `json:"notes,omitempty" gorm:"type:text"`
	PersonType PersonType `json:"person_type" gorm:"type:varchar(20);not null;default:'employee'"`
	IsActive   bool       `json:"is_active" gorm:"not null;default:true;index"`
	CreatedAt  time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Person
func (Person) TableName() string {
	return "employees"
}

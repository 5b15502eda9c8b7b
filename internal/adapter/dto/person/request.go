package person

import "github.com/johnquangdev/one-on-one-manager/internal/adapter/dto/common"

// CreatePersonRequest represents the request to add a person
type CreatePersonRequest struct {
	Name       string           `json:"name" validate:"required,min=1,max=100"`
	Role       *string          `json:"role,omitempty" validate:"omitempty,max=100"`
	Department *string          `json:"department,omitempty" validate:"omitempty,max=100"`
	Email      *string          `json:"email,omitempty" validate:"omitempty,max=100"`
	StartDate  *common.DateTime `json:"start_date,omitempty"`
	Notes      *string          `json:"notes,omitempty"`
	PersonType string           `json:"person_type" validate:"omitempty,oneof=employee colleague manager"`
}

// UpdatePersonRequest represents the request to update a person
type UpdatePersonRequest struct {
	Name       *string          `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Role       *string          `json:"role,omitempty" validate:"omitempty,max=100"`
	Department *string          `json:"department,omitempty" validate:"omitempty,max=100"`
	Email      *string          `json:"email,omitempty" validate:"omitempty,max=100"`
	StartDate  *common.DateTime `json:"start_date,omitempty"`
	Notes      *string          `json:"notes,omitempty"`
	PersonType *string          `json:"person_type,omitempty" validate:"omitempty,oneof=employee colleague manager"`
	IsActive   *bool            `json:"is_active,omitempty"`
}

// ListPeopleRequest represents query parameters for listing people
type ListPeopleRequest struct {
	Skip       int    `query:"skip" validate:"min=0"`
	Limit      int    `query:"limit" validate:"min=1,max=100"`
	ActiveOnly bool   `query:"active_only"`
	PersonType string `query:"person_type" validate:"omitempty,oneof=employee colleague manager"`
	Search     string `query:"search"`
}

// DeletePersonRequest represents query parameters for deleting a person
type DeletePersonRequest struct {
	HardDelete bool `query:"hard_delete"`
}

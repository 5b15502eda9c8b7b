package presenter

import (
	personDTO "github.com/johnquangdev/one-on-one-manager/internal/adapter/dto/person"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/people"
)

// ToPersonResponse converts a person with stats to PersonResponse DTO
func ToPersonResponse(p *people.PersonWithStats) *personDTO.PersonResponse {
	if p == nil || p.Person == nil {
		return nil
	}
	return &personDTO.PersonResponse{
		ID:                      p.ID,
		Name:                    p.Name,
		Role:                    p.Role,
		Department:              p.Department,
		Email:                   p.Email,
		StartDate:               p.StartDate,
		Notes:                   p.Notes,
		PersonType:              string(p.PersonType),
		IsActive:                p.IsActive,
		CreatedAt:               p.CreatedAt,
		UpdatedAt:               p.UpdatedAt,
		MeetingCount:            p.Stats.MeetingCount,
		LastMeetingDate:         p.Stats.LastMeetingDate,
		PendingDiscussionTopics: p.Stats.PendingDiscussionTopics,
	}
}

// ToPersonResponses converts a list of people
func ToPersonResponses(rows []*people.PersonWithStats) []*personDTO.PersonResponse {
	out := make([]*personDTO.PersonResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, ToPersonResponse(p))
	}
	return out
}

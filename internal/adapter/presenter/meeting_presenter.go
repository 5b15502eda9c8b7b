package presenter

import (
	meetingDTO "github.com/johnquangdev/one-on-one-manager/internal/adapter/dto/meeting"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
)

// ToMeetingResponse converts a Meeting entity to MeetingResponse DTO
func ToMeetingResponse(m *entities.Meeting) *meetingDTO.MeetingResponse {
	if m == nil {
		return nil
	}

	resp := &meetingDTO.MeetingResponse{
		ID:              m.ID,
		EmployeeID:      m.EmployeeID,
		EmployeeName:    m.EmployeeName(),
		Date:            m.Date,
		DurationMinutes: m.DurationMinutes,
		Notes:           m.Notes,
		Summary:         m.Summary,
		AIInsights:      m.AIInsights,
		AISentiment:     m.AISentiment,
		ActionItems:     make([]*meetingDTO.ActionItemResponse, 0, len(m.ActionItems)),
		Topics:          make([]*meetingDTO.TopicResponse, 0, len(m.Topics)),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if len(m.AITopics) > 0 {
		raw := string(m.AITopics)
		resp.AITopics = &raw
	}
	for i := range m.ActionItems {
		resp.ActionItems = append(resp.ActionItems, ToActionItemResponse(&m.ActionItems[i]))
	}
	for i := range m.Topics {
		resp.Topics = append(resp.Topics, ToTopicResponse(&m.Topics[i]))
	}

	return resp
}

// ToMeetingResponses converts a list of meetings
func ToMeetingResponses(meetings []*entities.Meeting) []*meetingDTO.MeetingResponse {
	out := make([]*meetingDTO.MeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		out = append(out, ToMeetingResponse(m))
	}
	return out
}

// ToActionItemResponse converts an ActionItem entity
func ToActionItemResponse(a *entities.ActionItem) *meetingDTO.ActionItemResponse {
	if a == nil {
		return nil
	}
	return &meetingDTO.ActionItemResponse{
		ID:          a.ID,
		MeetingID:   a.MeetingID,
		Description: a.Description,
		Assignee:    a.Assignee,
		DueDate:     a.DueDate,
		Status:      string(a.Status),
		Notes:       a.Notes,
		CompletedAt: a.CompletedAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// ToTopicResponse converts a Topic entity
func ToTopicResponse(t *entities.Topic) *meetingDTO.TopicResponse {
	if t == nil {
		return nil
	}
	return &meetingDTO.TopicResponse{
		ID:        t.ID,
		MeetingID: t.MeetingID,
		Name:      t.Name,
		Category:  t.Category,
		Sentiment: t.Sentiment,
		Notes:     t.Notes,
		CreatedAt: t.CreatedAt,
	}
}

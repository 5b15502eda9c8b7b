package presenter

import (
	analyticsDTO "github.com/johnquangdev/one-on-one-manager/internal/adapter/dto/analytics"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/repositories"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/analytics"
)

// ToOverviewResponse converts the dashboard summary
func ToOverviewResponse(o *analytics.Overview) *analyticsDTO.OverviewResponse {
	if o == nil {
		return nil
	}
	return &analyticsDTO.OverviewResponse{
		TotalEmployees:        o.TotalEmployees,
		TotalMeetings:         o.TotalMeetings,
		TopTopics:             toTopicFrequencies(o.TopTopics),
		SentimentDistribution: nonNilCounts(o.SentimentDistribution),
		MeetingsPerMonth:      nonNilCounts(o.MeetingsPerMonth),
	}
}

// ToEmployeeAnalyticsResponse converts the per-person report
func ToEmployeeAnalyticsResponse(s *analytics.EmployeeSummary) *analyticsDTO.EmployeeAnalyticsResponse {
	if s == nil {
		return nil
	}
	return &analyticsDTO.EmployeeAnalyticsResponse{
		EmployeeID:           s.EmployeeID,
		EmployeeName:         s.EmployeeName,
		TotalMeetings:        s.TotalMeetings,
		TopTopics:            toTopicFrequencies(s.TopTopics),
		PendingActionItems:   s.PendingActionItems,
		CompletedActionItems: s.CompletedActionItems,
	}
}

// ToPendingActionItemResponses converts open action items
func ToPendingActionItemResponses(rows []repositories.PendingActionItem) []*analyticsDTO.PendingActionItemResponse {
	out := make([]*analyticsDTO.PendingActionItemResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, &analyticsDTO.PendingActionItemResponse{
			ID:           row.Item.ID,
			Description:  row.Item.Description,
			Assignee:     row.Item.Assignee,
			DueDate:      row.Item.DueDate,
			Status:       string(row.Item.Status),
			EmployeeID:   row.EmployeeID,
			EmployeeName: row.EmployeeName,
			MeetingDate:  row.MeetingDate,
		})
	}
	return out
}

func toTopicFrequencies(topics []repositories.TopicCount) []*analyticsDTO.TopicFrequencyResponse {
	out := make([]*analyticsDTO.TopicFrequencyResponse, 0, len(topics))
	for _, t := range topics {
		out = append(out, &analyticsDTO.TopicFrequencyResponse{
			Topic:    t.Name,
			Count:    t.Count,
			Category: t.Category,
		})
	}
	return out
}

func nonNilCounts(m map[string]int64) map[string]int64 {
	if m == nil {
		return map[string]int64{}
	}
	return m
}

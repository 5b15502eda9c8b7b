package analyzer

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/one-on-one-manager/internal/usecase/errors"
)

var jsonObject = regexp.MustCompile(`\{[\s\S]*\}`)

// extractJSON strips markdown code fences around a model reply
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
	}
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")

	return strings.TrimSpace(content)
}

// parseAnalysis decodes an analysis reply. Anything that is not a JSON
// object is an error so the caller can fall back to the rules.
func parseAnalysis(content string) (*Analysis, error) {
	content = extractJSON(content)
	if content == "" {
		return nil, usecaseErrors.ErrEmptyCompletion
	}

	var result Analysis
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("failed to parse analysis: %w", err)
	}
	if strings.TrimSpace(result.Insights) == "" && len(result.Topics) == 0 {
		return nil, usecaseErrors.ErrEmptyCompletion
	}

	result.Sentiment = strings.ToLower(strings.TrimSpace(result.Sentiment))
	switch result.Sentiment {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
	default:
		result.Sentiment = SentimentNeutral
	}
	if result.Topics == nil {
		result.Topics = []string{}
	}
	if result.ActionItemsSuggested == nil {
		result.ActionItemsSuggested = []string{}
	}
	return &result, nil
}

// parseTasks decodes a task extraction reply and links every task to the
// given person and meeting
func parseTasks(content string, personID, meetingID *uint) ([]SuggestedTask, error) {
	content = extractJSON(content)
	if content == "" {
		return nil, usecaseErrors.ErrEmptyCompletion
	}

	var payload struct {
		Tasks []struct {
			Title       string  `json:"title"`
			Description *string `json:"description"`
			Priority    string  `json:"priority"`
		} `json:"tasks"`
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse tasks: %w", err)
	}

	tasks := []SuggestedTask{}
	for _, t := range payload.Tasks {
		title := strings.TrimSpace(t.Title)
		if title == "" {
			continue
		}
		priority := entities.Priority(strings.ToLower(t.Priority))
		if !priority.IsValid() {
			priority = entities.PriorityMedium
		}
		tasks = append(tasks, SuggestedTask{
			Title:       truncateRunes(title, maxTitleRunes),
			Description: t.Description,
			TaskType:    entities.TaskTypeFromMeeting,
			Priority:    priority,
			PersonID:    personID,
			MeetingID:   meetingID,
		})
	}
	return tasks, nil
}

// parseMeetings finds the first JSON object in a vision reply and reads its
// meetings list. A reply without any object yields no meetings.
func parseMeetings(content string) ([]ExtractedMeeting, error) {
	raw := jsonObject.FindString(content)
	if raw == "" {
		return []ExtractedMeeting{}, nil
	}

	var payload struct {
		Meetings []ExtractedMeeting `json:"meetings"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse meetings: %w", err)
	}
	if payload.Meetings == nil {
		payload.Meetings = []ExtractedMeeting{}
	}
	return payload.Meetings, nil
}

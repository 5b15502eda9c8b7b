package analyzer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
)

const (
	maxTitleRunes = 200
	minTitleRunes = 6
)

var topicKeywords = []struct {
	topic    string
	keywords []string
}{
	{"career", []string{"career", "promotion", "growth", "קידום", "קריירה"}},
	{"feedback", []string{"feedback", "review", "פידבק", "משוב"}},
	{"blockers", []string{"blocker", "stuck", "problem", "issue", "חסימה", "בעיה"}},
	{"project", []string{"project", "deadline", "delivery", "פרויקט", "דדליין"}},
	{"personal", []string{"personal", "family", "health", "אישי", "משפחה", "בריאות"}},
	{"learning", []string{"learning", "course", "training", "למידה", "קורס", "הכשרה"}},
	{"team", []string{"team", "collaboration", "צוות", "שיתוף פעולה"}},
	{"workload", []string{"workload", "overtime", "stress", "עומס", "שעות נוספות", "לחץ"}},
}

var (
	positiveWords = []string{"great", "excellent", "happy", "good", "success", "מצוין", "טוב", "שמח", "הצלחה"}
	negativeWords = []string{"problem", "issue", "frustrated", "unhappy", "difficult", "בעיה", "מתוסכל", "קשה"}
)

var suggestionRules = []struct {
	keywords   []string
	suggestion string
}{
	{[]string{"blocker", "חסימה"}, "Follow up on blockers mentioned"},
	{[]string{"deadline", "דדליין"}, "Review project timeline"},
	{[]string{"feedback", "משוב"}, "Provide requested feedback"},
}

// First match wins, in this order.
var taskPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\s*[-•*]\s*(?:TODO|לעשות|משימה|action item)[:：]?\s*(.+)`),
	regexp.MustCompile(`(?i)^\s*[-•*]\s*צריך\s+(.+)`),
	regexp.MustCompile(`(?i)^\s*[-•*]\s*need to\s+(.+)`),
	regexp.MustCompile(`(?i)^\s*[-•*]\s*should\s+(.+)`),
	regexp.MustCompile(`(?i)^\s*[-•*]\s*will\s+(.+)`),
	regexp.MustCompile(`(?i)(?:TODO|לעשות|משימה)[:：]\s*(.+)`),
}

var (
	highPriorityWords = []string{"urgent", "דחוף", "asap", "critical"}
	lowPriorityWords  = []string{"when possible", "כשיהיה זמן", "low priority"}
)

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func countPresent(text string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(text, w) {
			n++
		}
	}
	return n
}

// AnalyzeRules is the keyword-based analysis used when no LLM answers
func AnalyzeRules(notes string) *Analysis {
	lower := strings.ToLower(notes)

	var topics []string
	for _, tk := range topicKeywords {
		if containsAny(lower, tk.keywords) {
			topics = append(topics, tk.topic)
		}
	}

	sentiment := SentimentNeutral
	positive, negative := countPresent(lower, positiveWords), countPresent(lower, negativeWords)
	switch {
	case positive > negative:
		sentiment = SentimentPositive
	case negative > positive:
		sentiment = SentimentNegative
	}

	var parts []string
	if len(topics) > 0 {
		parts = append(parts, fmt.Sprintf("Main discussion areas: %s.", strings.Join(topics, ", ")))
	}
	switch sentiment {
	case SentimentPositive:
		parts = append(parts, "Overall positive tone in the conversation.")
	case SentimentNegative:
		parts = append(parts, "Some concerns or challenges were discussed.")
	}
	insights := "Standard 1:1 discussion."
	if len(parts) > 0 {
		insights = strings.Join(parts, " ")
	}

	suggested := []string{}
	for _, rule := range suggestionRules {
		if containsAny(lower, rule.keywords) {
			suggested = append(suggested, rule.suggestion)
		}
	}

	if len(topics) == 0 {
		topics = []string{"general"}
	}

	return &Analysis{
		Insights:             insights,
		Topics:               topics,
		Sentiment:            sentiment,
		ActionItemsSuggested: suggested,
	}
}

// ExtractTasksRules scans each line of notes for action-item phrasing
func ExtractTasksRules(notes string, personID, meetingID *uint) []SuggestedTask {
	tasks := []SuggestedTask{}

	for _, line := range strings.Split(notes, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		for _, pattern := range taskPatterns {
			match := pattern.FindStringSubmatch(line)
			if match == nil {
				continue
			}
			title := strings.TrimSpace(match[1])
			if utf8.RuneCountInString(title) >= minTitleRunes {
				tasks = append(tasks, SuggestedTask{
					Title:     truncateRunes(title, maxTitleRunes),
					TaskType:  entities.TaskTypeFromMeeting,
					Priority:  priorityFromText(line),
					PersonID:  personID,
					MeetingID: meetingID,
				})
			}
			break
		}
	}

	return tasks
}

func priorityFromText(line string) entities.Priority {
	lower := strings.ToLower(line)
	switch {
	case containsAny(lower, highPriorityWords):
		return entities.PriorityHigh
	case containsAny(lower, lowPriorityWords):
		return entities.PriorityLow
	}
	return entities.PriorityMedium
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

package analyzer

import "fmt"

const (
	analystSystemPrompt   = "You are an expert HR analyst specializing in 1:1 meeting analysis. Respond only with valid JSON."
	extractorSystemPrompt = "You are an expert at extracting action items and tasks from meeting notes. Respond only with valid JSON."
)

func analysisPrompt(notes string) string {
	return fmt.Sprintf(`Analyze the following 1:1 meeting notes and provide:
1. Key insights and observations
2. Main topics discussed (list of topic names)
3. Overall sentiment (positive, neutral, or negative)
4. Suggested action items based on the discussion

Meeting Notes:
---
%s
---

Respond in JSON format:
{
    "insights": "Brief summary of key insights and observations",
    "topics": ["topic1", "topic2", "topic3"],
    "sentiment": "positive|neutral|negative",
    "action_items_suggested": ["action1", "action2"]
}`, notes)
}

func taskExtractionPrompt(notes string) string {
	return fmt.Sprintf(`Extract action items and tasks from the following meeting notes.
For each task, identify:
- title: Brief task title
- description: Optional detailed description
- priority: low, medium, or high based on urgency

Meeting Notes:
---
%s
---

Respond in JSON format:
{
    "tasks": [
        {"title": "Task title", "description": "Optional description", "priority": "medium"}
    ]
}

Only include clear action items. If no tasks are found, return an empty array.`, notes)
}

func screenshotPrompt(targetDate string) string {
	return fmt.Sprintf(`Analyze this calendar screenshot and extract all meetings/events.

For each meeting, provide these details in JSON format:
- title: meeting name
- start_time: start time in HH:MM (24-hour format)
- end_time: end time in HH:MM (24-hour format)
- location: location (if shown)
- attendees: attendees (if shown)

Target date: %s

Return JSON only:
{"meetings": [
  {"title": "...", "start_time": "HH:MM", "end_time": "HH:MM", "location": "...", "attendees": "..."}
]}

If no meetings in image, return: {"meetings": []}`, targetDate)
}

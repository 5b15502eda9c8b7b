package presenter

import (
	"time"

	calendarDTO "github.com/johnquangdev/one-on-one-manager/internal/adapter/dto/calendar"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/analyzer"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/calendar"
)

// ToCalendarMeetingResponse converts a CalendarMeeting entity
func ToCalendarMeetingResponse(m *entities.CalendarMeeting) *calendarDTO.CalendarMeetingResponse {
	if m == nil {
		return nil
	}
	resp := &calendarDTO.CalendarMeetingResponse{
		ID:             m.ID,
		ExternalID:     m.ExternalID,
		Title:          m.Title,
		Description:    m.Description,
		StartTime:      m.StartTime,
		EndTime:        m.EndTime,
		Location:       m.Location,
		Attendees:      m.Attendees,
		CalendarSource: string(m.CalendarSource),
		IsRecurring:    m.IsRecurring,
		PrepNotes:      make([]*calendarDTO.PrepNoteResponse, 0, len(m.PrepNotes)),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	for i := range m.PrepNotes {
		resp.PrepNotes = append(resp.PrepNotes, ToPrepNoteResponse(&m.PrepNotes[i]))
	}
	return resp
}

// ToCalendarMeetingResponses converts a list of calendar entries
func ToCalendarMeetingResponses(meetings []*entities.CalendarMeeting) []*calendarDTO.CalendarMeetingResponse {
	out := make([]*calendarDTO.CalendarMeetingResponse, 0, len(meetings))
	for _, m := range meetings {
		out = append(out, ToCalendarMeetingResponse(m))
	}
	return out
}

// ToCalendarDayResponse converts the day view
func ToCalendarDayResponse(meetings []*entities.CalendarMeeting, date time.Time) *calendarDTO.CalendarMeetingsListResponse {
	return &calendarDTO.CalendarMeetingsListResponse{
		Meetings: ToCalendarMeetingResponses(meetings),
		Total:    len(meetings),
		Date:     date.Format(calendar.DateLayout),
	}
}

// ToImportResponse converts an import result
func ToImportResponse(result *calendar.ImportResult) *calendarDTO.ImportResponse {
	if result == nil {
		return &calendarDTO.ImportResponse{Meetings: []*calendarDTO.CalendarMeetingResponse{}}
	}
	return &calendarDTO.ImportResponse{
		Created:  result.Created,
		Updated:  result.Updated,
		Meetings: ToCalendarMeetingResponses(result.Meetings),
	}
}

// ToScreenshotResponse wraps extracted entries
func ToScreenshotResponse(meetings []analyzer.ExtractedMeeting) *calendarDTO.ScreenshotResponse {
	if meetings == nil {
		meetings = []analyzer.ExtractedMeeting{}
	}
	return &calendarDTO.ScreenshotResponse{
		Meetings: meetings,
		Total:    len(meetings),
	}
}

// ToPrepNoteResponse converts a PrepNote entity
func ToPrepNoteResponse(n *entities.PrepNote) *calendarDTO.PrepNoteResponse {
	if n == nil {
		return nil
	}
	return &calendarDTO.PrepNoteResponse{
		ID:                n.ID,
		CalendarMeetingID: n.CalendarMeetingID,
		Content:           n.Content,
		IsCompleted:       n.IsCompleted,
		OrderIndex:        n.OrderIndex,
		CreatedAt:         n.CreatedAt,
		UpdatedAt:         n.UpdatedAt,
	}
}

package analytics

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/repositories"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/analyzer"
	usecaseErrors "github.com/johnquangdev/one-on-one-manager/internal/usecase/errors"
)

// AnalyticsService computes dashboards and stores AI analysis results
type AnalyticsService struct {
	analyticsRepo repositories.AnalyticsRepository
	personRepo    repositories.PersonRepository
	meetingRepo   repositories.MeetingRepository
	analyzer      analyzer.Service
	now           func() time.Time
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	analyticsRepo repositories.AnalyticsRepository,
	personRepo repositories.PersonRepository,
	meetingRepo repositories.MeetingRepository,
	analyzer analyzer.Service,
) *AnalyticsService {
	return &AnalyticsService{
		analyticsRepo: analyticsRepo,
		personRepo:    personRepo,
		meetingRepo:   meetingRepo,
		analyzer:      analyzer,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Overview builds the owner's dashboard, last 180 days by default
func (s *AnalyticsService) Overview(ctx context.Context, ownerID uint, window Window) (*Overview, error) {
	from, to := s.resolve(window, OverviewWindow)

	people, err := s.analyticsRepo.CountActivePeople(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count people: %w", err)
	}

	dates, err := s.analyticsRepo.MeetingDates(ctx, ownerID, nil, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load meeting dates: %w", err)
	}

	topics, err := s.analyticsRepo.TopTopics(ctx, ownerID, nil, from, to, topTopicsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to count topics: %w", err)
	}

	sentiment, err := s.analyticsRepo.SentimentCounts(ctx, ownerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to count sentiment: %w", err)
	}

	perMonth := make(map[string]int64)
	for _, d := range dates {
		perMonth[d.UTC().Format(monthLayout)]++
	}

	return &Overview{
		TotalEmployees:        people,
		TotalMeetings:         int64(len(dates)),
		TopTopics:             nonNilTopics(topics),
		SentimentDistribution: sentiment,
		MeetingsPerMonth:      perMonth,
	}, nil
}

// Employee builds one person's report, last 365 days by default.
// Action item counts cover the person's whole history.
func (s *AnalyticsService) Employee(ctx context.Context, ownerID, employeeID uint, window Window) (*EmployeeSummary, error) {
	person, err := s.personRepo.FindByID(ctx, ownerID, employeeID)
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return nil, usecaseErrors.ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to get person: %w", err)
	}

	from, to := s.resolve(window, EmployeeWindow)

	dates, err := s.analyticsRepo.MeetingDates(ctx, ownerID, &employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load meeting dates: %w", err)
	}

	topics, err := s.analyticsRepo.TopTopics(ctx, ownerID, &employeeID, from, to, topTopicsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to count topics: %w", err)
	}

	items, err := s.analyticsRepo.ActionItemCounts(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to count action items: %w", err)
	}

	return &EmployeeSummary{
		EmployeeID:           person.ID,
		EmployeeName:         person.Name,
		TotalMeetings:        int64(len(dates)),
		TopTopics:            nonNilTopics(topics),
		PendingActionItems:   items[entities.StatusPending] + items[entities.StatusInProgress],
		CompletedActionItems: items[entities.StatusCompleted],
	}, nil
}

// PendingActionItems lists open action items by due date
func (s *AnalyticsService) PendingActionItems(ctx context.Context, ownerID uint, employeeID *uint) ([]repositories.PendingActionItem, error) {
	rows, err := s.analyticsRepo.PendingActionItems(ctx, ownerID, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending action items: %w", err)
	}
	if rows == nil {
		rows = []repositories.PendingActionItem{}
	}
	return rows, nil
}

// Analyze stores insights, topics and sentiment on the meeting. It runs
// outside a request transaction; the write-back is a single statement.
func (s *AnalyticsService) Analyze(ctx context.Context, ownerID, meetingID uint, notes string) (*analyzer.Analysis, error) {
	if strings.TrimSpace(notes) == "" {
		return nil, usecaseErrors.ErrInvalidInput
	}

	meeting, err := s.meetingRepo.FindByID(ctx, ownerID, meetingID)
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}

	analysis := s.analyzer.Analyze(ctx, notes)

	err = s.meetingRepo.StoreAnalysis(ctx, ownerID, meeting.ID, repositories.MeetingAnalysis{
		Insights:  analysis.Insights,
		Sentiment: analysis.Sentiment,
		Topics:    analysis.Topics,
	})
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to store analysis: %w", err)
	}
	return analysis, nil
}

// TopicTrends groups topic occurrences by month
func (s *AnalyticsService) TopicTrends(ctx context.Context, ownerID uint, months int) (map[string]map[string]int64, error) {
	if months == 0 {
		months = defaultTrendMonths
	}
	if months < 1 || months > maxTrendMonths {
		return nil, usecaseErrors.ErrInvalidInput
	}

	to := s.now()
	from := to.Add(-time.Duration(months) * 30 * 24 * time.Hour)

	occurrences, err := s.analyticsRepo.TopicOccurrences(ctx, ownerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load topics: %w", err)
	}

	trends := make(map[string]map[string]int64)
	for _, o := range occurrences {
		month := o.Date.UTC().Format(monthLayout)
		if trends[month] == nil {
			trends[month] = make(map[string]int64)
		}
		trends[month][o.Name]++
	}
	return trends, nil
}

func (s *AnalyticsService) resolve(window Window, span time.Duration) (time.Time, time.Time) {
	to := s.now()
	if window.To != nil {
		to = *window.To
	}
	from := to.Add(-span)
	if window.From != nil {
		from = *window.From
	}
	return from, to
}

func nonNilTopics(topics []repositories.TopicCount) []repositories.TopicCount {
	if topics == nil {
		return []repositories.TopicCount{}
	}
	return topics
}

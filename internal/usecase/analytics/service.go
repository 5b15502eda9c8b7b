package analytics

import (
	"context"
	"time"

	"github.com/johnquangdev/one-on-one-manager/internal/domain/repositories"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/analyzer"
)

// Default reporting windows
const (
	OverviewWindow = 180 * 24 * time.Hour
	EmployeeWindow = 365 * 24 * time.Hour

	topTopicsLimit     = 10
	defaultTrendMonths = 6
	maxTrendMonths     = 24
	monthLayout        = "2006-01"
)

// Service defines the interface for the analytics use case
type Service interface {
	// Overview summarizes the owner's meetings in [from, to]
	Overview(ctx context.Context, ownerID uint, window Window) (*Overview, error)

	// Employee summarizes one person's meetings and action items
	Employee(ctx context.Context, ownerID, employeeID uint, window Window) (*EmployeeSummary, error)

	PendingActionItems(ctx context.Context, ownerID uint, employeeID *uint) ([]repositories.PendingActionItem, error)

	// Analyze runs the analyzer on notes and stores the result on the meeting
	Analyze(ctx context.Context, ownerID, meetingID uint, notes string) (*analyzer.Analysis, error)

	// TopicTrends counts topic names per YYYY-MM over the last months*30 days
	TopicTrends(ctx context.Context, ownerID uint, months int) (map[string]map[string]int64, error)
}

// Ensure AnalyticsService implements Service interface
var _ Service = (*AnalyticsService)(nil)

// Window bounds a report. Nil ends take the report's default.
type Window struct {
	From *time.Time
	To   *time.Time
}

// Overview is the dashboard summary across people
type Overview struct {
	TotalEmployees        int64
	TotalMeetings         int64
	TopTopics             []repositories.TopicCount
	SentimentDistribution map[string]int64
	MeetingsPerMonth      map[string]int64
}

// EmployeeSummary is the per-person report
type EmployeeSummary struct {
	EmployeeID           uint
	EmployeeName         string
	TotalMeetings        int64
	TopTopics            []repositories.TopicCount
	PendingActionItems   int64
	CompletedActionItems int64
}

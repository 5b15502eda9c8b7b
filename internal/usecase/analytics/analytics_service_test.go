package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/johnquangdev/one-on-one-manager/internal/adapter/repository"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
	"github.com/johnquangdev/one-on-one-manager/internal/testutil"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/analytics"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/analyzer"
	usecaseErrors "github.com/johnquangdev/one-on-one-manager/internal/usecase/errors"
	"github.com/johnquangdev/one-on-one-manager/pkg/ai"
	"github.com/johnquangdev/one-on-one-manager/pkg/config"
)

func newService(db *gorm.DB) *analytics.AnalyticsService {
	return analytics.NewAnalyticsService(
		repository.NewAnalyticsRepository(db),
		repository.NewPersonRepository(db),
		repository.NewMeetingRepository(db),
		analyzer.NewAnalyzer(&ai.Providers{}, config.AIConfig{}, nil, zap.NewNop()),
	)
}

func createMeeting(t *testing.T, db *gorm.DB, ownerID, personID uint, date time.Time, topics ...string) *entities.Meeting {
	t.Helper()
	meeting := &entities.Meeting{UserID: &ownerID, EmployeeID: personID, Date: date, DurationMinutes: 30}
	for _, name := range topics {
		meeting.Topics = append(meeting.Topics, entities.Topic{Name: name})
	}
	require.NoError(t, db.Omit("Employee").Create(meeting).Error)
	return meeting
}

func TestOverview(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newService(db)
	ctx := context.Background()
	owner := testutil.CreateUser(t, db, "owner", "")
	dana := testutil.CreatePerson(t, db, owner.ID, "Dana")
	noa := testutil.CreatePerson(t, db, owner.ID, "Noa")
	require.NoError(t, db.Model(noa).Update("is_active", false).Error)

	now := time.Now().UTC()
	createMeeting(t, db, owner.ID, dana.ID, now.AddDate(0, 0, -1), "career", "workload")
	createMeeting(t, db, owner.ID, dana.ID, now.AddDate(0, 0, -40), "career")
	createMeeting(t, db, owner.ID, noa.ID, now.AddDate(0, 0, -400), "career")

	overview, err := svc.Overview(ctx, owner.ID, analytics.Window{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), overview.TotalEmployees)
	assert.Equal(t, int64(2), overview.TotalMeetings)
	require.NotEmpty(t, overview.TopTopics)
	assert.Equal(t, "career", overview.TopTopics[0].Name)
	assert.Equal(t, int64(2), overview.TopTopics[0].Count)

	var total int64
	for _, n := range overview.MeetingsPerMonth {
		total += n
	}
	assert.Equal(t, int64(2), total)
	assert.Contains(t, overview.MeetingsPerMonth, now.AddDate(0, 0, -1).Format("2006-01"))
}

func TestEmployee(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newService(db)
	ctx := context.Background()
	owner := testutil.CreateUser(t, db, "owner", "")
	other := testutil.CreateUser(t, db, "other", "")
	dana := testutil.CreatePerson(t, db, owner.ID, "Dana")

	meeting := createMeeting(t, db, owner.ID, dana.ID, time.Now().UTC().AddDate(0, -2, 0), "feedback")
	for _, status := range []entities.Status{entities.StatusPending, entities.StatusInProgress, entities.StatusCompleted, entities.StatusCancelled} {
		require.NoError(t, db.Create(&entities.ActionItem{MeetingID: meeting.ID, Description: "x", Status: status}).Error)
	}

	summary, err := svc.Employee(ctx, owner.ID, dana.ID, analytics.Window{})
	require.NoError(t, err)
	assert.Equal(t, "Dana", summary.EmployeeName)
	assert.Equal(t, int64(1), summary.TotalMeetings)
	assert.Equal(t, int64(2), summary.PendingActionItems)
	assert.Equal(t, int64(1), summary.CompletedActionItems)

	_, err = svc.Employee(ctx, other.ID, dana.ID, analytics.Window{})
	assert.ErrorIs(t, err, usecaseErrors.ErrPersonNotFound)
}

func TestAnalyze_StoresResult(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newService(db)
	ctx := context.Background()
	owner := testutil.CreateUser(t, db, "owner", "")
	dana := testutil.CreatePerson(t, db, owner.ID, "Dana")
	meeting := createMeeting(t, db, owner.ID, dana.ID, time.Now().UTC())

	analysis, err := svc.Analyze(ctx, owner.ID, meeting.ID, "Great progress on the project, team is happy")
	require.NoError(t, err)
	assert.Equal(t, analyzer.SentimentPositive, analysis.Sentiment)

	var stored entities.Meeting
	require.NoError(t, db.First(&stored, meeting.ID).Error)
	require.NotNil(t, stored.AISentiment)
	assert.Equal(t, analyzer.SentimentPositive, *stored.AISentiment)
	require.NotNil(t, stored.AIInsights)
	assert.Equal(t, analysis.Topics, stored.TopicList())

	_, err = svc.Analyze(ctx, owner.ID, 999, "notes")
	assert.ErrorIs(t, err, usecaseErrors.ErrMeetingNotFound)
}

func TestTopicTrends(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newService(db)
	ctx := context.Background()
	owner := testutil.CreateUser(t, db, "owner", "")
	dana := testutil.CreatePerson(t, db, owner.ID, "Dana")

	recent := time.Now().UTC().AddDate(0, 0, -2)
	createMeeting(t, db, owner.ID, dana.ID, recent, "career", "career", "team")
	createMeeting(t, db, owner.ID, dana.ID, time.Now().UTC().AddDate(-1, 0, 0), "old")

	trends, err := svc.TopicTrends(ctx, owner.ID, 0)
	require.NoError(t, err)
	month := trends[recent.Format("2006-01")]
	require.NotNil(t, month)
	assert.Equal(t, int64(2), month["career"])
	assert.Equal(t, int64(1), month["team"])
	for _, topics := range trends {
		assert.NotContains(t, topics, "old")
	}

	_, err = svc.TopicTrends(ctx, owner.ID, 25)
	assert.ErrorIs(t, err, usecaseErrors.ErrInvalidInput)
}

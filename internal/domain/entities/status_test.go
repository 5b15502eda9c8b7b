package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskSetStatus_StampsCompletion(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	task := &Task{Status: StatusPending}

	task.SetStatus(StatusCompleted, now)
	require.NotNil(t, task.CompletedAt)
	assert.Equal(t, now, *task.CompletedAt)
	assert.Equal(t, StatusCompleted, task.Status)
}

func TestTaskSetStatus_LeavingCompletedKeepsTimestamp(t *testing.T) {
	stamped := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	task := &Task{Status: StatusCompleted, CompletedAt: &stamped}

	task.SetStatus(StatusInProgress, stamped.Add(time.Hour))
	require.NotNil(t, task.CompletedAt)
	assert.Equal(t, stamped, *task.CompletedAt)
	assert.Equal(t, StatusInProgress, task.Status)
}

func TestTaskSetStatus_RecompletingKeepsOriginalStamp(t *testing.T) {
	stamped := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	task := &Task{Status: StatusCompleted, CompletedAt: &stamped}

	task.SetStatus(StatusCompleted, stamped.Add(time.Hour))
	assert.Equal(t, stamped, *task.CompletedAt)
}

func TestActionItemSetStatus(t *testing.T) {
	now := time.Now()
	item := &ActionItem{Status: StatusPending}

	item.SetStatus(StatusInProgress, now)
	assert.Nil(t, item.CompletedAt)

	item.SetStatus(StatusCompleted, now)
	require.NotNil(t, item.CompletedAt)

	item.SetStatus(StatusPending, now.Add(time.Minute))
	assert.NotNil(t, item.CompletedAt)
}

func TestPriorityRank(t *testing.T) {
	assert.Greater(t, PriorityHigh.Rank(), PriorityMedium.Rank())
	assert.Greater(t, PriorityMedium.Rank(), PriorityLow.Rank())
	assert.Greater(t, PriorityLow.Rank(), Priority("unknown").Rank())
}

func TestMeetingTopicList(t *testing.T) {
	m := &Meeting{}
	assert.Nil(t, m.TopicList())

	m.SetTopicList([]string{"career", "team"})
	assert.Equal(t, []string{"career", "team"}, m.TopicList())

	m.AITopics = []byte("not json")
	assert.Nil(t, m.TopicList())
}

func TestNormalizeUsername(t *testing.T) {
	assert.Equal(t, "dana levi", NormalizeUsername("  Dana Levi "))
}

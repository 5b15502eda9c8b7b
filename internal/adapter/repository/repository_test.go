package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/one-on-one-manager/internal/adapter/repository"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/repositories"
	"github.com/johnquangdev/one-on-one-manager/internal/testutil"
)

func TestPersonRepository_ListFilters(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := repository.NewPersonRepository(db)

	owner := testutil.CreateUser(t, db, "owner", "")
	other := testutil.CreateUser(t, db, "other", "")

	alice := testutil.CreatePerson(t, db, owner.ID, "Alice Cohen")
	bob := testutil.CreatePerson(t, db, owner.ID, "Bob 50%")
	testutil.CreatePerson(t, db, other.ID, "Alice Levi")
	require.NoError(t, repo.Deactivate(ctx, bob.ID))

	people, err := repo.List(ctx, repositories.PersonFilters{OwnerID: owner.ID, ActiveOnly: true, Limit: 100})
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, alice.ID, people[0].ID)

	people, err = repo.List(ctx, repositories.PersonFilters{OwnerID: owner.ID, Search: "ALICE", Limit: 100})
	require.NoError(t, err)
	require.Len(t, people, 1)

	// % is matched literally
	people, err = repo.List(ctx, repositories.PersonFilters{OwnerID: owner.ID, Search: "50%", Limit: 100})
	require.NoError(t, err)
	require.Len(t, people, 1)
	assert.Equal(t, bob.ID, people[0].ID)

	found, err := repo.FindByID(ctx, owner.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, found.IsActive)

	_, err = repo.FindByID(ctx, other.ID, bob.ID)
	assert.ErrorIs(t, err, entities.ErrNotFound)
}

func TestPersonRepository_Stats(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := repository.NewPersonRepository(db)

	owner := testutil.CreateUser(t, db, "owner", "")
	person := testutil.CreatePerson(t, db, owner.ID, "Dana")
	idle := testutil.CreatePerson(t, db, owner.ID, "Idle")

	older := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	for _, d := range []time.Time{older, newer} {
		require.NoError(t, db.Create(&entities.Meeting{UserID: &owner.ID, EmployeeID: person.ID, Date: d, DurationMinutes: 30}).Error)
	}
	for _, s := range []entities.Status{entities.StatusPending, entities.StatusCompleted} {
		require.NoError(t, db.Create(&entities.Task{
			UserID: &owner.ID, Title: "talk", TaskType: entities.TaskTypeDiscussWith,
			Priority: entities.PriorityMedium, Status: s, PersonID: &person.ID,
		}).Error)
	}

	stats, err := repo.Stats(ctx, []uint{person.ID, idle.ID})
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats[person.ID].MeetingCount)
	require.NotNil(t, stats[person.ID].LastMeetingDate)
	assert.True(t, newer.Equal(*stats[person.ID].LastMeetingDate))
	assert.Equal(t, int64(1), stats[person.ID].PendingDiscussionTopics)

	assert.Zero(t, stats[idle.ID].MeetingCount)
	assert.Nil(t, stats[idle.ID].LastMeetingDate)
}

func TestPersonRepository_HardDeleteCascades(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := repository.NewPersonRepository(db)

	owner := testutil.CreateUser(t, db, "owner", "")
	person := testutil.CreatePerson(t, db, owner.ID, "Dana")

	meeting := &entities.Meeting{
		UserID: &owner.ID, EmployeeID: person.ID, Date: time.Now().UTC(), DurationMinutes: 30,
		ActionItems: []entities.ActionItem{{Description: "follow up", Status: entities.StatusPending}},
		Topics:      []entities.Topic{{Name: "career"}},
	}
	require.NoError(t, db.Create(meeting).Error)
	require.NoError(t, db.Create(&entities.Task{
		UserID: &owner.ID, Title: "prep review", TaskType: entities.TaskTypeDiscussWith,
		Priority: entities.PriorityLow, Status: entities.StatusPending, PersonID: &person.ID,
	}).Error)
	note := &entities.QuickNote{UserID: &owner.ID, Title: "phone", Content: "050", Category: entities.NoteCategoryContact, PersonID: &person.ID}
	require.NoError(t, db.Create(note).Error)

	require.NoError(t, repo.HardDelete(ctx, person.ID))

	for _, model := range []interface{}{&entities.Person{}, &entities.Meeting{}, &entities.ActionItem{}, &entities.Topic{}, &entities.Task{}} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Zero(t, count, "%T", model)
	}

	var reloaded entities.QuickNote
	require.NoError(t, db.First(&reloaded, note.ID).Error)
	assert.Nil(t, reloaded.PersonID)
}

func TestMeetingRepository_NestedCreateAndDelete(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := repository.NewMeetingRepository(db)

	owner := testutil.CreateUser(t, db, "owner", "")
	person := testutil.CreatePerson(t, db, owner.ID, "Dana")

	meeting := &entities.Meeting{
		UserID: &owner.ID, EmployeeID: person.ID, Date: time.Now().UTC(), DurationMinutes: 30,
		ActionItems: []entities.ActionItem{{Description: "follow up", Status: entities.StatusPending}},
		Topics:      []entities.Topic{{Name: "career"}},
	}
	require.NoError(t, repo.Create(ctx, meeting))

	loaded, err := repo.FindByID(ctx, owner.ID, meeting.ID)
	require.NoError(t, err)
	require.Len(t, loaded.ActionItems, 1)
	require.Len(t, loaded.Topics, 1)
	assert.Equal(t, meeting.ID, loaded.ActionItems[0].MeetingID)
	assert.Equal(t, "Dana", *loaded.EmployeeName())

	task := &entities.Task{
		UserID: &owner.ID, Title: "from meeting", TaskType: entities.TaskTypeFromMeeting,
		Priority: entities.PriorityMedium, Status: entities.StatusPending, MeetingID: &meeting.ID,
	}
	require.NoError(t, db.Create(task).Error)

	require.NoError(t, repo.Delete(ctx, meeting.ID))

	_, err = repo.FindByID(ctx, owner.ID, meeting.ID)
	assert.ErrorIs(t, err, entities.ErrNotFound)

	var reloaded entities.Task
	require.NoError(t, db.First(&reloaded, task.ID).Error)
	assert.Nil(t, reloaded.MeetingID)
}

func TestTaskRepository_ListCountsAndOrdering(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := repository.NewTaskRepository(db)

	owner := testutil.CreateUser(t, db, "owner", "")
	due := time.Now().UTC().Add(24 * time.Hour)

	create := func(title string, status entities.Status, dueDate *time.Time) *entities.Task {
		task := &entities.Task{
			UserID: &owner.ID, Title: title, TaskType: entities.TaskTypePersonal,
			Priority: entities.PriorityMedium, Status: status, DueDate: dueDate,
		}
		require.NoError(t, repo.Create(ctx, task))
		return task
	}
	undated := create("undated", entities.StatusPending, nil)
	dated := create("dated", entities.StatusInProgress, &due)
	create("done", entities.StatusCompleted, nil)

	tasks, counts, err := repo.List(ctx, repositories.TaskFilters{OwnerID: owner.ID, Limit: 1})
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
	assert.Equal(t, repositories.TaskCounts{Total: 3, Pending: 1, InProgress: 1, Completed: 1}, counts)

	personal, err := repo.ListPersonal(ctx, owner.ID, nil)
	require.NoError(t, err)
	require.Len(t, personal, 3)
	assert.Equal(t, dated.ID, personal[0].ID)
	assert.NotEqual(t, dated.ID, personal[1].ID)

	pending := entities.StatusPending
	personal, err = repo.ListPersonal(ctx, owner.ID, &pending)
	require.NoError(t, err)
	require.Len(t, personal, 1)
	assert.Equal(t, undated.ID, personal[0].ID)
}

func TestCalendarRepository_ExternalIDAndPrepNotes(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := repository.NewCalendarRepository(db)

	owner := testutil.CreateUser(t, db, "owner", "")
	start := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	meeting := &entities.CalendarMeeting{
		UserID: &owner.ID, ExternalID: testutil.Ptr("evt-1"), Title: "standup",
		StartTime: start, EndTime: start.Add(15 * time.Minute), CalendarSource: entities.CalendarSourceGoogle,
	}
	require.NoError(t, repo.Create(ctx, meeting))

	dup := &entities.CalendarMeeting{
		UserID: &owner.ID, ExternalID: testutil.Ptr("evt-1"), Title: "again",
		StartTime: start, EndTime: start, CalendarSource: entities.CalendarSourceGoogle,
	}
	assert.Error(t, repo.Create(ctx, dup))

	found, err := repo.FindByExternalID(ctx, "evt-1")
	require.NoError(t, err)
	assert.Equal(t, meeting.ID, found.ID)

	for i, content := range []string{"b", "a"} {
		require.NoError(t, repo.CreatePrepNote(ctx, &entities.PrepNote{CalendarMeetingID: meeting.ID, Content: content, OrderIndex: 1 - i}))
	}
	count, err := repo.CountPrepNotes(ctx, meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	loaded, err := repo.FindByID(ctx, owner.ID, meeting.ID)
	require.NoError(t, err)
	require.Len(t, loaded.PrepNotes, 2)
	assert.Equal(t, "a", loaded.PrepNotes[0].Content)

	day, err := repo.ListBetween(ctx, owner.ID, start.Add(-time.Hour), start.Add(time.Hour))
	require.NoError(t, err)
	assert.Len(t, day, 1)

	require.NoError(t, repo.Delete(ctx, meeting.ID))
	count, err = repo.CountPrepNotes(ctx, meeting.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestNoteRepository_PinnedFirst(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := repository.NewNoteRepository(db)

	owner := testutil.CreateUser(t, db, "owner", "")
	plain := &entities.QuickNote{UserID: &owner.ID, Title: "wifi", Content: "guest_net", Category: entities.NoteCategoryGeneral}
	pinned := &entities.QuickNote{UserID: &owner.ID, Title: "vpn", Content: "host", Category: entities.NoteCategoryLink, IsPinned: true}
	require.NoError(t, repo.Create(ctx, pinned))
	require.NoError(t, repo.Create(ctx, plain))

	notes, err := repo.List(ctx, repositories.NoteFilters{OwnerID: owner.ID})
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, pinned.ID, notes[0].ID)

	notes, err = repo.List(ctx, repositories.NoteFilters{OwnerID: owner.ID, Search: "GUEST_"})
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, plain.ID, notes[0].ID)

	notes, err = repo.List(ctx, repositories.NoteFilters{OwnerID: owner.ID, PinnedOnly: true})
	require.NoError(t, err)
	require.Len(t, notes, 1)
}

func TestAnalyticsRepository_Aggregates(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := repository.NewAnalyticsRepository(db)

	owner := testutil.CreateUser(t, db, "owner", "")
	person := testutil.CreatePerson(t, db, owner.ID, "Dana")
	now := time.Now().UTC()

	positive := "positive"
	for i := 0; i < 2; i++ {
		require.NoError(t, db.Create(&entities.Meeting{
			UserID: &owner.ID, EmployeeID: person.ID, Date: now.AddDate(0, 0, -i), DurationMinutes: 30,
			AISentiment: &positive,
			ActionItems: []entities.ActionItem{{Description: "follow up", Status: entities.StatusPending}},
			Topics:      []entities.Topic{{Name: "career"}},
		}).Error)
	}

	from, to := now.AddDate(0, 0, -30), now.Add(time.Minute)

	active, err := repo.CountActivePeople(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), active)

	dates, err := repo.MeetingDates(ctx, owner.ID, &person.ID, from, to)
	require.NoError(t, err)
	assert.Len(t, dates, 2)

	topics, err := repo.TopTopics(ctx, owner.ID, nil, from, to, 10)
	require.NoError(t, err)
	require.Len(t, topics, 1)
	assert.Equal(t, "career", topics[0].Name)
	assert.Equal(t, int64(2), topics[0].Count)

	sentiments, err := repo.SentimentCounts(ctx, owner.ID, from, to)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"positive": 2}, sentiments)

	counts, err := repo.ActionItemCounts(ctx, person.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[entities.StatusPending])

	pending, err := repo.PendingActionItems(ctx, owner.ID, nil)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "Dana", pending[0].EmployeeName)

	occurrences, err := repo.TopicOccurrences(ctx, owner.ID, from, to)
	require.NoError(t, err)
	assert.Len(t, occurrences, 2)
}

func TestUserRepository_ClaimUnowned(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := repository.NewUserRepository(db)

	owner := testutil.CreateUser(t, db, "owner", "")
	other := testutil.CreateUser(t, db, "other", "")

	legacy := &entities.Person{Name: "Legacy", PersonType: entities.PersonTypeEmployee, IsActive: true}
	require.NoError(t, db.Create(legacy).Error)
	require.NoError(t, db.Create(&entities.QuickNote{Title: "old", Content: "x", Category: entities.NoteCategoryGeneral}).Error)
	testutil.CreatePerson(t, db, other.ID, "Owned")

	result, err := repo.ClaimUnowned(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.People)
	assert.Equal(t, int64(1), result.QuickNotes)
	assert.Zero(t, result.Tasks)

	var claimed entities.Person
	require.NoError(t, db.First(&claimed, legacy.ID).Error)
	require.NotNil(t, claimed.UserID)
	assert.Equal(t, owner.ID, *claimed.UserID)

	result, err = repo.ClaimUnowned(ctx, owner.ID)
	require.NoError(t, err)
	assert.Zero(t, result.People)
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := repository.NewUserRepository(db)

	require.NoError(t, repo.Create(ctx, &entities.User{Username: "dana", PasswordHash: "x"}))

	err := repo.Create(ctx, &entities.User{Username: "dana", PasswordHash: "y"})
	assert.ErrorIs(t, err, entities.ErrDuplicate)
}

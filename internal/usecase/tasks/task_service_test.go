package tasks_test

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
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/attribution"
	usecaseErrors "github.com/johnquangdev/one-on-one-manager/internal/usecase/errors"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/tasks"
)

func newService(db *gorm.DB) *tasks.TaskService {
	userRepo := repository.NewUserRepository(db)
	personRepo := repository.NewPersonRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	return tasks.NewTaskService(
		taskRepo,
		personRepo,
		repository.NewMeetingRepository(db),
		attribution.NewService(userRepo, personRepo, taskRepo, zap.NewNop()),
	)
}

func TestCreate_Defaults(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newService(db)
	owner := testutil.CreateUser(t, db, "owner", "")

	task, err := svc.Create(context.Background(), owner.ID, tasks.CreateInput{Title: "  write review  "})
	require.NoError(t, err)

	assert.Equal(t, "write review", task.Title)
	assert.Equal(t, entities.TaskTypePersonal, task.TaskType)
	assert.Equal(t, entities.PriorityMedium, task.Priority)
	assert.Equal(t, entities.StatusPending, task.Status)
	assert.Nil(t, task.CompletedAt)
	assert.Nil(t, task.PersonName())
}

func TestCreate_ChecksReferences(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newService(db)
	ctx := context.Background()
	owner := testutil.CreateUser(t, db, "owner", "")
	other := testutil.CreateUser(t, db, "other", "")
	foreign := testutil.CreatePerson(t, db, other.ID, "Foreign")
	dana := testutil.CreatePerson(t, db, owner.ID, "Dana")

	_, err := svc.Create(ctx, owner.ID, tasks.CreateInput{Title: "t", PersonID: &foreign.ID})
	assert.ErrorIs(t, err, usecaseErrors.ErrPersonNotFound)

	_, err = svc.Create(ctx, owner.ID, tasks.CreateInput{Title: "t", MeetingID: testutil.Ptr(uint(999))})
	assert.ErrorIs(t, err, usecaseErrors.ErrMeetingNotFound)

	_, err = svc.Create(ctx, owner.ID, tasks.CreateInput{Title: "t", Priority: "urgent"})
	assert.ErrorIs(t, err, entities.ErrInvalidPriority)

	_, err = svc.Create(ctx, owner.ID, tasks.CreateInput{Title: "   "})
	assert.ErrorIs(t, err, usecaseErrors.ErrInvalidInput)

	task, err := svc.Create(ctx, owner.ID, tasks.CreateInput{Title: "t", PersonID: &dana.ID, TaskType: entities.TaskTypeDiscussWith})
	require.NoError(t, err)
	require.NotNil(t, task.PersonName())
	assert.Equal(t, "Dana", *task.PersonName())
}

func TestUpdate_CompletionStamp(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newService(db)
	ctx := context.Background()
	owner := testutil.CreateUser(t, db, "owner", "")

	task, err := svc.Create(ctx, owner.ID, tasks.CreateInput{Title: "ship it"})
	require.NoError(t, err)

	done, err := svc.Complete(ctx, owner.ID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusCompleted, done.Status)
	require.NotNil(t, done.CompletedAt)
	stamp := *done.CompletedAt

	again, err := svc.Complete(ctx, owner.ID, task.ID)
	require.NoError(t, err)
	require.NotNil(t, again.CompletedAt)
	assert.True(t, stamp.Equal(*again.CompletedAt))

	reopened, err := svc.Update(ctx, owner.ID, task.ID, tasks.UpdateInput{Status: testutil.Ptr(entities.StatusInProgress)})
	require.NoError(t, err)
	assert.Equal(t, entities.StatusInProgress, reopened.Status)
	assert.NotNil(t, reopened.CompletedAt)

	_, err = svc.Update(ctx, owner.ID, task.ID, tasks.UpdateInput{Status: testutil.Ptr(entities.Status("done"))})
	assert.ErrorIs(t, err, entities.ErrInvalidStatus)
}

func TestCreateBulk_AllOrNothing(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newService(db)
	ctx := context.Background()
	owner := testutil.CreateUser(t, db, "owner", "")
	dana := testutil.CreatePerson(t, db, owner.ID, "Dana")

	_, err := svc.CreateBulk(ctx, owner.ID, []tasks.CreateInput{
		{Title: "first"},
		{Title: "second", PersonID: testutil.Ptr(uint(404))},
	})
	assert.ErrorIs(t, err, usecaseErrors.ErrPersonNotFound)

	var count int64
	require.NoError(t, db.Model(&entities.Task{}).Count(&count).Error)
	assert.Zero(t, count)

	created, err := svc.CreateBulk(ctx, owner.ID, []tasks.CreateInput{
		{Title: "first"},
		{Title: "second", PersonID: &dana.ID, TaskType: entities.TaskTypeDiscussWith},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.NotZero(t, created[0].ID)
	assert.NotZero(t, created[1].ID)
}

func TestDiscussWith(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newService(db)
	ctx := context.Background()
	owner := testutil.CreateUser(t, db, "owner", "")
	dana := testutil.CreatePerson(t, db, owner.ID, "Dana")
	noa := testutil.CreatePerson(t, db, owner.ID, "Noa")

	low, err := svc.Create(ctx, owner.ID, tasks.CreateInput{Title: "low", TaskType: entities.TaskTypeDiscussWith, Priority: entities.PriorityLow, PersonID: &dana.ID})
	require.NoError(t, err)
	high, err := svc.Create(ctx, owner.ID, tasks.CreateInput{Title: "high", TaskType: entities.TaskTypeDiscussWith, Priority: entities.PriorityHigh, PersonID: &dana.ID})
	require.NoError(t, err)
	_, err = svc.Create(ctx, owner.ID, tasks.CreateInput{Title: "closed", TaskType: entities.TaskTypeDiscussWith, Status: entities.StatusCompleted, PersonID: &dana.ID})
	require.NoError(t, err)
	_, err = svc.Create(ctx, owner.ID, tasks.CreateInput{Title: "noa", TaskType: entities.TaskTypeDiscussWith, PersonID: &noa.ID})
	require.NoError(t, err)

	rows, err := svc.DiscussWith(ctx, owner.ID, dana.ID, false)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, high.ID, rows[0].ID)
	assert.Equal(t, low.ID, rows[1].ID)

	rows, err = svc.DiscussWith(ctx, owner.ID, dana.ID, true)
	require.NoError(t, err)
	assert.Len(t, rows, 3)

	_, err = svc.DiscussWith(ctx, owner.ID, 999, false)
	assert.ErrorIs(t, err, usecaseErrors.ErrPersonNotFound)
}

func TestToday_IncludesOverdue(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newService(db)
	ctx := context.Background()
	owner := testutil.CreateUser(t, db, "owner", "")

	now := time.Now().UTC()
	yesterday := now.AddDate(0, 0, -1)
	todayLate := time.Date(now.Year(), now.Month(), now.Day(), 23, 0, 0, 0, time.UTC)
	lastInstant := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 500_000_000, time.UTC)
	midnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, time.UTC)
	tomorrow := now.AddDate(0, 0, 2)

	overdue, err := svc.Create(ctx, owner.ID, tasks.CreateInput{Title: "overdue", DueDate: &yesterday})
	require.NoError(t, err)
	today, err := svc.Create(ctx, owner.ID, tasks.CreateInput{Title: "today", DueDate: &todayLate, Status: entities.StatusInProgress})
	require.NoError(t, err)
	final, err := svc.Create(ctx, owner.ID, tasks.CreateInput{Title: "last half second", DueDate: &lastInstant})
	require.NoError(t, err)
	_, err = svc.Create(ctx, owner.ID, tasks.CreateInput{Title: "midnight", DueDate: &midnight})
	require.NoError(t, err)
	_, err = svc.Create(ctx, owner.ID, tasks.CreateInput{Title: "later", DueDate: &tomorrow})
	require.NoError(t, err)
	_, err = svc.Create(ctx, owner.ID, tasks.CreateInput{Title: "done", DueDate: &yesterday, Status: entities.StatusCompleted})
	require.NoError(t, err)
	_, err = svc.Create(ctx, owner.ID, tasks.CreateInput{Title: "undated"})
	require.NoError(t, err)

	rows, err := svc.Today(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, overdue.ID, rows[0].ID)
	assert.Equal(t, today.ID, rows[1].ID)
	assert.Equal(t, final.ID, rows[2].ID)
}

func TestDelete_OtherOwner(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newService(db)
	ctx := context.Background()
	owner := testutil.CreateUser(t, db, "owner", "")
	other := testutil.CreateUser(t, db, "other", "")

	task, err := svc.Create(ctx, owner.ID, tasks.CreateInput{Title: "mine"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, other.ID, task.ID), usecaseErrors.ErrTaskNotFound)
	require.NoError(t, svc.Delete(ctx, owner.ID, task.ID))

	_, err = svc.Get(ctx, owner.ID, task.ID)
	assert.ErrorIs(t, err, usecaseErrors.ErrTaskNotFound)
}

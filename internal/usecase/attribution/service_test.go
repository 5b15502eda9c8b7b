package attribution_test

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
	"github.com/johnquangdev/one-on-one-manager/internal/domain/repositories"
	"github.com/johnquangdev/one-on-one-manager/internal/testutil"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/attribution"
)

func newService(db *gorm.DB) *attribution.Service {
	return attribution.NewService(
		repository.NewUserRepository(db),
		repository.NewPersonRepository(db),
		repository.NewTaskRepository(db),
		zap.NewNop(),
	)
}

func createTask(t *testing.T, db *gorm.DB, ownerID, personID uint, title string, priority entities.Priority, status entities.Status, createdAt time.Time) *entities.Task {
	t.Helper()
	task := &entities.Task{
		UserID:    &ownerID,
		Title:     title,
		TaskType:  entities.TaskTypeDiscussWith,
		Priority:  priority,
		Status:    status,
		PersonID:  &personID,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(task).Error)
	return task
}

func TestMatchPersonIDs(t *testing.T) {
	user := &entities.User{Username: "dana", DisplayName: testutil.Ptr("Dana Levi")}
	people := []repositories.PersonIdentity{
		{ID: 1, Name: "  DANA  "},
		{ID: 2, Name: "dana levi"},
		{ID: 3, Name: "Dana L."},
		{ID: 4, Name: "danalevi"},
	}

	assert.Equal(t, []uint{1, 2}, attribution.MatchPersonIDs(user, people))
	assert.Empty(t, attribution.MatchPersonIDs(&entities.User{Username: "  "}, people))
}

func TestAssignedToMe_TasksFromOtherUsers(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	svc := newService(db)

	alice := testutil.CreateUser(t, db, "alice", "Alice Cohen")
	bob := testutil.CreateUser(t, db, "bob", "Bob Levi")

	aliceAtBob := testutil.CreatePerson(t, db, bob.ID, " alice cohen ")
	aliceSelf := testutil.CreatePerson(t, db, alice.ID, "Alice")

	base := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	low := createTask(t, db, bob.ID, aliceAtBob.ID, "low one", entities.PriorityLow, entities.StatusPending, base.Add(3*time.Hour))
	highOld := createTask(t, db, bob.ID, aliceAtBob.ID, "high old", entities.PriorityHigh, entities.StatusPending, base)
	highNew := createTask(t, db, bob.ID, aliceAtBob.ID, "high new", entities.PriorityHigh, entities.StatusInProgress, base.Add(time.Hour))
	createTask(t, db, bob.ID, aliceAtBob.ID, "done", entities.PriorityHigh, entities.StatusCompleted, base)
	// created by alice herself: never "assigned to me"
	createTask(t, db, alice.ID, aliceSelf.ID, "self", entities.PriorityHigh, entities.StatusPending, base)

	result, err := svc.AssignedToMe(ctx, alice.ID, false)
	require.NoError(t, err)

	ids := make([]uint, 0, len(result))
	for _, row := range result {
		ids = append(ids, row.Task.ID)
		assert.Equal(t, "Bob Levi", row.AssignedBy)
		assert.Equal(t, bob.ID, row.AssignedByID)
	}
	assert.Equal(t, []uint{highNew.ID, highOld.ID, low.ID}, ids)

	withCompleted, err := svc.AssignedToMe(ctx, alice.ID, true)
	require.NoError(t, err)
	assert.Len(t, withCompleted, 4)

	mine, err := svc.AssignedToMe(ctx, bob.ID, false)
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestAssignedToMe_ColleagueUpsertIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	svc := newService(db)

	alice := testutil.CreateUser(t, db, "alice", "")
	bob := testutil.CreateUser(t, db, "bob", "Bob Levi")
	aliceAtBob := testutil.CreatePerson(t, db, bob.ID, "Alice")
	createTask(t, db, bob.ID, aliceAtBob.ID, "review plan", entities.PriorityMedium, entities.StatusPending, time.Now().UTC())

	for i := 0; i < 2; i++ {
		_, err := svc.AssignedToMe(ctx, alice.ID, false)
		require.NoError(t, err)
	}

	var colleagues []entities.Person
	require.NoError(t, db.Where("user_id = ?", alice.ID).Find(&colleagues).Error)
	require.Len(t, colleagues, 1)
	assert.Equal(t, "Bob Levi", colleagues[0].Name)
	assert.Equal(t, entities.PersonTypeColleague, colleagues[0].PersonType)
	assert.True(t, colleagues[0].IsActive)
	require.NotNil(t, colleagues[0].Notes)
}

func TestAssignedToMe_ExistingPersonByUsernameIsReused(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	svc := newService(db)

	alice := testutil.CreateUser(t, db, "alice", "")
	bob := testutil.CreateUser(t, db, "bob", "Bob Levi")
	testutil.CreatePerson(t, db, alice.ID, "BOB")
	aliceAtBob := testutil.CreatePerson(t, db, bob.ID, "alice")
	createTask(t, db, bob.ID, aliceAtBob.ID, "review plan", entities.PriorityMedium, entities.StatusPending, time.Now().UTC())

	_, err := svc.AssignedToMe(ctx, alice.ID, false)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&entities.Person{}).Where("user_id = ?", alice.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAssignedToMe_NoMatchingPerson(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newService(db)

	carol := testutil.CreateUser(t, db, "carol", "")
	result, err := svc.AssignedToMe(context.Background(), carol.ID, false)
	require.NoError(t, err)
	assert.Empty(t, result)
}

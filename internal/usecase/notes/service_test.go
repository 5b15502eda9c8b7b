package notes_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/one-on-one-manager/internal/adapter/repository"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/repositories"
	"github.com/johnquangdev/one-on-one-manager/internal/testutil"
	usecaseErrors "github.com/johnquangdev/one-on-one-manager/internal/usecase/errors"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/notes"
)

func TestNoteLifecycle(t *testing.T) {
	db := testutil.NewDB(t)
	svc := notes.NewNoteService(repository.NewNoteRepository(db), repository.NewPersonRepository(db))
	ctx := context.Background()
	owner := testutil.CreateUser(t, db, "owner", "")
	dana := testutil.CreatePerson(t, db, owner.ID, "Dana")

	note, err := svc.Create(ctx, owner.ID, notes.CreateInput{Title: "vpn", Content: "ask IT", PersonID: &dana.ID})
	require.NoError(t, err)
	assert.Equal(t, entities.NoteCategoryGeneral, note.Category)
	require.NotNil(t, note.PersonName())
	assert.Equal(t, "Dana", *note.PersonName())

	pinned, err := svc.TogglePin(ctx, owner.ID, note.ID)
	require.NoError(t, err)
	assert.True(t, pinned.IsPinned)

	category := entities.NoteCategoryLink
	updated, err := svc.Update(ctx, owner.ID, note.ID, notes.UpdateInput{Category: &category, Content: testutil.Ptr("https://vpn")})
	require.NoError(t, err)
	assert.Equal(t, entities.NoteCategoryLink, updated.Category)
	assert.True(t, updated.IsPinned)

	rows, err := svc.List(ctx, repositories.NoteFilters{OwnerID: owner.ID, Category: &category})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "https://vpn", rows[0].Content)

	require.NoError(t, svc.Delete(ctx, owner.ID, note.ID))
	_, err = svc.Get(ctx, owner.ID, note.ID)
	assert.ErrorIs(t, err, usecaseErrors.ErrNoteNotFound)
}

func TestNoteValidation(t *testing.T) {
	db := testutil.NewDB(t)
	svc := notes.NewNoteService(repository.NewNoteRepository(db), repository.NewPersonRepository(db))
	ctx := context.Background()
	owner := testutil.CreateUser(t, db, "owner", "")
	other := testutil.CreateUser(t, db, "other", "")
	foreign := testutil.CreatePerson(t, db, other.ID, "Foreign")

	_, err := svc.Create(ctx, owner.ID, notes.CreateInput{Title: "t", Content: "c", PersonID: &foreign.ID})
	assert.ErrorIs(t, err, usecaseErrors.ErrPersonNotFound)

	_, err = svc.Create(ctx, owner.ID, notes.CreateInput{Title: "t", Content: "c", Category: "password"})
	assert.ErrorIs(t, err, entities.ErrInvalidCategory)

	_, err = svc.Create(ctx, owner.ID, notes.CreateInput{Title: " ", Content: "c"})
	assert.ErrorIs(t, err, usecaseErrors.ErrInvalidInput)

	note, err := svc.Create(ctx, owner.ID, notes.CreateInput{Title: "t", Content: "c"})
	require.NoError(t, err)
	_, err = svc.TogglePin(ctx, other.ID, note.ID)
	assert.ErrorIs(t, err, usecaseErrors.ErrNoteNotFound)
}

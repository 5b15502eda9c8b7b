package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/johnquangdev/one-on-one-manager/internal/adapter/repository"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/repositories"
	"github.com/johnquangdev/one-on-one-manager/internal/testutil"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/auth"
	usecaseErrors "github.com/johnquangdev/one-on-one-manager/internal/usecase/errors"
	"github.com/johnquangdev/one-on-one-manager/pkg/jwt"
)

// staleLookupRepo never sees existing users, like a registration racing
// another one between the username check and the insert
type staleLookupRepo struct {
	repositories.UserRepository
}

func (staleLookupRepo) FindByUsername(context.Context, string) (*entities.User, error) {
	return nil, entities.ErrNotFound
}

func newService(repo repositories.UserRepository) *auth.AuthService {
	manager := jwt.NewManager("access", "refresh", time.Hour, 24*time.Hour)
	return auth.NewAuthService(repo, manager).WithHashCost(bcrypt.MinCost)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newService(repository.NewUserRepository(db))
	ctx := context.Background()

	result, err := svc.Register(ctx, auth.RegisterInput{Username: " Dana ", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "dana", result.User.Username)

	_, err = svc.Register(ctx, auth.RegisterInput{Username: "DANA", Password: "pw"})
	assert.ErrorIs(t, err, usecaseErrors.ErrUsernameTaken)
}

func TestRegister_LostInsertRaceIsUsernameTaken(t *testing.T) {
	db := testutil.NewDB(t)
	svc := newService(staleLookupRepo{UserRepository: repository.NewUserRepository(db)})
	ctx := context.Background()

	_, err := svc.Register(ctx, auth.RegisterInput{Username: "dana", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, auth.RegisterInput{Username: "dana", Password: "pw"})
	assert.ErrorIs(t, err, usecaseErrors.ErrUsernameTaken)
}

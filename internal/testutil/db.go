// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
	"github.com/johnquangdev/one-on-one-manager/internal/infrastructure/database"
	"github.com/johnquangdev/one-on-one-manager/pkg/config"
)

// NewDB opens a private in-memory SQLite store with the schema applied.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			URL:          fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
			MaxConns:     1,
			MinConns:     1,
			ConnectRetry: time.Second,
		},
	}

	db, err := database.Open(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		_ = database.CloseDB(db)
	})
	return db
}

// CreateUser inserts a user with a placeholder hash
func CreateUser(t *testing.T, db *gorm.DB, username string, displayName string) *entities.User {
	t.Helper()
	user := &entities.User{Username: username, PasswordHash: "x"}
	if displayName != "" {
		user.DisplayName = &displayName
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreatePerson inserts an active person owned by ownerID
func CreatePerson(t *testing.T, db *gorm.DB, ownerID uint, name string) *entities.Person {
	t.Helper()
	person := &entities.Person{
		UserID:     &ownerID,
		Name:       name,
		PersonType: entities.PersonTypeEmployee,
		IsActive:   true,
	}
	require.NoError(t, db.Create(person).Error)
	return person
}

// Ptr returns a pointer to v
func Ptr[T any](v T) *T {
	return &v
}

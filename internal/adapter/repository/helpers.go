package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
	"github.com/johnquangdev/one-on-one-manager/internal/infrastructure/database"
)

// base gives every repository the request-scoped connection
type base struct {
	db *gorm.DB
}

func (b base) conn(ctx context.Context) *gorm.DB {
	return database.Conn(ctx, b.db)
}

// notFound maps gorm's missing-row error to the domain sentinel
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.ErrNotFound
	}
	return err
}

// duplicate maps a unique-index violation to entities.ErrDuplicate
func duplicate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return entities.ErrDuplicate
	}
	return err
}

// containsPattern builds a case-insensitive LIKE pattern. Use with LOWER(column).
func containsPattern(term string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.ToLower(term))
	return "%" + escaped + "%"
}

// ownedBy scopes a query to rows of one user
func ownedBy(table string, ownerID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(table+".user_id = ?", ownerID)
	}
}

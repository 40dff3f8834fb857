package postgres

import (
	"context"
	"errors"

	"github.com/campushub/club-directory/internal/domain/common/errorz"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// repository is the single generic choke point for table access. Every read
// goes through the omit projection, so sensitive columns never leave this
// package unless a storage explicitly allows them.
type repository[T any] struct {
	db   *gorm.DB
	omit []string
}

func newRepository[T any](db *gorm.DB, omit ...string) repository[T] {
	return repository[T]{
		db:   db,
		omit: omit,
	}
}

func (r repository[T]) read(ctx context.Context) *gorm.DB {
	tx := r.db.WithContext(ctx)
	if len(r.omit) > 0 {
		tx = tx.Omit(r.omit...)
	}
	return tx
}

// FindMany returns all rows matching query, or every row when query is empty.
func (r repository[T]) FindMany(ctx context.Context, query map[string]interface{}) ([]T, error) {
	var rows []T
	tx := r.read(ctx)
	if len(query) > 0 {
		tx = tx.Where(query)
	}
	err := tx.Find(&rows).Error
	return rows, err
}

// FindOne returns the first row matching query, or errorz.NotFound.
func (r repository[T]) FindOne(ctx context.Context, query map[string]interface{}) (*T, error) {
	var row T
	err := r.read(ctx).Where(query).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errorz.NotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r repository[T]) Create(ctx context.Context, row *T) (*T, error) {
	err := r.db.WithContext(ctx).Create(row).Error
	return row, err
}

// Update applies a partial patch to the first row matching query and returns
// the row as stored afterwards.
func (r repository[T]) Update(ctx context.Context, query map[string]interface{}, patch map[string]interface{}) (*T, error) {
	row, err := r.FindOne(ctx, query)
	if err != nil {
		return nil, err
	}
	if err = r.db.WithContext(ctx).Model(row).Updates(patch).Error; err != nil {
		return nil, err
	}
	return r.FindOne(ctx, query)
}

// Delete removes the row matching query and returns it, so callers can echo
// what was destroyed. Deletion is physical and a single statement, so two
// racing deletes of the same row cannot both claim it.
func (r repository[T]) Delete(ctx context.Context, query map[string]interface{}) (*T, error) {
	var row T
	tx := r.db.WithContext(ctx).Clauses(clause.Returning{}).Where(query).Delete(&row)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, errorz.NotFound
	}
	return &row, nil
}

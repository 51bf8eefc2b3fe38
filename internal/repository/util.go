package repository

import (
	"context"

	"github.com/questx-lab/social/pkg/xcontext"
	"gorm.io/gorm"
)

func deleteByID[T any](ctx context.Context, id int64) error {
	tx := xcontext.DB(ctx).Where("id=?", id).Delete(new(T))
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

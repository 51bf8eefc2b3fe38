package repository

import (
	"context"

	"github.com/questx-lab/social/internal/entity"
	"github.com/questx-lab/social/pkg/xcontext"
)

type MediaRepository interface {
	Create(ctx context.Context, data *entity.Media) error
	GetByID(ctx context.Context, id int64) (*entity.Media, error)
	GetByPostID(ctx context.Context, postID int64) ([]entity.Media, error)
	DeleteByID(ctx context.Context, id int64) error
}

type mediaRepository struct{}

func NewMediaRepository() MediaRepository {
	return &mediaRepository{}
}

func (r *mediaRepository) Create(ctx context.Context, data *entity.Media) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *mediaRepository) GetByID(ctx context.Context, id int64) (*entity.Media, error) {
	var record entity.Media
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *mediaRepository) GetByPostID(ctx context.Context, postID int64) ([]entity.Media, error) {
	var result []entity.Media
	if err := xcontext.DB(ctx).Where("post_id=?", postID).Order("id").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *mediaRepository) DeleteByID(ctx context.Context, id int64) error {
	return deleteByID[entity.Media](ctx, id)
}

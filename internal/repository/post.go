package repository

import (
	"context"

	"github.com/questx-lab/social/internal/entity"
	"github.com/questx-lab/social/pkg/xcontext"
)

type PostRepository interface {
	Create(ctx context.Context, data *entity.Post) error
	GetByID(ctx context.Context, id int64) (*entity.Post, error)
	GetByUserID(ctx context.Context, userID int64) ([]entity.Post, error)
	DeleteByID(ctx context.Context, id int64) error
}

type postRepository struct{}

func NewPostRepository() PostRepository {
	return &postRepository{}
}

func (r *postRepository) Create(ctx context.Context, data *entity.Post) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (*entity.Post, error) {
	var record entity.Post
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *postRepository) GetByUserID(ctx context.Context, userID int64) ([]entity.Post, error) {
	var result []entity.Post
	if err := xcontext.DB(ctx).Where("user_id=?", userID).Order("id").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

// DeleteByID removes the post. Its media items and comments are removed by
// the store's cascade rules.
func (r *postRepository) DeleteByID(ctx context.Context, id int64) error {
	return deleteByID[entity.Post](ctx, id)
}

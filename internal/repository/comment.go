package repository

import (
	"context"

	"github.com/questx-lab/social/internal/entity"
	"github.com/questx-lab/social/pkg/xcontext"
	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, data *entity.Comment) error
	GetByID(ctx context.Context, id int64) (*entity.Comment, error)
	GetByPostID(ctx context.Context, postID int64) ([]entity.Comment, error)
	GetByAuthorID(ctx context.Context, authorID int64) ([]entity.Comment, error)
	UpdateTextByID(ctx context.Context, id int64, text string) error
	DeleteByID(ctx context.Context, id int64) error
}

type commentRepository struct{}

func NewCommentRepository() CommentRepository {
	return &commentRepository{}
}

func (r *commentRepository) Create(ctx context.Context, data *entity.Comment) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *commentRepository) GetByID(ctx context.Context, id int64) (*entity.Comment, error) {
	var record entity.Comment
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *commentRepository) GetByPostID(ctx context.Context, postID int64) ([]entity.Comment, error) {
	var result []entity.Comment
	if err := xcontext.DB(ctx).Where("post_id=?", postID).Order("id").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *commentRepository) GetByAuthorID(ctx context.Context, authorID int64) ([]entity.Comment, error) {
	var result []entity.Comment
	if err := xcontext.DB(ctx).Where("author_id=?", authorID).Order("id").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *commentRepository) UpdateTextByID(ctx context.Context, id int64, text string) error {
	tx := xcontext.DB(ctx).Model(&entity.Comment{}).Where("id=?", id).Update("comment_text", text)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *commentRepository) DeleteByID(ctx context.Context, id int64) error {
	return deleteByID[entity.Comment](ctx, id)
}

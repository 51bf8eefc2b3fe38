package repository

import (
	"context"
	"errors"

	"github.com/questx-lab/social/internal/entity"
	"github.com/questx-lab/social/pkg/xcontext"
	"gorm.io/gorm"
)

type FollowerRepository interface {
	Create(ctx context.Context, data *entity.Follower) error
	Delete(ctx context.Context, userFromID, userToID int64) error
	Get(ctx context.Context, userFromID, userToID int64) (*entity.Follower, error)
	IsFollowing(ctx context.Context, userFromID, userToID int64) (bool, error)

	// GetFollowers returns the users following userID.
	GetFollowers(ctx context.Context, userID int64) ([]entity.User, error)

	// GetFollowing returns the users followed by userID.
	GetFollowing(ctx context.Context, userID int64) ([]entity.User, error)
}

type followerRepository struct{}

func NewFollowerRepository() FollowerRepository {
	return &followerRepository{}
}

func (r *followerRepository) Create(ctx context.Context, data *entity.Follower) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *followerRepository) Delete(ctx context.Context, userFromID, userToID int64) error {
	tx := xcontext.DB(ctx).
		Where("user_from_id=? AND user_to_id=?", userFromID, userToID).
		Delete(&entity.Follower{})
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *followerRepository) Get(ctx context.Context, userFromID, userToID int64) (*entity.Follower, error) {
	var result entity.Follower
	err := xcontext.DB(ctx).
		Where("user_from_id=? AND user_to_id=?", userFromID, userToID).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *followerRepository) IsFollowing(ctx context.Context, userFromID, userToID int64) (bool, error) {
	_, err := r.Get(ctx, userFromID, userToID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func (r *followerRepository) GetFollowers(ctx context.Context, userID int64) ([]entity.User, error) {
	subQuery := xcontext.DB(ctx).Model(&entity.Follower{}).
		Select("user_from_id").
		Where("user_to_id=?", userID)

	var result []entity.User
	if err := xcontext.DB(ctx).Where("id IN (?)", subQuery).Order("id").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *followerRepository) GetFollowing(ctx context.Context, userID int64) ([]entity.User, error) {
	subQuery := xcontext.DB(ctx).Model(&entity.Follower{}).
		Select("user_to_id").
		Where("user_from_id=?", userID)

	var result []entity.User
	if err := xcontext.DB(ctx).Where("id IN (?)", subQuery).Order("id").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

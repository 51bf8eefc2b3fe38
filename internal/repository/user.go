package repository

import (
	"context"

	"github.com/questx-lab/social/internal/entity"
	"github.com/questx-lab/social/pkg/xcontext"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, data *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateByID(ctx context.Context, id int64, data *entity.User) error
	UpdateIsActive(ctx context.Context, id int64, isActive bool) error
	DeleteByID(ctx context.Context, id int64) error
}

type userRepository struct{}

func NewUserRepository() UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(ctx context.Context, data *entity.User) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	var record entity.User
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var record entity.User
	if err := xcontext.DB(ctx).Where("username=?", username).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var record entity.User
	if err := xcontext.DB(ctx).Where("email=?", email).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

// UpdateByID writes the non-empty profile fields of data.
func (r *userRepository) UpdateByID(ctx context.Context, id int64, data *entity.User) error {
	updateMap := map[string]any{}
	if data.Username != "" {
		updateMap["username"] = data.Username
	}

	if data.Firstname != "" {
		updateMap["firstname"] = data.Firstname
	}

	if data.Lastname != "" {
		updateMap["lastname"] = data.Lastname
	}

	if data.Email != "" {
		updateMap["email"] = data.Email
	}

	if len(updateMap) == 0 {
		return nil
	}

	tx := xcontext.DB(ctx).Model(&entity.User{}).Where("id=?", id).Updates(updateMap)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *userRepository) UpdateIsActive(ctx context.Context, id int64, isActive bool) error {
	tx := xcontext.DB(ctx).Model(&entity.User{}).Where("id=?", id).Update("is_active", isActive)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// DeleteByID removes the user. Posts, comments and follower edges of the user
// are removed by the store's cascade rules.
func (r *userRepository) DeleteByID(ctx context.Context, id int64) error {
	return deleteByID[entity.User](ctx, id)
}

package testutil

import (
	"context"
	"reflect"

	"github.com/google/uuid"
	"github.com/questx-lab/social/internal/entity"
	"github.com/questx-lab/social/pkg/xcontext"
)

// SampleUser creates a new user in database with randomized username and
// email. The sample user can be overwritten by non-zero fields of init.
//
// This function returns the sample user.
func SampleUser(ctx context.Context, init *entity.User) (entity.User, error) {
	name := uuid.NewString()[:8]
	sample := &entity.User{
		Username:  "user-" + name,
		Firstname: "First " + name,
		Lastname:  "Last " + name,
		Email:     name + "@example.com",
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	err := xcontext.DB(ctx).Create(sample).Error
	return *sample, err
}

// SamplePost creates a new post. If init does not name an author, a sample
// user is created for it.
func SamplePost(ctx context.Context, init *entity.Post) (entity.Post, error) {
	sample := &entity.Post{}
	if init != nil {
		overwriteFields(sample, *init)
	}

	if sample.UserID == 0 {
		author, err := SampleUser(ctx, nil)
		if err != nil {
			return *sample, err
		}
		sample.UserID = author.ID
	}

	err := xcontext.DB(ctx).Create(sample).Error
	return *sample, err
}

// SampleMedia creates a new image media. If init does not name a post, a
// sample post is created for it.
func SampleMedia(ctx context.Context, init *entity.Media) (entity.Media, error) {
	sample := &entity.Media{
		Type: entity.MediaTypeImage,
		URL:  "https://cdn.example.com/" + uuid.NewString() + ".png",
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if sample.PostID == 0 {
		post, err := SamplePost(ctx, nil)
		if err != nil {
			return *sample, err
		}
		sample.PostID = post.ID
	}

	err := xcontext.DB(ctx).Create(sample).Error
	return *sample, err
}

// SampleComment creates a new comment. A missing author or post is created
// as a sample.
func SampleComment(ctx context.Context, init *entity.Comment) (entity.Comment, error) {
	sample := &entity.Comment{
		CommentText: "comment " + uuid.NewString(),
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if sample.PostID == 0 {
		post, err := SamplePost(ctx, nil)
		if err != nil {
			return *sample, err
		}
		sample.PostID = post.ID
	}

	if sample.AuthorID == 0 {
		author, err := SampleUser(ctx, nil)
		if err != nil {
			return *sample, err
		}
		sample.AuthorID = author.ID
	}

	err := xcontext.DB(ctx).Create(sample).Error
	return *sample, err
}

func overwriteFields[T any](origin *T, overwrite T) {
	originValue := reflect.ValueOf(origin).Elem()
	overwriteValue := reflect.ValueOf(overwrite)

	for i := 0; i < overwriteValue.NumField(); i++ {
		overwriteField := overwriteValue.Field(i)
		if !overwriteField.IsZero() {
			originValue.Field(i).Set(overwriteField)
		}
	}
}

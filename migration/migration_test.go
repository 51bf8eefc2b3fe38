package migration_test

import (
	"strings"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/questx-lab/social/internal/entity"
	"github.com/questx-lab/social/migration"
	"github.com/questx-lab/social/pkg/testutil"
	"github.com/questx-lab/social/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

var tables = []string{"user", "follower", "post", "media", "comment"}

func TestAutoMigrate(t *testing.T) {
	ctx := testutil.NewMockContext()
	require.NoError(t, migration.AutoMigrate(ctx))

	for _, table := range tables {
		require.True(t, xcontext.DB(ctx).Migrator().HasTable(table), table)
	}

	// Running twice is a no-op.
	require.NoError(t, migration.AutoMigrate(ctx))
}

func TestMigrate(t *testing.T) {
	ctx := testutil.NewMockContext()

	version, _, err := migration.Version(ctx)
	require.NoError(t, err)
	require.Zero(t, version)

	require.NoError(t, migration.Migrate(ctx))
	require.NoError(t, migration.Migrate(ctx))

	version, dirty, err := migration.Version(ctx)
	require.NoError(t, err)
	require.Equal(t, uint(1), version)
	require.False(t, dirty)

	for _, table := range tables {
		require.True(t, xcontext.DB(ctx).Migrator().HasTable(table), table)
	}
}

func TestMigrate_Constraints(t *testing.T) {
	ctx := testutil.NewMockContext()
	require.NoError(t, migration.Migrate(ctx))

	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	require.True(t, user.IsActive)

	_, err = testutil.SampleUser(ctx, &entity.User{Username: user.Username})
	testutil.RequireConstraint(t, err, sqlite3.ErrConstraintUnique)

	_, err = testutil.SampleMedia(ctx, &entity.Media{Type: entity.MediaType("gif")})
	testutil.RequireConstraint(t, err, sqlite3.ErrConstraintCheck)

	_, err = testutil.SampleUser(ctx, &entity.User{Username: strings.Repeat("a", 81)})
	testutil.RequireConstraint(t, err, sqlite3.ErrConstraintCheck)

	_, err = testutil.SampleUser(ctx, &entity.User{Email: strings.Repeat("a", 109) + "@example.com"})
	testutil.RequireConstraint(t, err, sqlite3.ErrConstraintCheck)

	_, err = testutil.SampleComment(ctx, &entity.Comment{CommentText: strings.Repeat("a", 501)})
	testutil.RequireConstraint(t, err, sqlite3.ErrConstraintCheck)

	_, err = testutil.SampleMedia(ctx, &entity.Media{URL: strings.Repeat("u", 256)})
	testutil.RequireConstraint(t, err, sqlite3.ErrConstraintCheck)

	err = xcontext.DB(ctx).Create(&entity.Follower{UserFromID: user.ID, UserToID: user.ID + 100}).Error
	testutil.RequireConstraint(t, err, sqlite3.ErrConstraintForeignKey)

	media, err := testutil.SampleMedia(ctx, nil)
	require.NoError(t, err)
	comment, err := testutil.SampleComment(ctx, &entity.Comment{PostID: media.PostID, AuthorID: user.ID})
	require.NoError(t, err)
	require.NoError(t, xcontext.DB(ctx).Create(&entity.Follower{UserFromID: user.ID, UserToID: user.ID}).Error)

	require.NoError(t, xcontext.DB(ctx).Delete(&entity.User{}, user.ID).Error)

	var count int64
	require.NoError(t, xcontext.DB(ctx).Model(&entity.Comment{}).Where("id=?", comment.ID).Count(&count).Error)
	require.Zero(t, count)
	require.NoError(t, xcontext.DB(ctx).Model(&entity.Follower{}).Count(&count).Error)
	require.Zero(t, count)

	// Media of a post written by someone else stays.
	require.NoError(t, xcontext.DB(ctx).Model(&entity.Media{}).Where("id=?", media.ID).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestRollback(t *testing.T) {
	ctx := testutil.NewMockContext()
	require.NoError(t, migration.Migrate(ctx))
	require.NoError(t, migration.Rollback(ctx))

	for _, table := range tables {
		require.False(t, xcontext.DB(ctx).Migrator().HasTable(table), table)
	}

	version, _, err := migration.Version(ctx)
	require.NoError(t, err)
	require.Zero(t, version)
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerialize(t *testing.T) {
	tests := []struct {
		name   string
		record Serializer
		want   map[string]any
	}{
		{
			name: "user",
			record: User{
				ID:        1,
				Username:  "alice",
				Firstname: "Alice",
				Lastname:  "Liddell",
				Email:     "alice@example.com",
				IsActive:  true,
				Posts:     []Post{{ID: 10, UserID: 1}},
				Comments:  []Comment{{ID: 20, AuthorID: 1, PostID: 10}},
				Following: []Follower{{UserFromID: 1, UserToID: 2}},
				Followers: []Follower{{UserFromID: 2, UserToID: 1}},
			},
			want: map[string]any{
				"id":        int64(1),
				"username":  "alice",
				"firstname": "Alice",
				"lastname":  "Liddell",
				"email":     "alice@example.com",
				"is_active": true,
			},
		},
		{
			name:   "follower",
			record: Follower{UserFromID: 1, UserToID: 2},
			want: map[string]any{
				"user_from_id": int64(1),
				"user_to_id":   int64(2),
			},
		},
		{
			name: "post with loaded relations",
			record: Post{
				ID:         10,
				UserID:     1,
				MediaItems: []Media{{ID: 30, Type: MediaTypeImage, URL: "a.png", PostID: 10}},
				Comments:   []Comment{{ID: 20, CommentText: "hi", AuthorID: 1, PostID: 10}},
			},
			want: map[string]any{
				"id":      int64(10),
				"user_id": int64(1),
			},
		},
		{
			name:   "media",
			record: Media{ID: 30, Type: MediaTypeVideo, URL: "https://cdn/v.mp4", PostID: 10},
			want: map[string]any{
				"id":      int64(30),
				"type":    MediaTypeVideo,
				"url":     "https://cdn/v.mp4",
				"post_id": int64(10),
			},
		},
		{
			name:   "comment",
			record: Comment{ID: 20, CommentText: "nice", AuthorID: 2, PostID: 10},
			want: map[string]any{
				"id":           int64(20),
				"comment_text": "nice",
				"author_id":    int64(2),
				"post_id":      int64(10),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.record.Serialize())
		})
	}
}

func TestSerialize_ZeroValue(t *testing.T) {
	got := User{}.Serialize()
	require.Len(t, got, 6)
	require.Equal(t, false, got["is_active"])
	require.Equal(t, "", got["email"])
}

func TestParseMediaType(t *testing.T) {
	mt, err := ParseMediaType("image")
	require.NoError(t, err)
	require.Equal(t, MediaTypeImage, mt)

	mt, err = ParseMediaType("video")
	require.NoError(t, err)
	require.Equal(t, MediaTypeVideo, mt)

	_, err = ParseMediaType("audio")
	require.Error(t, err)
}

func TestTableName(t *testing.T) {
	require.Equal(t, "user", User{}.TableName())
	require.Equal(t, "follower", Follower{}.TableName())
	require.Equal(t, "post", Post{}.TableName())
	require.Equal(t, "media", Media{}.TableName())
	require.Equal(t, "comment", Comment{}.TableName())
	require.Len(t, All(), 5)
}

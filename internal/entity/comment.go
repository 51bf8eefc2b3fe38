package entity

import "github.com/fatih/structs"

type Comment struct {
	ID          int64  `gorm:"primaryKey" structs:"id"`
	CommentText string `gorm:"size:500;not null;check:chk_comment_text,substr(comment_text, 501) = ''" structs:"comment_text"`
	AuthorID    int64  `gorm:"not null" structs:"author_id"`
	PostID      int64  `gorm:"not null" structs:"post_id"`
}

func (Comment) TableName() string {
	return "comment"
}

func (c Comment) Serialize() map[string]any {
	return structs.Map(c)
}

package entity

import "github.com/fatih/structs"

type Post struct {
	ID     int64 `gorm:"primaryKey" structs:"id"`
	UserID int64 `gorm:"not null" structs:"user_id"`

	MediaItems []Media   `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" structs:"-"`
	Comments   []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" structs:"-"`
}

func (Post) TableName() string {
	return "post"
}

// Serialize never includes media items or comments, even when they are
// loaded.
func (p Post) Serialize() map[string]any {
	return structs.Map(p)
}

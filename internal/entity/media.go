package entity

import (
	"github.com/fatih/structs"
	"github.com/questx-lab/social/pkg/enum"
)

type MediaType string

var (
	MediaTypeImage = enum.New(MediaType("image"), "image")
	MediaTypeVideo = enum.New(MediaType("video"), "video")
)

func ParseMediaType(s string) (MediaType, error) {
	return enum.ToEnum[MediaType](s)
}

type Media struct {
	ID     int64     `gorm:"primaryKey" structs:"id"`
	Type   MediaType `gorm:"type:varchar(5);not null;check:chk_media_type,type IN ('image','video')" structs:"type"`
	URL    string    `gorm:"column:url;size:255;not null;check:chk_media_url,substr(url, 256) = ''" structs:"url"`
	PostID int64     `gorm:"not null" structs:"post_id"`
}

func (Media) TableName() string {
	return "media"
}

func (m Media) Serialize() map[string]any {
	return structs.Map(m)
}

package entity

import "github.com/fatih/structs"

// Follower is a directed edge: UserFromID follows UserToID. A user following
// themself is a valid edge.
type Follower struct {
	UserFromID int64 `gorm:"primaryKey;autoIncrement:false" structs:"user_from_id"`
	UserToID   int64 `gorm:"primaryKey;autoIncrement:false" structs:"user_to_id"`
}

func (Follower) TableName() string {
	return "follower"
}

func (f Follower) Serialize() map[string]any {
	return structs.Map(f)
}

package entity

import "github.com/fatih/structs"

// Length checks use substr, which counts characters on every supported
// driver. sqlite does not enforce varchar sizes by itself.
type User struct {
	ID        int64  `gorm:"primaryKey" structs:"id"`
	Username  string `gorm:"size:80;unique;not null;check:chk_user_username,substr(username, 81) = ''" structs:"username"`
	Firstname string `gorm:"size:80;not null;check:chk_user_firstname,substr(firstname, 81) = ''" structs:"firstname"`
	Lastname  string `gorm:"size:80;not null;check:chk_user_lastname,substr(lastname, 81) = ''" structs:"lastname"`
	Email     string `gorm:"size:120;unique;not null;check:chk_user_email,substr(email, 121) = ''" structs:"email"`

	// A zero IsActive is written as the column default, so new users are
	// always active. Use UserRepository.UpdateIsActive to deactivate.
	IsActive bool `gorm:"not null;default:true" structs:"is_active"`

	// Relations below only declare foreign keys and cascade rules to the
	// store. Query them through the repositories.
	Posts     []Post     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" structs:"-"`
	Comments  []Comment  `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" structs:"-"`
	Following []Follower `gorm:"foreignKey:UserFromID;constraint:OnDelete:CASCADE" structs:"-"`
	Followers []Follower `gorm:"foreignKey:UserToID;constraint:OnDelete:CASCADE" structs:"-"`
}

func (User) TableName() string {
	return "user"
}

func (u User) Serialize() map[string]any {
	return structs.Map(u)
}

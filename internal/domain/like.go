package domain

import "time"

// Like is keyed by (PostID, UserID); a user can like a post at most once.
type Like struct {
	PostID    uint      `json:"postId" gorm:"primaryKey;autoIncrement:false"`
	UserID    uint      `json:"userId" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time `json:"createdAt"`

	Post *Post `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	User *User `json:"-" gorm:"foreignKey:UserID"`
}

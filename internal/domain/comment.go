package domain

import "time"

type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Text      string    `json:"text" gorm:"not null"`
	AuthorID  uint      `json:"authorId" gorm:"not null;index"`
	PostID    uint      `json:"postId" gorm:"not null;index"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Author *User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Post   *Post `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

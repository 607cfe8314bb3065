package domain

import "time"

type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ImageURL  string    `json:"imageUrl" gorm:"not null"`
	Caption   string    `json:"caption" gorm:"not null"`
	AuthorID  uint      `json:"authorId" gorm:"not null;index"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Author   *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Likes    []Like    `json:"likes,omitempty" gorm:"foreignKey:PostID"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:PostID"`
}

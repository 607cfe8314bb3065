package domain

import "time"

// Media records an image uploaded to object storage.
type Media struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ObjectKey   string    `json:"-" gorm:"uniqueIndex;not null"`
	ContentType string    `json:"contentType" gorm:"not null"`
	Size        int64     `json:"size" gorm:"not null"`
	URL         string    `json:"url" gorm:"not null"`
	UploaderID  uint      `json:"uploaderId" gorm:"not null;index"`
	CreatedAt   time.Time `json:"createdAt"`
}

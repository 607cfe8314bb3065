package domain

import "time"

// Follow is a directed edge keyed by (FollowerID, FollowedID).
// Self-edges are rejected before storage is ever touched.
type Follow struct {
	FollowerID uint      `json:"followerId" gorm:"primaryKey;autoIncrement:false"`
	FollowedID uint      `json:"followedId" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt  time.Time `json:"createdAt"`

	Follower *User `json:"-" gorm:"foreignKey:FollowerID"`
	Followed *User `json:"-" gorm:"foreignKey:FollowedID"`
}

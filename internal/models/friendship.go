package models

import "time"

// FriendshipStatus defines the state of a friendship between two users.
type FriendshipStatus string

const (
	// StatusPending means a friend request has been sent but not yet accepted.
	StatusPending FriendshipStatus = "pending"

	// StatusAccepted means the friend request was accepted, and the users are now friends.
	StatusAccepted FriendshipStatus = "accepted"
)

// Friendship represents the single relationship row between two users.
//
// The primary key is the unordered pair normalized as (UserLowID, UserHighID)
// with UserLowID < UserHighID, so the database guarantees at most one row per
// pair regardless of who initiated. RequestedBy records the sender separately
// from key order.
type Friendship struct {
	UserLowID   uint             `gorm:"primaryKey;autoIncrement:false"`
	UserHighID  uint             `gorm:"primaryKey;autoIncrement:false"`
	RequestedBy uint             `gorm:"not null"`
	Status      FriendshipStatus `gorm:"type:varchar(20);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	UserLow  User `gorm:"foreignKey:UserLowID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	UserHigh User `gorm:"foreignKey:UserHighID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// NormalizePair orders two user IDs into the (low, high) key form.
func NormalizePair(a, b uint) (uint, uint) {
	if a < b {
		return a, b
	}
	return b, a
}

// OtherUserID returns the participant that is not the given user.
func (f Friendship) OtherUserID(userID uint) uint {
	if f.UserLowID == userID {
		return f.UserHighID
	}
	return f.UserLowID
}

// RecipientID returns the user the request was addressed to.
func (f Friendship) RecipientID() uint {
	return f.OtherUserID(f.RequestedBy)
}

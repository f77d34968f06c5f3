package models

import "time"

// Message represents a direct chat message between two friends.
// Rows are append-only; the only mutation is flipping Read when the
// receiver opens the conversation.
type Message struct {
	ID         uint      `gorm:"primaryKey"`
	SenderID   uint      `gorm:"not null;index:idx_messages_pair"`
	ReceiverID uint      `gorm:"not null;index:idx_messages_pair"`
	Body       string    `gorm:"type:text;not null"`
	SentAt     time.Time `gorm:"not null;index"`
	Read       bool      `gorm:"not null;default:false"`

	Sender   User `gorm:"foreignKey:SenderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Receiver User `gorm:"foreignKey:ReceiverID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"soundlink/backend/internal/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ConversationSummary pairs a friend with the latest message exchanged and
// the number of messages from them the caller has not read yet. It is
// recomputed on every query, never persisted.
type ConversationSummary struct {
	Friend      models.User
	LastMessage *models.Message
	UnreadCount int64
}

// ChatService persists direct messages between friends and aggregates them
// into per-friend conversations. Messaging is gated on an accepted
// friendship at send time.
type ChatService struct {
	db      *gorm.DB
	friends *FriendService
}

func NewChatService(db *gorm.DB) *ChatService {
	return &ChatService{db: db, friends: NewFriendService(db)}
}

// SendMessage stores a message from senderID to recipientID.
func (s *ChatService) SendMessage(ctx context.Context, senderID, recipientID uint, body string) (*models.Message, error) {
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyMessage
	}

	ok, err := s.friends.AreFriends(ctx, senderID, recipientID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFriends
	}

	message := models.Message{
		SenderID:   senderID,
		ReceiverID: recipientID,
		Body:       body,
		SentAt:     time.Now(),
		Read:       false,
	}
	if err := s.db.WithContext(ctx).Create(&message).Error; err != nil {
		return nil, errors.Wrap(err, "create message")
	}
	return &message, nil
}

// Conversation returns the full message history between userID and friendID
// in chronological order, marking every message addressed to userID as read.
// The mark and the fetch run in one transaction so the returned rows already
// reflect the read state the call caused.
func (s *ChatService) Conversation(ctx context.Context, userID, friendID uint) ([]models.Message, error) {
	ok, err := s.friends.AreFriends(ctx, userID, friendID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFriends
	}

	var messages []models.Message
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Message{}).
			Where("sender_id = ? AND receiver_id = ? AND read = ?", friendID, userID, false).
			Update("read", true).Error
		if err != nil {
			return err
		}

		// Ties on sent_at fall back to insertion order.
		return tx.
			Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
				userID, friendID, friendID, userID).
			Order("sent_at ASC, id ASC").
			Find(&messages).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "load conversation")
	}
	return messages, nil
}

// Conversations builds one summary per friend, ordered by the latest
// message timestamp descending. Friends without any messages sort last,
// alphabetically, so repeated calls return identical lists.
func (s *ChatService) Conversations(ctx context.Context, userID uint) ([]ConversationSummary, error) {
	friends, err := s.friends.Friends(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]ConversationSummary, 0, len(friends))
	for _, friend := range friends {
		var last models.Message
		err := s.db.WithContext(ctx).
			Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
				userID, friend.ID, friend.ID, userID).
			Order("sent_at DESC, id DESC").
			First(&last).Error

		summary := ConversationSummary{Friend: friend}
		if err == nil {
			summary.LastMessage = &last
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrap(err, "fetch last message")
		}

		err = s.db.WithContext(ctx).Model(&models.Message{}).
			Where("sender_id = ? AND receiver_id = ? AND read = ?", friend.ID, userID, false).
			Count(&summary.UnreadCount).Error
		if err != nil {
			return nil, errors.Wrap(err, "count unread messages")
		}

		summaries = append(summaries, summary)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		a, b := summaries[i].LastMessage, summaries[j].LastMessage
		switch {
		case a != nil && b != nil:
			if !a.SentAt.Equal(b.SentAt) {
				return a.SentAt.After(b.SentAt)
			}
			return a.ID > b.ID
		case a != nil:
			return true
		case b != nil:
			return false
		default:
			return summaries[i].Friend.Nickname < summaries[j].Friend.Nickname
		}
	})

	return summaries, nil
}

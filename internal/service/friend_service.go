package service

import (
	"context"
	"strings"

	"soundlink/backend/internal/models"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// FriendService implements the friend-request state machine:
//
//	(no relationship) --SendRequest--> pending
//	pending  --AcceptRequest (recipient only)--> accepted
//	pending  --RejectRequest (either party)-->   deleted
//	accepted --Unfollow      (either party)-->   deleted
//
// All mutations are conditional writes so concurrent requests settle in
// the database rather than in application code.
type FriendService struct {
	db *gorm.DB
}

func NewFriendService(db *gorm.DB) *FriendService {
	return &FriendService{db: db}
}

// SendRequest creates a pending friendship from userID to targetID.
func (s *FriendService) SendRequest(ctx context.Context, userID, targetID uint) (*models.Friendship, error) {
	if userID == targetID {
		return nil, ErrSelfRequest
	}

	var target models.User
	if err := s.db.WithContext(ctx).First(&target, targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "look up target user")
	}

	low, high := models.NormalizePair(userID, targetID)

	// Friendly pre-check; the pair primary key is the real guarantee.
	var existing models.Friendship
	err := s.db.WithContext(ctx).
		Where("user_low_id = ? AND user_high_id = ?", low, high).
		First(&existing).Error
	if err == nil {
		return nil, ErrRelationExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(err, "look up existing friendship")
	}

	friendship := models.Friendship{
		UserLowID:   low,
		UserHighID:  high,
		RequestedBy: userID,
		Status:      models.StatusPending,
	}
	if err := s.db.WithContext(ctx).Create(&friendship).Error; err != nil {
		// A racing request from either side loses on the pair key.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrRelationExists
		}
		return nil, errors.Wrap(err, "create friendship")
	}

	return &friendship, nil
}

// AcceptRequest transitions a pending request from senderID to userID into
// an accepted friendship. Only the recipient matches the predicate, so a
// sender accepting their own request gets ErrRequestNotFound.
func (s *FriendService) AcceptRequest(ctx context.Context, userID, senderID uint) (*models.Friendship, error) {
	low, high := models.NormalizePair(userID, senderID)

	result := s.db.WithContext(ctx).Model(&models.Friendship{}).
		Where("user_low_id = ? AND user_high_id = ? AND requested_by = ? AND status = ?",
			low, high, senderID, models.StatusPending).
		Update("status", models.StatusAccepted)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "accept friend request")
	}
	if result.RowsAffected == 0 {
		return nil, ErrRequestNotFound
	}

	var friendship models.Friendship
	if err := s.db.WithContext(ctx).
		Where("user_low_id = ? AND user_high_id = ?", low, high).
		First(&friendship).Error; err != nil {
		return nil, errors.Wrap(err, "reload friendship")
	}
	return &friendship, nil
}

// RejectRequest deletes a pending request between userID and otherID.
// Either party may reject; an accepted friendship cannot be rejected.
func (s *FriendService) RejectRequest(ctx context.Context, userID, otherID uint) error {
	low, high := models.NormalizePair(userID, otherID)

	var friendship models.Friendship
	err := s.db.WithContext(ctx).
		Where("user_low_id = ? AND user_high_id = ?", low, high).
		First(&friendship).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRelationNotFound
		}
		return errors.Wrap(err, "look up friendship")
	}
	if friendship.Status != models.StatusPending {
		return ErrAlreadyFriends
	}

	result := s.db.WithContext(ctx).
		Where("user_low_id = ? AND user_high_id = ? AND status = ?", low, high, models.StatusPending).
		Delete(&models.Friendship{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "delete friend request")
	}
	if result.RowsAffected == 0 {
		// The request was accepted or withdrawn between lookup and delete.
		return ErrRequestNotFound
	}
	return nil
}

// Unfollow deletes an accepted friendship between userID and otherID.
func (s *FriendService) Unfollow(ctx context.Context, userID, otherID uint) error {
	low, high := models.NormalizePair(userID, otherID)

	result := s.db.WithContext(ctx).
		Where("user_low_id = ? AND user_high_id = ? AND status = ?", low, high, models.StatusAccepted).
		Delete(&models.Friendship{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "delete friendship")
	}
	if result.RowsAffected == 0 {
		return ErrFriendshipNotFound
	}
	return nil
}

// Friends returns every user with an accepted friendship to userID,
// regardless of who sent the original request.
func (s *FriendService) Friends(ctx context.Context, userID uint) ([]models.User, error) {
	return s.partners(ctx, userID, s.db.WithContext(ctx).
		Where("(user_low_id = ? OR user_high_id = ?) AND status = ?", userID, userID, models.StatusAccepted))
}

// SentRequests returns the users userID has pending requests out to.
func (s *FriendService) SentRequests(ctx context.Context, userID uint) ([]models.User, error) {
	return s.partners(ctx, userID, s.db.WithContext(ctx).
		Where("(user_low_id = ? OR user_high_id = ?) AND requested_by = ? AND status = ?",
			userID, userID, userID, models.StatusPending))
}

// ReceivedRequests returns the users with pending requests addressed to userID.
func (s *FriendService) ReceivedRequests(ctx context.Context, userID uint) ([]models.User, error) {
	return s.partners(ctx, userID, s.db.WithContext(ctx).
		Where("(user_low_id = ? OR user_high_id = ?) AND requested_by != ? AND status = ?",
			userID, userID, userID, models.StatusPending))
}

// partners resolves the non-userID side of each friendship the query yields.
func (s *FriendService) partners(ctx context.Context, userID uint, query *gorm.DB) ([]models.User, error) {
	var friendships []models.Friendship
	if err := query.Find(&friendships).Error; err != nil {
		return nil, errors.Wrap(err, "fetch friendships")
	}

	if len(friendships) == 0 {
		return []models.User{}, nil
	}

	ids := make([]uint, 0, len(friendships))
	for _, f := range friendships {
		ids = append(ids, f.OtherUserID(userID))
	}

	var users []models.User
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Order("nickname").Find(&users).Error; err != nil {
		return nil, errors.Wrap(err, "fetch partner users")
	}
	return users, nil
}

// NewFriends returns every user not yet in any relationship with userID.
func (s *FriendService) NewFriends(ctx context.Context, userID uint) ([]models.User, error) {
	return s.listUnrelated(ctx, userID, "")
}

// SearchNewFriends is NewFriends narrowed by a case-insensitive nickname
// substring. An empty query is rejected.
func (s *FriendService) SearchNewFriends(ctx context.Context, userID uint, query string) ([]models.User, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	return s.listUnrelated(ctx, userID, query)
}

func (s *FriendService) listUnrelated(ctx context.Context, userID uint, query string) ([]models.User, error) {
	var friendships []models.Friendship
	err := s.db.WithContext(ctx).
		Where("user_low_id = ? OR user_high_id = ?", userID, userID).
		Find(&friendships).Error
	if err != nil {
		return nil, errors.Wrap(err, "fetch friendships")
	}

	exclude := []uint{userID}
	for _, f := range friendships {
		exclude = append(exclude, f.OtherUserID(userID))
	}

	q := s.db.WithContext(ctx).Where("id NOT IN ?", exclude)
	if query != "" {
		q = q.Where("LOWER(nickname) LIKE ?", "%"+strings.ToLower(query)+"%")
	}

	var users []models.User
	if err := q.Order("nickname").Find(&users).Error; err != nil {
		return nil, errors.Wrap(err, "fetch unrelated users")
	}
	return users, nil
}

// Relation returns the friendship row between two users, or nil when none exists.
func (s *FriendService) Relation(ctx context.Context, userID, otherID uint) (*models.Friendship, error) {
	low, high := models.NormalizePair(userID, otherID)

	var friendship models.Friendship
	err := s.db.WithContext(ctx).
		Where("user_low_id = ? AND user_high_id = ?", low, high).
		First(&friendship).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "look up friendship")
	}
	return &friendship, nil
}

// AreFriends reports whether an accepted friendship exists between two users.
func (s *FriendService) AreFriends(ctx context.Context, userID, otherID uint) (bool, error) {
	friendship, err := s.Relation(ctx, userID, otherID)
	if err != nil {
		return false, err
	}
	return friendship != nil && friendship.Status == models.StatusAccepted, nil
}

// FriendsCount returns the number of accepted friendships userID is part of.
func (s *FriendService) FriendsCount(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Friendship{}).
		Where("(user_low_id = ? OR user_high_id = ?) AND status = ?", userID, userID, models.StatusAccepted).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "count friendships")
	}
	return count, nil
}

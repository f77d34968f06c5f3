package service

import (
	"errors"
	"net/http"
)

// Sentinel errors for every failure the friend and chat services can
// surface. Handlers translate them through StatusOf; anything not in the
// map is an internal failure and must not leak storage details.
var (
	ErrSelfRequest        = errors.New("cannot send a friend request to yourself")
	ErrUserNotFound       = errors.New("user not found")
	ErrRelationExists     = errors.New("a relationship with this user already exists")
	ErrRequestNotFound    = errors.New("pending friend request not found")
	ErrRelationNotFound   = errors.New("no relationship with this user")
	ErrAlreadyFriends     = errors.New("cannot reject an established friendship, unfollow instead")
	ErrFriendshipNotFound = errors.New("friendship not found")
	ErrNotFriends         = errors.New("you are not friends with this user")
	ErrEmptyMessage       = errors.New("message body must not be empty")
	ErrEmptyQuery         = errors.New("search query must not be empty")
)

var errorStatus = map[error]int{
	ErrSelfRequest:        http.StatusBadRequest,
	ErrUserNotFound:       http.StatusNotFound,
	ErrRelationExists:     http.StatusConflict,
	ErrRequestNotFound:    http.StatusNotFound,
	ErrRelationNotFound:   http.StatusNotFound,
	ErrAlreadyFriends:     http.StatusBadRequest,
	ErrFriendshipNotFound: http.StatusNotFound,
	ErrNotFriends:         http.StatusForbidden,
	ErrEmptyMessage:       http.StatusBadRequest,
	ErrEmptyQuery:         http.StatusBadRequest,
}

// StatusOf maps a service error to its HTTP status. The second return is
// false for unexpected errors, which callers should report as 500 with a
// generic message.
func StatusOf(err error) (int, bool) {
	for sentinel, status := range errorStatus {
		if errors.Is(err, sentinel) {
			return status, true
		}
	}
	return http.StatusInternalServerError, false
}

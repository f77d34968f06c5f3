package handler

import (
	"net/http"
	"time"

	"soundlink/backend/internal/database"
	"soundlink/backend/internal/models"
	"soundlink/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// FriendshipResponse describes one relationship row.
type FriendshipResponse struct {
	RequestedBy uint      `json:"requested_by" example:"1"`
	RecipientID uint      `json:"recipient_id" example:"2"`
	Status      string    `json:"status" example:"pending"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newFriendshipResponse(f models.Friendship) FriendshipResponse {
	return FriendshipResponse{
		RequestedBy: f.RequestedBy,
		RecipientID: f.RecipientID(),
		Status:      string(f.Status),
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func newUserListResponse(c *gin.Context, users []models.User) []PublicUserResponse {
	viewerID := currentUserID(c)
	responses := make([]PublicUserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, buildPublicUserResponse(c, user, viewerID))
	}
	return responses
}

// endregion

// SendFriendRequest godoc
// @Summary      Send friend request
// @Description  Sends a friend request to another user.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Target User ID"
// @Success      201  {object}  FriendshipResponse
// @Failure      400  {object}  ErrorResponse "Self request or invalid ID"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Target user not found"
// @Failure      409  {object}  ErrorResponse "Relationship already exists"
// @Router       /users/{id}/request [post]
func SendFriendRequest(c *gin.Context) {
	viewerID := currentUserID(c)
	targetUserID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	friendship, err := service.NewFriendService(database.DB).SendRequest(c.Request.Context(), viewerID, targetUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newFriendshipResponse(*friendship))
}

// AcceptFriendRequest godoc
// @Summary      Accept friend request
// @Description  Accepts a pending friend request from another user. Only the recipient may accept.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Requesting User ID"
// @Success      200  {object}  FriendshipResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Pending request not found"
// @Router       /users/{id}/accept [post]
func AcceptFriendRequest(c *gin.Context) {
	viewerID := currentUserID(c)
	requestingUserID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	friendship, err := service.NewFriendService(database.DB).AcceptRequest(c.Request.Context(), viewerID, requestingUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newFriendshipResponse(*friendship))
}

// RejectFriendRequest godoc
// @Summary      Reject friend request
// @Description  Deletes a pending friend request between the caller and another user. Either party may reject.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Other User ID"
// @Success      200  {object}  ConfirmationResponse
// @Failure      400  {object}  ErrorResponse "Friendship already established"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "No relationship found"
// @Router       /users/{id}/reject [post]
func RejectFriendRequest(c *gin.Context) {
	viewerID := currentUserID(c)
	otherUserID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := service.NewFriendService(database.DB).RejectRequest(c.Request.Context(), viewerID, otherUserID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ConfirmationResponse{Message: "Request rejected"})
}

// UnfollowFriend godoc
// @Summary      Unfollow a friend
// @Description  Removes an established friendship. Either party may unfollow.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Friend User ID"
// @Success      200  {object}  ConfirmationResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Friendship not found"
// @Router       /users/{id}/unfollow [post]
func UnfollowFriend(c *gin.Context) {
	viewerID := currentUserID(c)
	otherUserID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := service.NewFriendService(database.DB).Unfollow(c.Request.Context(), viewerID, otherUserID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ConfirmationResponse{Message: "Friend removed"})
}

// GetFriends godoc
// @Summary      Get friends list
// @Description  Returns every user with an accepted friendship to the caller.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   PublicUserResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /friends [get]
func GetFriends(c *gin.Context) {
	friends, err := service.NewFriendService(database.DB).Friends(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserListResponse(c, friends))
}

// GetSentRequests godoc
// @Summary      Get sent friend requests
// @Description  Returns the users the caller has pending requests out to.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   PublicUserResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /friends/requests/sent [get]
func GetSentRequests(c *gin.Context) {
	users, err := service.NewFriendService(database.DB).SentRequests(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserListResponse(c, users))
}

// GetReceivedRequests godoc
// @Summary      Get received friend requests
// @Description  Returns the users with pending requests addressed to the caller.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   PublicUserResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /friends/requests/received [get]
func GetReceivedRequests(c *gin.Context) {
	users, err := service.NewFriendService(database.DB).ReceivedRequests(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserListResponse(c, users))
}

// DiscoverFriends godoc
// @Summary      Discover new friends
// @Description  Returns users not yet in any relationship with the caller.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   PublicUserResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /friends/discover [get]
func DiscoverFriends(c *gin.Context) {
	users, err := service.NewFriendService(database.DB).NewFriends(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserListResponse(c, users))
}

// SearchNewFriends godoc
// @Summary      Search new friends
// @Description  Case-insensitive nickname search over users not yet related to the caller.
// @Tags         friendship
// @Produce      json
// @Security     BearerAuth
// @Param        q    query     string  true  "Nickname substring"
// @Success      200  {array}   PublicUserResponse
// @Failure      400  {object}  ErrorResponse "Empty query"
// @Failure      401  {object}  ErrorResponse
// @Router       /friends/search [get]
func SearchNewFriends(c *gin.Context) {
	users, err := service.NewFriendService(database.DB).SearchNewFriends(c.Request.Context(), currentUserID(c), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserListResponse(c, users))
}

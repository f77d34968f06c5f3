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

// SendMessageInput defines the body of an outgoing chat message.
type SendMessageInput struct {
	Body string `json:"body" binding:"required" example:"hey, check out this track"`
}

// MessageResponse describes one chat message.
type MessageResponse struct {
	ID         uint      `json:"id" example:"1"`
	SenderID   uint      `json:"sender_id" example:"1"`
	ReceiverID uint      `json:"receiver_id" example:"2"`
	Body       string    `json:"body"`
	SentAt     time.Time `json:"sent_at"`
	Read       bool      `json:"read"`
}

// UserBrief is the compact user shape embedded in conversation listings.
type UserBrief struct {
	ID        uint   `json:"id" example:"2"`
	Nickname  string `json:"nickname" example:"vinylfan"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// ConversationSummaryResponse pairs a friend with the last message and the
// caller's unread count for that friend.
type ConversationSummaryResponse struct {
	Friend      UserBrief        `json:"friend"`
	LastMessage *MessageResponse `json:"last_message,omitempty"`
	UnreadCount int64            `json:"unread_count"`
}

func newMessageResponse(m models.Message) MessageResponse {
	return MessageResponse{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Body:       m.Body,
		SentAt:     m.SentAt,
		Read:       m.Read,
	}
}

func newConversationSummaryResponse(s service.ConversationSummary) ConversationSummaryResponse {
	response := ConversationSummaryResponse{
		Friend: UserBrief{
			ID:        s.Friend.ID,
			Nickname:  s.Friend.Nickname,
			AvatarURL: s.Friend.AvatarURL,
		},
		UnreadCount: s.UnreadCount,
	}
	if s.LastMessage != nil {
		last := newMessageResponse(*s.LastMessage)
		response.LastMessage = &last
	}
	return response
}

// endregion

// SendMessage godoc
// @Summary      Send a chat message
// @Description  Sends a direct message to a friend. Requires an accepted friendship.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int               true  "Recipient User ID"
// @Param        input body      SendMessageInput  true  "Message body"
// @Success      201   {object}  MessageResponse
// @Failure      400   {object}  ErrorResponse "Empty body or invalid ID"
// @Failure      401   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse "Not friends with the recipient"
// @Router       /chats/{id}/messages [post]
func SendMessage(c *gin.Context) {
	viewerID := currentUserID(c)
	recipientID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input SendMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	message, err := service.NewChatService(database.DB).SendMessage(c.Request.Context(), viewerID, recipientID, input.Body)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newMessageResponse(*message))
}

// GetConversation godoc
// @Summary      Get a conversation
// @Description  Returns the full message history with a friend in chronological order and marks incoming messages as read.
// @Tags         chat
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Friend User ID"
// @Success      200  {array}   MessageResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Not friends with this user"
// @Router       /chats/{id} [get]
func GetConversation(c *gin.Context) {
	viewerID := currentUserID(c)
	friendID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	messages, err := service.NewChatService(database.DB).Conversation(c.Request.Context(), viewerID, friendID)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]MessageResponse, 0, len(messages))
	for _, message := range messages {
		responses = append(responses, newMessageResponse(message))
	}
	c.JSON(http.StatusOK, responses)
}

// GetAllConversations godoc
// @Summary      List conversations
// @Description  Returns one summary per friend, most recently active first.
// @Tags         chat
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ConversationSummaryResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /chats [get]
func GetAllConversations(c *gin.Context) {
	summaries, err := service.NewChatService(database.DB).Conversations(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]ConversationSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		responses = append(responses, newConversationSummaryResponse(summary))
	}
	c.JSON(http.StatusOK, responses)
}

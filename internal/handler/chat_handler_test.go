package handler

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatPath(user testUser, suffix string) string {
	return "/api/v1/chats/" + strconv.FormatUint(uint64(user.ID), 10) + suffix
}

func makeFriendsViaAPI(t *testing.T, router *gin.Engine, requester, recipient testUser) {
	t.Helper()

	w := performRequest(router, http.MethodPost, userPath(recipient, "/request"), requester.Token, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = performRequest(router, http.MethodPost, userPath(requester, "/accept"), recipient.Token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestSendMessageForbiddenForNonFriends(t *testing.T) {
	router := setupRouter(t)

	alice := registerTestUser(t, router, "alice")
	bob := registerTestUser(t, router, "bob")

	w := performRequest(router, http.MethodPost, chatPath(bob, "/messages"), alice.Token, SendMessageInput{Body: "hello"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSendMessageValidation(t *testing.T) {
	router := setupRouter(t)

	alice := registerTestUser(t, router, "alice")
	bob := registerTestUser(t, router, "bob")
	makeFriendsViaAPI(t, router, alice, bob)

	w := performRequest(router, http.MethodPost, chatPath(bob, "/messages"), alice.Token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(router, http.MethodPost, chatPath(bob, "/messages"), alice.Token, SendMessageInput{Body: "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatEndToEnd(t *testing.T) {
	router := setupRouter(t)

	alice := registerTestUser(t, router, "alice")
	bob := registerTestUser(t, router, "bob")
	makeFriendsViaAPI(t, router, alice, bob)

	for _, body := range []string{"one", "two", "three"} {
		w := performRequest(router, http.MethodPost, chatPath(bob, "/messages"), alice.Token, SendMessageInput{Body: body})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		sent := decode[MessageResponse](t, w)
		assert.Equal(t, alice.ID, sent.SenderID)
		assert.Equal(t, bob.ID, sent.ReceiverID)
		assert.False(t, sent.Read)
	}

	w := performRequest(router, http.MethodGet, "/api/v1/chats", bob.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	summaries := decode[[]ConversationSummaryResponse](t, w)
	require.Len(t, summaries, 1)
	assert.Equal(t, "alice", summaries[0].Friend.Nickname)
	assert.Equal(t, int64(3), summaries[0].UnreadCount)
	require.NotNil(t, summaries[0].LastMessage)
	assert.Equal(t, "three", summaries[0].LastMessage.Body)

	w = performRequest(router, http.MethodGet, chatPath(alice, ""), bob.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	messages := decode[[]MessageResponse](t, w)
	require.Len(t, messages, 3)
	assert.Equal(t, []string{"one", "two", "three"}, []string{messages[0].Body, messages[1].Body, messages[2].Body})

	// Viewing the conversation cleared the unread counter.
	w = performRequest(router, http.MethodGet, "/api/v1/chats", bob.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	summaries = decode[[]ConversationSummaryResponse](t, w)
	require.Len(t, summaries, 1)
	assert.Zero(t, summaries[0].UnreadCount)
}

func TestConversationForbiddenEndpoint(t *testing.T) {
	router := setupRouter(t)

	alice := registerTestUser(t, router, "alice")
	bob := registerTestUser(t, router, "bob")

	w := performRequest(router, http.MethodGet, chatPath(bob, ""), alice.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestEmptyConversationBetweenFriends(t *testing.T) {
	router := setupRouter(t)

	alice := registerTestUser(t, router, "alice")
	bob := registerTestUser(t, router, "bob")
	makeFriendsViaAPI(t, router, alice, bob)

	w := performRequest(router, http.MethodGet, chatPath(bob, ""), alice.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]MessageResponse](t, w))

	w = performRequest(router, http.MethodGet, "/api/v1/chats", alice.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	summaries := decode[[]ConversationSummaryResponse](t, w)
	require.Len(t, summaries, 1)
	assert.Nil(t, summaries[0].LastMessage)
	assert.Zero(t, summaries[0].UnreadCount)
}

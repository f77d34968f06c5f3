package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"soundlink/backend/internal/auth"
	"soundlink/backend/internal/config"
	"soundlink/backend/internal/database"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	router := gin.New()
	apiV1 := router.Group("/api/v1")

	authRoutes := apiV1.Group("/auth")
	authRoutes.POST("/register", RegisterUser)
	authRoutes.POST("/login", LoginUser)

	userRoutes := apiV1.Group("/users")
	userRoutes.Use(auth.AuthMiddleware())
	userRoutes.GET("", SearchUsers)
	userRoutes.GET("/me", GetMe)
	userRoutes.PUT("/me", UpdateMe)
	userRoutes.GET("/:id", GetUserByID)
	userRoutes.POST("/:id/request", SendFriendRequest)
	userRoutes.POST("/:id/accept", AcceptFriendRequest)
	userRoutes.POST("/:id/reject", RejectFriendRequest)
	userRoutes.POST("/:id/unfollow", UnfollowFriend)

	friendRoutes := apiV1.Group("/friends")
	friendRoutes.Use(auth.AuthMiddleware())
	friendRoutes.GET("", GetFriends)
	friendRoutes.GET("/requests/sent", GetSentRequests)
	friendRoutes.GET("/requests/received", GetReceivedRequests)
	friendRoutes.GET("/discover", DiscoverFriends)
	friendRoutes.GET("/search", SearchNewFriends)

	chatRoutes := apiV1.Group("/chats")
	chatRoutes.Use(auth.AuthMiddleware())
	chatRoutes.GET("", GetAllConversations)
	chatRoutes.GET("/:id", GetConversation)
	chatRoutes.POST("/:id/messages", SendMessage)

	return router
}

func performRequest(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

type testUser struct {
	ID       uint
	Nickname string
	Email    string
	Password string
	Token    string
}

func registerTestUser(t *testing.T, router *gin.Engine, nickname string) testUser {
	t.Helper()

	user := testUser{
		Nickname: nickname,
		Email:    nickname + "@" + gofakeit.DomainName(),
		Password: gofakeit.Password(true, true, true, false, false, 12),
	}

	w := performRequest(router, http.MethodPost, "/api/v1/auth/register", "", RegisterInput{
		Nickname: user.Nickname,
		Email:    user.Email,
		Password: user.Password,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	user.Token = decode[TokenResponse](t, w).Token

	me := performRequest(router, http.MethodGet, "/api/v1/users/me", user.Token, nil)
	require.Equal(t, http.StatusOK, me.Code)
	user.ID = decode[PrivateUserResponse](t, me).ID

	return user
}

func userPath(user testUser, action string) string {
	return "/api/v1/users/" + strconv.FormatUint(uint64(user.ID), 10) + action
}

func TestRegisterAndLogin(t *testing.T) {
	router := setupRouter(t)

	alice := registerTestUser(t, router, "alice")

	// Duplicate nickname is a conflict.
	w := performRequest(router, http.MethodPost, "/api/v1/auth/register", "", RegisterInput{
		Nickname: "alice",
		Email:    "other@" + gofakeit.DomainName(),
		Password: "password123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = performRequest(router, http.MethodPost, "/api/v1/auth/login", "", LoginInput{
		Login:    alice.Nickname,
		Password: alice.Password,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decode[TokenResponse](t, w).Token)

	w = performRequest(router, http.MethodPost, "/api/v1/auth/login", "", LoginInput{
		Login:    alice.Nickname,
		Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = performRequest(router, http.MethodPost, "/api/v1/auth/login", "", LoginInput{
		Login:    "nobody",
		Password: "password123",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := setupRouter(t)

	w := performRequest(router, http.MethodGet, "/api/v1/friends", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = performRequest(router, http.MethodGet, "/api/v1/friends", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFriendRequestEndToEnd(t *testing.T) {
	router := setupRouter(t)

	alice := registerTestUser(t, router, "alice")
	bob := registerTestUser(t, router, "bob")

	w := performRequest(router, http.MethodPost, userPath(bob, "/request"), alice.Token, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[FriendshipResponse](t, w)
	assert.Equal(t, "pending", created.Status)
	assert.Equal(t, alice.ID, created.RequestedBy)
	assert.Equal(t, bob.ID, created.RecipientID)

	// Duplicate in either direction conflicts.
	w = performRequest(router, http.MethodPost, userPath(bob, "/request"), alice.Token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	w = performRequest(router, http.MethodPost, userPath(alice, "/request"), bob.Token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = performRequest(router, http.MethodGet, "/api/v1/friends/requests/received", bob.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	received := decode[[]PublicUserResponse](t, w)
	require.Len(t, received, 1)
	assert.Equal(t, "alice", received[0].Nickname)

	w = performRequest(router, http.MethodGet, "/api/v1/friends/requests/sent", alice.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	sent := decode[[]PublicUserResponse](t, w)
	require.Len(t, sent, 1)
	assert.Equal(t, "bob", sent[0].Nickname)

	w = performRequest(router, http.MethodPost, userPath(alice, "/accept"), bob.Token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "accepted", decode[FriendshipResponse](t, w).Status)

	w = performRequest(router, http.MethodGet, "/api/v1/friends/requests/sent", alice.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]PublicUserResponse](t, w))

	for _, tc := range []struct {
		token  string
		friend string
	}{
		{alice.Token, "bob"},
		{bob.Token, "alice"},
	} {
		w = performRequest(router, http.MethodGet, "/api/v1/friends", tc.token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		friends := decode[[]PublicUserResponse](t, w)
		require.Len(t, friends, 1)
		assert.Equal(t, tc.friend, friends[0].Nickname)
	}
}

func TestAcceptByWrongParty(t *testing.T) {
	router := setupRouter(t)

	alice := registerTestUser(t, router, "alice")
	bob := registerTestUser(t, router, "bob")

	w := performRequest(router, http.MethodPost, userPath(bob, "/request"), alice.Token, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	// The sender cannot accept their own request.
	w = performRequest(router, http.MethodPost, userPath(bob, "/accept"), alice.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRejectRequestEndpoint(t *testing.T) {
	router := setupRouter(t)

	alice := registerTestUser(t, router, "alice")
	bob := registerTestUser(t, router, "bob")

	w := performRequest(router, http.MethodPost, userPath(bob, "/request"), alice.Token, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(router, http.MethodPost, userPath(alice, "/reject"), bob.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, http.MethodPost, userPath(alice, "/reject"), bob.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Rejection deletes the row, so a new request goes through.
	w = performRequest(router, http.MethodPost, userPath(bob, "/request"), alice.Token, nil)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRejectEstablishedFriendship(t *testing.T) {
	router := setupRouter(t)

	alice := registerTestUser(t, router, "alice")
	bob := registerTestUser(t, router, "bob")

	w := performRequest(router, http.MethodPost, userPath(bob, "/request"), alice.Token, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	w = performRequest(router, http.MethodPost, userPath(alice, "/accept"), bob.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, http.MethodPost, userPath(bob, "/reject"), alice.Token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnfollowEndpoint(t *testing.T) {
	router := setupRouter(t)

	alice := registerTestUser(t, router, "alice")
	bob := registerTestUser(t, router, "bob")

	w := performRequest(router, http.MethodPost, userPath(bob, "/request"), alice.Token, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	w = performRequest(router, http.MethodPost, userPath(alice, "/accept"), bob.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, http.MethodPost, userPath(bob, "/unfollow"), alice.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(router, http.MethodPost, userPath(bob, "/unfollow"), alice.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(router, http.MethodGet, "/api/v1/friends", alice.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]PublicUserResponse](t, w))
}

func TestSendRequestEdgeCases(t *testing.T) {
	router := setupRouter(t)

	alice := registerTestUser(t, router, "alice")

	w := performRequest(router, http.MethodPost, userPath(alice, "/request"), alice.Token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(router, http.MethodPost, "/api/v1/users/99999/request", alice.Token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(router, http.MethodPost, "/api/v1/users/abc/request", alice.Token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDiscoverAndSearch(t *testing.T) {
	router := setupRouter(t)

	alice := registerTestUser(t, router, "alice")
	bob := registerTestUser(t, router, "bob")
	registerTestUser(t, router, "carol")

	w := performRequest(router, http.MethodPost, userPath(bob, "/request"), alice.Token, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(router, http.MethodGet, "/api/v1/friends/discover", alice.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	candidates := decode[[]PublicUserResponse](t, w)
	require.Len(t, candidates, 1)
	assert.Equal(t, "carol", candidates[0].Nickname)

	w = performRequest(router, http.MethodGet, "/api/v1/friends/search?q=CAR", alice.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	matches := decode[[]PublicUserResponse](t, w)
	require.Len(t, matches, 1)
	assert.Equal(t, "carol", matches[0].Nickname)

	w = performRequest(router, http.MethodGet, "/api/v1/friends/search", alice.Token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchUsersDirectory(t *testing.T) {
	router := setupRouter(t)

	alice := registerTestUser(t, router, "alice")
	registerTestUser(t, router, "bob")
	registerTestUser(t, router, "bobby")

	w := performRequest(router, http.MethodGet, "/api/v1/users?q=bob", alice.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[PaginatedResponse[PublicUserResponse]](t, w)
	assert.Equal(t, int64(2), page.Meta.TotalItems)
	assert.Equal(t, []string{"bob", "bobby"}, []string{page.Data[0].Nickname, page.Data[1].Nickname})
}

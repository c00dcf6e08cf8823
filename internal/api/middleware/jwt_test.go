package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oaflow.io/oaflow/ent"
	"oaflow.io/oaflow/internal/workflow"
)

var testSigningKey = []byte("test-signing-key-1234567890123456")

func testJWTConfig() JWTConfig {
	return JWTConfig{
		SigningKey: testSigningKey,
		Issuer:     "oaflow",
		ExpiresIn:  time.Hour,
	}
}

func authRouter(key []byte) *gin.Engine {
	router := gin.New()
	router.Use(JWTAuth(key))
	router.GET("/whoami", func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no actor"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"user_id":  actor.ID,
			"username": actor.Username,
			"role":     actor.Role,
		})
	})
	return router
}

func doAuth(t *testing.T, router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_Success(t *testing.T) {
	dept := "Finance"
	mgr := 7
	token, expiresAt, err := GenerateToken(testJWTConfig(), &ent.User{
		ID:        3,
		Username:  "alice",
		Role:      "user",
		Dept:      &dept,
		ManagerID: &mgr,
	})
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	w := doAuth(t, authRouter(testSigningKey), "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(3), body["user_id"])
	assert.Equal(t, "alice", body["username"])
	assert.Equal(t, "user", body["role"])
}

func TestJWTAuth_PopulatesRequestContext(t *testing.T) {
	token, _, err := GenerateToken(testJWTConfig(), &ent.User{ID: 9, Username: "bob", Role: "admin"})
	require.NoError(t, err)

	var fromCtx workflow.Actor
	router := gin.New()
	router.Use(JWTAuth(testSigningKey))
	router.GET("/whoami", func(c *gin.Context) {
		actor, ok := ActorFromContext(c.Request.Context())
		require.True(t, ok)
		fromCtx = actor
		c.Status(http.StatusOK)
	})

	w := doAuth(t, router, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 9, fromCtx.ID)
	assert.Equal(t, "bob", fromCtx.Username)
	assert.True(t, fromCtx.IsAdmin())
}

func TestJWTAuth_RejectsMissingAndMalformedHeaders(t *testing.T) {
	router := authRouter(testSigningKey)

	for _, header := range []string{"", "Basic abc", "Bearer", "Bearer bad.token.here"} {
		w := doAuth(t, router, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "not_authenticated", body["code"], "header %q", header)
	}
}

func TestJWTAuth_RejectsWrongSigningKey(t *testing.T) {
	token, _, err := GenerateToken(testJWTConfig(), &ent.User{ID: 1, Username: "alice", Role: "user"})
	require.NoError(t, err)

	w := doAuth(t, authRouter([]byte("another-signing-key-9876543210987654")), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_RejectsExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	cfg.ExpiresIn = -time.Minute
	token, _, err := GenerateToken(cfg, &ent.User{ID: 1, Username: "alice", Role: "user"})
	require.NoError(t, err)

	w := doAuth(t, authRouter(testSigningKey), "Bearer "+token)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "token expired", body["message"])
}

func TestJWTAuth_RejectsNoneSigningMethod(t *testing.T) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodNone, JWTClaims{
		UserID:   1,
		Username: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "oaflow",
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	w := doAuth(t, authRouter(testSigningKey), "Bearer "+tokenString)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	route := func(actor *workflow.Actor) *gin.Engine {
		router := gin.New()
		router.Use(func(c *gin.Context) {
			if actor != nil {
				SetActor(c, *actor)
			}
			c.Next()
		})
		router.Use(RequireAdmin())
		router.GET("/admin", func(c *gin.Context) { c.Status(http.StatusOK) })
		return router
	}

	hit := func(router *gin.Engine) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, hit(route(&workflow.Actor{ID: 1, Role: "admin"})))
	assert.Equal(t, http.StatusForbidden, hit(route(&workflow.Actor{ID: 2, Role: "user"})))
	assert.Equal(t, http.StatusUnauthorized, hit(route(nil)))
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	var seen string
	router.GET("/", func(c *gin.Context) {
		seen = GetRequestID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "fixed-id")
	router.ServeHTTP(w, req)
	assert.Equal(t, "fixed-id", seen)
}

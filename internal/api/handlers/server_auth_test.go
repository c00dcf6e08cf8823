package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLogin(t *testing.T) {
	t.Parallel()
	server, client := newTestServer(t, "handlers_login")

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	require.NoError(t, err)
	_, err = client.User.Create().
		SetUsername("alice").
		SetPasswordHash(string(hash)).
		SetRole("user").
		Save(t.Context())
	require.NoError(t, err)

	router := testRouter(server, nil)

	t.Run("success", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/login", gin.H{
			"username": "alice",
			"password": "s3cret",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		body := decode(t, w)
		assert.NotEmpty(t, body["token"])
		assert.NotEmpty(t, body["expires_at"])
		assert.Equal(t, "alice", body["username"])
		assert.Equal(t, "user", body["role"])
	})

	t.Run("wrong password", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/login", gin.H{
			"username": "alice",
			"password": "nope",
		})
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "invalid_credentials", errorCode(t, w))
	})

	t.Run("unknown user", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/login", gin.H{
			"username": "ghost",
			"password": "s3cret",
		})
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "invalid_credentials", errorCode(t, w))
	})

	t.Run("missing fields", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/login", gin.H{
			"username": "alice",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "missing_fields", errorCode(t, w))
	})
}

func TestUnauthenticatedRoutesReject(t *testing.T) {
	t.Parallel()
	server, _ := newTestServer(t, "handlers_noauth")

	router := testRouter(server, nil)
	for _, path := range []string{"/api/me", "/api/inbox", "/api/requests"} {
		w := doJSON(t, router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aevohorology/storefront-service/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRepo(baseURL string) *RestAuthRepositoryImpl {
	conf := &config.Config{}
	conf.RemoteConfig.BaseURL = baseURL
	conf.RemoteConfig.ServiceKey = "service-key"

	return CreateNewRestAuthRepository(conf)
}

func TestSignInStoresSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/v1/token":
			assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
			json.NewEncoder(w).Encode(map[string]interface{}{
				"access_token": "token-abc",
				"expires_at":   1767225600,
				"user":         map[string]string{"id": "u1", "email": "curator@aevo.example"},
			})
		case "/auth/v1/user":
			json.NewEncoder(w).Encode(map[string]string{"id": "u1", "email": "curator@aevo.example"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	repo := newAuthRepo(server.URL)

	sess, user, err := repo.SignIn(context.Background(), "curator@aevo.example", "secret")
	require.NoError(t, err)
	assert.Equal(t, "token-abc", sess.AccessToken)
	assert.Equal(t, "u1", user.ID)

	sess, user, err = repo.GetSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-abc", sess.AccessToken)
	assert.Equal(t, "curator@aevo.example", user.Email)
}

func TestGetSessionWithoutSignInIsEmpty(t *testing.T) {
	repo := newAuthRepo("http://remote.invalid")

	sess, user, err := repo.GetSession(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sess.AccessToken)
	assert.Empty(t, user.ID)
}

func TestRejectedTokenClearsSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/v1/token":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"access_token": "token-abc",
				"user":         map[string]string{"id": "u1"},
			})
		case "/auth/v1/user":
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer server.Close()

	repo := newAuthRepo(server.URL)
	_, _, err := repo.SignIn(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)

	sess, _, err := repo.GetSession(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sess.AccessToken, "a rejected token means the session is gone")
}

func TestIsAdminReadsProfileFlag(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/profiles", r.URL.Path)
		assert.Equal(t, "eq.u1", r.URL.Query().Get("id"))
		json.NewEncoder(w).Encode([]map[string]bool{{"is_admin": true}})
	}))
	defer server.Close()

	isAdmin, err := newAuthRepo(server.URL).IsAdmin(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, isAdmin)
}

func TestIsAdminMissingProfileIsNotAdmin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]bool{})
	}))
	defer server.Close()

	isAdmin, err := newAuthRepo(server.URL).IsAdmin(context.Background(), "u-missing")
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

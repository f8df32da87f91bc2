package authapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/algharieb/ghareeb-app/internal/authapi"
	"github.com/algharieb/ghareeb-app/internal/domain/types"
)

func TestLogin_WrappedUserResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/login", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NotEmpty(t, r.Header.Get("X-Request-Id"))

		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "amal", body.Username)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"user": types.User{ID: 3, Username: body.Username},
		})
	}))
	defer srv.Close()

	c := authapi.New(srv.URL, nil)
	user, err := c.Login(context.Background(), "amal", "pw")
	require.NoError(t, err)
	require.Equal(t, types.ID(3), user.ID)
}

func TestLogin_BareUserResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(types.User{ID: 4, Username: "amal"})
	}))
	defer srv.Close()

	c := authapi.New(srv.URL, nil)
	user, err := c.Login(context.Background(), "amal", "pw")
	require.NoError(t, err)
	require.Equal(t, types.ID(4), user.ID)
}

func TestLogin_NonSuccessStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := authapi.New(srv.URL, nil)
	_, err := c.Login(context.Background(), "amal", "wrong")
	require.Error(t, err)
}

func TestLogout_PostsUserID(t *testing.T) {
	var got types.ID
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/logout", r.URL.Path)
		var body struct {
			UserID types.ID `json:"userId"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		got = body.UserID
	}))
	defer srv.Close()

	c := authapi.New(srv.URL, nil)
	require.NoError(t, c.Logout(context.Background(), 5))
	require.Equal(t, types.ID(5), got)
}

func TestRegister_ReturnsServerRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/register", r.URL.Path)
		var in types.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		in.ID = 11
		_ = json.NewEncoder(w).Encode(map[string]any{"user": in})
	}))
	defer srv.Close()

	c := authapi.New(srv.URL, nil)
	user, err := c.Register(context.Background(), types.User{Username: "badr"})
	require.NoError(t, err)
	require.Equal(t, types.ID(11), user.ID)
	require.Equal(t, "badr", user.Username)
}

package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newFileGate(t *testing.T, baseURL string) (*Gate, *FileStore) {
	t.Helper()
	store := NewFileStore(filepath.Join(t.TempDir(), TokenKey))
	return NewGate(store, baseURL, 5*time.Second), store
}

func TestCheckWithoutTokenSkipsNetwork(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	gate, _ := newFileGate(t, srv.URL)
	require.False(t, gate.Check(context.Background()))
	require.Zero(t, requests, "an empty slot must not trigger verification")
}

func TestCheckClearsTokenOnRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Could not validate credentials"})
	}))
	defer srv.Close()

	gate, store := newFileGate(t, srv.URL)
	require.NoError(t, store.Save("stale-token"))

	require.False(t, gate.Check(context.Background()))
	require.Empty(t, gate.Token(), "a rejected token must be dropped, not kept")
}

func TestCheckClearsTokenOnNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	gate, store := newFileGate(t, srv.URL)
	require.NoError(t, store.Save("unverifiable-token"))

	require.False(t, gate.Check(context.Background()))
	require.Empty(t, gate.Token())
}

func TestCheckAcceptsVerifiedToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/verify-token", r.URL.Path)
		require.Equal(t, "Bearer good-token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	gate, store := newFileGate(t, srv.URL)
	require.NoError(t, store.Save("good-token"))

	require.True(t, gate.Check(context.Background()))
	require.Equal(t, "good-token", gate.Token())
}

func TestLoginPersistsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth", r.URL.Path)
		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		require.Equal(t, "admin@neonstore.com", creds["email"])
		json.NewEncoder(w).Encode(map[string]string{"token": "issued-token"})
	}))
	defer srv.Close()

	gate, _ := newFileGate(t, srv.URL)
	require.NoError(t, gate.Login(context.Background(), "admin@neonstore.com", "admin-password"))
	require.Equal(t, "issued-token", gate.Token())
}

func TestLoginSurfacesServerDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Only administrators can log in"})
	}))
	defer srv.Close()

	gate, _ := newFileGate(t, srv.URL)
	err := gate.Login(context.Background(), "bruno@example.com", "client-password")
	require.Error(t, err)

	var authErr *AuthError
	require.True(t, errors.As(err, &authErr))
	require.Equal(t, "Only administrators can log in", authErr.Message)
	require.Empty(t, gate.Token())
}

func TestLoginNetworkFailureIsGeneric(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	gate, _ := newFileGate(t, srv.URL)
	err := gate.Login(context.Background(), "admin@neonstore.com", "admin-password")

	var authErr *AuthError
	require.True(t, errors.As(err, &authErr))
	require.Equal(t, genericNetworkMessage, authErr.Message)
}

func TestLogoutClearsSlot(t *testing.T) {
	gate, store := newFileGate(t, "http://unused")
	require.NoError(t, store.Save("some-token"))

	gate.Logout()
	require.Empty(t, gate.Token())
	// Clearing an already empty slot stays quiet.
	gate.Logout()
	require.Empty(t, gate.Token())
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nested", TokenKey))

	token, err := store.Load()
	require.NoError(t, err)
	require.Empty(t, token)

	require.NoError(t, store.Save("abc123"))
	token, err = store.Load()
	require.NoError(t, err)
	require.Equal(t, "abc123", token)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
	token, err = store.Load()
	require.NoError(t, err)
	require.Empty(t, token)
}

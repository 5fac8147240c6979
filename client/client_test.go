package client

import (
	"context"
	"fmt"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/neonstore-ecommerce/neonstore-admin/mockapi"
	"github.com/neonstore-ecommerce/neonstore-admin/session"
)

var storeCounter atomic.Int64

const (
	testAdminEmail    = "admin@neonstore.com"
	testAdminPassword = "admin-password"
)

// newStore spins up a seeded in-process store API.
func newStore(t *testing.T) *httptest.Server {
	t.Helper()
	dsn := fmt.Sprintf("file:clienttest%d?mode=memory&cache=shared", storeCounter.Add(1))
	db, err := mockapi.OpenDB(dsn)
	require.NoError(t, err)
	require.NoError(t, mockapi.Seed(db, testAdminEmail, testAdminPassword))

	srv := httptest.NewServer(mockapi.NewServer(db, "test-secret").Handler())
	t.Cleanup(srv.Close)
	return srv
}

// newLoggedInClient logs in through a real gate and returns a client
// carrying its token.
func newLoggedInClient(t *testing.T, baseURL string) (*Client, *session.Gate) {
	t.Helper()
	store := session.NewFileStore(filepath.Join(t.TempDir(), session.TokenKey))
	gate := session.NewGate(store, baseURL, 5*time.Second)
	require.NoError(t, gate.Login(context.Background(), testAdminEmail, testAdminPassword))
	return New(baseURL, gate, 5*time.Second), gate
}

// stubSession lets tests fix a token and observe invalidation.
type stubSession struct {
	token       string
	invalidated bool
}

func (s *stubSession) Token() string { return s.token }
func (s *stubSession) Invalidate() { s.invalidated = true }

func TestUnauthorizedResponseInvalidatesSession(t *testing.T) {
	srv := newStore(t)
	stub := &stubSession{token: "not-a-real-token"}
	c := New(srv.URL, stub, 5*time.Second)

	_, err := NewCategoryManager(c).List(context.Background())
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, 403, statusErr.Code)
	require.True(t, stub.invalidated, "401/403 must invalidate the session slot")
}

func TestHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unauthorized collapses", &StatusError{Code: 401}, 401},
		{"forbidden collapses", &StatusError{Code: 403}, 401},
		{"not found passes through", &StatusError{Code: 404}, 404},
		{"transport error is bad gateway", fmt.Errorf("connection refused"), 502},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

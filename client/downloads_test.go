package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/neonstore-ecommerce/neonstore-admin/models"
)

func TestDownloadInactiveFileIssuesNoRequest(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL, &stubSession{token: "token"}, 5*time.Second)
	manager := NewDownloadManager(c)

	_, _, err := manager.Download(context.Background(), models.DownloadFile{
		ID:         7,
		StoredName: "archived.txt",
		IsActive:   false,
	})
	require.ErrorIs(t, err, ErrFileInactive)
	require.Zero(t, requests, "inactive file must not touch the network")
}

func TestDownloadActiveFileAndCounterRefresh(t *testing.T) {
	srv := newStore(t)
	c, _ := newLoggedInClient(t, srv.URL)
	manager := NewDownloadManager(c)
	ctx := context.Background()

	files, err := manager.List(ctx)
	require.NoError(t, err)

	var active models.DownloadFile
	for _, f := range files {
		if f.IsActive {
			active = f
		}
	}
	require.NotZero(t, active.ID, "seed must include an active file")
	countBefore := active.DownloadCount

	data, contentType, err := manager.Download(ctx, active)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	require.Contains(t, contentType, "text/plain")

	// The post-download refresh shows the bumped counter.
	files, err = manager.List(ctx)
	require.NoError(t, err)
	for _, f := range files {
		if f.ID == active.ID {
			require.Equal(t, countBefore+1, f.DownloadCount)
		}
	}
}

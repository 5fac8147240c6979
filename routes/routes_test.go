package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/neonstore-ecommerce/neonstore-admin/client"
	"github.com/neonstore-ecommerce/neonstore-admin/controllers/auth_controller"
	"github.com/neonstore-ecommerce/neonstore-admin/controllers/category_controller"
	"github.com/neonstore-ecommerce/neonstore-admin/controllers/download_controller"
	"github.com/neonstore-ecommerce/neonstore-admin/controllers/product_controller"
	"github.com/neonstore-ecommerce/neonstore-admin/controllers/sale_controller"
	"github.com/neonstore-ecommerce/neonstore-admin/controllers/user_controller"
	"github.com/neonstore-ecommerce/neonstore-admin/mockapi"
	"github.com/neonstore-ecommerce/neonstore-admin/session"
)

var dashCounter atomic.Int64

const (
	adminEmail    = "admin@neonstore.com"
	adminPassword = "admin-password"
)

// newDashboard wires the full stack: seeded store API behind a gate,
// controllers, and the mounted route tree. It mirrors main minus Redis
// and CORS.
func newDashboard(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:routetest%d?mode=memory&cache=shared", dashCounter.Add(1))
	db, err := mockapi.OpenDB(dsn)
	require.NoError(t, err)
	require.NoError(t, mockapi.Seed(db, adminEmail, adminPassword))
	store := httptest.NewServer(mockapi.NewServer(db, "test-secret").Handler())
	t.Cleanup(store.Close)

	tokenStore := session.NewFileStore(filepath.Join(t.TempDir(), session.TokenKey))
	gate := session.NewGate(tokenStore, store.URL, 5*time.Second)
	apiClient := client.New(store.URL, gate, 5*time.Second)

	userManager := client.NewUserManager(apiClient)
	productManager := client.NewProductManager(apiClient)

	auth_controller.Init(gate)
	category_controller.Init(client.NewCategoryManager(apiClient))
	product_controller.Init(productManager)
	user_controller.Init(userManager)
	sale_controller.Init(client.NewSaleManager(apiClient), userManager, productManager.Manager)
	download_controller.Init(client.NewDownloadManager(apiClient))

	router := gin.New()
	Setup(router, gate, false)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, router *gin.Engine) {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/session/login", map[string]string{
		"email":    adminEmail,
		"password": adminPassword,
	})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestResourceRoutesRequireSession(t *testing.T) {
	router := newDashboard(t)

	for _, path := range []string{"/api/categories", "/api/products", "/api/users", "/api/sales", "/api/downloads"} {
		w := doJSON(t, router, http.MethodGet, path, nil)
		require.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestLoginListLogoutFlow(t *testing.T) {
	router := newDashboard(t)
	login(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/session", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var sessionResp struct {
		Data struct {
			Authenticated bool `json:"authenticated"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sessionResp))
	require.True(t, sessionResp.Data.Authenticated)

	w = doJSON(t, router, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		Data []struct {
			Name string `json:"name"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	require.NotEmpty(t, listResp.Data)

	w = doJSON(t, router, http.MethodPost, "/api/session/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRejectsNonAdmin(t *testing.T) {
	router := newDashboard(t)

	w := doJSON(t, router, http.MethodPost, "/api/session/login", map[string]string{
		"email":    "bruno@example.com",
		"password": "client-password",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	var resp struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "Only administrators can log in", resp.Message)
}

func TestDeleteWithoutConfirmationIsRefused(t *testing.T) {
	router := newDashboard(t)
	login(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		Data []struct {
			ID uint `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	require.NotEmpty(t, listResp.Data)
	id := listResp.Data[0].ID

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/categories/%d", id), nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// The collection is untouched.
	w = doJSON(t, router, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var after struct {
		Data []struct {
			ID uint `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &after))
	require.Len(t, after.Data, len(listResp.Data))
}

func TestSalePreviewTotalEndpoint(t *testing.T) {
	router := newDashboard(t)
	login(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/sales/preview", map[string]any{
		"items": []map[string]any{
			{"product_id": 1, "quantity": 2, "unit_price": 10.00},
			{"product_id": 2, "quantity": 1, "unit_price": 5.50},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data struct {
			Total float64 `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.InDelta(t, 25.50, resp.Data.Total, 1e-9)
}

func TestSaleInvoiceExport(t *testing.T) {
	router := newDashboard(t)
	login(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/sales", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		Data []struct {
			ID uint `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	require.NotEmpty(t, listResp.Data, "seed must include a sale")

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/sales/%d/invoice", listResp.Data[0].ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	require.NotZero(t, w.Body.Len())
}

package session

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// AuthError carries the user-visible login failure message.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

const (
	genericAuthMessage    = "Authentication failed"
	genericNetworkMessage = "Could not reach the store API"
)

// Gate is the session boundary: it owns the token slot, performs login
// and verification against the store API, and invalidates the slot
// when any authenticated call comes back 401/403.
type Gate struct {
	store   TokenStore
	baseURL string
	http    *http.Client
}

// NewGate builds a gate over the given token store. baseURL is the
// store API root without a trailing slash.
func NewGate(store TokenStore, baseURL string, timeout time.Duration) *Gate {
	return &Gate{
		store:   store,
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Token returns the cached token, or an empty string when logged out.
func (g *Gate) Token() string {
	token, err := g.store.Load()
	if err != nil {
		log.Printf("[session] failed to read token store: %v", err)
		return ""
	}
	return token
}

// Check reports whether a valid session exists. A stored token is
// verified against the store API; any non-OK status or transport
// failure clears the slot (fail-closed).
func (g *Gate) Check(ctx context.Context) bool {
	token := g.Token()
	if token == "" {
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/auth/verify-token", nil)
	if err != nil {
		g.Invalidate()
		return false
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := g.http.Do(req)
	if err != nil {
		log.Printf("[session] token verification failed: %v", err)
		g.Invalidate()
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[session] token rejected with status %d", resp.StatusCode)
		g.Invalidate()
		return false
	}
	return true
}

// Login exchanges credentials for a token and persists it. The error,
// when non-nil, is an *AuthError safe to show the operator. A single
// attempt, never retried.
func (g *Gate) Login(ctx context.Context, email, password string) error {
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return &AuthError{Message: genericAuthMessage}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/auth", bytes.NewReader(body))
	if err != nil {
		return &AuthError{Message: genericAuthMessage}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.http.Do(req)
	if err != nil {
		log.Printf("[session] login request failed: %v", err)
		return &AuthError{Message: genericNetworkMessage}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// The store API reports the failure reason in a detail field.
		var payload struct {
			Detail string `json:"detail"`
		}
		message := genericAuthMessage
		if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Detail != "" {
			message = payload.Detail
		}
		log.Printf("[session] login rejected with status %d", resp.StatusCode)
		return &AuthError{Message: message}
	}

	var tokenResp struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil || tokenResp.Token == "" {
		log.Printf("[session] malformed login response: %v", err)
		return &AuthError{Message: genericAuthMessage}
	}

	if err := g.store.Save(tokenResp.Token); err != nil {
		log.Printf("[session] failed to persist token: %v", err)
		return &AuthError{Message: genericAuthMessage}
	}
	log.Printf("[session] login succeeded for %s", email)
	return nil
}

// Logout clears the token unconditionally. No server call is made.
func (g *Gate) Logout() {
	g.Invalidate()
	log.Println("[session] logged out")
}

// Invalidate drops the cached token. The API client calls this on any
// 401 or 403 response.
func (g *Gate) Invalidate() {
	if err := g.store.Clear(); err != nil {
		log.Printf("[session] failed to clear token store: %v", err)
	}
}

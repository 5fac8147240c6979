package client

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/neonstore-ecommerce/neonstore-admin/models"
)

// Config fixes one entity collection to its REST base path.
type Config struct {
	// Path is the collection endpoint, e.g. "/products".
	Path string
	// Name tags log lines, e.g. "products".
	Name string
	// FileField is the multipart field name for the image part.
	FileField string
}

// Manager drives the fetch/search/create/update/delete cycle for one
// entity collection. The five entity managers are instantiations of
// this one type; entity-specific behavior wraps it.
type Manager[T any] struct {
	client       *Client
	cfg          Config
	searchFields func(T) []string
}

// NewManager builds a manager. searchFields selects the text fields
// Search matches against.
func NewManager[T any](c *Client, cfg Config, searchFields func(T) []string) *Manager[T] {
	if cfg.FileField == "" {
		cfg.FileField = "image"
	}
	return &Manager[T]{client: c, cfg: cfg, searchFields: searchFields}
}

// List fetches the whole collection. On failure the error is logged
// and returned with a nil slice; the caller keeps its prior state.
func (m *Manager[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := m.client.getJSON(ctx, m.cfg.Path, &items); err != nil {
		log.Printf("[%s] list failed: %v", m.cfg.Name, err)
		return nil, err
	}
	return items, nil
}

// Search filters the in-memory collection with a case-insensitive
// substring match. It never touches the network.
func (m *Manager[T]) Search(items []T, term string) []T {
	return Filter(items, term, m.searchFields)
}

// CreateJSON posts a JSON body and decodes the created entity.
func (m *Manager[T]) CreateJSON(ctx context.Context, body any) (T, error) {
	var created T
	if err := m.client.sendJSON(ctx, http.MethodPost, m.cfg.Path, body, &created); err != nil {
		log.Printf("[%s] create failed: %v", m.cfg.Name, err)
		return created, err
	}
	return created, nil
}

// UpdateJSON puts a JSON body against one entity id.
func (m *Manager[T]) UpdateJSON(ctx context.Context, id uint, body any) (T, error) {
	var updated T
	path := fmt.Sprintf("%s/%d", m.cfg.Path, id)
	if err := m.client.sendJSON(ctx, http.MethodPut, path, body, &updated); err != nil {
		log.Printf("[%s] update %d failed: %v", m.cfg.Name, id, err)
		return updated, err
	}
	return updated, nil
}

// CreateMultipart posts form fields plus an optional image file.
func (m *Manager[T]) CreateMultipart(ctx context.Context, fields map[string]string, file *models.FileUpload) (T, error) {
	var created T
	if err := m.client.sendMultipart(ctx, http.MethodPost, m.cfg.Path, fields, m.cfg.FileField, file, &created); err != nil {
		log.Printf("[%s] create failed: %v", m.cfg.Name, err)
		return created, err
	}
	return created, nil
}

// UpdateMultipart puts form fields plus an optional image file against
// one entity id.
func (m *Manager[T]) UpdateMultipart(ctx context.Context, id uint, fields map[string]string, file *models.FileUpload) (T, error) {
	var updated T
	path := fmt.Sprintf("%s/%d", m.cfg.Path, id)
	if err := m.client.sendMultipart(ctx, http.MethodPut, path, fields, m.cfg.FileField, file, &updated); err != nil {
		log.Printf("[%s] update %d failed: %v", m.cfg.Name, id, err)
		return updated, err
	}
	return updated, nil
}

// Delete removes one entity by id.
func (m *Manager[T]) Delete(ctx context.Context, id uint) error {
	resp, err := m.client.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", m.cfg.Path, id), "", nil)
	if err != nil {
		log.Printf("[%s] delete %d failed: %v", m.cfg.Name, id, err)
		return err
	}
	resp.Body.Close()
	return nil
}

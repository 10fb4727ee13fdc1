package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrBucketMissing means the storage bucket is not provisioned — a
// configuration problem, not a transient failure. Callers can match it with
// errors.Is to show an actionable message.
var ErrBucketMissing = errors.New("storage bucket does not exist")

// ObjectStore is what issuance needs from object storage.
type ObjectStore interface {
	// Upload stores bytes under key (upsert) and returns the public locator.
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	// Remove deletes key. Callers treat it as best-effort.
	Remove(ctx context.Context, key string) error
	// PublicURL returns the public locator for key. Pure, no I/O.
	PublicURL(key string) string
}

// SupabaseStore talks to Supabase Storage over its HTTP API.
type SupabaseStore struct {
	BaseURL   string
	SecretKey string // must be the service_role key, not the anon key
	Bucket    string
	Client    *http.Client
}

func (s *SupabaseStore) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	url := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.base(), s.Bucket, key)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	s.setHeaders(req)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	respBody, status, err := s.do(req)
	if err != nil {
		return "", fmt.Errorf("supabase upload: %w", err)
	}
	if status < 200 || status >= 300 {
		if isBucketMissing(status, respBody) {
			return "", fmt.Errorf("%w: bucket %q not found in Supabase Storage — create it from the Supabase dashboard (raw body: %s)", ErrBucketMissing, s.Bucket, respBody)
		}
		return "", fmt.Errorf("supabase upload: status %d body: %s", status, respBody)
	}
	return s.PublicURL(key), nil
}

func (s *SupabaseStore) Remove(ctx context.Context, key string) error {
	url := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.base(), s.Bucket, key)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}
	s.setHeaders(req)

	respBody, status, err := s.do(req)
	if err != nil {
		return fmt.Errorf("supabase remove: %w", err)
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("supabase remove: status %d body: %s", status, respBody)
	}
	return nil
}

func (s *SupabaseStore) PublicURL(key string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.base(), s.Bucket, key)
}

func (s *SupabaseStore) base() string {
	return strings.TrimRight(s.BaseURL, "/")
}

// setHeaders matches @supabase/supabase-js: both apikey and Authorization
// Bearer carry the same key.
func (s *SupabaseStore) setHeaders(req *http.Request) {
	req.Header.Set("apikey", s.SecretKey)
	req.Header.Set("Authorization", "Bearer "+s.SecretKey)
}

func (s *SupabaseStore) do(req *http.Request) (string, int, error) {
	if s.Client == nil {
		s.Client = &http.Client{Timeout: 30 * time.Second}
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return string(body), resp.StatusCode, nil
}

func isBucketMissing(status int, body string) bool {
	if status != http.StatusBadRequest && status != http.StatusNotFound {
		return false
	}
	return strings.Contains(body, "Bucket not found") || strings.Contains(strings.ToLower(body), "bucket")
}

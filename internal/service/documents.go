package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

type documentService struct {
	httpClient  *http.Client
	maxFileSize int64
}

func newDocumentService(maxFileSize int64) *documentService {
	return &documentService{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		maxFileSize: maxFileSize,
	}
}

// Fetch pulls a stored document back from its CDN URL for the admin viewer.
func (s *documentService) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse document url failed: %w", err)
	}
	if parsed.Scheme != "https" {
		return nil, fmt.Errorf("unsupported document url scheme: %q", parsed.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create document request failed: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch document failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch document failed: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, s.maxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("read document failed: %w", err)
	}
	if int64(len(data)) > s.maxFileSize {
		return nil, fmt.Errorf("document exceeds %d bytes", s.maxFileSize)
	}

	return data, nil
}

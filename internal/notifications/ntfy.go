package notifications

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const userAgent = "Warden/0.1.0"

// NtfyObserver forwards broadcast messages to an ntfy topic over HTTP.
type NtfyObserver struct {
	name     string
	endpoint string
	client   *http.Client
}

// NewNtfyObserver builds an observer posting to the given ntfy topic URL.
func NewNtfyObserver(endpoint string, timeout time.Duration) *NtfyObserver {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &NtfyObserver{
		name:     "ntfy",
		endpoint: strings.TrimSpace(endpoint),
		client:   &http.Client{Timeout: timeout},
	}
}

func (n *NtfyObserver) Name() string { return n.name }

func (n *NtfyObserver) Notify(ctx context.Context, message string) error {
	if n == nil || n.client == nil || n.endpoint == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(message))
	if err != nil {
		return fmt.Errorf("build ntfy request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	req.Header.Set("Title", "Warden")
	req.Header.Set("Tags", "warden,hostel")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send ntfy notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("ntfy returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

package sampleplayers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPClient wraps http.Client with a timeout.
type HTTPClient struct {
	client *http.Client
}

// NewHTTPClient creates a new HTTP client with the given timeout.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{Timeout: timeout},
	}
}

// SubmitPlayer posts one player to /generate_report and decodes the
// report response.
func (c *HTTPClient) SubmitPlayer(baseURL string, player Player) (*Report, error) {
	body, err := json.Marshal(player)
	if err != nil {
		return nil, fmt.Errorf("marshal player: %w", err)
	}

	resp, err := c.client.Post(baseURL+"/generate_report", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("post player: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(payload))
	}

	var report Report
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return &report, nil
}

// CheckHealth probes /healthz and reports whether the service is up.
func (c *HTTPClient) CheckHealth(baseURL string) error {
	resp, err := c.client.Get(baseURL + "/healthz")
	if err != nil {
		return fmt.Errorf("health probe: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health probe: unexpected status %d", resp.StatusCode)
	}
	return nil
}

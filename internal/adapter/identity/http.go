package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	existsPath       = "/api/users/exists/"
	validateRolePath = "/api/users/validate-role/"
)

// envelope is the identity service's response wrapper.
type envelope struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
	Success bool   `json:"success"`
	Data    bool   `json:"data"`
}

// HTTPGateway asks the identity service over HTTP, forwarding the caller's Authorization header.
type HTTPGateway struct {
	baseURL string
	client  *http.Client
}

func NewHTTPGateway(baseURL string, timeout time.Duration) *HTTPGateway {
	return &HTTPGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (g *HTTPGateway) ExistsApplicant(ctx context.Context, identification, authHeader string) (bool, error) {
	return g.ask(ctx, existsPath, identification, authHeader)
}

func (g *HTTPGateway) HasReviewerRole(ctx context.Context, identification, authHeader string) (bool, error) {
	return g.ask(ctx, validateRolePath, identification, authHeader)
}

func (g *HTTPGateway) ask(ctx context.Context, path, identification, authHeader string) (bool, error) {
	endpoint := g.baseURL + path + url.PathEscape(identification)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Authorization", authHeader)
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("identity %s: %w", path, err)
	}
	defer resp.Body.Close()

	// a 404 from the exists endpoint is a plain "no"
	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return false, fmt.Errorf("identity %s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return false, fmt.Errorf("identity %s: decode: %w", path, err)
	}
	return env.Data, nil
}

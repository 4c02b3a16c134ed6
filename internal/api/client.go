package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/LerianStudio/lib-commons/commons/log"
	libErr "github.com/LerianStudio/lib-dashboard-go/error"
	"github.com/LerianStudio/lib-dashboard-go/model"
)

// Client fetches customization override documents from a remote HTTP endpoint
type Client struct {
	httpClient *http.Client
	url        string
	logger     log.Logger
}

// New creates a new API client
func New(url string, timeout time.Duration, httpClient *http.Client, logger log.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: timeout,
		}
	}

	return &Client{
		httpClient: httpClient,
		url:        url,
		logger:     logger,
	}
}

// SetHTTPClient allows overriding the HTTP client (useful for testing)
func (c *Client) SetHTTPClient(client *http.Client) {
	if client != nil {
		c.httpClient = client
	}
}

// Name identifies the source in logs and errors
func (c *Client) Name() string {
	return c.url
}

// Fetch downloads the override document and reports its format ("json" or "toml")
func (c *Client) Fetch(ctx context.Context) ([]byte, string, error) {
	if c.url == "" {
		return nil, "", fmt.Errorf("remote url is not set")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json, application/toml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warnf("Customization fetch failed - error: %s", err.Error())
		return nil, "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", c.handleErrorResponse(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response: %w", err)
	}

	return body, formatOf(resp.Header.Get("Content-Type"), c.url), nil
}

// handleErrorResponse processes error responses from the endpoint
func (c *Client) handleErrorResponse(resp *http.Response) error {
	var errorResp model.ErrorResponse

	bodyBytes, _ := io.ReadAll(resp.Body)
	resp.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

	_ = json.Unmarshal(bodyBytes, &errorResp)

	if resp.StatusCode >= 500 && resp.StatusCode < 600 {
		c.logger.Debugf("Server error during customization fetch - status: %d, code: %s, message: %s",
			resp.StatusCode, errorResp.Code, errorResp.Message)

		return &libErr.ApiError{Source: c.url, StatusCode: resp.StatusCode, Msg: fmt.Sprintf("server error: %d", resp.StatusCode)}
	}

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		c.logger.Debugf("Client error during customization fetch - status: %d, code: %s, message: %s",
			resp.StatusCode, errorResp.Code, errorResp.Message)

		return &libErr.ApiError{Source: c.url, StatusCode: resp.StatusCode, Msg: fmt.Sprintf("client error: %d", resp.StatusCode)}
	}

	c.logger.Debugf("Unexpected response during customization fetch - status: %d", resp.StatusCode)

	return &libErr.ApiError{Source: c.url, StatusCode: resp.StatusCode, Msg: fmt.Sprintf("unexpected status: %d", resp.StatusCode)}
}

// formatOf picks the document format from the content type, falling back to the URL extension
func formatOf(contentType, url string) string {
	ct := strings.ToLower(contentType)

	switch {
	case strings.Contains(ct, "toml"):
		return "toml"
	case strings.Contains(ct, "json"):
		return "json"
	}

	if strings.EqualFold(path.Ext(strings.SplitN(url, "?", 2)[0]), ".toml") {
		return "toml"
	}

	return "json"
}

package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	libErr "github.com/LerianStudio/lib-dashboard-go/error"
	"github.com/LerianStudio/lib-dashboard-go/test/helper"
	"github.com/LerianStudio/lib-dashboard-go/test/helper/testlogger"
	"github.com/LerianStudio/lib-dashboard-go/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchDocument(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		path        string
		wantFormat  string
	}{
		{"json content type", "application/json", "/dashboard", "json"},
		{"toml content type", "application/toml; charset=utf-8", "/dashboard", "toml"},
		{"toml extension", "text/plain", "/dashboard.toml?rev=2", "toml"},
		{"defaults to json", "", "/dashboard", "json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := helper.NewDocumentServer(t, tt.contentType, `title = "Acme"`)

			c := New(srv.URL+tt.path, time.Second, nil, testlogger.New())

			body, format, err := c.Fetch(context.Background())
			require.NoError(t, err)
			assert.Equal(t, `title = "Acme"`, string(body))
			assert.Equal(t, tt.wantFormat, format)
			assert.Equal(t, 1, srv.Hits())
		})
	}
}

func TestFetchErrorStatus(t *testing.T) {
	srv := helper.NewDocumentServer(t, "application/json", "")
	c := New(srv.URL, time.Second, nil, testlogger.New())

	srv.Respond(http.StatusServiceUnavailable, `{"code":"X","message":"down"}`)

	_, _, err := c.Fetch(context.Background())
	require.Error(t, err)
	assert.True(t, libErr.IsServerError(err))
	assert.True(t, libErr.IsTransient(err))
	assert.Contains(t, err.Error(), "server error: 503")

	srv.Respond(http.StatusNotFound, "")

	_, _, err = c.Fetch(context.Background())
	require.Error(t, err)
	assert.False(t, libErr.IsTransient(err))
	assert.Contains(t, err.Error(), "client error: 404")
	assert.Contains(t, err.Error(), srv.URL)
}

func TestFetchConnectionError(t *testing.T) {
	logger := testlogger.New()
	c := New("http://config.invalid/dashboard.json", time.Second, mocks.HTTPClientConnectionErrorMock(), logger)

	_, _, err := c.Fetch(context.Background())
	require.Error(t, err)
	assert.True(t, libErr.IsConnectionError(err))
	assert.True(t, logger.Contains("WARN", "connection refused"))
}

func TestSetHTTPClient(t *testing.T) {
	c := New("http://config.example.com/dashboard.toml", time.Second, nil, testlogger.New())
	c.SetHTTPClient(mocks.HTTPClientDocumentMock(http.StatusOK, "", `title = "Mocked"`))
	c.SetHTTPClient(nil)

	body, format, err := c.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "toml", format)
	assert.Equal(t, `title = "Mocked"`, string(body))
	assert.Equal(t, "http://config.example.com/dashboard.toml", c.Name())
}

func TestFetchWithoutURL(t *testing.T) {
	_, _, err := New("", time.Second, nil, testlogger.New()).Fetch(context.Background())
	assert.Error(t, err)
}

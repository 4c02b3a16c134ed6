// Package helper provides test utilities shared by the dashboard packages
package helper

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// DocumentServer serves a customization document whose body and status can change
// between requests, and counts how often it was fetched.
type DocumentServer struct {
	*httptest.Server

	mu          sync.Mutex
	status      int
	contentType string
	body        string
	hits        atomic.Int32
}

// NewDocumentServer starts a server answering 200 with body as contentType
func NewDocumentServer(t *testing.T, contentType, body string) *DocumentServer {
	t.Helper()

	ds := &DocumentServer{status: http.StatusOK, contentType: contentType, body: body}
	ds.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		ds.hits.Add(1)

		ds.mu.Lock()
		status, contentType, body := ds.status, ds.contentType, ds.body
		ds.mu.Unlock()

		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ds.Close)

	return ds
}

// Respond changes what the next requests receive
func (ds *DocumentServer) Respond(status int, body string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	ds.status = status
	ds.body = body
}

// Hits returns the number of requests served
func (ds *DocumentServer) Hits() int {
	return int(ds.hits.Load())
}

// WriteDocument writes an override document into a temporary directory and returns its path
func WriteDocument(t *testing.T, name, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

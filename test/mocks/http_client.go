package mocks

import (
	"errors"
	"io"
	"net/http"
	"strings"
)

// RoundTripFunc lets a test answer requests of an http.Client directly
type RoundTripFunc func(req *http.Request) (*http.Response, error)

// RoundTrip implements the http.RoundTripper interface
func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// NewHTTPClientMock creates a new HTTP client with a mock transport
func NewHTTPClientMock(fn RoundTripFunc) *http.Client {
	return &http.Client{Transport: fn}
}

// NewHTTPResponse creates a response with the given status, content type and body
func NewHTTPResponse(statusCode int, contentType, body string) *http.Response {
	header := make(http.Header)
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}

	return &http.Response{
		StatusCode: statusCode,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     header,
	}
}

// HTTPClientConnectionErrorMock returns a client whose requests fail as if the host refused the connection
func HTTPClientConnectionErrorMock() *http.Client {
	return NewHTTPClientMock(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("dial tcp 127.0.0.1:1: connect: connection refused")
	})
}

// HTTPClientDocumentMock returns a client that always answers with a document
func HTTPClientDocumentMock(status int, contentType, body string) *http.Client {
	return NewHTTPClientMock(func(*http.Request) (*http.Response, error) {
		return NewHTTPResponse(status, contentType, body), nil
	})
}

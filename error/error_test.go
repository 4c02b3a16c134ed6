package error

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApiErrorMessage(t *testing.T) {
	assert.Equal(t, "server error: 502 (https://cfg)", (&ApiError{Source: "https://cfg", StatusCode: 502, Msg: "server error: 502"}).Error())
	assert.Equal(t, "client error: 404", (&ApiError{StatusCode: 404, Msg: "client error: 404"}).Error())
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"connection refused", errors.New("dial tcp 127.0.0.1:80: connect: connection refused"), true},
		{"deadline", fmt.Errorf("request failed: %w", context.DeadlineExceeded), true},
		{"server error", fmt.Errorf("fetch: %w", &ApiError{StatusCode: 503}), true},
		{"client error", &ApiError{StatusCode: 403}, false},
		{"validation", errors.New("title is required"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTransient(tt.err))
		})
	}
}

package llm

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuotaExhausted(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "429 status",
			err:  &HTTPError{StatusCode: http.StatusTooManyRequests, Body: "slow down"},
			want: true,
		},
		{
			name: "quota in body",
			err:  &HTTPError{StatusCode: http.StatusForbidden, Body: "Quota exceeded for project"},
			want: true,
		},
		{
			name: "plain server error",
			err:  &HTTPError{StatusCode: http.StatusInternalServerError, Body: "oops"},
			want: false,
		},
		{
			name: "foreign error",
			err:  errors.New("dial tcp: connection refused"),
			want: false,
		},
		{
			name: "empty generation",
			err:  ErrEmptyGeneration,
			want: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, QuotaExhausted(tt.err))
		})
	}
}

func TestHTTPErrorMessage(t *testing.T) {
	err := &HTTPError{StatusCode: 503, Body: "unavailable"}
	require.Contains(t, err.Error(), "status=503")
	require.Contains(t, err.Error(), "unavailable")
}

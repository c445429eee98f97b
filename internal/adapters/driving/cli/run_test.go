package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/shiftsync/internal/connectors/google"
)

func TestDescribeSyncError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want string
	}{
		{
			name: "unauthorised",
			in:   fmt.Errorf("list messages: %w", google.ErrUnauthorized),
			want: "credentials rejected",
		},
		{
			name: "calendar not found",
			in:   fmt.Errorf("insert event: %w", google.ErrNotFound),
			want: `calendar "primary" not found`,
		},
		{
			name: "rate limited",
			in:   fmt.Errorf("find overlapping: %w", google.ErrRateLimited),
			want: "retry later",
		},
		{
			name: "anything else",
			in:   errors.New("dial tcp: timeout"),
			want: "sync failed: dial tcp: timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := describeSyncError(tt.in, "primary")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.ErrorIs(t, err, tt.in, "the cause stays inspectable")
		})
	}
}

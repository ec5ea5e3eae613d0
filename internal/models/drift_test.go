package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackFilter_Empty(t *testing.T) {
	tests := []struct {
		name   string
		filter StackFilter
		want   bool
	}{
		{
			name:   "Zero value matches all stacks",
			filter: StackFilter{},
			want:   true,
		},
		{
			name:   "Name list set",
			filter: StackFilter{Names: []string{"prod-api"}},
			want:   false,
		},
		{
			name:   "Prefix set",
			filter: StackFilter{Prefix: "prod-"},
			want:   false,
		},
		{
			name:   "Tags set",
			filter: StackFilter{Tags: map[string]string{"env": "prod"}},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Empty())
		})
	}
}

func TestStackDriftResult_HasDrift(t *testing.T) {
	assert.True(t, StackDriftResult{StackStatus: StackStatusDrifted}.HasDrift())
	assert.False(t, StackDriftResult{StackStatus: StackStatusInSync}.HasDrift())
	assert.False(t, StackDriftResult{StackStatus: StackStatusNotChecked}.HasDrift())
}

package commission

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanReactivation(t *testing.T) {
	tests := []struct {
		name             string
		currentVersion   int
		archivedVersions []int
		want             ReactivationAction
	}{
		{"terms unchanged", 3, []int{3, 3, 3}, Restore},
		{"terms changed while lost", 4, []int{3, 3, 3}, Regenerate},
		{"mixed versions", 3, []int{3, 2}, Regenerate},
		{"nothing archived", 1, nil, Regenerate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlanReactivation(tt.currentVersion, tt.archivedVersions)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReactivationActionString(t *testing.T) {
	assert.Equal(t, "restore", Restore.String())
	assert.Equal(t, "regenerate", Regenerate.String())
}

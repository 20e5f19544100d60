package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissionIsActive(t *testing.T) {
	cases := map[string]bool{
		"OPEN":        true,
		"open":        true,
		"ASSIGNED":    true,
		" Assigned ":  true,
		"ACTIVE":      true,
		"active":      true,
		"IN_PROGRESS": true,
		"DEPLOYED":    true,
		"RESOLVED":    false,
		"CLOSED":      false,
		"":            false,
	}
	for status, want := range cases {
		assert.Equal(t, want, Mission{MissionStatus: status}.IsActive(), status)
	}
}

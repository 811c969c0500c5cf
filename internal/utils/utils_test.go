package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateID_LengthAndUniqueness(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := GenerateID()
		assert.Len(t, id, 43)
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestGenerateShortID_Length(t *testing.T) {
	a, b := GenerateShortID(), GenerateShortID()
	assert.Len(t, a, 22)
	assert.NotEqual(t, a, b)
}

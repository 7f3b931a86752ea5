package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewState(t *testing.T) {
	for _, value := range []string{"working", "broken", "repair", "retired"} {
		state, err := newState(value)
		assert.NoError(t, err)
		assert.Equal(t, State(value), state)
	}

	_, err := newState("exploded")
	assert.Error(t, err)
}

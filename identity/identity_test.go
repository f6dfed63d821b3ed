package identity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInUse = errors.New("identity in use")

func failFirst(n int, calls *[]ID) func(ID) error {
	return func(id ID) error {
		*calls = append(*calls, id)
		if len(*calls) <= n {
			return errInUse
		}
		return nil
	}
}

func TestRegisterDefaultFree(t *testing.T) {
	var calls []ID

	id, err := Register(Default, failFirst(0, &calls))

	require.NoError(t, err)
	assert.Equal(t, Default, id)
	assert.Len(t, calls, 1)
}

func TestRegisterRetriesCollisions(t *testing.T) {
	for _, n := range []int{1, 5, 200, MaxAttempts - 1} {
		var calls []ID

		id, err := Register(Default, failFirst(n, &calls))

		require.NoError(t, err, "n=%d", n)
		assert.Equal(t, Perturb(Default, n), id, "n=%d", n)
		assert.Len(t, calls, n+1)
		assert.Equal(t, Default[:15], id[:15], "only the last byte may change")
	}
}

func TestRegisterGivesUp(t *testing.T) {
	attempts := 0
	seen := map[ID]bool{}

	_, err := Register(Default, func(id ID) error {
		attempts++
		seen[id] = true
		return errInUse
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExhausted)
	assert.ErrorIs(t, err, errInUse)
	assert.Equal(t, MaxAttempts, attempts)
	assert.Len(t, seen, MaxAttempts, "every attempt must use a distinct identity")
}

func TestPerturbWraps(t *testing.T) {
	assert.Equal(t, Default, Perturb(Default, 256))
	assert.Equal(t, byte(0x2a), Perturb(Default, 1)[15])
	assert.Equal(t, "b89f179a-8bab-4140-bffe-a79d08afed29", Default.String())
}

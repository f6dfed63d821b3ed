// Package identity picks the GUID the tray icon is registered under.
//
// The shell remembers per-icon preferences (such as "always show") by this
// value, so it is fixed in the binary. Running instances cannot share one,
// hence the retry in Register.
package identity

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type ID = uuid.UUID

// MaxAttempts bounds Register; the perturbed byte has 256 values.
const MaxAttempts = 256

// Default is {B89F179A-8BAB-4140-BFFE-A79D08AFED29}.
var Default = uuid.MustParse("b89f179a-8bab-4140-bffe-a79d08afed29")

var ErrExhausted = errors.New("no free tray icon identity")

// Perturb returns id with its last byte advanced n times.
func Perturb(id ID, n int) ID {
	id[len(id)-1] += byte(n)
	return id
}

// Register calls add with start, then with successive perturbations of it,
// until add succeeds or MaxAttempts calls have failed.
func Register(start ID, add func(ID) error) (ID, error) {
	id := start
	var err error
	for i := 0; i < MaxAttempts; i++ {
		if err = add(id); err == nil {
			if i > 0 {
				log.Info().Str("id", id.String()).Int("attempts", i+1).Msg("[identity] default in use, registered alternate")
			}
			return id, nil
		}
		log.Debug().Err(err).Str("id", id.String()).Msg("[identity] registration failed")
		id = Perturb(id, 1)
	}
	return start, fmt.Errorf("%w after %d attempts: %w", ErrExhausted, MaxAttempts, err)
}

package ai

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// Recover runs fn and returns its value. When fn fails or panics the
// fallback is called with the cause and its value is returned instead, so
// callers always receive a usable result.
func Recover[T any](name string, fn func() (T, error), fallback func(error) T) (result T) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic: %v", r)
			log.Error().Err(err).Str("op", name).Msg("recovered, using fallback")
			result = fallback(err)
		}
	}()
	v, err := fn()
	if err != nil {
		log.Warn().Err(err).Str("op", name).Msg("failed, using fallback")
		return fallback(err)
	}
	return v
}

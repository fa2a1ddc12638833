// Package bookingid generates the short booking references handed to
// customers.
package bookingid

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
)

const (
	// Prefix starts every booking reference.
	Prefix = "BK"

	randomLength = 4
	alphabet     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// maxAttempts bounds the generate-and-check loop. At 36^4 possible
	// suffixes a collision streak this long means something is broken.
	maxAttempts = 10
)

// ExistenceChecker answers whether a booking reference is already taken.
type ExistenceChecker interface {
	BookingIDExists(ctx context.Context, bookingID string) (bool, error)
}

type Generator struct {
	store ExistenceChecker
}

func NewGenerator(store ExistenceChecker) *Generator {
	return &Generator{store: store}
}

// Generate returns a booking reference matching BK[A-Z0-9]{4} that no
// existing booking uses. The uniqueness check is optimistic; the store
// still enforces a unique constraint on insert.
func (g *Generator) Generate(ctx context.Context) (string, error) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		candidate, err := randomID()
		if err != nil {
			return "", err
		}

		exists, err := g.store.BookingIDExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check booking id %s: %w", candidate, err)
		}

		if !exists {
			return candidate, nil
		}

		slog.WarnContext(ctx, "booking id collision, regenerating",
			slog.String("booking_id", candidate),
			slog.Int("attempt", attempt))
	}

	return "", fmt.Errorf("no unique booking id after %d attempts", maxAttempts)
}

func randomID() (string, error) {
	buf := make([]byte, randomLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	id := make([]byte, randomLength)
	for i, b := range buf {
		id[i] = alphabet[int(b)%len(alphabet)]
	}

	return Prefix + string(id), nil
}

// Package hangout contains shared-expense hangout use cases.
package hangout

import (
	"context"
	"crypto/rand"
	"fmt"

	"github.com/kumpul/backend/internal/application/adapter"
)

// joinCodeAlphabet excludes lowercase to keep codes easy to read aloud.
const joinCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// joinCodeLength is the number of characters in a join code.
const joinCodeLength = 6

// maxJoinCodeAttempts bounds the retry loop on join code collisions.
const maxJoinCodeAttempts = 5

// generateJoinCode returns a random 6-character uppercase alphanumeric code.
func generateJoinCode() (string, error) {
	buf := make([]byte, joinCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	for i, b := range buf {
		buf[i] = joinCodeAlphabet[int(b)%len(joinCodeAlphabet)]
	}
	return string(buf), nil
}

// uniqueJoinCode generates a join code that no active hangout currently uses.
func uniqueJoinCode(ctx context.Context, repo adapter.HangoutRepository) (string, error) {
	for attempt := 0; attempt < maxJoinCodeAttempts; attempt++ {
		code, err := generateJoinCode()
		if err != nil {
			return "", err
		}
		exists, err := repo.ExistsByJoinCode(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check join code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique join code after %d attempts", maxJoinCodeAttempts)
}

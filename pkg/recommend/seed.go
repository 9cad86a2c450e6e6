package recommend

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand"
)

// seed is the digest of (user, date, mode). The same triple reproduces the same
// novelty terms and branch choice across calls and restarts.
type seed [sha256.Size]byte

func newSeed(userID, date, mode string) seed {
	return sha256.Sum256([]byte(userID + "|" + date + "|" + mode))
}

// rand returns a generator for the coin flip and the explore pick
func (s seed) rand() *rand.Rand {
	return rand.New(rand.NewSource(int64(binary.BigEndian.Uint64(s[:8])))) //nolint:gosec // not for security
}

// unit returns a value in [0, 1) derived from the seed and the item id,
// independent of other candidates
func (s seed) unit(itemID string) float64 {
	h := sha256.New()
	h.Write(s[:])
	h.Write([]byte(itemID))
	sum := h.Sum(nil)
	return float64(binary.BigEndian.Uint64(sum[:8])>>11) / (1 << 53)
}

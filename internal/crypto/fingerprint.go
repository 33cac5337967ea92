package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Fingerprint returns a short hex fingerprint of b.
//
// It hashes with SHA-256, truncates to 8 bytes and groups the 16 hex chars in
// fours, e.g. "3f2a-90bc-11de-7a01".
func Fingerprint(b []byte) string {
	sum := sha256.Sum256(b)
	h := hex.EncodeToString(sum[:8])
	groups := make([]string, 0, 4)
	for i := 0; i < len(h); i += 4 {
		groups = append(groups, h[i:i+4])
	}
	return strings.Join(groups, "-")
}

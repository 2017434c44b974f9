package util

import (
	"crypto/sha256"
	"encoding/hex"
)

const docHashLen = 16

// HashDocument returns a short fingerprint for a document body, used to
// correlate incident records with the content that produced them.
func HashDocument(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])[:docHashLen]
}

package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPIN returns the lowercase hex SHA-256 digest of pin. The digest is
// deterministic and unsalted, so the same digest is computed for storage
// and for every comparison. Identical PINs on two accounts produce
// identical digests; adding a per-account salt would change the stored
// pin_digest format.
func HashPIN(pin string) string {
	sum := sha256.Sum256([]byte(pin))
	return hex.EncodeToString(sum[:])
}

// CheckPIN reports whether candidate hashes to digest.
func CheckPIN(candidate, digest string) bool {
	return HashPIN(candidate) == digest
}

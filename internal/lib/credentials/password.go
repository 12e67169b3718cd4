package credentials

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	hashAlgorithm  = "pbkdf2"
	hashIterations = 100000
	hashKeyLength  = sha256.Size
	saltLength     = 16
)

// Hash derives a PBKDF2-HMAC-SHA256 hash of password with a fresh random salt.
// The result has the form "pbkdf2$<salt>$<hex hash>".
func Hash(password string) (string, error) {
	raw := make([]byte, saltLength)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	salt := hex.EncodeToString(raw)

	return hashAlgorithm + "$" + salt + "$" + derive(password, salt), nil
}

// Verify reports whether password matches hash. Malformed hashes never match.
func Verify(password, hash string) bool {
	parts := strings.Split(hash, "$")
	if len(parts) != 3 || parts[0] != hashAlgorithm || parts[1] == "" || parts[2] == "" {
		return false
	}

	calculated := derive(password, parts[1])
	return subtle.ConstantTimeCompare([]byte(calculated), []byte(parts[2])) == 1
}

// derive uses the textual salt as the KDF salt bytes, so hashes stay
// readable by any implementation that treats the salt field as a string.
func derive(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), hashIterations, hashKeyLength, sha256.New)
	return hex.EncodeToString(key)
}

// Package digest computes content fingerprints for cached pages and archives.
package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

// ErrRead is returned when the content to fingerprint cannot be read.
var ErrRead = errors.New("digest: failed to read content")

// SHA256Hex returns the lowercase hexadecimal SHA-256 digest of data.
// The result is always 64 characters long.
func SHA256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// SHA256HexReader streams r into a SHA-256 digest and returns it as lowercase hex.
func SHA256HexReader(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRead, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

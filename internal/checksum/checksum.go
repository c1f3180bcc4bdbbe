// Package checksum computes SHA-256 digests of release artifacts.
// Files are streamed in fixed-size blocks so memory use is independent
// of artifact size.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// blockSize is the read block used when streaming a file through the hash.
const blockSize = 4096

// FileSHA256 returns the lowercase hexadecimal SHA-256 digest of the file
// at path. The file is read in blockSize chunks.
func FileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return SumReader(f)
}

// SumReader returns the lowercase hexadecimal SHA-256 digest of everything
// read from r.
func SumReader(r io.Reader) (string, error) {
	h := sha256.New()
	buf := make([]byte, blockSize)
	if _, err := io.CopyBuffer(h, r, buf); err != nil {
		return "", fmt.Errorf("hashing: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

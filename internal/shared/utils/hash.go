package utils

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash"
	"hash/crc32"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/multierr"
)

// HashAlgorithm represents the hashing algorithm to use
type HashAlgorithm string

const (
	SHA1   HashAlgorithm = "sha1"
	MD5    HashAlgorithm = "md5"
	CRC32  HashAlgorithm = "crc32" // IEEE polynomial, same as PHP's crc32b
	SHA256 HashAlgorithm = "sha256"
	XXH64  HashAlgorithm = "xxh64"
)

// Algorithms lists every supported algorithm
func Algorithms() []HashAlgorithm {
	return []HashAlgorithm{SHA1, MD5, CRC32, SHA256, XXH64}
}

// ParseAlgorithm validates an algorithm name
func ParseAlgorithm(name string) (HashAlgorithm, error) {
	for _, alg := range Algorithms() {
		if string(alg) == name {
			return alg, nil
		}
	}
	return "", fmt.Errorf("unsupported hash algorithm %q", name)
}

// Hasher computes digests of byte slices and file contents
type Hasher struct {
	algorithm HashAlgorithm
}

// NewHasher creates a new hasher with the specified algorithm
func NewHasher(algorithm HashAlgorithm) *Hasher {
	return &Hasher{
		algorithm: algorithm,
	}
}

// DefaultHasher returns a hasher with the default algorithm
func DefaultHasher() *Hasher {
	return NewHasher(SHA256)
}

// Algorithm returns the configured algorithm
func (h *Hasher) Algorithm() HashAlgorithm {
	return h.algorithm
}

func (h *Hasher) newHash() hash.Hash {
	switch h.algorithm {
	case SHA1:
		return sha1.New()
	case MD5:
		return md5.New()
	case CRC32:
		return crc32.NewIEEE()
	case XXH64:
		return xxhash.New()
	default:
		return sha256.New()
	}
}

// Hash computes the hex digest of data
func (h *Hasher) Hash(data []byte) string {
	d := h.newHash()
	_, _ = d.Write(data) //nolint:errcheck // hash writes never fail
	return hex.EncodeToString(d.Sum(nil))
}

// HashString computes the hex digest of a string
func (h *Hasher) HashString(s string) string {
	return h.Hash([]byte(s))
}

// HashReader computes the hex digest of everything read from r
func (h *Hasher) HashReader(r io.Reader) (string, error) {
	sum, err := h.sumReader(r)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sum), nil
}

// HashFile computes the hex digest of the full content of the file at path
func (h *Hasher) HashFile(path string) (_ string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	return h.HashReader(f)
}

func (h *Hasher) sumReader(r io.Reader) ([]byte, error) {
	d := h.newHash()
	if _, err := io.Copy(d, r); err != nil {
		return nil, err
	}
	return d.Sum(nil), nil
}

// CRC32File returns the IEEE CRC32 of a file as an unsigned integer
func CRC32File(path string) (_ uint32, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	sum, err := NewHasher(CRC32).sumReader(f)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(sum), nil
}

package utils

import (
	"encoding/binary"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasherKnownDigests(t *testing.T) {
	tests := []struct {
		algorithm HashAlgorithm
		want      string
	}{
		{SHA1, "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d"},
		{MD5, "5d41402abc4b2a76b9719d911017c592"},
		{CRC32, "3610a686"},
		{SHA256, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"},
	}

	for _, tt := range tests {
		t.Run(string(tt.algorithm), func(t *testing.T) {
			assert.Equal(t, tt.want, NewHasher(tt.algorithm).HashString("hello"))
		})
	}
}

func TestHasherXXH64(t *testing.T) {
	var want [8]byte
	binary.BigEndian.PutUint64(want[:], xxhash.Sum64String("hello"))

	assert.Equal(t, hex.EncodeToString(want[:]), NewHasher(XXH64).HashString("hello"))
}

func TestDefaultHasher(t *testing.T) {
	h := DefaultHasher()
	assert.Equal(t, SHA256, h.Algorithm())
	assert.Equal(t, NewHasher(SHA256).HashString("x"), h.HashString("x"))
}

func TestHashFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	sum, err := NewHasher(MD5).HashFile(path)
	require.NoError(t, err)
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", sum)

	_, err = NewHasher(MD5).HashFile(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestHashReader(t *testing.T) {
	sum, err := NewHasher(SHA1).HashReader(strings.NewReader("hello"))
	require.NoError(t, err)
	assert.Equal(t, "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d", sum)
}

func TestCRC32File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	crc, err := CRC32File(path)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x3610a686), crc)
}

func TestParseAlgorithm(t *testing.T) {
	for _, alg := range Algorithms() {
		got, err := ParseAlgorithm(string(alg))
		require.NoError(t, err)
		assert.Equal(t, alg, got)
	}

	_, err := ParseAlgorithm("blake3")
	assert.Error(t, err)
}

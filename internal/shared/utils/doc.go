// Package utils provides the digest collaborator used by fsutil.
//
// Hashing:
//   - SHA1, MD5, CRC32 (IEEE), SHA256 and XXH64
//   - Digests of byte slices, readers and whole files
//   - CRC32File for the unsigned integer form of a file's CRC
//
// The core traversal and archive code never computes digests itself; it only
// decides which bytes to feed a Hasher.
//
// Example Usage:
//
//	hasher := utils.NewHasher(utils.SHA1)
//	sum, err := hasher.HashFile("file.txt")
package utils

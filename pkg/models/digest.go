package models

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// DigestSize is the length of a digest in bytes (128 bits)
const DigestSize = md5.Size

// Digest is an MD5 hash value over a byte prefix or full file contents.
// Digests are comparable values; equality is byte-for-byte.
type Digest [DigestSize]byte

// DigestFromSum copies the output of hash.Hash.Sum into a Digest
func DigestFromSum(sum []byte) Digest {
	var d Digest
	copy(d[:], sum)
	return d
}

// ParseDigest parses a 32-character hex string (any case) into a Digest
func ParseDigest(s string) (Digest, error) {
	var d Digest
	s = strings.TrimSpace(s)
	if len(s) != hex.EncodedLen(DigestSize) {
		return d, &ValidationError{
			Field:   "digest",
			Message: "must be 32 hexadecimal characters",
		}
	}
	if _, err := hex.Decode(d[:], []byte(s)); err != nil {
		return d, &ValidationError{
			Field:   "digest",
			Message: "invalid hexadecimal: " + err.Error(),
		}
	}
	return d, nil
}

// String renders the digest as lowercase hex
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// MarshalText implements encoding.TextMarshaler
func (d Digest) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Digest) UnmarshalText(text []byte) error {
	parsed, err := ParseDigest(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

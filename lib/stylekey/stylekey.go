// Package stylekey produces the string forms used as style composition
// keys: canonical serializations, content hashes, and random per-factory
// tokens.
//
// Canonical means structurally equal values always produce the same bytes,
// regardless of map iteration order. Serialization uses msgpack with sorted
// map keys, so two style objects built independently from the same data
// serialize (and hash) identically.
package stylekey

import (
	"bytes"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Serialize returns a compact, URL-safe textual form of v.
//
// The result is suitable for direct use as a cache key when hashing is not
// worth the cost (small values, call-site-constructed objects). Values that
// msgpack cannot encode (functions, channels, cyclic data) return an error.
func Serialize(v any) (string, error) {
	packed, err := canonical(v)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(packed), nil
}

// Hash returns a short content hash of v's canonical serialization.
//
// Structurally equal values hash identically. The hash is truncated to 16
// hex characters, which keeps keys and derived class names readable while
// leaving collision risk negligible for realistic style counts.
func Hash(v any) (string, error) {
	packed, err := canonical(v)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(packed)
	return hex.EncodeToString(sum[:8]), nil
}

// Token returns a random identifier for disambiguating style factories
// within one process.
//
// Tokens are not stable across process restarts, so keys built from them
// must not be persisted.
func Token() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand only fails when the OS entropy source is broken.
		panic(fmt.Sprintf("stylekey: read random token: %v", err))
	}
	return hex.EncodeToString(b)
}

// canonical encodes v to msgpack with sorted map keys.
func canonical(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

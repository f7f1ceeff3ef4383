package herald

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// HashFunc produces a lowercase hex digest used as an ETag body. ETags are a
// freshness hint, not a security primitive, so determinism and reasonable
// uniqueness are the only requirements.
type HashFunc func([]byte) string

// hashXX is the fast non-cryptographic tier.
func hashXX(b []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(b))
}

// hashMD5 is the cryptographic-digest tier.
func hashMD5(b []byte) string {
	sum := md5.Sum(b)
	return hex.EncodeToString(sum[:])
}

// hashFallback is the portable tier: a 32-bit rolling multiply hash over the
// raw bytes, emitted as fixed-width hex.
func hashFallback(b []byte) string {
	var h uint32
	for _, c := range b {
		h = h*31 + uint32(c)
	}
	return fmt.Sprintf("%08x", h)
}

// contentHash is resolved once at init by probing the tiers in preference
// order. A tier that panics on the probe input is skipped; the final tier has
// no dependencies and always succeeds.
var contentHash = resolveHasher()

func resolveHasher() HashFunc {
	probe := []byte("herald")
	for _, candidate := range []HashFunc{hashXX, hashMD5} {
		if tryHash(candidate, probe) {
			return candidate
		}
	}
	return hashFallback
}

func tryHash(fn HashFunc, probe []byte) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return fn(probe) != ""
}

// HashContent returns the digest of content using the resolved strategy.
func HashContent(content []byte) string {
	return contentHash(content)
}

// SetHasher overrides the resolved hashing strategy, primarily so tests and
// embedders can substitute a deterministic stub. A nil fn restores the
// default resolution.
func SetHasher(fn HashFunc) {
	if fn == nil {
		contentHash = resolveHasher()
		return
	}
	contentHash = fn
}

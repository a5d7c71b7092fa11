package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// digestPool holds reusable SHA-256 hashers.
var digestPool = sync.Pool{
	New: func() any {
		return sha256.New()
	},
}

// Digest returns the hex-encoded SHA-256 digest of data.
//
// It is used to fingerprint settings blobs and sync payloads so a process can
// recognise content it wrote itself when the same content comes back through
// a file watcher or a remote subscription.
func Digest(data []byte) string {
	h := digestPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	digestPool.Put(h)

	return hex.EncodeToString(sum)
}

// DigestString is Digest for strings.
func DigestString(s string) string {
	return Digest([]byte(s))
}

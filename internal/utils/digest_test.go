// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigest_MatchesSHA256(t *testing.T) {
	data := []byte(`{"state":{"isAuthenticated":true},"version":0}`)
	sum := sha256.Sum256(data)

	assert.Equal(t, hex.EncodeToString(sum[:]), Digest(data))
}

func TestDigest_Deterministic(t *testing.T) {
	assert.Equal(t, DigestString("reader-settings"), DigestString("reader-settings"))
	assert.NotEqual(t, DigestString("a"), DigestString("b"))
}

func TestDigest_Empty(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", Digest(nil))
}

func TestDigest_Concurrent(t *testing.T) {
	want := DigestString("payload")

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, DigestString("payload"))
		}()
	}
	wg.Wait()
}

package util

import (
	"hash/fnv"
	"strconv"
)

// HashString returns a uint64 hash of the input string using FNV-1a
func HashString(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

// HashKey returns the FNV-1a hash of s as a fixed-width hex string for use in cache keys
func HashKey(s string) string {
	key := strconv.FormatUint(HashString(s), 16)
	for len(key) < 16 {
		key = "0" + key
	}
	return key
}

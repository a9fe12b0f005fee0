package api

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"
)

// NewID generates a sortable-ish element/document ID from the current time
// plus randomness. Not a strict ULID, but stable enough for local use.
func NewID() string {
	ts := strconv.FormatInt(time.Now().UnixNano(), 36)
	var buf [6]byte
	_, _ = rand.Read(buf[:])
	return ts + "-" + hex.EncodeToString(buf[:])
}

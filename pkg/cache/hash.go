package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// hashKey builds a "prefix:sha256" key from the JSON encoding of parts.
// Layout keys pass the quote content and engine version, so two requests
// for the same content share one solve. Artifact keys pass the layout
// document hash and the render options, so a layout rendered at another
// scale or with other overlays gets its own entry.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(sum[:]))
}

// Hash returns the full hex SHA-256 of data. The pipeline hashes the
// serialized layout document with it to chain artifact keys to the exact
// budget they were rendered from.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

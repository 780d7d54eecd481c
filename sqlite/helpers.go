package sqlite

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/newscrawl"
)

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// parseDate parses a capture date column.
func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(newscrawl.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse capture_date: %w", err)
	}
	return t, nil
}

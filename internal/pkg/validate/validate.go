// Package validate provides input validation for API path and body parameters.
package validate

import "strings"

// ContentMaxLen is the maximum allowed length for message content in bytes.
// Generous for chat input, small enough to keep cache keys and prompts sane.
const ContentMaxLen = 8192

// ListLimitMax caps a single page of messages.
const ListLimitMax = 100

// Content validates message content: non-blank and at most ContentMaxLen bytes.
// The exact byte sequence is preserved for fingerprinting; validation only
// rejects, it never normalizes.
func Content(content string) bool {
	if strings.TrimSpace(content) == "" {
		return false
	}
	return len(content) <= ContentMaxLen
}

// MessageID validates a message id from the path: ids start at 1.
func MessageID(id int64) bool {
	return id >= 1
}

// Pagination validates list parameters: skip must be non-negative, limit in [1, ListLimitMax].
func Pagination(skip, limit int) bool {
	if skip < 0 {
		return false
	}
	return limit >= 1 && limit <= ListLimitMax
}

// Package bleuuid normalizes Bluetooth UUIDs given in short (16/32-bit) or full form.
package bleuuid

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// baseSuffix is the tail of the Bluetooth SIG base UUID 0000xxxx-0000-1000-8000-00805f9b34fb
const baseSuffix = "-0000-1000-8000-00805f9b34fb"

// Canonical converts a UUID string to its lowercase 128-bit dashed form.
// 16-bit ("180d") and 32-bit ("0000180d") forms are expanded with the SIG base UUID.
// A 0x prefix is stripped.
func Canonical(s string) (string, error) {
	raw := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
	switch len(raw) {
	case 4:
		raw = "0000" + raw + baseSuffix
	case 8:
		raw = raw + baseSuffix
	}
	u, err := uuid.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid UUID %q: %w", s, err)
	}
	return u.String(), nil
}

// Short returns the 16-bit or 32-bit form of a SIG-based UUID for display.
// Other UUIDs are returned as the first eight characters; unparsable input is
// returned unchanged.
func Short(s string) string {
	c, err := Canonical(s)
	if err != nil {
		return s
	}
	if strings.HasSuffix(c, baseSuffix) {
		if strings.HasPrefix(c, "0000") {
			return c[4:8]
		}
		return c[:8]
	}
	return c[:8]
}

// Validate canonicalizes one or more UUIDs, failing on the first empty or malformed value
func Validate(uuids ...string) ([]string, error) {
	if len(uuids) == 0 {
		return nil, fmt.Errorf("at least one UUID is required")
	}

	result := make([]string, 0, len(uuids))
	for i, u := range uuids {
		if u == "" {
			return nil, fmt.Errorf("UUID at index %d cannot be empty", i)
		}
		c, err := Canonical(u)
		if err != nil {
			return nil, fmt.Errorf("UUID at index %d: %w", i, err)
		}
		result = append(result, c)
	}
	return result, nil
}

//go:build test

package bleuuid_test

import (
	"testing"

	"github.com/srg/blefake/internal/bleuuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"180d", "0000180d-0000-1000-8000-00805f9b34fb"},
		{"0x2A37", "00002a37-0000-1000-8000-00805f9b34fb"},
		{"0000180F", "0000180f-0000-1000-8000-00805f9b34fb"},
		{"6E400001-B5A3-F393-E0A9-E50E24DCCA9E", "6e400001-b5a3-f393-e0a9-e50e24dcca9e"},
		{"6e400001b5a3f393e0a9e50e24dcca9e", "6e400001-b5a3-f393-e0a9-e50e24dcca9e"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := bleuuid.Canonical(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := bleuuid.Canonical("not-a-uuid")
	assert.Error(t, err)
}

func TestShort(t *testing.T) {
	assert.Equal(t, "180d", bleuuid.Short("0000180d-0000-1000-8000-00805f9b34fb"))
	assert.Equal(t, "2a37", bleuuid.Short("2A37"))
	assert.Equal(t, "1234180d", bleuuid.Short("1234180d-0000-1000-8000-00805f9b34fb"))
	assert.Equal(t, "6e400001", bleuuid.Short("6e400001-b5a3-f393-e0a9-e50e24dcca9e"))
	assert.Equal(t, "garbage", bleuuid.Short("garbage"))
}

func TestValidate(t *testing.T) {
	got, err := bleuuid.Validate("180d", "2a37")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"0000180d-0000-1000-8000-00805f9b34fb",
		"00002a37-0000-1000-8000-00805f9b34fb",
	}, got)

	_, err = bleuuid.Validate()
	assert.Error(t, err)

	_, err = bleuuid.Validate("180d", "")
	assert.ErrorContains(t, err, "index 1")

	_, err = bleuuid.Validate("zzzz")
	assert.ErrorContains(t, err, "index 0")
}

func TestName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"180d", "Heart Rate"},
		{"0x2A37", "Heart Rate Measurement"},
		{"00002902-0000-1000-8000-00805f9b34fb", "Client Characteristic Configuration"},
		{"6e400001-b5a3-f393-e0a9-e50e24dcca9e", ""},
		{"ffff", ""},
		{"not-a-uuid", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, bleuuid.Name(tt.input))
		})
	}
}

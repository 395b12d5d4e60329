//go:build test

package testutils_test

import (
	"fmt"
	"testing"

	"github.com/srg/blefake/internal/testutils"
	"github.com/stretchr/testify/assert"
)

type recordingT struct {
	messages []string
}

func (r *recordingT) Errorf(format string, args ...interface{}) {
	r.messages = append(r.messages, fmt.Sprintf(format, args...))
}

func TestTextAsserter(t *testing.T) {
	t.Run("ignores surrounding and trailing whitespace", func(t *testing.T) {
		rec := &recordingT{}
		ok := testutils.NewTextAsserter(rec).Assert("\nline one  \nline two\n", "line one\nline two")
		assert.True(t, ok)
		assert.Empty(t, rec.messages)
	})

	t.Run("reports unified diff", func(t *testing.T) {
		rec := &recordingT{}
		ok := testutils.NewTextAsserter(rec).Assert("line one\nline 2", "line one\nline two")
		assert.False(t, ok)
		if assert.Len(t, rec.messages, 1) {
			assert.Contains(t, rec.messages[0], "-line two")
			assert.Contains(t, rec.messages[0], "+line 2")
		}
	})

	t.Run("exact comparison when trimming is disabled", func(t *testing.T) {
		ta := testutils.NewTextAsserter(&recordingT{}).WithOptions(testutils.WithTrimSpace(false))
		assert.NotEmpty(t, ta.Diff("text\n", "text"))
	})
}

func TestJSONAsserter_Topology(t *testing.T) {
	helper := testutils.NewTestHelper(t)
	m := testutils.CreateTopology().
		WithAdapter("hci0").
		WithDevice("dev0", "AA:BB:CC:DD:EE:FF", true).
		WithService("svc0", "180f").
		WithCharacteristic("char0", "2a19", "read,notify", []byte{85}).
		WithDescriptor("desc0", "2902", []byte{0, 0}).
		Build(helper.Logger)

	testutils.NewJSONAsserter(t).AssertTopology(m, `{
		"adapters": [{
			"id": "hci0",
			"powered": true,
			"devices": [{
				"id": "dev0",
				"address": "AA:BB:CC:DD:EE:FF",
				"connectable": true,
				"connected": false,
				"services": [{
					"id": "svc0",
					"uuid": "0000180f-0000-1000-8000-00805f9b34fb",
					"primary": true,
					"includes": [],
					"characteristics": [{
						"id": "char0",
						"uuid": "00002a19-0000-1000-8000-00805f9b34fb",
						"flags": ["read", "notify"],
						"value": "55",
						"notifying": false,
						"descriptors": [{"id": "desc0", "uuid": "00002902-0000-1000-8000-00805f9b34fb", "value": "0000"}]
					}]
				}]
			}]
		}]
	}`)
}

func TestTopologyBuilder_PanicsWithoutParent(t *testing.T) {
	assert.Panics(t, func() { testutils.CreateTopology().WithDevice("dev0", "", true) })
	assert.Panics(t, func() { testutils.CreateTopology().WithAdapter("hci0").WithService("s", "180f") })
	assert.Panics(t, func() {
		testutils.CreateTopology().WithAdapter("hci0").WithDevice("d", "", true).WithService("s", "180f").WithDescriptor("x", "2902", nil)
	})
}

//go:build test

package topology_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/srg/blefake/internal/testutils"
	"github.com/srg/blefake/internal/topology"
	"github.com/srg/blefake/pkg/fake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotJSON_HeartRate(t *testing.T) {
	m, err := topology.Build(heartRateFixture(t), nil)
	require.NoError(t, err)

	testutils.NewJSONAsserter(t).AssertTopology(m, `{
		"adapters": [{
			"id": "hci0",
			"address": "00:1A:7D:DA:71:13",
			"powered": true,
			"discovering": false,
			"addata": [],
			"modalias": "usb:v1D6Bp0246d0537",
			"devices": [{
				"id": "dev_C4_7C_8D_6A_4B_21",
				"name": "Polar H10",
				"appearance": 833,
				"connectable": true,
				"connected": false,
				"rssi": -58,
				"tx_power": 4,
				"services": [
					{
						"id": "hrs",
						"uuid": "0000180d-0000-1000-8000-00805f9b34fb",
						"primary": true,
						"includes": ["bas"],
						"characteristics": [
							{
								"id": "hrs/char0000",
								"flags": ["notify"],
								"value": "0048",
								"notifying": false,
								"descriptors": [{"id": "hrs/char0000/desc0000", "value": "0000"}]
							},
							{"id": "hrs/char0001", "value": "01", "descriptors": []}
						]
					},
					{"id": "bas", "primary": false, "includes": []}
				]
			}]
		}]
	}`)
}

func TestSnapshotJSON_KeyOrder(t *testing.T) {
	m := testutils.CreateTopology().
		WithAdapter("hci0").
		WithDevice("dev0", "AA:BB:CC:DD:EE:FF", true).
		Build(nil)

	out, err := topology.SnapshotJSON(m, false)
	require.NoError(t, err)

	s := string(out)
	assert.True(t, strings.HasPrefix(s, `{"adapters":[{"id":"hci0","address":""`), s)
	assert.Less(t, strings.Index(s, `"powered"`), strings.Index(s, `"devices"`))
	assert.Less(t, strings.Index(s, `"id":"dev0"`), strings.Index(s, `"address":"AA:BB:CC:DD:EE:FF"`))
}

func TestSnapshotJSON_Indent(t *testing.T) {
	m := fake.NewManager(nil)
	out, err := topology.SnapshotJSON(m, true)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"adapters\": []\n}", string(out))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
}

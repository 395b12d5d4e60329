//go:build test

package topology_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/srg/blefake/internal/scenario"
	"github.com/srg/blefake/internal/testutils"
	"github.com/srg/blefake/internal/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func heartRateFixture(t *testing.T) *topology.Fixture {
	t.Helper()
	path, err := testutils.ProjectPath("testdata/heart_rate.yaml")
	require.NoError(t, err)
	f, err := topology.LoadFile(path)
	require.NoError(t, err)
	return f
}

func TestLoadFile(t *testing.T) {
	f := heartRateFixture(t)

	require.Len(t, f.Adapters, 1)
	a := f.Adapters[0]
	assert.Equal(t, "hci0", a.ID)
	assert.True(t, a.Powered)
	assert.Equal(t, []string{"1800", "1801"}, a.UUIDs)

	require.Len(t, a.Devices, 1)
	d := a.Devices[0]
	assert.Empty(t, d.ID)
	assert.Equal(t, int16(-58), d.RSSI)
	assert.Equal(t, uint16(833), d.Appearance)

	require.Len(t, d.Services, 2)
	assert.Equal(t, []string{"bas"}, d.Services[0].Includes)
	assert.Equal(t, []byte{0, 72}, d.Services[0].Characteristics[0].Value)

	require.NotEmpty(t, f.Steps)
	assert.Equal(t, scenario.OpStartDiscovery, f.Steps[0].Op)
	assert.Equal(t, scenario.KindAlreadyConnected, f.Steps[3].ExpectError)
	assert.Equal(t, []byte{1, 0}, f.Steps[4].Value)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
	}{
		{
			name: "minimal",
			yaml: "adapters:\n  - id: hci0\n",
		},
		{
			name: "steps with enabled flag",
			yaml: "adapters:\n  - id: hci0\nsteps:\n  - op: power\n    enabled: false\n",
		},
		{
			name:    "unknown field",
			yaml:    "adapters:\n  - id: hci0\n    colour: blue\n",
			wantErr: true,
		},
		{
			name:    "wrong type",
			yaml:    "adapters:\n  - id: hci0\n    powered: maybe\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := topology.Parse([]byte(tt.yaml))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "hci0", f.Adapters[0].ID)
		})
	}
}

func TestParse_EnabledDefaultsToNil(t *testing.T) {
	f, err := topology.Parse([]byte("adapters: []\nsteps:\n  - op: power\n  - op: power\n    enabled: false\n"))
	require.NoError(t, err)
	require.Len(t, f.Steps, 2)
	assert.Nil(t, f.Steps[0].Enabled)
	require.NotNil(t, f.Steps[1].Enabled)
	assert.False(t, *f.Steps[1].Enabled)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := topology.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

//go:build test

package topology_test

import (
	"context"
	"testing"

	"github.com/srg/blefake/internal/scenario"
	"github.com/srg/blefake/internal/testutils"
	"github.com/srg/blefake/internal/topology"
	"github.com/srg/blefake/pkg/fake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_HeartRate(t *testing.T) {
	helper := testutils.NewTestHelper(t)
	m, err := topology.Build(heartRateFixture(t), helper.Logger)
	require.NoError(t, err)

	a, err := m.DefaultAdapter()
	require.NoError(t, err)
	assert.Equal(t, "hci0", a.ID())

	uuids, err := a.UUIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{
		"00001800-0000-1000-8000-00805f9b34fb",
		"00001801-0000-1000-8000-00805f9b34fb",
	}, uuids)

	vendor, err := a.VendorID()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x1D6B), vendor)

	d, err := a.Device("dev_C4_7C_8D_6A_4B_21")
	require.NoError(t, err, "device id MUST derive from its address")
	paired, _ := d.IsPaired()
	assert.False(t, paired)

	hrs, err := d.Service("hrs")
	require.NoError(t, err)
	bas, err := d.Service("bas")
	require.NoError(t, err)

	includes, err := hrs.Includes()
	require.NoError(t, err)
	require.Len(t, includes, 1)
	assert.Same(t, bas, includes[0])

	c, err := hrs.Characteristic("hrs/char0001")
	require.NoError(t, err)
	value, _ := c.Value()
	assert.Equal(t, []byte{1}, value)

	first, err := c.Service().Device().Adapter().FirstDevice()
	require.NoError(t, err)
	assert.Same(t, d, first)

	cccd, err := d.Services()[0].Characteristics()[0].Descriptor("hrs/char0000/desc0000")
	require.NoError(t, err)
	duuid, _ := cccd.UUID()
	assert.Equal(t, "00002902-0000-1000-8000-00805f9b34fb", duuid)
}

func TestBuild_GeneratedIDs(t *testing.T) {
	f := &topology.Fixture{
		Adapters: []topology.AdapterSpec{
			{Devices: []topology.DeviceSpec{{Services: []topology.ServiceSpec{{UUID: "180f"}}}}},
			{},
		},
	}
	m, err := topology.Build(f, nil)
	require.NoError(t, err)

	adapters := m.Adapters()
	require.Len(t, adapters, 2)
	assert.Equal(t, "hci0", adapters[0].ID())
	assert.Equal(t, "hci1", adapters[1].ID())

	d, err := adapters[0].Device("dev0")
	require.NoError(t, err)
	_, err = d.Service("service0000")
	assert.NoError(t, err)
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name    string
		fixture topology.Fixture
		wantErr error
	}{
		{
			name: "duplicate adapter",
			fixture: topology.Fixture{Adapters: []topology.AdapterSpec{
				{ID: "hci0"}, {ID: "hci0"},
			}},
			wantErr: fake.ErrDuplicateAdapter,
		},
		{
			name: "unknown include",
			fixture: topology.Fixture{Adapters: []topology.AdapterSpec{{
				ID: "hci0",
				Devices: []topology.DeviceSpec{{Services: []topology.ServiceSpec{
					{ID: "a", UUID: "180d", Includes: []string{"b"}},
				}}},
			}}},
			wantErr: fake.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := topology.Build(&tt.fixture, nil)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBuild_ConnectedRequiresConnectable(t *testing.T) {
	f := &topology.Fixture{Adapters: []topology.AdapterSpec{{
		ID:      "hci0",
		Devices: []topology.DeviceSpec{{ID: "dev_lock", Connected: true}},
	}}}

	_, err := topology.Build(f, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, fake.ErrNotConnectable)
	assert.Contains(t, err.Error(), "device dev_lock")

	f.Adapters[0].Devices[0].Connectable = true
	m, err := topology.Build(f, nil)
	require.NoError(t, err)
	a, err := m.Adapter("hci0")
	require.NoError(t, err)
	d, err := a.Device("dev_lock")
	require.NoError(t, err)
	connected, err := d.IsConnected()
	require.NoError(t, err)
	assert.True(t, connected)
}

func TestBuild_InvalidUUID(t *testing.T) {
	f := &topology.Fixture{Adapters: []topology.AdapterSpec{{
		ID: "hci0",
		Devices: []topology.DeviceSpec{{Services: []topology.ServiceSpec{
			{UUID: "not-a-uuid"},
		}}},
	}}}

	_, err := topology.Build(f, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "service service0000")
	assert.Contains(t, err.Error(), "invalid UUID")
}

func TestBuild_RunFixtureSteps(t *testing.T) {
	f := heartRateFixture(t)
	m, err := topology.Build(f, nil)
	require.NoError(t, err)

	require.NoError(t, scenario.NewRunner(m, nil).Run(context.Background(), f.Steps))

	a, _ := m.DefaultAdapter()
	d, _ := a.Device("dev_C4_7C_8D_6A_4B_21")
	connected, _ := d.IsConnected()
	trusted, _ := d.IsTrusted()
	assert.True(t, connected)
	assert.True(t, trusted)
}

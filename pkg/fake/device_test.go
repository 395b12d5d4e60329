//go:build test

package fake_test

import (
	"testing"

	"github.com/srg/blefake/pkg/fake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDevice(t *testing.T, connectable bool) *fake.Device {
	t.Helper()
	d := fake.NewDevice(fake.NewAdapter("hci0", nil), "dev_AA_BB_CC_DD_EE_FF")
	require.NoError(t, d.SetConnectable(connectable))
	return d
}

func TestDevice_Connect(t *testing.T) {
	t.Run("not connectable", func(t *testing.T) {
		d := newTestDevice(t, false)

		err := d.Connect()
		assert.ErrorIs(t, err, fake.ErrConnectFailed)
		assert.ErrorIs(t, err, fake.ErrNotConnectable)
		assert.True(t, fake.IsConnectionState(err, fake.NotConnectable))

		connected, err := d.IsConnected()
		require.NoError(t, err)
		assert.False(t, connected)
	})

	t.Run("connectable and disconnected", func(t *testing.T) {
		d := newTestDevice(t, true)

		require.NoError(t, d.Connect())
		connected, err := d.IsConnected()
		require.NoError(t, err)
		assert.True(t, connected)
	})

	t.Run("already connected", func(t *testing.T) {
		d := newTestDevice(t, true)
		require.NoError(t, d.Connect())

		err := d.Connect()
		assert.ErrorIs(t, err, fake.ErrConnectFailed)
		assert.ErrorIs(t, err, fake.ErrAlreadyConnected)
		assert.NotErrorIs(t, err, fake.ErrNotConnectable)
	})
}

func TestDevice_Disconnect(t *testing.T) {
	t.Run("not connected", func(t *testing.T) {
		d := newTestDevice(t, true)

		err := d.Disconnect()
		assert.ErrorIs(t, err, fake.ErrNotConnected)
		assert.NotErrorIs(t, err, fake.ErrConnectFailed)
	})

	t.Run("connected", func(t *testing.T) {
		d := newTestDevice(t, true)
		require.NoError(t, d.Connect())

		require.NoError(t, d.Disconnect())
		connected, err := d.IsConnected()
		require.NoError(t, err)
		assert.False(t, connected)
	})

	t.Run("set connected bypasses state machine", func(t *testing.T) {
		d := newTestDevice(t, false)
		require.NoError(t, d.SetConnected(true))

		require.NoError(t, d.Disconnect())
	})
}

func TestDevice_Pairing(t *testing.T) {
	d := newTestDevice(t, false)

	require.NoError(t, d.Pair())
	paired, err := d.IsPaired()
	require.NoError(t, err)
	assert.True(t, paired, "pairing MUST not depend on connection state")

	require.NoError(t, d.CancelPairing())
	paired, err = d.IsPaired()
	require.NoError(t, err)
	assert.False(t, paired)
}

func TestDevice_Profiles(t *testing.T) {
	d := newTestDevice(t, true)

	assert.ErrorIs(t, d.ConnectProfile("110b"), fake.ErrUnimplemented)
	assert.ErrorIs(t, d.DisconnectProfile("110b"), fake.ErrUnimplemented)
}

func TestDevice_Accessors(t *testing.T) {
	d := newTestDevice(t, true)

	require.NoError(t, d.SetAddress("AA:BB:CC:DD:EE:FF"))
	require.NoError(t, d.SetAppearance(0x03c1))
	require.NoError(t, d.SetClass(0x240404))
	require.NoError(t, d.SetUUIDs([]string{"180d", "180f"}))
	require.NoError(t, d.SetName("Heart Rate Sensor"))
	require.NoError(t, d.SetIcon("input-keyboard"))
	require.NoError(t, d.SetAlias("HRM"))
	require.NoError(t, d.SetTrusted(true))
	require.NoError(t, d.SetBlocked(true))
	require.NoError(t, d.SetLegacyPairing(true))
	require.NoError(t, d.SetProductVersion(0x0102))
	require.NoError(t, d.SetRSSI(-67))
	require.NoError(t, d.SetTxPower(4))

	address, _ := d.Address()
	appearance, _ := d.Appearance()
	class, _ := d.Class()
	uuids, _ := d.UUIDs()
	name, _ := d.Name()
	icon, _ := d.Icon()
	alias, _ := d.Alias()
	trusted, _ := d.IsTrusted()
	blocked, _ := d.IsBlocked()
	legacy, _ := d.IsLegacyPairing()
	version, _ := d.ProductVersion()
	rssi, _ := d.RSSI()
	txPower, _ := d.TxPower()

	assert.Equal(t, "AA:BB:CC:DD:EE:FF", address)
	assert.Equal(t, uint16(0x03c1), appearance)
	assert.Equal(t, uint32(0x240404), class)
	assert.Equal(t, []string{"180d", "180f"}, uuids)
	assert.Equal(t, "Heart Rate Sensor", name)
	assert.Equal(t, "input-keyboard", icon)
	assert.Equal(t, "HRM", alias)
	assert.True(t, trusted)
	assert.True(t, blocked)
	assert.True(t, legacy)
	assert.Equal(t, uint32(0x0102), version)
	assert.Equal(t, int16(-67), rssi)
	assert.Equal(t, int16(4), txPower)
}

func TestDevice_Modalias(t *testing.T) {
	d := newTestDevice(t, true)
	require.NoError(t, d.SetModalias("bluetooth:v1234p5678d9ABC"))

	ma, err := d.DecodedModalias()
	require.NoError(t, err)
	assert.Equal(t, fake.Modalias{Source: "bluetooth", VendorID: 4660, ProductID: 22136, DeviceID: 39612}, ma)

	require.NoError(t, d.SetModalias("bluetooth-no-separator"))
	_, err = d.ProductID()
	assert.ErrorIs(t, err, fake.ErrMalformedModalias)
}

func TestNewEmptyDevice(t *testing.T) {
	d := fake.NewEmptyDevice()

	assert.Equal(t, "", d.ID())
	assert.Nil(t, d.Adapter())
	assert.Empty(t, d.Services())

	// parent-less entities still log and transition
	require.NoError(t, d.SetConnectable(true))
	require.NoError(t, d.Connect())
	require.NoError(t, d.Pair())

	_, err := d.FirstService()
	assert.ErrorIs(t, err, fake.ErrNotFound)
}

package fake

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/srg/blefake/internal/registry"
)

// Device is a remote peer known to an adapter
type Device struct {
	id      *idAttr
	adapter *Adapter

	address        *attr[string]
	appearance     *attr[uint16]
	class          *attr[uint32]
	uuids          *attr[[]string]
	name           *attr[string]
	icon           *attr[string]
	alias          *attr[string]
	paired         *attr[bool]
	connectable    *attr[bool]
	connected      *attr[bool]
	trusted        *attr[bool]
	blocked        *attr[bool]
	legacyPairing  *attr[bool]
	productVersion *attr[uint32]
	rssi           *attr[int16]
	txPower        *attr[int16]
	modalias       modaliasAttr

	services *registry.Registry[*Service]
}

// NewDevice creates a device and registers it with adapter. A nil adapter
// yields a parent-less device whose Adapter is nil.
func NewDevice(adapter *Adapter, id string) *Device {
	d := &Device{
		id:             newIDAttr(id),
		adapter:        adapter,
		address:        newAttr(""),
		appearance:     newAttr[uint16](0),
		class:          newAttr[uint32](0),
		uuids:          newSliceAttr[string](nil),
		name:           newAttr(""),
		icon:           newAttr(""),
		alias:          newAttr(""),
		paired:         newAttr(false),
		connectable:    newAttr(false),
		connected:      newAttr(false),
		trusted:        newAttr(false),
		blocked:        newAttr(false),
		legacyPairing:  newAttr(false),
		productVersion: newAttr[uint32](0),
		rssi:           newAttr[int16](0),
		txPower:        newAttr[int16](0),
		modalias:       modaliasAttr{newAttr("")},
		services:       registry.New[*Service](),
	}
	if adapter != nil {
		adapter.devices.Add(d)
	}
	return d
}

// NewEmptyDevice creates a default-valued, parent-less device
func NewEmptyDevice() *Device {
	return NewDevice(nil, "")
}

func (d *Device) log() *logrus.Entry {
	if d.adapter == nil {
		return discardLogger.WithField("device", d.ID())
	}
	return d.adapter.log().WithField("device", d.ID())
}

// ID returns the device identifier, or "" if it cannot be read
func (d *Device) ID() string {
	return d.id.load()
}

func (d *Device) SetID(id string) {
	d.id.store(id)
}

// Adapter returns the adapter the device was created on, or nil
func (d *Device) Adapter() *Adapter {
	return d.adapter
}

func (d *Device) Address() (string, error) {
	return d.address.get()
}

func (d *Device) SetAddress(v string) error {
	return d.address.set(v)
}

func (d *Device) Appearance() (uint16, error) {
	return d.appearance.get()
}

func (d *Device) SetAppearance(v uint16) error {
	return d.appearance.set(v)
}

func (d *Device) Class() (uint32, error) {
	return d.class.get()
}

func (d *Device) SetClass(v uint32) error {
	return d.class.set(v)
}

func (d *Device) UUIDs() ([]string, error) {
	return d.uuids.get()
}

func (d *Device) SetUUIDs(v []string) error {
	return d.uuids.set(v)
}

func (d *Device) Name() (string, error) {
	return d.name.get()
}

func (d *Device) SetName(v string) error {
	return d.name.set(v)
}

func (d *Device) Icon() (string, error) {
	return d.icon.get()
}

func (d *Device) SetIcon(v string) error {
	return d.icon.set(v)
}

func (d *Device) Alias() (string, error) {
	return d.alias.get()
}

func (d *Device) SetAlias(v string) error {
	return d.alias.set(v)
}

func (d *Device) IsPaired() (bool, error) {
	return d.paired.get()
}

// Pair marks the device as paired regardless of connection state
func (d *Device) Pair() error {
	if err := d.paired.set(true); err != nil {
		return err
	}
	d.log().Debug("Device paired")
	return nil
}

// CancelPairing clears the paired flag
func (d *Device) CancelPairing() error {
	if err := d.paired.set(false); err != nil {
		return err
	}
	d.log().Debug("Device pairing cancelled")
	return nil
}

func (d *Device) IsConnectable() (bool, error) {
	return d.connectable.get()
}

func (d *Device) SetConnectable(v bool) error {
	return d.connectable.set(v)
}

func (d *Device) IsConnected() (bool, error) {
	return d.connected.get()
}

// SetConnected overwrites the connection flag without any state checks
func (d *Device) SetConnected(v bool) error {
	return d.connected.set(v)
}

func (d *Device) IsTrusted() (bool, error) {
	return d.trusted.get()
}

func (d *Device) SetTrusted(v bool) error {
	return d.trusted.set(v)
}

func (d *Device) IsBlocked() (bool, error) {
	return d.blocked.get()
}

func (d *Device) SetBlocked(v bool) error {
	return d.blocked.set(v)
}

func (d *Device) IsLegacyPairing() (bool, error) {
	return d.legacyPairing.get()
}

func (d *Device) SetLegacyPairing(v bool) error {
	return d.legacyPairing.set(v)
}

func (d *Device) ProductVersion() (uint32, error) {
	return d.productVersion.get()
}

func (d *Device) SetProductVersion(v uint32) error {
	return d.productVersion.set(v)
}

func (d *Device) RSSI() (int16, error) {
	return d.rssi.get()
}

func (d *Device) SetRSSI(v int16) error {
	return d.rssi.set(v)
}

func (d *Device) TxPower() (int16, error) {
	return d.txPower.get()
}

func (d *Device) SetTxPower(v int16) error {
	return d.txPower.set(v)
}

func (d *Device) Modalias() (string, error) {
	return d.modalias.get()
}

func (d *Device) SetModalias(v string) error {
	return d.modalias.set(v)
}

// DecodedModalias decodes the current modalias
func (d *Device) DecodedModalias() (Modalias, error) {
	return d.modalias.decode()
}

func (d *Device) VendorIDSource() (string, error) {
	return d.modalias.vendorIDSource()
}

func (d *Device) VendorID() (uint32, error) {
	return d.modalias.vendorID()
}

func (d *Device) ProductID() (uint32, error) {
	return d.modalias.productID()
}

func (d *Device) DeviceID() (uint32, error) {
	return d.modalias.deviceID()
}

// Services returns a snapshot of the device's GATT services in insertion order
func (d *Device) Services() []*Service {
	return d.services.Snapshot()
}

// SetServices replaces the service list in one write. Children may be reordered
// or repeated, but each must have been created on this device and none may be
// left out.
func (d *Device) SetServices(services []*Service) error {
	return d.services.Update(func(current []*Service) ([]*Service, error) {
		if err := checkChildren("service", current, services, d.ownsService); err != nil {
			return nil, err
		}
		return services, nil
	})
}

// AddService lists s again. s must have been created on this device;
// duplicate identifiers are accepted.
func (d *Device) AddService(s *Service) error {
	if !d.ownsService(s) {
		return childError(ErrForeignChild, "service", s)
	}
	d.services.Add(s)
	return nil
}

func (d *Device) ownsService(s *Service) bool {
	return s != nil && s.device == d
}

// Service returns the first service with the given identifier
func (d *Device) Service(id string) (*Service, error) {
	s, ok := d.services.Find(id)
	if !ok {
		return nil, &NotFoundError{Resource: "service", ID: id}
	}
	return s, nil
}

// FirstService returns the first service added to the device
func (d *Device) FirstService() (*Service, error) {
	s, ok := d.services.First()
	if !ok {
		return nil, &NotFoundError{Resource: "service"}
	}
	return s, nil
}

// Connect transitions the device to connected. It fails with ErrConnectFailed
// (AlreadyConnected or NotConnectable) when the transition is not allowed.
func (d *Device) Connect() error {
	id := d.ID()
	connectable, err := d.connectable.get()
	if err != nil {
		return err
	}
	err = d.connected.update(func(connected bool) (bool, error) {
		if connected {
			return connected, &ConnectionError{State: AlreadyConnected, Device: id}
		}
		if !connectable {
			return connected, &ConnectionError{State: NotConnectable, Device: id}
		}
		return true, nil
	})
	if err != nil {
		return err
	}
	d.log().Debug("Device connected")
	return nil
}

// Disconnect transitions a connected device to disconnected
func (d *Device) Disconnect() error {
	id := d.ID()
	err := d.connected.update(func(connected bool) (bool, error) {
		if !connected {
			return connected, &ConnectionError{State: NotConnected, Device: id}
		}
		return false, nil
	})
	if err != nil {
		return err
	}
	d.log().Debug("Device disconnected")
	return nil
}

// ConnectProfile is not supported by the fake backend
func (d *Device) ConnectProfile(uuid string) error {
	return fmt.Errorf("connect profile %s: %w", uuid, ErrUnimplemented)
}

// DisconnectProfile is not supported by the fake backend
func (d *Device) DisconnectProfile(uuid string) error {
	return fmt.Errorf("disconnect profile %s: %w", uuid, ErrUnimplemented)
}

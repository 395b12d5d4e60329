package fake

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/srg/blefake/internal/registry"
)

// Adapter is the local Bluetooth controller: the root of a fake topology
type Adapter struct {
	id     *idAttr
	logger *logrus.Logger

	present             *attr[bool]
	powered             *attr[bool]
	canStartDiscovery   *attr[bool]
	canStopDiscovery    *attr[bool]
	discoverable        *attr[bool]
	discoverableTimeout *attr[uint32]
	pairable            *attr[bool]
	pairableTimeout     *attr[uint32]
	discovering         *attr[bool]
	address             *attr[string]
	name                *attr[string]
	alias               *attr[string]
	class               *attr[uint32]
	uuids               *attr[[]string]
	adData              *attr[[]string]
	modalias            modaliasAttr

	devices *registry.Registry[*Device]
}

// discardLogger serves adapters created without a logger and parent-less entities
var discardLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

// NewAdapter creates an adapter with the given identifier. A nil logger
// disables logging.
func NewAdapter(id string, logger *logrus.Logger) *Adapter {
	if logger == nil {
		logger = discardLogger
	}
	return &Adapter{
		id:                  newIDAttr(id),
		logger:              logger,
		present:             newAttr(false),
		powered:             newAttr(false),
		canStartDiscovery:   newAttr(false),
		canStopDiscovery:    newAttr(false),
		discoverable:        newAttr(false),
		discoverableTimeout: newAttr[uint32](0),
		pairable:            newAttr(false),
		pairableTimeout:     newAttr[uint32](0),
		discovering:         newAttr(false),
		address:             newAttr(""),
		name:                newAttr(""),
		alias:               newAttr(""),
		class:               newAttr[uint32](0),
		uuids:               newSliceAttr[string](nil),
		adData:              newSliceAttr[string](nil),
		modalias:            modaliasAttr{newAttr("")},
		devices:             registry.New[*Device](),
	}
}

// NewEmptyAdapter creates a default-valued adapter with an empty identifier
func NewEmptyAdapter() *Adapter {
	return NewAdapter("", nil)
}

func (a *Adapter) log() *logrus.Entry {
	return a.logger.WithField("adapter", a.ID())
}

// ID returns the adapter identifier, or "" if it cannot be read
func (a *Adapter) ID() string {
	return a.id.load()
}

func (a *Adapter) SetID(id string) {
	a.id.store(id)
}

func (a *Adapter) IsPresent() (bool, error) {
	return a.present.get()
}

func (a *Adapter) SetPresent(v bool) error {
	return a.present.set(v)
}

func (a *Adapter) IsPowered() (bool, error) {
	return a.powered.get()
}

func (a *Adapter) SetPowered(v bool) error {
	if err := a.powered.set(v); err != nil {
		return err
	}
	a.log().WithField("powered", v).Debug("Adapter power changed")
	return nil
}

func (a *Adapter) CanStartDiscovery() (bool, error) {
	return a.canStartDiscovery.get()
}

func (a *Adapter) SetCanStartDiscovery(v bool) error {
	return a.canStartDiscovery.set(v)
}

func (a *Adapter) CanStopDiscovery() (bool, error) {
	return a.canStopDiscovery.get()
}

func (a *Adapter) SetCanStopDiscovery(v bool) error {
	return a.canStopDiscovery.set(v)
}

func (a *Adapter) IsDiscoverable() (bool, error) {
	return a.discoverable.get()
}

func (a *Adapter) SetDiscoverable(v bool) error {
	return a.discoverable.set(v)
}

func (a *Adapter) DiscoverableTimeout() (uint32, error) {
	return a.discoverableTimeout.get()
}

func (a *Adapter) SetDiscoverableTimeout(v uint32) error {
	return a.discoverableTimeout.set(v)
}

func (a *Adapter) IsPairable() (bool, error) {
	return a.pairable.get()
}

func (a *Adapter) SetPairable(v bool) error {
	return a.pairable.set(v)
}

func (a *Adapter) PairableTimeout() (uint32, error) {
	return a.pairableTimeout.get()
}

func (a *Adapter) SetPairableTimeout(v uint32) error {
	return a.pairableTimeout.set(v)
}

func (a *Adapter) IsDiscovering() (bool, error) {
	return a.discovering.get()
}

func (a *Adapter) SetDiscovering(v bool) error {
	return a.discovering.set(v)
}

// StartDiscovery marks the adapter as discovering. The adapter must be powered
// and allow starting discovery. CanStartDiscovery defaults to false, so a new
// adapter returns ErrDiscoveryUnavailable until SetCanStartDiscovery(true).
func (a *Adapter) StartDiscovery() error {
	powered, err := a.powered.get()
	if err != nil {
		return err
	}
	allowed, err := a.canStartDiscovery.get()
	if err != nil {
		return err
	}
	if !powered || !allowed {
		return ErrDiscoveryUnavailable
	}
	if err := a.discovering.set(true); err != nil {
		return err
	}
	a.log().Debug("Discovery started")
	return nil
}

// StopDiscovery clears the discovering flag if the adapter allows stopping
// discovery. CanStopDiscovery also defaults to false.
func (a *Adapter) StopDiscovery() error {
	allowed, err := a.canStopDiscovery.get()
	if err != nil {
		return err
	}
	if !allowed {
		return ErrDiscoveryUnavailable
	}
	if err := a.discovering.set(false); err != nil {
		return err
	}
	a.log().Debug("Discovery stopped")
	return nil
}

func (a *Adapter) Address() (string, error) {
	return a.address.get()
}

func (a *Adapter) SetAddress(v string) error {
	return a.address.set(v)
}

func (a *Adapter) Name() (string, error) {
	return a.name.get()
}

func (a *Adapter) SetName(v string) error {
	return a.name.set(v)
}

func (a *Adapter) Alias() (string, error) {
	return a.alias.get()
}

func (a *Adapter) SetAlias(v string) error {
	return a.alias.set(v)
}

func (a *Adapter) Class() (uint32, error) {
	return a.class.get()
}

func (a *Adapter) SetClass(v uint32) error {
	return a.class.set(v)
}

func (a *Adapter) UUIDs() ([]string, error) {
	return a.uuids.get()
}

func (a *Adapter) SetUUIDs(v []string) error {
	return a.uuids.set(v)
}

// AdData returns the advertising data entries known to the adapter
func (a *Adapter) AdData() ([]string, error) {
	return a.adData.get()
}

func (a *Adapter) SetAdData(v []string) error {
	return a.adData.set(v)
}

// FirstAdData returns the first advertising data entry
func (a *Adapter) FirstAdData() (string, error) {
	entries, err := a.adData.get()
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", &NotFoundError{Resource: "addata"}
	}
	return entries[0], nil
}

func (a *Adapter) Modalias() (string, error) {
	return a.modalias.get()
}

func (a *Adapter) SetModalias(v string) error {
	return a.modalias.set(v)
}

// DecodedModalias decodes the current modalias
func (a *Adapter) DecodedModalias() (Modalias, error) {
	return a.modalias.decode()
}

func (a *Adapter) VendorIDSource() (string, error) {
	return a.modalias.vendorIDSource()
}

func (a *Adapter) VendorID() (uint32, error) {
	return a.modalias.vendorID()
}

func (a *Adapter) ProductID() (uint32, error) {
	return a.modalias.productID()
}

func (a *Adapter) DeviceID() (uint32, error) {
	return a.modalias.deviceID()
}

// Devices returns a snapshot of the adapter's devices in insertion order
func (a *Adapter) Devices() []*Device {
	return a.devices.Snapshot()
}

// SetDevices replaces the device list in one write. Children may be reordered
// or repeated, but each must have been created on this adapter and none may be
// left out.
func (a *Adapter) SetDevices(devices []*Device) error {
	return a.devices.Update(func(current []*Device) ([]*Device, error) {
		if err := checkChildren("device", current, devices, a.ownsDevice); err != nil {
			return nil, err
		}
		return devices, nil
	})
}

// AddDevice lists d again. d must have been created on this adapter;
// duplicate identifiers are accepted.
func (a *Adapter) AddDevice(d *Device) error {
	if !a.ownsDevice(d) {
		return childError(ErrForeignChild, "device", d)
	}
	a.devices.Add(d)
	return nil
}

func (a *Adapter) ownsDevice(d *Device) bool {
	return d != nil && d.adapter == a
}

// Device returns the first device with the given identifier
func (a *Adapter) Device(id string) (*Device, error) {
	d, ok := a.devices.Find(id)
	if !ok {
		return nil, &NotFoundError{Resource: "device", ID: id}
	}
	return d, nil
}

// FirstDevice returns the first device added to the adapter
func (a *Adapter) FirstDevice() (*Device, error) {
	d, ok := a.devices.First()
	if !ok {
		return nil, &NotFoundError{Resource: "device"}
	}
	return d, nil
}

// DeviceOrNew returns the device with the given identifier, creating and
// registering it if none exists.
func (a *Adapter) DeviceOrNew(id string) *Device {
	if d, err := a.Device(id); err == nil {
		return d
	}
	return NewDevice(a, id)
}

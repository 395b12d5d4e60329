package topology

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/srg/blefake/pkg/fake"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Document is an insertion-ordered JSON object
type Document = orderedmap.OrderedMap[string, any]

// doc accumulates attributes in declaration order and remembers the first read failure
type doc struct {
	om  *Document
	err error
}

func newDoc(id string) *doc {
	d := &doc{om: orderedmap.New[string, any]()}
	d.om.Set("id", id)
	return d
}

func field[T any](d *doc, key string, get func() (T, error)) {
	if d.err != nil {
		return
	}
	v, err := get()
	if err != nil {
		d.err = fmt.Errorf("%s: %w", key, err)
		return
	}
	if list, ok := any(v).([]string); ok && list == nil {
		d.om.Set(key, []string{})
		return
	}
	d.om.Set(key, v)
}

func hexField(d *doc, key string, get func() ([]byte, error)) {
	field(d, key, func() (string, error) {
		v, err := get()
		return hex.EncodeToString(v), err
	})
}

func (d *doc) children(key string, items []any, err error) {
	if d.err != nil {
		return
	}
	if err != nil {
		d.err = err
		return
	}
	d.om.Set(key, items)
}

// Snapshot reads every attribute of every entity reachable from m. Attributes
// are read one at a time, so the result is not an atomic view of the graph.
func Snapshot(m *fake.Manager) (*Document, error) {
	adapters := make([]any, 0)
	for _, a := range m.Adapters() {
		ad, err := snapshotAdapter(a)
		if err != nil {
			return nil, fmt.Errorf("adapter %s: %w", a.ID(), err)
		}
		adapters = append(adapters, ad)
	}

	root := orderedmap.New[string, any]()
	root.Set("adapters", adapters)
	return root, nil
}

// SnapshotJSON renders Snapshot as JSON, indented when indent is true
func SnapshotJSON(m *fake.Manager, indent bool) ([]byte, error) {
	root, err := Snapshot(m)
	if err != nil {
		return nil, err
	}
	if indent {
		return json.MarshalIndent(root, "", "  ")
	}
	return json.Marshal(root)
}

func snapshotAdapter(a *fake.Adapter) (*Document, error) {
	d := newDoc(a.ID())
	field(d, "address", a.Address)
	field(d, "name", a.Name)
	field(d, "alias", a.Alias)
	field(d, "class", a.Class)
	field(d, "present", a.IsPresent)
	field(d, "powered", a.IsPowered)
	field(d, "discoverable", a.IsDiscoverable)
	field(d, "discoverable_timeout", a.DiscoverableTimeout)
	field(d, "pairable", a.IsPairable)
	field(d, "pairable_timeout", a.PairableTimeout)
	field(d, "discovering", a.IsDiscovering)
	field(d, "uuids", a.UUIDs)
	field(d, "addata", a.AdData)
	field(d, "modalias", a.Modalias)

	devices := make([]any, 0)
	var err error
	for _, dev := range a.Devices() {
		var dd *Document
		if dd, err = snapshotDevice(dev); err != nil {
			err = fmt.Errorf("device %s: %w", dev.ID(), err)
			break
		}
		devices = append(devices, dd)
	}
	d.children("devices", devices, err)
	return d.om, d.err
}

func snapshotDevice(dev *fake.Device) (*Document, error) {
	d := newDoc(dev.ID())
	field(d, "address", dev.Address)
	field(d, "name", dev.Name)
	field(d, "alias", dev.Alias)
	field(d, "icon", dev.Icon)
	field(d, "class", dev.Class)
	field(d, "appearance", dev.Appearance)
	field(d, "uuids", dev.UUIDs)
	field(d, "paired", dev.IsPaired)
	field(d, "connectable", dev.IsConnectable)
	field(d, "connected", dev.IsConnected)
	field(d, "trusted", dev.IsTrusted)
	field(d, "blocked", dev.IsBlocked)
	field(d, "legacy_pairing", dev.IsLegacyPairing)
	field(d, "rssi", dev.RSSI)
	field(d, "tx_power", dev.TxPower)
	field(d, "product_version", dev.ProductVersion)
	field(d, "modalias", dev.Modalias)

	services := make([]any, 0)
	var err error
	for _, s := range dev.Services() {
		var sd *Document
		if sd, err = snapshotService(s); err != nil {
			err = fmt.Errorf("service %s: %w", s.ID(), err)
			break
		}
		services = append(services, sd)
	}
	d.children("services", services, err)
	return d.om, d.err
}

func snapshotService(s *fake.Service) (*Document, error) {
	d := newDoc(s.ID())
	field(d, "uuid", s.UUID)
	field(d, "primary", s.IsPrimary)
	field(d, "includes", func() ([]string, error) {
		included, err := s.Includes()
		ids := make([]string, 0, len(included))
		for _, inc := range included {
			ids = append(ids, inc.ID())
		}
		return ids, err
	})

	chars := make([]any, 0)
	var err error
	for _, c := range s.Characteristics() {
		var cd *Document
		if cd, err = snapshotCharacteristic(c); err != nil {
			err = fmt.Errorf("characteristic %s: %w", c.ID(), err)
			break
		}
		chars = append(chars, cd)
	}
	d.children("characteristics", chars, err)
	return d.om, d.err
}

func snapshotCharacteristic(c *fake.Characteristic) (*Document, error) {
	d := newDoc(c.ID())
	field(d, "uuid", c.UUID)
	field(d, "flags", c.Flags)
	hexField(d, "value", c.Value)
	field(d, "notifying", c.IsNotifying)

	descs := make([]any, 0)
	for _, desc := range c.Descriptors() {
		dd := newDoc(desc.ID())
		field(dd, "uuid", desc.UUID)
		field(dd, "flags", desc.Flags)
		hexField(dd, "value", desc.Value)
		if dd.err != nil {
			d.children("descriptors", nil, fmt.Errorf("descriptor %s: %w", desc.ID(), dd.err))
			return d.om, d.err
		}
		descs = append(descs, dd.om)
	}
	d.children("descriptors", descs, nil)
	return d.om, d.err
}

package topology

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/srg/blefake/internal/bleuuid"
	"github.com/srg/blefake/pkg/fake"
)

// Build constructs a live topology from f. Entities are created bottom-up
// through the fake constructors, so each child registers with its parent.
// UUIDs are stored in canonical 128-bit form.
func Build(f *Fixture, logger *logrus.Logger) (*fake.Manager, error) {
	m := fake.NewManager(logger)
	if err := Populate(m, f); err != nil {
		return nil, err
	}
	return m, nil
}

// Populate adds the adapters of f to an existing manager
func Populate(m *fake.Manager, f *Fixture) error {
	for i, spec := range f.Adapters {
		id := spec.ID
		if id == "" {
			id = fmt.Sprintf("hci%d", i)
		}
		a, err := m.NewAdapter(id)
		if err != nil {
			return err
		}
		if err := applyAdapter(a, spec); err != nil {
			return fmt.Errorf("adapter %s: %w", id, err)
		}
	}
	return nil
}

func applyAdapter(a *fake.Adapter, spec AdapterSpec) error {
	uuids, err := canonicalAll(spec.UUIDs)
	if err != nil {
		return err
	}
	err = firstErr(
		a.SetAddress(spec.Address),
		a.SetName(spec.Name),
		a.SetAlias(spec.Alias),
		a.SetClass(spec.Class),
		a.SetPresent(spec.Present),
		a.SetPowered(spec.Powered),
		a.SetDiscoverable(spec.Discoverable),
		a.SetDiscoverableTimeout(spec.DiscoverableTimeout),
		a.SetPairable(spec.Pairable),
		a.SetPairableTimeout(spec.PairableTimeout),
		a.SetCanStartDiscovery(spec.CanStartDiscovery),
		a.SetCanStopDiscovery(spec.CanStopDiscovery),
		a.SetUUIDs(uuids),
		a.SetAdData(spec.AdData),
		a.SetModalias(spec.Modalias),
	)
	if err != nil {
		return err
	}

	for i, ds := range spec.Devices {
		id := deviceID(ds, i)
		d := fake.NewDevice(a, id)
		if err := applyDevice(d, ds); err != nil {
			return fmt.Errorf("device %s: %w", id, err)
		}
	}
	return nil
}

// deviceID follows the BlueZ object naming (dev_AA_BB_CC_DD_EE_FF) when only
// an address is given.
func deviceID(spec DeviceSpec, index int) string {
	switch {
	case spec.ID != "":
		return spec.ID
	case spec.Address != "":
		return "dev_" + strings.ReplaceAll(strings.ToUpper(spec.Address), ":", "_")
	default:
		return fmt.Sprintf("dev%d", index)
	}
}

func applyDevice(d *fake.Device, spec DeviceSpec) error {
	uuids, err := canonicalAll(spec.UUIDs)
	if err != nil {
		return err
	}
	err = firstErr(
		d.SetAddress(spec.Address),
		d.SetName(spec.Name),
		d.SetAlias(spec.Alias),
		d.SetIcon(spec.Icon),
		d.SetClass(spec.Class),
		d.SetAppearance(spec.Appearance),
		d.SetUUIDs(uuids),
		d.SetConnectable(spec.Connectable),
		d.SetTrusted(spec.Trusted),
		d.SetBlocked(spec.Blocked),
		d.SetLegacyPairing(spec.LegacyPairing),
		d.SetRSSI(spec.RSSI),
		d.SetTxPower(spec.TxPower),
		d.SetProductVersion(spec.ProductVersion),
		d.SetModalias(spec.Modalias),
	)
	if err != nil {
		return err
	}
	// connected is only reachable through a legal transition
	if spec.Connected {
		if err := d.Connect(); err != nil {
			return err
		}
	}
	if spec.Paired {
		if err := d.Pair(); err != nil {
			return err
		}
	}

	ids := make([]string, len(spec.Services))
	for i, ss := range spec.Services {
		id := ss.ID
		if id == "" {
			id = fmt.Sprintf("service%04x", i)
		}
		ids[i] = id
		s := fake.NewService(d, id)
		if err := applyService(s, ss); err != nil {
			return fmt.Errorf("service %s: %w", id, err)
		}
	}

	// Included services may reference siblings declared later.
	for i, ss := range spec.Services {
		if len(ss.Includes) == 0 {
			continue
		}
		s, err := d.Service(ids[i])
		if err != nil {
			return err
		}
		for _, inc := range ss.Includes {
			target, err := d.Service(inc)
			if err != nil {
				return fmt.Errorf("service %s include: %w", ids[i], err)
			}
			if err := s.AddInclude(target); err != nil {
				return err
			}
		}
	}
	return nil
}

func applyService(s *fake.Service, spec ServiceSpec) error {
	uuid, err := bleuuid.Canonical(spec.UUID)
	if err != nil {
		return err
	}
	if err := firstErr(s.SetUUID(uuid), s.SetPrimary(spec.Primary)); err != nil {
		return err
	}

	for i, cs := range spec.Characteristics {
		id := cs.ID
		if id == "" {
			id = fmt.Sprintf("%s/char%04x", s.ID(), i)
		}
		c := fake.NewCharacteristic(s, id)
		if err := applyCharacteristic(c, cs); err != nil {
			return fmt.Errorf("characteristic %s: %w", id, err)
		}
	}
	return nil
}

func applyCharacteristic(c *fake.Characteristic, spec CharacteristicSpec) error {
	uuid, err := bleuuid.Canonical(spec.UUID)
	if err != nil {
		return err
	}
	err = firstErr(
		c.SetUUID(uuid),
		c.SetFlags(spec.Flags),
		c.SetValue(spec.Value),
		c.SetNotifying(spec.Notifying),
	)
	if err != nil {
		return err
	}

	for i, ds := range spec.Descriptors {
		id := ds.ID
		if id == "" {
			id = fmt.Sprintf("%s/desc%04x", c.ID(), i)
		}
		d := fake.NewDescriptor(c, id)
		uuid, err := bleuuid.Canonical(ds.UUID)
		if err != nil {
			return fmt.Errorf("descriptor %s: %w", id, err)
		}
		if err := firstErr(d.SetUUID(uuid), d.SetFlags(ds.Flags), d.SetValue(ds.Value)); err != nil {
			return fmt.Errorf("descriptor %s: %w", id, err)
		}
	}
	return nil
}

func canonicalAll(uuids []string) ([]string, error) {
	if len(uuids) == 0 {
		return nil, nil
	}
	return bleuuid.Validate(uuids...)
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

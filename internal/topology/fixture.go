// Package topology loads fake Bluetooth topologies from YAML fixtures and
// renders live topologies as ordered JSON documents or colored trees.
package topology

import (
	"bytes"
	"fmt"
	"os"

	"github.com/srg/blefake/internal/scenario"
	"gopkg.in/yaml.v3"
)

// Fixture describes a topology and an optional scenario to run against it
type Fixture struct {
	Adapters []AdapterSpec   `yaml:"adapters" json:"adapters"`
	Steps    []scenario.Step `yaml:"steps,omitempty" json:"steps,omitempty"`
}

// AdapterSpec describes an adapter and its devices
type AdapterSpec struct {
	ID                  string       `yaml:"id" json:"id"`
	Address             string       `yaml:"address,omitempty" json:"address,omitempty"`
	Name                string       `yaml:"name,omitempty" json:"name,omitempty"`
	Alias               string       `yaml:"alias,omitempty" json:"alias,omitempty"`
	Class               uint32       `yaml:"class,omitempty" json:"class,omitempty"`
	Present             bool         `yaml:"present,omitempty" json:"present,omitempty"`
	Powered             bool         `yaml:"powered,omitempty" json:"powered,omitempty"`
	Discoverable        bool         `yaml:"discoverable,omitempty" json:"discoverable,omitempty"`
	DiscoverableTimeout uint32       `yaml:"discoverable_timeout,omitempty" json:"discoverable_timeout,omitempty"`
	Pairable            bool         `yaml:"pairable,omitempty" json:"pairable,omitempty"`
	PairableTimeout     uint32       `yaml:"pairable_timeout,omitempty" json:"pairable_timeout,omitempty"`
	CanStartDiscovery   bool         `yaml:"can_start_discovery,omitempty" json:"can_start_discovery,omitempty"`
	CanStopDiscovery    bool         `yaml:"can_stop_discovery,omitempty" json:"can_stop_discovery,omitempty"`
	UUIDs               []string     `yaml:"uuids,omitempty" json:"uuids,omitempty"`
	AdData              []string     `yaml:"addata,omitempty" json:"addata,omitempty"`
	Modalias            string       `yaml:"modalias,omitempty" json:"modalias,omitempty"`
	Devices             []DeviceSpec `yaml:"devices,omitempty" json:"devices,omitempty"`
}

// DeviceSpec describes a remote device and its services
type DeviceSpec struct {
	ID             string        `yaml:"id,omitempty" json:"id,omitempty"`
	Address        string        `yaml:"address,omitempty" json:"address,omitempty"`
	Name           string        `yaml:"name,omitempty" json:"name,omitempty"`
	Alias          string        `yaml:"alias,omitempty" json:"alias,omitempty"`
	Icon           string        `yaml:"icon,omitempty" json:"icon,omitempty"`
	Class          uint32        `yaml:"class,omitempty" json:"class,omitempty"`
	Appearance     uint16        `yaml:"appearance,omitempty" json:"appearance,omitempty"`
	UUIDs          []string      `yaml:"uuids,omitempty" json:"uuids,omitempty"`
	Paired         bool          `yaml:"paired,omitempty" json:"paired,omitempty"`
	Connectable    bool          `yaml:"connectable,omitempty" json:"connectable,omitempty"`
	Connected      bool          `yaml:"connected,omitempty" json:"connected,omitempty"`
	Trusted        bool          `yaml:"trusted,omitempty" json:"trusted,omitempty"`
	Blocked        bool          `yaml:"blocked,omitempty" json:"blocked,omitempty"`
	LegacyPairing  bool          `yaml:"legacy_pairing,omitempty" json:"legacy_pairing,omitempty"`
	RSSI           int16         `yaml:"rssi,omitempty" json:"rssi,omitempty"`
	TxPower        int16         `yaml:"tx_power,omitempty" json:"tx_power,omitempty"`
	ProductVersion uint32        `yaml:"product_version,omitempty" json:"product_version,omitempty"`
	Modalias       string        `yaml:"modalias,omitempty" json:"modalias,omitempty"`
	Services       []ServiceSpec `yaml:"services,omitempty" json:"services,omitempty"`
}

// ServiceSpec describes a GATT service. Includes name sibling services by id.
type ServiceSpec struct {
	ID              string               `yaml:"id,omitempty" json:"id,omitempty"`
	UUID            string               `yaml:"uuid" json:"uuid"`
	Primary         bool                 `yaml:"primary,omitempty" json:"primary,omitempty"`
	Includes        []string             `yaml:"includes,omitempty" json:"includes,omitempty"`
	Characteristics []CharacteristicSpec `yaml:"characteristics,omitempty" json:"characteristics,omitempty"`
}

// CharacteristicSpec describes a GATT characteristic
type CharacteristicSpec struct {
	ID          string           `yaml:"id,omitempty" json:"id,omitempty"`
	UUID        string           `yaml:"uuid" json:"uuid"`
	Flags       []string         `yaml:"flags,omitempty" json:"flags,omitempty"`
	Value       []byte           `yaml:"value,omitempty" json:"value,omitempty"`
	Notifying   bool             `yaml:"notifying,omitempty" json:"notifying,omitempty"`
	Descriptors []DescriptorSpec `yaml:"descriptors,omitempty" json:"descriptors,omitempty"`
}

// DescriptorSpec describes a GATT descriptor
type DescriptorSpec struct {
	ID    string   `yaml:"id,omitempty" json:"id,omitempty"`
	UUID  string   `yaml:"uuid" json:"uuid"`
	Flags []string `yaml:"flags,omitempty" json:"flags,omitempty"`
	Value []byte   `yaml:"value,omitempty" json:"value,omitempty"`
}

// Parse decodes a YAML fixture. Unknown fields are rejected.
func Parse(data []byte) (*Fixture, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f Fixture
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode fixture: %w", err)
	}
	return &f, nil
}

// LoadFile reads and decodes a YAML fixture file
func LoadFile(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

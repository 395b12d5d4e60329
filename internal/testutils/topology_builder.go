package testutils

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/srg/blefake/internal/topology"
	"github.com/srg/blefake/pkg/fake"
)

// TopologyBuilder builds fake topologies fluently. Each With* call attaches to
// the most recently added parent.
type TopologyBuilder struct {
	fixture topology.Fixture
}

// NewTopologyBuilder creates an empty builder
func NewTopologyBuilder() *TopologyBuilder {
	return &TopologyBuilder{}
}

// WithAdapter adds a powered adapter that can start and stop discovery
func (b *TopologyBuilder) WithAdapter(id string) *TopologyBuilder {
	b.fixture.Adapters = append(b.fixture.Adapters, topology.AdapterSpec{
		ID:                id,
		Present:           true,
		Powered:           true,
		CanStartDiscovery: true,
		CanStopDiscovery:  true,
	})
	return b
}

// WithDevice adds a device to the last adapter
func (b *TopologyBuilder) WithDevice(id, address string, connectable bool) *TopologyBuilder {
	a := b.lastAdapter("WithDevice")
	a.Devices = append(a.Devices, topology.DeviceSpec{
		ID:          id,
		Address:     address,
		Connectable: connectable,
	})
	return b
}

// WithService adds a primary service to the last device
func (b *TopologyBuilder) WithService(id, uuid string) *TopologyBuilder {
	d := b.lastDevice("WithService")
	d.Services = append(d.Services, topology.ServiceSpec{ID: id, UUID: uuid, Primary: true})
	return b
}

// WithCharacteristic adds a characteristic to the last service. flags is a
// comma-separated list, e.g. "read,write,notify".
func (b *TopologyBuilder) WithCharacteristic(id, uuid, flags string, value []byte) *TopologyBuilder {
	s := b.lastService("WithCharacteristic")
	var flagList []string
	if flags != "" {
		flagList = strings.Split(flags, ",")
	}
	s.Characteristics = append(s.Characteristics, topology.CharacteristicSpec{
		ID:    id,
		UUID:  uuid,
		Flags: flagList,
		Value: value,
	})
	return b
}

// WithDescriptor adds a descriptor to the last characteristic
func (b *TopologyBuilder) WithDescriptor(id, uuid string, value []byte) *TopologyBuilder {
	s := b.lastService("WithDescriptor")
	if len(s.Characteristics) == 0 {
		panic("WithDescriptor: no characteristic added yet, call WithCharacteristic first")
	}
	c := &s.Characteristics[len(s.Characteristics)-1]
	c.Descriptors = append(c.Descriptors, topology.DescriptorSpec{ID: id, UUID: uuid, Value: value})
	return b
}

// Fixture returns the accumulated fixture
func (b *TopologyBuilder) Fixture() *topology.Fixture {
	return &b.fixture
}

// Build creates the live topology, panicking on invalid fixtures
func (b *TopologyBuilder) Build(logger *logrus.Logger) *fake.Manager {
	m, err := topology.Build(&b.fixture, logger)
	if err != nil {
		panic(fmt.Sprintf("TopologyBuilder.Build: %v", err))
	}
	return m
}

func (b *TopologyBuilder) lastAdapter(caller string) *topology.AdapterSpec {
	if len(b.fixture.Adapters) == 0 {
		panic(caller + ": no adapter added yet, call WithAdapter first")
	}
	return &b.fixture.Adapters[len(b.fixture.Adapters)-1]
}

func (b *TopologyBuilder) lastDevice(caller string) *topology.DeviceSpec {
	a := b.lastAdapter(caller)
	if len(a.Devices) == 0 {
		panic(caller + ": no device added yet, call WithDevice first")
	}
	return &a.Devices[len(a.Devices)-1]
}

func (b *TopologyBuilder) lastService(caller string) *topology.ServiceSpec {
	d := b.lastDevice(caller)
	if len(d.Services) == 0 {
		panic(caller + ": no service added yet, call WithService first")
	}
	return &d.Services[len(d.Services)-1]
}

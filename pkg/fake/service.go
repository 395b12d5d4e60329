package fake

import (
	"github.com/sirupsen/logrus"
	"github.com/srg/blefake/internal/registry"
)

// Service is a GATT service exposed by a device
type Service struct {
	id     *idAttr
	device *Device

	uuid     *attr[string]
	primary  *attr[bool]
	includes *attr[[]*Service]

	characteristics *registry.Registry[*Characteristic]
}

// NewService creates a service and registers it with device. A nil device
// yields a parent-less service whose Device is nil.
func NewService(device *Device, id string) *Service {
	s := &Service{
		id:              newIDAttr(id),
		device:          device,
		uuid:            newAttr(""),
		primary:         newAttr(false),
		includes:        newSliceAttr[*Service](nil),
		characteristics: registry.New[*Characteristic](),
	}
	if device != nil {
		device.services.Add(s)
	}
	return s
}

// NewEmptyService creates a default-valued, parent-less service
func NewEmptyService() *Service {
	return NewService(nil, "")
}

func (s *Service) log() *logrus.Entry {
	if s.device == nil {
		return discardLogger.WithField("service", s.ID())
	}
	return s.device.log().WithField("service", s.ID())
}

// ID returns the service identifier, or "" if it cannot be read
func (s *Service) ID() string {
	return s.id.load()
}

func (s *Service) SetID(id string) {
	s.id.store(id)
}

// Device returns the device the service was created on, or nil
func (s *Service) Device() *Device {
	return s.device
}

func (s *Service) UUID() (string, error) {
	return s.uuid.get()
}

func (s *Service) SetUUID(v string) error {
	return s.uuid.set(v)
}

func (s *Service) IsPrimary() (bool, error) {
	return s.primary.get()
}

func (s *Service) SetPrimary(v bool) error {
	return s.primary.set(v)
}

// Includes returns the services referenced as included services
func (s *Service) Includes() ([]*Service, error) {
	return s.includes.get()
}

func (s *Service) SetIncludes(v []*Service) error {
	return s.includes.set(v)
}

// AddInclude appends a reference to another service
func (s *Service) AddInclude(included *Service) error {
	return s.includes.update(func(list []*Service) ([]*Service, error) {
		return append(list, included), nil
	})
}

// Characteristics returns a snapshot of the service's characteristics in insertion order
func (s *Service) Characteristics() []*Characteristic {
	return s.characteristics.Snapshot()
}

// SetCharacteristics replaces the characteristic list in one write. Children may be reordered
// or repeated, but each must have been created on this service and none may be
// left out.
func (s *Service) SetCharacteristics(chars []*Characteristic) error {
	return s.characteristics.Update(func(current []*Characteristic) ([]*Characteristic, error) {
		if err := checkChildren("characteristic", current, chars, s.ownsCharacteristic); err != nil {
			return nil, err
		}
		return chars, nil
	})
}

// AddCharacteristic lists c again. c must have been created on this service;
// duplicate identifiers are accepted.
func (s *Service) AddCharacteristic(c *Characteristic) error {
	if !s.ownsCharacteristic(c) {
		return childError(ErrForeignChild, "characteristic", c)
	}
	s.characteristics.Add(c)
	return nil
}

func (s *Service) ownsCharacteristic(c *Characteristic) bool {
	return c != nil && c.service == s
}

// Characteristic returns the first characteristic with the given identifier
func (s *Service) Characteristic(id string) (*Characteristic, error) {
	c, ok := s.characteristics.Find(id)
	if !ok {
		return nil, &NotFoundError{Resource: "characteristic", ID: id}
	}
	return c, nil
}

// FirstCharacteristic returns the first characteristic added to the service
func (s *Service) FirstCharacteristic() (*Characteristic, error) {
	c, ok := s.characteristics.First()
	if !ok {
		return nil, &NotFoundError{Resource: "characteristic"}
	}
	return c, nil
}

package fake

import (
	"github.com/sirupsen/logrus"
	"github.com/srg/blefake/internal/registry"
)

// Characteristic is a GATT characteristic holding a byte value
type Characteristic struct {
	id      *idAttr
	service *Service

	uuid      *attr[string]
	value     *attr[[]byte]
	notifying *attr[bool]
	flags     *attr[[]string]

	descriptors *registry.Registry[*Descriptor]
}

// NewCharacteristic creates a characteristic and registers it with service.
// A nil service yields a parent-less characteristic whose Service is nil.
func NewCharacteristic(service *Service, id string) *Characteristic {
	c := &Characteristic{
		id:          newIDAttr(id),
		service:     service,
		uuid:        newAttr(""),
		value:       newSliceAttr[byte](nil),
		notifying:   newAttr(false),
		flags:       newSliceAttr[string](nil),
		descriptors: registry.New[*Descriptor](),
	}
	if service != nil {
		service.characteristics.Add(c)
	}
	return c
}

// NewEmptyCharacteristic creates a default-valued, parent-less characteristic
func NewEmptyCharacteristic() *Characteristic {
	return NewCharacteristic(nil, "")
}

func (c *Characteristic) log() *logrus.Entry {
	if c.service == nil {
		return discardLogger.WithField("characteristic", c.ID())
	}
	return c.service.log().WithField("characteristic", c.ID())
}

// ID returns the characteristic identifier, or "" if it cannot be read
func (c *Characteristic) ID() string {
	return c.id.load()
}

func (c *Characteristic) SetID(id string) {
	c.id.store(id)
}

// Service returns the service the characteristic was created on, or nil
func (c *Characteristic) Service() *Service {
	return c.service
}

func (c *Characteristic) UUID() (string, error) {
	return c.uuid.get()
}

func (c *Characteristic) SetUUID(v string) error {
	return c.uuid.set(v)
}

func (c *Characteristic) Value() ([]byte, error) {
	return c.value.get()
}

func (c *Characteristic) SetValue(v []byte) error {
	return c.value.set(v)
}

// ReadValue returns the stored value; no remote read is performed
func (c *Characteristic) ReadValue() ([]byte, error) {
	return c.Value()
}

// WriteValue overwrites the stored value. Flags are not checked.
func (c *Characteristic) WriteValue(v []byte) error {
	if err := c.value.set(v); err != nil {
		return err
	}
	c.log().WithField("len", len(v)).Debug("Characteristic value written")
	return nil
}

func (c *Characteristic) IsNotifying() (bool, error) {
	return c.notifying.get()
}

func (c *Characteristic) SetNotifying(v bool) error {
	return c.notifying.set(v)
}

// StartNotify sets the notifying flag. No notifications are delivered;
// consumers poll Value.
func (c *Characteristic) StartNotify() error {
	if err := c.notifying.set(true); err != nil {
		return err
	}
	c.log().Debug("Notifications started")
	return nil
}

// StopNotify clears the notifying flag
func (c *Characteristic) StopNotify() error {
	if err := c.notifying.set(false); err != nil {
		return err
	}
	c.log().Debug("Notifications stopped")
	return nil
}

// Flags returns the capability strings (e.g. "read", "write", "notify")
func (c *Characteristic) Flags() ([]string, error) {
	return c.flags.get()
}

func (c *Characteristic) SetFlags(v []string) error {
	return c.flags.set(v)
}

// Descriptors returns a snapshot of the characteristic's descriptors in insertion order
func (c *Characteristic) Descriptors() []*Descriptor {
	return c.descriptors.Snapshot()
}

// SetDescriptors replaces the descriptor list in one write. Children may be reordered
// or repeated, but each must have been created on this characteristic and none may be
// left out.
func (c *Characteristic) SetDescriptors(descs []*Descriptor) error {
	return c.descriptors.Update(func(current []*Descriptor) ([]*Descriptor, error) {
		if err := checkChildren("descriptor", current, descs, c.ownsDescriptor); err != nil {
			return nil, err
		}
		return descs, nil
	})
}

// AddDescriptor lists d again. d must have been created on this characteristic;
// duplicate identifiers are accepted.
func (c *Characteristic) AddDescriptor(d *Descriptor) error {
	if !c.ownsDescriptor(d) {
		return childError(ErrForeignChild, "descriptor", d)
	}
	c.descriptors.Add(d)
	return nil
}

func (c *Characteristic) ownsDescriptor(d *Descriptor) bool {
	return d != nil && d.characteristic == c
}

// Descriptor returns the first descriptor with the given identifier
func (c *Characteristic) Descriptor(id string) (*Descriptor, error) {
	d, ok := c.descriptors.Find(id)
	if !ok {
		return nil, &NotFoundError{Resource: "descriptor", ID: id}
	}
	return d, nil
}

// FirstDescriptor returns the first descriptor added to the characteristic
func (c *Characteristic) FirstDescriptor() (*Descriptor, error) {
	d, ok := c.descriptors.First()
	if !ok {
		return nil, &NotFoundError{Resource: "descriptor"}
	}
	return d, nil
}

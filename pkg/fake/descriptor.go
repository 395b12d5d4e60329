package fake

import "github.com/sirupsen/logrus"

// Descriptor is metadata attached to a characteristic
type Descriptor struct {
	id             *idAttr
	characteristic *Characteristic

	uuid  *attr[string]
	value *attr[[]byte]
	flags *attr[[]string]
}

// NewDescriptor creates a descriptor and registers it with characteristic.
// A nil characteristic yields a parent-less descriptor whose Characteristic is nil.
func NewDescriptor(characteristic *Characteristic, id string) *Descriptor {
	d := &Descriptor{
		id:             newIDAttr(id),
		characteristic: characteristic,
		uuid:           newAttr(""),
		value:          newSliceAttr[byte](nil),
		flags:          newSliceAttr[string](nil),
	}
	if characteristic != nil {
		characteristic.descriptors.Add(d)
	}
	return d
}

// NewEmptyDescriptor creates a default-valued, parent-less descriptor
func NewEmptyDescriptor() *Descriptor {
	return NewDescriptor(nil, "")
}

func (d *Descriptor) log() *logrus.Entry {
	if d.characteristic == nil {
		return discardLogger.WithField("descriptor", d.ID())
	}
	return d.characteristic.log().WithField("descriptor", d.ID())
}

// ID returns the descriptor identifier, or "" if it cannot be read
func (d *Descriptor) ID() string {
	return d.id.load()
}

func (d *Descriptor) SetID(id string) {
	d.id.store(id)
}

// Characteristic returns the characteristic the descriptor was created on, or nil
func (d *Descriptor) Characteristic() *Characteristic {
	return d.characteristic
}

func (d *Descriptor) UUID() (string, error) {
	return d.uuid.get()
}

func (d *Descriptor) SetUUID(v string) error {
	return d.uuid.set(v)
}

func (d *Descriptor) Value() ([]byte, error) {
	return d.value.get()
}

func (d *Descriptor) SetValue(v []byte) error {
	return d.value.set(v)
}

// ReadValue returns the stored value
func (d *Descriptor) ReadValue() ([]byte, error) {
	return d.Value()
}

// WriteValue overwrites the stored value
func (d *Descriptor) WriteValue(v []byte) error {
	if err := d.value.set(v); err != nil {
		return err
	}
	d.log().Debug("Descriptor value written")
	return nil
}

func (d *Descriptor) Flags() ([]string, error) {
	return d.flags.get()
}

func (d *Descriptor) SetFlags(v []string) error {
	return d.flags.set(v)
}

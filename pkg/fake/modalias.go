package fake

import (
	"encoding/binary"
	"encoding/hex"
	"strings"
)

// Modalias holds the identifiers decoded from a "<source>:vVVVVpPPPPdDDDD" string
type Modalias struct {
	Source    string
	VendorID  uint32
	ProductID uint32
	DeviceID  uint32
}

// Fixed field offsets inside the right-hand segment of a modalias
const (
	modaliasVendorAt  = 1
	modaliasProductAt = 6
	modaliasDeviceAt  = 11
	modaliasFieldLen  = 4
)

// ParseModalias decodes a modalias string. The source is returned verbatim;
// vendor, product and device are 4-digit big-endian hex fields.
func ParseModalias(s string) (Modalias, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return Modalias{}, &ModaliasError{Modalias: s, Reason: "missing ':' separator"}
	}
	ids := parts[1]

	vendor, err := modaliasField(s, ids, modaliasVendorAt)
	if err != nil {
		return Modalias{}, err
	}
	product, err := modaliasField(s, ids, modaliasProductAt)
	if err != nil {
		return Modalias{}, err
	}
	device, err := modaliasField(s, ids, modaliasDeviceAt)
	if err != nil {
		return Modalias{}, err
	}

	return Modalias{
		Source:    parts[0],
		VendorID:  vendor,
		ProductID: product,
		DeviceID:  device,
	}, nil
}

func modaliasField(modalias, ids string, at int) (uint32, error) {
	end := at + modaliasFieldLen
	if len(ids) < end {
		return 0, &ModaliasError{Modalias: modalias, Reason: "too short"}
	}
	raw, err := hex.DecodeString(ids[at:end])
	if err != nil {
		return 0, &ModaliasError{Modalias: modalias, Reason: "invalid hex " + ids[at:end]}
	}
	return uint32(binary.BigEndian.Uint16(raw)), nil
}

// modaliasAttr stores a modalias string and decodes it on every read, so a
// write is reflected immediately by the derived identifiers.
type modaliasAttr struct {
	*attr[string]
}

func (m modaliasAttr) decode() (Modalias, error) {
	s, err := m.get()
	if err != nil {
		return Modalias{}, err
	}
	return ParseModalias(s)
}

func (m modaliasAttr) vendorIDSource() (string, error) {
	ma, err := m.decode()
	return ma.Source, err
}

func (m modaliasAttr) vendorID() (uint32, error) {
	ma, err := m.decode()
	return ma.VendorID, err
}

func (m modaliasAttr) productID() (uint32, error) {
	ma, err := m.decode()
	return ma.ProductID, err
}

func (m modaliasAttr) deviceID() (uint32, error) {
	ma, err := m.decode()
	return ma.DeviceID, err
}

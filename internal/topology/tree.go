package topology

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/srg/blefake/internal/bleuuid"
	"github.com/srg/blefake/pkg/fake"
)

// TreeOptions controls RenderTree output
type TreeOptions struct {
	Color bool
}

type palette struct {
	kind  *color.Color
	id    *color.Color
	state *color.Color
	value *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		kind:  color.New(color.FgBlue, color.Bold),
		id:    color.New(color.FgCyan),
		state: color.New(color.FgGreen),
		value: color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{p.kind, p.id, p.state, p.value} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// treeWriter writes indented lines and keeps the first error
type treeWriter struct {
	w   io.Writer
	p   palette
	err error
}

func (t *treeWriter) line(depth int, kind, id string, attrs ...string) {
	if t.err != nil {
		return
	}
	parts := []string{t.p.kind.Sprint(kind), t.p.id.Sprint(id)}
	for _, a := range attrs {
		if a != "" {
			parts = append(parts, a)
		}
	}
	_, t.err = fmt.Fprintf(t.w, "%s%s\n", strings.Repeat("  ", depth), strings.Join(parts, " "))
}

func (t *treeWriter) flag(on bool, name string) string {
	if !on {
		return ""
	}
	return t.p.state.Sprint(name)
}

func (t *treeWriter) kv(key string, v any) string {
	return key + "=" + t.p.value.Sprint(v)
}

// uuid renders the short form followed by the assigned name, if any
func (t *treeWriter) uuid(s string) string {
	attr := t.kv("uuid", bleuuid.Short(s))
	if name := bleuuid.Name(s); name != "" {
		attr += " (" + name + ")"
	}
	return attr
}

// RenderTree writes the topology as an indented tree. Read failures are
// rendered inline instead of aborting the tree.
func RenderTree(w io.Writer, m *fake.Manager, opts TreeOptions) error {
	t := &treeWriter{w: w, p: newPalette(opts.Color)}
	for _, a := range m.Adapters() {
		renderAdapter(t, a)
	}
	return t.err
}

func renderAdapter(t *treeWriter, a *fake.Adapter) {
	address, _ := a.Address()
	name, _ := a.Name()
	powered, _ := a.IsPowered()
	discoverable, _ := a.IsDiscoverable()
	pairable, _ := a.IsPairable()
	discovering, _ := a.IsDiscovering()

	t.line(0, "Adapter", a.ID(),
		bracket(address),
		quote(name),
		t.flag(powered, "powered"),
		t.flag(discoverable, "discoverable"),
		t.flag(pairable, "pairable"),
		t.flag(discovering, "discovering"),
	)
	for _, d := range a.Devices() {
		renderDevice(t, d)
	}
}

func renderDevice(t *treeWriter, d *fake.Device) {
	address, _ := d.Address()
	name, _ := d.Name()
	paired, _ := d.IsPaired()
	connected, _ := d.IsConnected()
	trusted, _ := d.IsTrusted()
	blocked, _ := d.IsBlocked()
	rssi, err := d.RSSI()

	rssiAttr := t.kv("rssi", rssi)
	if err != nil {
		rssiAttr = t.kv("rssi", "?")
	}

	t.line(1, "Device", d.ID(),
		bracket(address),
		quote(name),
		t.flag(connected, "connected"),
		t.flag(paired, "paired"),
		t.flag(trusted, "trusted"),
		t.flag(blocked, "blocked"),
		rssiAttr,
	)
	for _, s := range d.Services() {
		renderService(t, s)
	}
}

func renderService(t *treeWriter, s *fake.Service) {
	uuid, _ := s.UUID()
	primary, _ := s.IsPrimary()

	var includes string
	if included, err := s.Includes(); err == nil && len(included) > 0 {
		ids := make([]string, 0, len(included))
		for _, inc := range included {
			ids = append(ids, inc.ID())
		}
		includes = t.kv("includes", strings.Join(ids, ","))
	}

	t.line(2, "Service", s.ID(), t.uuid(uuid), t.flag(primary, "primary"), includes)
	for _, c := range s.Characteristics() {
		renderCharacteristic(t, c)
	}
}

func renderCharacteristic(t *treeWriter, c *fake.Characteristic) {
	uuid, _ := c.UUID()
	flags, _ := c.Flags()
	value, _ := c.Value()
	notifying, _ := c.IsNotifying()

	var flagsAttr string
	if len(flags) > 0 {
		flagsAttr = t.kv("flags", strings.Join(flags, ","))
	}

	t.line(3, "Characteristic", c.ID(),
		t.uuid(uuid),
		flagsAttr,
		t.kv("value", hexOrDash(value)),
		t.flag(notifying, "notifying"),
	)
	for _, d := range c.Descriptors() {
		duuid, _ := d.UUID()
		dvalue, _ := d.Value()
		t.line(4, "Descriptor", d.ID(), t.uuid(duuid), t.kv("value", hexOrDash(dvalue)))
	}
}

func bracket(s string) string {
	if s == "" {
		return ""
	}
	return "[" + s + "]"
}

func quote(s string) string {
	if s == "" {
		return ""
	}
	return fmt.Sprintf("%q", s)
}

func hexOrDash(b []byte) string {
	if len(b) == 0 {
		return "-"
	}
	return hex.EncodeToString(b)
}

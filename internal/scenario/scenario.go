// Package scenario applies named management-API operations to a fake topology.
//
// Each operation maps one-to-one onto a call of the fake core, so a scenario
// reads like the sequence of requests a Bluetooth facade would issue.
package scenario

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/srg/blefake/pkg/fake"
)

// Supported operations
const (
	OpPower             = "power"
	OpDiscoverable      = "discoverable"
	OpPairable          = "pairable"
	OpStartDiscovery    = "start-discovery"
	OpStopDiscovery     = "stop-discovery"
	OpPair              = "pair"
	OpCancelPairing     = "cancel-pairing"
	OpConnect           = "connect"
	OpDisconnect        = "disconnect"
	OpConnectProfile    = "connect-profile"
	OpDisconnectProfile = "disconnect-profile"
	OpTrust             = "trust"
	OpBlock             = "block"
	OpSetModalias       = "set-modalias"
	OpWrite             = "write"
	OpWriteDescriptor   = "write-descriptor"
	OpStartNotify       = "start-notify"
	OpStopNotify        = "stop-notify"
)

var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrUnexpectedResult = errors.New("unexpected step result")
)

// Step is a single operation addressed by identifiers. An empty Adapter
// selects the manager's default adapter.
type Step struct {
	Op             string `yaml:"op" json:"op"`
	Adapter        string `yaml:"adapter,omitempty" json:"adapter,omitempty"`
	Device         string `yaml:"device,omitempty" json:"device,omitempty"`
	Service        string `yaml:"service,omitempty" json:"service,omitempty"`
	Characteristic string `yaml:"characteristic,omitempty" json:"characteristic,omitempty"`
	Descriptor     string `yaml:"descriptor,omitempty" json:"descriptor,omitempty"`
	Enabled        *bool  `yaml:"enabled,omitempty" json:"enabled,omitempty"`
	Value          []byte `yaml:"value,omitempty" json:"value,omitempty"`
	Modalias       string `yaml:"modalias,omitempty" json:"modalias,omitempty"`
	UUID           string `yaml:"uuid,omitempty" json:"uuid,omitempty"`
	ExpectError    string `yaml:"expect_error,omitempty" json:"expect_error,omitempty"`
}

// Runner executes steps against a manager
type Runner struct {
	manager *fake.Manager
	logger  *logrus.Logger
}

// NewRunner creates a runner. A nil logger disables logging.
func NewRunner(manager *fake.Manager, logger *logrus.Logger) *Runner {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &Runner{manager: manager, logger: logger}
}

// Run applies steps in order, stopping at the first step whose outcome does
// not match its expectation or when ctx is done.
func (r *Runner) Run(ctx context.Context, steps []Step) error {
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := r.Apply(step)
		if err := r.check(step, err); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, step.Op, err)
		}

		r.logger.WithFields(logrus.Fields{
			"step":   i,
			"op":     step.Op,
			"device": step.Device,
		}).Debug("Scenario step applied")
	}
	return nil
}

func (r *Runner) check(step Step, err error) error {
	if step.ExpectError == "" {
		return err
	}
	if err == nil {
		return fmt.Errorf("%w: expected %s error, got success", ErrUnexpectedResult, step.ExpectError)
	}
	if !MatchesKind(err, step.ExpectError) {
		return fmt.Errorf("%w: expected %s error, got %s: %v", ErrUnexpectedResult, step.ExpectError, Kind(err), err)
	}
	return nil
}

// Apply executes a single step
func (r *Runner) Apply(step Step) error {
	switch step.Op {
	case OpPower, OpDiscoverable, OpPairable, OpStartDiscovery, OpStopDiscovery:
		a, err := r.adapter(step)
		if err != nil {
			return err
		}
		return applyAdapter(a, step)

	case OpPair, OpCancelPairing, OpConnect, OpDisconnect, OpConnectProfile, OpDisconnectProfile,
		OpTrust, OpBlock, OpSetModalias:
		d, err := r.device(step)
		if err != nil {
			return err
		}
		return applyDevice(d, step)

	case OpWrite, OpStartNotify, OpStopNotify:
		c, err := r.characteristic(step)
		if err != nil {
			return err
		}
		return applyCharacteristic(c, step)

	case OpWriteDescriptor:
		c, err := r.characteristic(step)
		if err != nil {
			return err
		}
		desc, err := c.Descriptor(step.Descriptor)
		if err != nil {
			return err
		}
		return desc.WriteValue(step.Value)

	default:
		return fmt.Errorf("%w: %q", ErrUnknownOperation, step.Op)
	}
}

func applyAdapter(a *fake.Adapter, step Step) error {
	switch step.Op {
	case OpPower:
		return a.SetPowered(step.enabled())
	case OpDiscoverable:
		return a.SetDiscoverable(step.enabled())
	case OpPairable:
		return a.SetPairable(step.enabled())
	case OpStartDiscovery:
		return a.StartDiscovery()
	default:
		return a.StopDiscovery()
	}
}

func applyDevice(d *fake.Device, step Step) error {
	switch step.Op {
	case OpPair:
		return d.Pair()
	case OpCancelPairing:
		return d.CancelPairing()
	case OpConnect:
		return d.Connect()
	case OpDisconnect:
		return d.Disconnect()
	case OpConnectProfile:
		return d.ConnectProfile(step.UUID)
	case OpDisconnectProfile:
		return d.DisconnectProfile(step.UUID)
	case OpTrust:
		return d.SetTrusted(step.enabled())
	case OpBlock:
		return d.SetBlocked(step.enabled())
	default:
		return d.SetModalias(step.Modalias)
	}
}

func applyCharacteristic(c *fake.Characteristic, step Step) error {
	switch step.Op {
	case OpWrite:
		return c.WriteValue(step.Value)
	case OpStartNotify:
		return c.StartNotify()
	default:
		return c.StopNotify()
	}
}

// enabled defaults to true when the step does not say otherwise
func (s Step) enabled() bool {
	return s.Enabled == nil || *s.Enabled
}

func (r *Runner) adapter(step Step) (*fake.Adapter, error) {
	if step.Adapter == "" {
		return r.manager.DefaultAdapter()
	}
	return r.manager.Adapter(step.Adapter)
}

func (r *Runner) device(step Step) (*fake.Device, error) {
	a, err := r.adapter(step)
	if err != nil {
		return nil, err
	}
	return a.Device(step.Device)
}

func (r *Runner) characteristic(step Step) (*fake.Characteristic, error) {
	d, err := r.device(step)
	if err != nil {
		return nil, err
	}
	s, err := d.Service(step.Service)
	if err != nil {
		return nil, err
	}
	return s.Characteristic(step.Characteristic)
}

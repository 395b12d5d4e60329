package main

import (
	"errors"
	"fmt"

	"github.com/srg/blefake/internal/scenario"
	"github.com/srg/blefake/pkg/fake"
)

// FormatUserError turns core and scenario errors into a single-line message
// with a hint where one helps.
func FormatUserError(err error) string {
	var (
		notFound *fake.NotFoundError
		modalias *fake.ModaliasError
		conn     *fake.ConnectionError
	)

	switch {
	case errors.Is(err, scenario.ErrUnexpectedResult):
		return err.Error()
	case errors.As(err, &notFound):
		return fmt.Sprintf("%s (check the ids in the fixture; 'blefake show' lists them)", err)
	case errors.As(err, &modalias):
		return fmt.Sprintf("%s (expected <source>:vXXXXpXXXXdXXXX)", err)
	case errors.As(err, &conn):
		switch conn.State {
		case fake.AlreadyConnected:
			return fmt.Sprintf("%s (disconnect first)", err)
		case fake.NotConnectable:
			return fmt.Sprintf("%s (set 'connectable: true' on the device)", err)
		case fake.NotConnected:
			return fmt.Sprintf("%s (connect first)", err)
		}
		return err.Error()
	case errors.Is(err, fake.ErrDiscoveryUnavailable):
		return fmt.Sprintf("%s (the adapter must be powered and allow discovery)", err)
	case errors.Is(err, scenario.ErrUnknownOperation):
		return fmt.Sprintf("%s (run 'blefake run --help' for the list of operations)", err)
	default:
		return err.Error()
	}
}

package schemeregistry

import (
	"errors"
	"fmt"
)

var errNoRegistry = errors.New("no scheme registry configured")

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("scheme registry returned status %d", e.code)
}

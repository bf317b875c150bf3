package dfatoolkit

import (
	"errors"
	"fmt"

	errorutil "github.com/projectdiscovery/utils/errors"
)

// ErrAlreadyCopy is returned by Partition.Copy when called on a partition
// that is already in copy (snapshot) mode. It signals a programmer error:
// callers own the borrow discipline between a base partition and its
// snapshot and must not nest copies.
var ErrAlreadyCopy = errorutil.NewWithTag("dfatoolkit", "state partition is already a copy")

// InvalidDfaError reports that a DFA failed Validate().
type InvalidDfaError struct {
	Reason string
}

func (e *InvalidDfaError) Error() string {
	return fmt.Sprintf("invalid dfa: %s", e.Reason)
}

func newInvalidDfaError(reason string) error {
	return &InvalidDfaError{Reason: reason}
}

// IsInvalidDfa reports whether err is (or wraps) an InvalidDfaError.
func IsInvalidDfa(err error) bool {
	var target *InvalidDfaError
	return errors.As(err, &target)
}

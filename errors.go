package hammingindex

import (
	"errors"
	"fmt"

	"github.com/binaryindex/hammingindex/internal/keytable"
)

// ErrBadAlignment indicates a construction-time item length that is not
// a positive multiple of 8 bytes, required for 64-bit-lane popcount.
type ErrBadAlignment struct {
	ItemBytes int
}

func (e *ErrBadAlignment) Error() string {
	return fmt.Sprintf("hammingindex: item length %d is not a positive multiple of 8 bytes", e.ItemBytes)
}

// ErrPopcountUnsupported indicates the hardware and software popcount
// backends disagreed during the construction-time self-test.
type ErrPopcountUnsupported struct{}

func (e *ErrPopcountUnsupported) Error() string {
	return "hammingindex: hardware and software popcount backends disagree"
}

// ErrBadParameter indicates a zero or otherwise out-of-range
// construction parameter, or a call argument of the wrong length (an
// item or query whose length differs from the index's item length, or
// an AddMany batch whose keys and items differ in count).
type ErrBadParameter struct {
	Name  string
	Value any
}

func (e *ErrBadParameter) Error() string {
	return fmt.Sprintf("hammingindex: parameter %q has invalid value %v", e.Name, e.Value)
}

// ErrDuplicateKey indicates AddItem was called with a key already
// present in the index.
//
// The underlying internal error can be accessed via errors.Unwrap.
type ErrDuplicateKey struct {
	Key   uint32
	cause error
}

func (e *ErrDuplicateKey) Error() string {
	return fmt.Sprintf("hammingindex: key %d already present", e.Key)
}

func (e *ErrDuplicateKey) Unwrap() error { return e.cause }

// ErrBadRange indicates a query radius outside [0, 1].
type ErrBadRange struct {
	Range float32
}

func (e *ErrBadRange) Error() string {
	return fmt.Sprintf("hammingindex: range %v is outside [0, 1]", e.Range)
}

// translateKeyTableError re-homes an internal keytable error at the
// MultiIndex boundary.
func translateKeyTableError(err error) error {
	if err == nil {
		return nil
	}
	var dup *keytable.DuplicateKeyError
	if errors.As(err, &dup) {
		return &ErrDuplicateKey{Key: dup.Key, cause: err}
	}
	return err
}

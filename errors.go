package rytm

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrName          = errors.Errorf("name must be 1 to %d ASCII characters", MaxNameLength)
	ErrReadOnly      = errors.New("parameter is read only")
	ErrNotLockable   = errors.New("parameter can not be locked")
	ErrFXLockTrack   = errors.New("FX parameters can only be locked on the FX track")
	ErrSoundLockFX   = errors.New("sound parameters can not be locked on the FX track")
	ErrLockValue     = errors.New("lock value must be a whole number")
	ErrUnknownObject = errors.New("unknown object type")
)

// RangeError reports a value outside the range a parameter accepts.
type RangeError struct {
	Param    string
	Value    float64
	Min, Max float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %v is out of range [%v, %v]", e.Param, e.Value, e.Min, e.Max)
}

// VariantError reports a name that is not a variant of an enumeration.
type VariantError struct {
	Enum  string
	Value string
}

func (e *VariantError) Error() string {
	return fmt.Sprintf("%q is not a valid %s", e.Value, e.Enum)
}

// IndexError reports an object or slot index outside its pool.
type IndexError struct {
	What  string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d is out of range [0, %d]", e.What, e.Index, e.Len-1)
}

func checkIndex(what string, index, length int) error {
	if index < 0 || index >= length {
		return &IndexError{What: what, Index: index, Len: length}
	}
	return nil
}

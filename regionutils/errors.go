package regionutils

import (
	"fmt"

	"github.com/pkg/errors"
)

// PowerOfTwoError is the error returned from CheckPow2 or other methods if the number being tested is not a power of two
var PowerOfTwoError error = errors.New("number must be a power of two")

// UnsupportedDeviceError is returned when a part number does not match the prefix of any known device family
type UnsupportedDeviceError struct {
	PartNum string
	// Reason is optional and narrows down which part of the device description is missing
	Reason string
}

func (e *UnsupportedDeviceError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unsupported part number %q: %s", e.PartNum, e.Reason)
	}
	return fmt.Sprintf("unsupported part number %q", e.PartNum)
}

// UnsupportedCategoryError is returned when a resource category has no mapping for a device
type UnsupportedCategoryError struct {
	Category string
	PartNum  string
}

func (e *UnsupportedCategoryError) Error() string {
	if e.PartNum == "" {
		return fmt.Sprintf("unknown port category %q", e.Category)
	}
	return fmt.Sprintf("unknown port category %q for %s", e.Category, e.PartNum)
}

// UnsupportedPortError is returned from fixed port-to-region lookups when the port index is out of
// range for the category, or when the device/category combination has no fixed mapping at all.
// When the device itself is unknown, the error unwraps to an UnsupportedDeviceError.
type UnsupportedPortError struct {
	PartNum  string
	Category string
	Port     int

	cause error
}

// NewUnsupportedPortError builds an UnsupportedPortError that unwraps to cause, which may be nil
func NewUnsupportedPortError(partNum, category string, port int, cause error) *UnsupportedPortError {
	return &UnsupportedPortError{
		PartNum:  partNum,
		Category: category,
		Port:     port,
		cause:    cause,
	}
}

func (e *UnsupportedPortError) Error() string {
	return fmt.Sprintf("unknown port category %s, port %d for %s", e.Category, e.Port, e.PartNum)
}

func (e *UnsupportedPortError) Unwrap() error {
	return e.cause
}

// CapacityExhaustedError is returned when no region has enough remaining capacity to satisfy
// a single port of the requested category. Remaining is the total capacity left across every
// region at the time of the failed request.
type CapacityExhaustedError struct {
	Category  string
	PartNum   string
	Cost      int
	Remaining int
}

func (e *CapacityExhaustedError) Error() string {
	return fmt.Sprintf("running out of available clock regions with NOC for %s memory port assignments on %s: "+
		"each port needs %d units, %d units remain across all regions", e.Category, e.PartNum, e.Cost, e.Remaining)
}

// UnsupportedWidthError is returned when a bit width, after rounding up to a power of two, has no
// entry in a static area table
type UnsupportedWidthError struct {
	Width        int
	RoundedWidth int
}

func (e *UnsupportedWidthError) Error() string {
	return fmt.Sprintf("no area entry for data channel width %d (rounded to %d)", e.Width, e.RoundedWidth)
}

package regionutils

import (
	"math/bits"

	cerrors "github.com/cockroachdb/errors"
)

type Number interface {
	~int | ~uint
}

func CheckPow2[T Number](number T, name string) error {
	if number <= 0 || number&(number-1) != 0 {
		return cerrors.Wrapf(PowerOfTwoError, "%s is %d", name, number)
	}
	return nil
}

// MaxPowerOfTwo is the largest power of two representable as an int
const MaxPowerOfTwo = 1 << (bits.UintSize - 2)

// NextPowerOfTwo rounds value up to the nearest power of two. Zero rounds to 1, not 0, so
// that the result is always a valid table key. Values above MaxPowerOfTwo saturate to it.
func NextPowerOfTwo(value int) int {
	if value <= 1 {
		return 1
	}
	if value > MaxPowerOfTwo {
		return MaxPowerOfTwo
	}
	return 1 << bits.Len(uint(value-1))
}

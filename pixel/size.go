package pixel

import (
	"errors"
	"fmt"
	"math"
)

// MaxSlotPixels is the largest pixel count accepted by [SlotCount].
const MaxSlotPixels = (math.MaxInt - 2) / 4

// ErrNegativeCount is returned for pixel counts below zero.
var ErrNegativeCount = errors.New("pixel: negative pixel count")

// OverflowError is returned when the slot arithmetic for a pixel count does not fit in an int.
//
// N is the requested pixel count. For images N is the width and Rows the height.
type OverflowError struct {
	N    int
	Rows int
}

func (err *OverflowError) Error() string {
	if err.Rows > 0 {
		return fmt.Sprintf("pixel: %dx%d RGBW pixels overflow the slot count (max %d)", err.N, err.Rows, MaxSlotPixels)
	}
	return fmt.Sprintf("pixel: %d RGBW pixels overflow the slot count (max %d)", err.N, MaxSlotPixels)
}

// SlotCount returns the number of 3-byte slots needed to hold n RGBW pixels.
//
// The result is the smallest slots for which slots*3 >= n*4. The last slot may extend past the
// final pixel; those bytes are sent to the strip as well.
func SlotCount(n int) (int, error) {
	switch {
	case n < 0:
		return 0, ErrNegativeCount
	case n > MaxSlotPixels:
		return 0, &OverflowError{N: n}
	}
	return (n*4 + 2) / 3, nil
}

// SlotBytes returns the size in bytes of a slot buffer holding n RGBW pixels.
func SlotBytes(n int) (int, error) {
	slots, err := SlotCount(n)
	if err != nil {
		return 0, err
	}
	return slots * 3, nil
}

package pixel

import (
	"errors"
	"math"
	"strconv"
	"testing"
)

func TestSlotCount(t *testing.T) {
	testCases := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 2},
		{2, 3},
		{3, 4},
		{4, 6},
		{100, 134},
		{144, 192},
		{255, 340},
		{300, 400},
		{65535, 87380},
	}
	for _, test := range testCases {
		t.Run(strconv.Itoa(test.n), func(it *testing.T) {
			v, err := SlotCount(test.n)
			if err != nil {
				it.Fatal(err)
			}
			if v != test.want {
				it.Errorf("expected %d slots, got %d", test.want, v)
			}
		})
	}
}

func TestSlotCountMinimal(t *testing.T) {
	for n := 0; n < 4096; n++ {
		slots, err := SlotCount(n)
		if err != nil {
			t.Fatal(err)
		}
		if slots*3 < n*4 {
			t.Fatalf("%d slots can't hold %d pixels", slots, n)
		}
		if n > 0 && (slots-1)*3 >= n*4 {
			t.Fatalf("%d slots for %d pixels is not minimal", slots, n)
		}
	}
}

func TestSlotCountLimits(t *testing.T) {
	if _, err := SlotCount(-1); !errors.Is(err, ErrNegativeCount) {
		t.Errorf("expected ErrNegativeCount, got %v", err)
	}

	slots, err := SlotCount(MaxSlotPixels)
	if err != nil {
		t.Fatalf("expected %d pixels to be accepted, got %v", MaxSlotPixels, err)
	}
	if want := (MaxSlotPixels*4 + 2) / 3; slots != want {
		t.Errorf("expected %d slots, got %d", want, slots)
	}
	if slots*3 < MaxSlotPixels*4 {
		t.Errorf("%d slots can't hold %d pixels", slots, MaxSlotPixels)
	}

	for _, n := range []int{MaxSlotPixels + 1, math.MaxInt / 2, math.MaxInt} {
		var overflow *OverflowError
		v, err := SlotCount(n)
		if !errors.As(err, &overflow) {
			t.Fatalf("expected OverflowError for %d, got %d, %v", n, v, err)
		}
		if overflow.N != n || overflow.Rows != 0 {
			t.Errorf("expected OverflowError for %d, got %d (%d rows)", n, overflow.N, overflow.Rows)
		}
		if v != 0 {
			t.Errorf("expected no slot count on overflow, got %d", v)
		}
	}
}

func TestSlotBytes(t *testing.T) {
	v, err := SlotBytes(3)
	if err != nil {
		t.Fatal(err)
	}
	if v != 12 {
		t.Errorf("expected 12 bytes, got %d", v)
	}
	if _, err = SlotBytes(-3); err == nil {
		t.Error("expected an error for a negative count")
	}
}

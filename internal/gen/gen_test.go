package gen

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/emsim/emsim/internal/models"
)

func TestSource_IntBetween(t *testing.T) {
	src := NewSource(1)

	for i := 0; i < 500; i++ {
		got := src.intBetween(3, 7)
		if got < 3 || got > 7 {
			t.Fatalf("intBetween(3, 7) = %d", got)
		}
	}

	if got := src.intBetween(5, 5); got != 5 {
		t.Errorf("intBetween(5, 5) = %d, want 5", got)
	}
	if got := src.intBetween(9, 2); got != 9 {
		t.Errorf("intBetween(9, 2) = %d, want the low bound back", got)
	}
}

func TestSource_Coordinates(t *testing.T) {
	src := NewSource(2)
	for i := 0; i < 200; i++ {
		c := src.coordinates()
		if !models.RichmondRegion.Contains(c) {
			t.Fatalf("coordinates() = %v, outside region", c)
		}
	}

	custom := models.Region{LatMin: 10, LatMax: 11, LngMin: 20, LngMax: 21}
	src = NewSource(2).WithRegion(custom)
	for i := 0; i < 50; i++ {
		if c := src.coordinates(); !custom.Contains(c) {
			t.Fatalf("coordinates() = %v, outside overridden region", c)
		}
	}
}

func TestRound6_NegativeValues(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-77.3500001, -77.35},
		{-77.6499999, -77.65},
		{-77.1234564, -77.123456},
		{37.4500001, 37.45},
	}
	for _, tt := range tests {
		if got := round6(tt.in); got != tt.want {
			t.Errorf("round6(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSource_CoordinatesStayInRegion(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		src := NewSource(seed)
		for i := 0; i < 5000; i++ {
			c := src.coordinates()
			if !models.RichmondRegion.Contains(c) {
				t.Fatalf("seed %d draw %d: coordinates() = %v, outside region", seed, i, c)
			}
		}
	}
}

func TestSource_SeedDeterminism(t *testing.T) {
	a, b := NewSource(42), NewSource(42)

	for i := 0; i < 20; i++ {
		if ai, bi := a.NewID("INC"), b.NewID("INC"); ai != bi {
			t.Fatalf("draw %d: IDs diverged: %s vs %s", i, ai, bi)
		}
		if av, bv := a.intBetween(0, 1000), b.intBetween(0, 1000); av != bv {
			t.Fatalf("draw %d: values diverged: %d vs %d", i, av, bv)
		}
	}
}

func TestSource_Phone(t *testing.T) {
	src := NewSource(3)
	for i := 0; i < 50; i++ {
		phone := src.phone()
		if !strings.HasPrefix(phone, "555-") || len(phone) != 12 {
			t.Fatalf("phone() = %q, want 555-NNN-NNNN", phone)
		}
	}
}

func TestValidationError(t *testing.T) {
	inner := fmt.Errorf("age must be between 18 and 70")
	err := &ValidationError{Kind: "crew member", Err: inner}

	if !strings.Contains(err.Error(), "crew member") {
		t.Errorf("Error() = %q, want the entity kind named", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("errors.Is failed to unwrap the inner error")
	}
}

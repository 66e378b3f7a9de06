package playvis

import (
	"errors"
	"math"
	"testing"
)

func TestColorDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "identical", a: "#003594", b: "#003594", want: 0},
		{name: "black and white", a: "#000000", b: "#FFFFFF", want: 765},
		{name: "short form", a: "#000", b: "#fff", want: 765},
		{name: "missing hash", a: "000000", b: "#ffffff", want: 765},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ColorDistance(tt.a, tt.b)
			if err != nil {
				t.Fatalf("ColorDistance: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-6 {
				t.Fatalf("ColorDistance(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestColorDistanceSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"#E31837", "#D50A0A"},
		{"#00338D", "#FFB612"},
		{"#97233F", "#4F2683"},
	}
	for _, p := range pairs {
		ab, err := ColorDistance(p[0], p[1])
		if err != nil {
			t.Fatal(err)
		}
		ba, err := ColorDistance(p[1], p[0])
		if err != nil {
			t.Fatal(err)
		}
		if ab != ba {
			t.Fatalf("distance not symmetric for %v: %v vs %v", p, ab, ba)
		}
		if ab <= 0 {
			t.Fatalf("distance for %v = %v, want positive", p, ab)
		}
	}
}

func TestColorDistanceRejectsBadHex(t *testing.T) {
	if _, err := ColorDistance("#12", "#000000"); err == nil {
		t.Fatal("expected error for short hex")
	}
	if _, err := ColorDistance("#GGGGGG", "#000000"); err == nil {
		t.Fatal("expected error for non-hex digits")
	}
}

func TestColorPairsSwapsSimilarPrimaries(t *testing.T) {
	// LA and DAL share a primary.
	pairs, distance, err := colorPairs("LA", "DAL")
	if err != nil {
		t.Fatalf("colorPairs: %v", err)
	}
	if distance != 0 {
		t.Fatalf("distance = %v, want 0 for identical primaries", distance)
	}
	if got := pairs["LA"]; got != (ColorPair{"#003594", "#FFA300"}) {
		t.Fatalf("LA pair = %v, want natural order", got)
	}
	if got := pairs["DAL"]; got != (ColorPair{"#041E42", "#003594"}) {
		t.Fatalf("DAL pair = %v, want reversed", got)
	}
	if got := pairs["football"]; got != (ColorPair{"#CBB67C", "#663831"}) {
		t.Fatalf("football pair = %v", got)
	}
}

func TestColorPairsKeepsDistinctPrimaries(t *testing.T) {
	pairs, err := ColorPairs("BUF", "PIT")
	if err != nil {
		t.Fatalf("ColorPairs: %v", err)
	}
	if got := pairs["PIT"]; got != (ColorPair{"#FFB612", "#101820"}) {
		t.Fatalf("PIT pair = %v, want natural order", got)
	}
	if got := pairs["BUF"]; got != (ColorPair{"#00338D", "#C60C30"}) {
		t.Fatalf("BUF pair = %v, want natural order", got)
	}
	if len(pairs) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(pairs))
	}
}

func TestColorPairsUnknownTeam(t *testing.T) {
	_, err := ColorPairs("KC", "XYZ")
	if !errors.Is(err, ErrUnknownTeam) {
		t.Fatalf("expected ErrUnknownTeam, got %v", err)
	}
}

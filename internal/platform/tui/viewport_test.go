package tui

import (
	"testing"

	"github.com/vovakirdan/bamboo-breakout/internal/core"
)

func testViewport() Viewport {
	return NewViewport(core.NewRect(0, 0, 1000, 800), 1, 1, 100, 40)
}

func TestViewportToCell(t *testing.T) {
	v := testViewport()

	tests := []struct {
		name         string
		p            core.Vec
		wantX, wantY int
	}{
		{"bottom left", core.V(0, 0), 1, 40},
		{"top right", core.V(999.9, 799.9), 100, 1},
		{"center", core.V(500, 400), 51, 20},
		{"clamped above", core.V(-50, 900), 1, 1},
		{"clamped below", core.V(2000, -10), 100, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := v.ToCell(tt.p)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("ToCell(%v) = (%d, %d), expected (%d, %d)", tt.p, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestViewportToArena(t *testing.T) {
	v := testViewport()

	tests := []struct {
		name string
		x, y int
		want core.Vec
	}{
		{"bottom left cell", 1, 40, core.V(5, 10)},
		{"top right cell", 100, 1, core.V(995, 790)},
		{"outside grid", 0, 0, core.V(5, 790)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.ToArena(tt.x, tt.y); got != tt.want {
				t.Errorf("ToArena(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := testViewport()
	for y := v.Top; y < v.Top+v.Rows; y++ {
		for x := v.Left; x < v.Left+v.Cols; x++ {
			gx, gy := v.ToCell(v.ToArena(x, y))
			if gx != x || gy != y {
				t.Fatalf("ToCell(ToArena(%d, %d)) = (%d, %d)", x, y, gx, gy)
			}
		}
	}
}

func TestViewportSpan(t *testing.T) {
	v := testViewport()

	if got := v.Span(100); got != 5 {
		t.Errorf("Span(100) = %d, expected 5", got)
	}
	if got := v.Span(1); got != 1 {
		t.Errorf("Span(1) = %d, expected 1", got)
	}
	if got := v.Width(250); got != 25 {
		t.Errorf("Width(250) = %d, expected 25", got)
	}
	if got := v.CellHeight(); got != 20 {
		t.Errorf("CellHeight() = %v, expected 20", got)
	}
}

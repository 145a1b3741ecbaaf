package layout

import "testing"

// A4 in millimetres with 20mm margins, as the contract renderer uses.
func testCursor() Cursor {
	return NewCursor(210, 297, 20, 20)
}

func TestNewCursor(t *testing.T) {
	c := testCursor()
	if c.Y != 20 {
		t.Errorf("Y = %v, want 20", c.Y)
	}
	if c.PageBottom != 277 {
		t.Errorf("PageBottom = %v, want 277", c.PageBottom)
	}
	if c.Remaining() != 257 {
		t.Errorf("Remaining() = %v, want 257", c.Remaining())
	}
}

func TestCursorWillOverflow(t *testing.T) {
	tests := []struct {
		name     string
		startY   float64
		needed   float64
		expected bool
	}{
		{"fits comfortably", 20, 100, false},
		{"fits exactly", 20, 257, false},
		{"overflows by a hair", 20, 257.1, true},
		{"near bottom", 270, 10, true},
		{"zero height never overflows", 277, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testCursor()
			c.Y = tt.startY
			if got := c.WillOverflow(tt.needed); got != tt.expected {
				t.Errorf("WillOverflow(%v) at Y=%v = %v, want %v",
					tt.needed, tt.startY, got, tt.expected)
			}
		})
	}
}

func TestCursorAdvance(t *testing.T) {
	tests := []struct {
		name      string
		startY    float64
		consumed  float64
		wantY     float64
		wantBreak bool
	}{
		{"simple move", 20, 50, 70, false},
		{"lands on bottom bound", 20, 257, 277, false},
		{"crosses bottom bound", 200, 100, 20, true},
		{"taller than a page", 20, 1000, 20, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testCursor()
			c.Y = tt.startY
			gotBreak := c.Advance(tt.consumed)
			if gotBreak != tt.wantBreak {
				t.Errorf("Advance(%v) pageBreak = %v, want %v", tt.consumed, gotBreak, tt.wantBreak)
			}
			if c.Y != tt.wantY {
				t.Errorf("Advance(%v) Y = %v, want %v", tt.consumed, c.Y, tt.wantY)
			}
		})
	}
}

// The cursor must stay within the page bounds after any sequence of
// advances, whatever the block heights.
func TestCursorInvariant(t *testing.T) {
	c := testCursor()
	heights := []float64{0, 12.5, 80, 80, 80, 80, 300, 5, 257, 1}

	for _, h := range heights {
		c.Advance(h)
		if c.Y < c.PageTop || c.Y > c.PageBottom {
			t.Fatalf("after Advance(%v): Y = %v outside [%v, %v]",
				h, c.Y, c.PageTop, c.PageBottom)
		}
	}
}

func TestCursorBreak(t *testing.T) {
	c := testCursor()
	c.Advance(123)
	c.Break()
	if c.Y != c.PageTop {
		t.Errorf("after Break: Y = %v, want %v", c.Y, c.PageTop)
	}
}

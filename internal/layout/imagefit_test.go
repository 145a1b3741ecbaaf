package layout

import (
	"math"
	"testing"
)

func TestFitImage(t *testing.T) {
	tests := []struct {
		name       string
		nativeW    float64
		nativeH    float64
		boxW       float64
		maxBoxH    float64
		wantWidth  float64
		wantHeight float64
	}{
		{"wide image fills width", 3000, 2000, 180, 200, 180, 120},
		{"tall image capped at height", 2000, 3000, 180, 120, 80, 120},
		{"square image in square box", 1000, 1000, 100, 100, 100, 100},
		{"exact fit", 300, 200, 150, 100, 150, 100},
		{"panorama capped by width only", 4000, 1000, 180, 120, 180, 45},
		{"unknown dimensions use 3:2 fallback", 0, 0, 180, 200, 180, 120},
		{"fallback capped at height", 0, 0, 180, 60, 90, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := FitImage(tt.nativeW, tt.nativeH, tt.boxW, tt.maxBoxH)
			if math.Abs(w-tt.wantWidth) > 1e-9 || math.Abs(h-tt.wantHeight) > 1e-9 {
				t.Errorf("FitImage(%v, %v, %v, %v) = (%v, %v), want (%v, %v)",
					tt.nativeW, tt.nativeH, tt.boxW, tt.maxBoxH, w, h, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

// Whatever the native dimensions, the result never exceeds the box and the
// aspect ratio is preserved.
func TestFitImageBounds(t *testing.T) {
	dims := []struct{ w, h float64 }{
		{1, 1}, {1, 10000}, {10000, 1}, {640, 480}, {480, 640}, {3024, 4032},
	}

	const boxW, maxBoxH = 186, 120
	for _, d := range dims {
		w, h := FitImage(d.w, d.h, boxW, maxBoxH)
		if w > boxW+1e-9 || h > maxBoxH+1e-9 {
			t.Errorf("FitImage(%v, %v): (%v, %v) exceeds box (%v, %v)", d.w, d.h, w, h, boxW, maxBoxH)
		}
		if w <= 0 || h <= 0 {
			t.Errorf("FitImage(%v, %v): non-positive result (%v, %v)", d.w, d.h, w, h)
		}
		gotAspect := w / h
		wantAspect := d.w / d.h
		if math.Abs(gotAspect-wantAspect) > 1e-9 {
			t.Errorf("FitImage(%v, %v): aspect %v, want %v", d.w, d.h, gotAspect, wantAspect)
		}
	}
}

package layout

// ---------------------------------------------------------------------------
// Image fitting
// ---------------------------------------------------------------------------

// DefaultAspect stands in for the width/height ratio of an image whose
// native dimensions could not be determined (failed decode, metadata
// timeout). 3:2 matches typical phone photos in landscape.
const DefaultAspect = 1.5

// FitImage computes display dimensions for an image inside a box: the
// image fills boxWidth, and when the resulting height would exceed
// maxBoxHeight both dimensions are rescaled so the height is exactly
// maxBoxHeight. Aspect ratio is preserved exactly; the result never
// exceeds the box on either axis and nothing is cropped.
func FitImage(nativeWidth, nativeHeight, boxWidth, maxBoxHeight float64) (width, height float64) {
	aspect := DefaultAspect
	if nativeWidth > 0 && nativeHeight > 0 {
		aspect = nativeWidth / nativeHeight
	}

	width = boxWidth
	height = boxWidth / aspect
	if height > maxBoxHeight {
		height = maxBoxHeight
		width = maxBoxHeight * aspect
	}
	return width, height
}

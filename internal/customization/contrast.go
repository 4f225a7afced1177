package customization

import "math"

// MinContrastRatio is the WCAG AA threshold for graphical objects.
const MinContrastRatio = 3.0

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

func linearize(c uint8) float64 {
	x := float64(c) / 255.0
	if x <= 0.03928 {
		return x / 12.92
	}
	return math.Pow((x+0.055)/1.055, 2.4)
}

// RelativeLuminance returns the WCAG relative luminance of c in [0, 1].
func RelativeLuminance(c RGB) float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

// ContrastRatio returns the WCAG contrast ratio between a and b, in [1, 21].
// The result does not depend on argument order.
func ContrastRatio(a, b RGB) float64 {
	l1 := RelativeLuminance(a)
	l2 := RelativeLuminance(b)
	lighter, darker := l1, l2
	if l2 > l1 {
		lighter, darker = l2, l1
	}
	return (lighter + 0.05) / (darker + 0.05)
}

package styles

import (
	"bytes"
	"encoding/xml"
)

const (
	fontHeightRatio = 0.45
	fontCharWidth   = 0.55
	fontSizeMin     = 8.0
	fontSizeMax     = 16.0
	sublabelRatio   = 0.72
)

// FontSize picks a label size that fits the rectangle: capped by height,
// shrunk until the text fits the width.
func FontSize(r Rect) float64 {
	n := max(1, len(r.Label))
	byHeight := r.H * fontHeightRatio
	byWidth := (r.W * 0.9) / (float64(n) * fontCharWidth)
	return max(fontSizeMin, min(fontSizeMax, min(byHeight, byWidth)))
}

// SublabelSize returns the size for the direction/flags line under a label.
func SublabelSize(r Rect) float64 {
	return max(fontSizeMin*0.85, FontSize(r)*sublabelRatio)
}

// TruncateSublabel shortens the sublabel so it fits the rectangle width.
func TruncateSublabel(r Rect) string {
	s := r.Sublabel
	charWidth := SublabelSize(r) * fontCharWidth
	maxChars := int((r.W * 0.92) / charWidth)
	if maxChars < 3 {
		maxChars = 3
	}
	if len(s) <= maxChars {
		return s
	}
	return s[:maxChars-2] + ".."
}

// EscapeXML escapes text for embedding in SVG.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

package layout

// All geometry is fixed ISO A4 portrait, specified in millimetres and
// converted to PDF points.

const ptPerMM = 72.0 / 25.4

// MM converts millimetres to points.
func MM(v float64) float64 { return v * ptPerMM }

// Page geometry in millimetres.
const (
	PageWidthMM  = 210.0
	PageHeightMM = 297.0
	MarginMM     = 15.0
)

// Derived page geometry in points.
var (
	PageWidth     = MM(PageWidthMM)
	PageHeight    = MM(PageHeightMM)
	Margin        = MM(MarginMM)
	ContentWidth  = PageWidth - 2*Margin
	ContentHeight = PageHeight - 2*Margin
)

// FitRect computes an aspect-preserving fit of a w x h source into a
// boxW x boxH box: the scaled size plus the offsets that center it.
func FitRect(w, h, boxW, boxH float64) (offsetX, offsetY, outW, outH float64) {
	if w <= 0 || h <= 0 || boxW <= 0 || boxH <= 0 {
		return 0, 0, 0, 0
	}
	scale := boxW / w
	if s := boxH / h; s < scale {
		scale = s
	}
	outW = w * scale
	outH = h * scale
	offsetX = (boxW - outW) / 2
	offsetY = (boxH - outH) / 2
	return offsetX, offsetY, outW, outH
}

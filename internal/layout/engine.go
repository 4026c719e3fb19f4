// Package layout draws the fixed-geometry payout-receipt form page.
package layout

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
	"github.com/signintech/gopdf"
	"go.uber.org/zap"

	"github.com/adamwal/payout-receipt/internal/receipt"
)

// FontFamily is the family name the assembler registers the TTF fonts
// under. The engine never loads fonts itself.
const FontFamily = "form"

// Form page style constants.
const (
	headerFontSize = 11.0
	titleFontSize  = 16.0
	bodyFontSize   = 10.0

	headerText = "ZBÓR CHRZEŚCIJAN BAPTYSTÓW «BOŻA ŁASKA» W WARSZAWIE"
	titleText  = "Dowód wypłaty"

	// Millimetre geometry of the row table and signature block.
	headerYMM      = 20.0
	titleYMM       = 30.0
	tableTopMM     = 45.0
	rowHeightMM    = 8.0
	labelWidthMM   = 45.0
	cellPadMM      = 2.0
	wrapLines      = 3
	signatureGapMM = 10.0
	sigBoxWMM      = 70.0
	sigBoxHMM      = 20.0
	sigPadMM       = 2.0
)

var labelFill = [3]uint8{235, 235, 235}

// Engine renders the primary form page onto an open page of a gopdf
// document. It draws a fixed row inventory top-down and never reflows or
// breaks pages; overflowing wrapped text is truncated, not paginated.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates a new layout engine
func NewEngine(logger *zap.Logger) *Engine {
	return &Engine{logger: logger}
}

type row struct {
	label string
	value string
	lines int
}

// RenderForm draws the receipt body and signature block on the current page.
func (e *Engine) RenderForm(pdf *gopdf.GoPdf, form receipt.FormData) error {
	if err := e.drawCentered(pdf, headerText, headerFontSize, "", MM(headerYMM)); err != nil {
		return err
	}
	if err := e.drawCentered(pdf, titleText, titleFontSize, "B", MM(titleYMM)); err != nil {
		return err
	}

	amountValue := form.Amount
	if form.Currency != "" {
		amountValue = form.Amount + " " + form.Currency
	}

	rows := []row{
		{label: "Data", value: form.Date, lines: 1},
		{label: "Kwota", value: amountValue, lines: 1},
		{label: "Wydano (imię i nazwisko)", value: form.IssuedTo, lines: 1},
		{label: "Konto lub numer telefonu", value: form.AccountInfo, lines: 1},
		{label: "Nazwa działu", value: form.DepartmentName, lines: 1},
		{label: "Na podstawie", value: form.BasedOn, lines: wrapLines},
		{label: "Kwota słownie", value: form.AmountInWords, lines: wrapLines},
	}

	y := MM(tableTopMM)
	for _, r := range rows {
		var err error
		y, err = e.drawRow(pdf, r, y)
		if err != nil {
			return fmt.Errorf("failed to draw row %q: %w", r.label, err)
		}
	}

	return e.drawSignatureBlock(pdf, form.RecipientSignature, y+MM(signatureGapMM))
}

// drawCentered draws a horizontally centered line of text with its top at y.
func (e *Engine) drawCentered(pdf *gopdf.GoPdf, text string, size float64, style string, y float64) error {
	if err := pdf.SetFont(FontFamily, style, size); err != nil {
		return fmt.Errorf("failed to set font: %w", err)
	}
	w, err := pdf.MeasureTextWidth(text)
	if err != nil {
		return fmt.Errorf("failed to measure text: %w", err)
	}
	pdf.SetXY((PageWidth-w)/2, y)
	return pdf.Cell(nil, text)
}

// drawRow draws one label/value row and returns the y cursor below it.
// Multi-line rows reserve lines sub-rows and truncate overflowing text.
func (e *Engine) drawRow(pdf *gopdf.GoPdf, r row, y float64) (float64, error) {
	rowH := MM(rowHeightMM)
	labelW := MM(labelWidthMM)
	pad := MM(cellPadMM)
	valueX := Margin + labelW
	valueW := ContentWidth - labelW
	totalH := rowH * float64(r.lines)

	// Label cell, shaded.
	pdf.SetStrokeColor(0, 0, 0)
	pdf.SetLineWidth(0.6)
	pdf.SetFillColor(labelFill[0], labelFill[1], labelFill[2])
	pdf.RectFromUpperLeftWithStyle(Margin, y, labelW, totalH, "FD")
	// Value cell.
	pdf.RectFromUpperLeftWithStyle(valueX, y, valueW, totalH, "D")

	if err := pdf.SetFont(FontFamily, "B", bodyFontSize); err != nil {
		return y, err
	}
	pdf.SetXY(Margin+pad, y+pad)
	if err := pdf.Cell(nil, r.label); err != nil {
		return y, err
	}

	if err := pdf.SetFont(FontFamily, "", bodyFontSize); err != nil {
		return y, err
	}

	lines := []string{r.value}
	if r.lines > 1 && r.value != "" {
		wrapped, err := pdf.SplitTextWithWordWrap(r.value, valueW-2*pad)
		if err == nil {
			lines = wrapped
		}
	}
	if len(lines) > r.lines {
		lines = lines[:r.lines]
	}

	for i, line := range lines {
		if line == "" {
			continue
		}
		pdf.SetXY(valueX+pad, y+pad+float64(i)*rowH)
		if err := pdf.Cell(nil, line); err != nil {
			return y, err
		}
	}

	return y + totalH, nil
}

// drawSignatureBlock draws the cashier box (always empty, a print-and-sign
// affordance) and the recipient box with the captured signature, if any.
func (e *Engine) drawSignatureBlock(pdf *gopdf.GoPdf, signature []byte, y float64) error {
	boxW := MM(sigBoxWMM)
	boxH := MM(sigBoxHMM)
	rightX := Margin + MM(90)

	if err := pdf.SetFont(FontFamily, "", bodyFontSize); err != nil {
		return err
	}

	pdf.SetXY(Margin, y)
	if err := pdf.Cell(nil, "Podpis kasjera:"); err != nil {
		return err
	}
	pdf.SetXY(rightX, y)
	if err := pdf.Cell(nil, "Podpis odbiorcy:"); err != nil {
		return err
	}

	boxY := y + MM(6)
	pdf.SetStrokeColor(0, 0, 0)
	pdf.SetLineWidth(0.6)
	pdf.RectFromUpperLeftWithStyle(Margin, boxY, boxW, boxH, "D")
	pdf.RectFromUpperLeftWithStyle(rightX, boxY, boxW, boxH, "D")

	// Cashier name underline under the empty box.
	lineY := boxY + boxH + MM(8)
	pdf.Line(Margin, lineY, Margin+boxW, lineY)
	pdf.SetXY(Margin, lineY+MM(1))
	if err := pdf.Cell(nil, "Imię i nazwisko kasjera"); err != nil {
		return err
	}

	if len(signature) == 0 {
		return nil
	}
	return e.drawSignatureImage(pdf, signature, rightX, boxY, boxW, boxH)
}

// drawSignatureImage aspect-fits the signature inside the recipient box.
// A corrupt signature image is logged and the box stays empty.
func (e *Engine) drawSignatureImage(pdf *gopdf.GoPdf, signature []byte, x, y, boxW, boxH float64) error {
	img, err := imaging.Decode(bytes.NewReader(signature))
	if err != nil {
		e.logger.Warn("Failed to decode signature image, leaving box empty", zap.Error(err))
		return nil
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		e.logger.Warn("Failed to re-encode signature image", zap.Error(err))
		return nil
	}

	holder, err := gopdf.ImageHolderByBytes(buf.Bytes())
	if err != nil {
		e.logger.Warn("Failed to load signature image", zap.Error(err))
		return nil
	}

	pad := MM(sigPadMM)
	bounds := img.Bounds()
	dx, dy, w, h := FitRect(float64(bounds.Dx()), float64(bounds.Dy()), boxW-2*pad, boxH-2*pad)
	return pdf.ImageByHolder(holder, x+pad+dx, y+pad+dy, &gopdf.Rect{W: w, H: h})
}

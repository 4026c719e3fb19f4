// Package attach turns user-supplied attachment blobs into document pages.
package attach

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/disintegration/imaging"
	"github.com/phpdave11/gofpdi"
	"github.com/signintech/gopdf"
	"go.uber.org/zap"

	"github.com/adamwal/payout-receipt/internal/layout"
	"github.com/adamwal/payout-receipt/internal/receipt"
)

// SizeTolerancePt is the absolute tolerance when comparing a source PDF
// page size against the target page size. Pages within it are copied
// verbatim; pages outside it are transcluded scaled and centered.
const SizeTolerancePt = 1.0

// Normalizer fits raster images into pages and reconciles PDF attachment
// geometry against the target page size.
type Normalizer struct {
	logger *zap.Logger
}

// NewNormalizer creates a new attachment normalizer
func NewNormalizer(logger *zap.Logger) *Normalizer {
	return &Normalizer{logger: logger}
}

// AppendImagePage adds exactly one page carrying the image aspect-fitted
// and centered in the content box. A blob that does not decode still gets
// its page, with an explanatory line instead of the image.
func (n *Normalizer) AppendImagePage(pdf *gopdf.GoPdf, att receipt.Attachment) error {
	pdf.AddPage()

	img, err := imaging.Decode(bytes.NewReader(att.Data), imaging.AutoOrientation(true))
	if err != nil {
		n.logger.Warn("Failed to decode image attachment",
			zap.String("file", att.FileName),
			zap.Error(err))
		return n.drawErrorLine(pdf, att.FileName)
	}

	// Re-encode from the decoded (orientation-corrected) pixels. JPEG
	// sources stay JPEG; everything else becomes PNG so alpha survives.
	var buf bytes.Buffer
	format := imaging.PNG
	var opts []imaging.EncodeOption
	if att.Kind() == receipt.KindImage && isJPEG(att.Data) {
		format = imaging.JPEG
		opts = append(opts, imaging.JPEGQuality(90))
	}
	if err := imaging.Encode(&buf, img, format, opts...); err != nil {
		n.logger.Warn("Failed to re-encode image attachment",
			zap.String("file", att.FileName),
			zap.Error(err))
		return n.drawErrorLine(pdf, att.FileName)
	}

	holder, err := gopdf.ImageHolderByBytes(buf.Bytes())
	if err != nil {
		return fmt.Errorf("failed to load image %s: %w", att.FileName, err)
	}

	bounds := img.Bounds()
	dx, dy, w, h := layout.FitRect(
		float64(bounds.Dx()), float64(bounds.Dy()),
		layout.ContentWidth, layout.ContentHeight,
	)
	return pdf.ImageByHolder(holder, layout.Margin+dx, layout.Margin+dy, &gopdf.Rect{W: w, H: h})
}

// AppendPDFPages imports every page of a PDF attachment: conforming pages
// verbatim at their own size, others transcluded onto a fresh target-size
// page. The import backend panics on malformed input, so the whole
// attachment runs under recover and reports a plain error instead; no page
// is added unless the entire attachment parsed.
func (n *Normalizer) AppendPDFPages(pdf *gopdf.GoPdf, att receipt.Attachment) (added int, err error) {
	defer func() {
		if r := recover(); r != nil {
			added = 0
			err = fmt.Errorf("failed to import %s: %v", att.FileName, r)
		}
	}()

	sizeReader := io.ReadSeeker(bytes.NewReader(att.Data))
	imp := gofpdi.NewImporter()
	imp.SetSourceStream(&sizeReader)
	numPages := imp.GetNumPages()
	sizes := imp.GetPageSizes()
	if numPages == 0 {
		return 0, fmt.Errorf("no pages in %s", att.FileName)
	}

	type importedPage struct {
		tpl  int
		w, h float64
	}

	// Parse everything before touching the output document, so a failure
	// mid-attachment cannot leave half its pages behind.
	tplReader := io.ReadSeeker(bytes.NewReader(att.Data))
	pages := make([]importedPage, 0, numPages)
	for pageNo := 1; pageNo <= numPages; pageNo++ {
		box, ok := sizes[pageNo]["/MediaBox"]
		if !ok {
			return 0, fmt.Errorf("page %d of %s has no media box", pageNo, att.FileName)
		}
		tpl := pdf.ImportPageStream(&tplReader, pageNo, "/MediaBox")
		pages = append(pages, importedPage{tpl: tpl, w: box["w"], h: box["h"]})
	}

	for _, p := range pages {
		if conformsToTarget(p.w, p.h) {
			pdf.AddPageWithOption(gopdf.PageOption{PageSize: &gopdf.Rect{W: p.w, H: p.h}})
			pdf.UseImportedTemplate(p.tpl, 0, 0, p.w, p.h)
		} else {
			pdf.AddPage()
			dx, dy, w, h := layout.FitRect(p.w, p.h, layout.ContentWidth, layout.ContentHeight)
			pdf.UseImportedTemplate(p.tpl, layout.Margin+dx, layout.Margin+dy, w, h)
		}
		added++
	}
	return added, nil
}

// drawErrorLine writes the in-document placeholder for a broken image.
func (n *Normalizer) drawErrorLine(pdf *gopdf.GoPdf, fileName string) error {
	if err := pdf.SetFont(layout.FontFamily, "", 12); err != nil {
		return err
	}
	pdf.SetXY(layout.Margin, layout.PageHeight/2)
	return pdf.Cell(nil, "Error loading receipt: "+fileName)
}

// conformsToTarget reports whether a page size matches the target page
// within tolerance.
func conformsToTarget(w, h float64) bool {
	return math.Abs(w-layout.PageWidth) <= SizeTolerancePt &&
		math.Abs(h-layout.PageHeight) <= SizeTolerancePt
}

func isJPEG(data []byte) bool {
	return len(data) >= 3 && data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF
}

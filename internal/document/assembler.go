// Package document assembles the final receipt PDF from the form page and
// the normalized attachment pages.
package document

import (
	"context"
	"fmt"

	"github.com/signintech/gopdf"
	"go.uber.org/zap"

	"github.com/adamwal/payout-receipt/internal/attach"
	"github.com/adamwal/payout-receipt/internal/layout"
	"github.com/adamwal/payout-receipt/internal/receipt"
)

// FontConfig points at the TTF files registered for form text. Bold is
// optional; the regular face stands in when it is missing.
type FontConfig struct {
	RegularPath string
	BoldPath    string
}

// Assembler orchestrates layout and attachment normalization into one
// output byte stream. Each call owns its own page container; assemblers are
// safe for concurrent use.
type Assembler struct {
	fonts      FontConfig
	layout     *layout.Engine
	normalizer *attach.Normalizer
	logger     *zap.Logger
}

// NewAssembler creates a new document assembler
func NewAssembler(fonts FontConfig, logger *zap.Logger) *Assembler {
	return &Assembler{
		fonts:      fonts,
		layout:     layout.NewEngine(logger),
		normalizer: attach.NewNormalizer(logger),
		logger:     logger,
	}
}

// Assemble renders page 1 from the form data, then appends attachment
// pages: raster images first, then PDF pages, each class in upload order.
// Attachment failures degrade per attachment; only serialization and form
// rendering failures abort.
func (a *Assembler) Assemble(ctx context.Context, form receipt.FormData, attachments []receipt.Attachment) ([]byte, error) {
	pdf := &gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: gopdf.Rect{W: layout.PageWidth, H: layout.PageHeight}})

	if err := a.registerFonts(pdf); err != nil {
		return nil, err
	}

	pdf.AddPage()
	if err := a.layout.RenderForm(pdf, form); err != nil {
		return nil, fmt.Errorf("failed to render form page: %w", err)
	}

	images, pdfs, unknown := receipt.Partition(attachments)
	for _, att := range unknown {
		a.logger.Warn("Skipping attachment of unknown type",
			zap.String("file", att.FileName),
			zap.String("mime", att.MimeType))
	}

	for _, att := range images {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := a.normalizer.AppendImagePage(pdf, att); err != nil {
			return nil, fmt.Errorf("failed to add image page for %s: %w", att.FileName, err)
		}
	}

	for _, att := range pdfs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		added, err := a.normalizer.AppendPDFPages(pdf, att)
		if err != nil {
			// Best effort: a broken PDF attachment is dropped, the rest
			// of the document survives.
			a.logger.Warn("Skipping unreadable PDF attachment",
				zap.String("file", att.FileName),
				zap.Error(err))
			continue
		}
		a.logger.Debug("Imported PDF attachment",
			zap.String("file", att.FileName),
			zap.Int("pages", added))
	}

	out, err := pdf.GetBytesPdfReturnErr()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize document: %w", err)
	}
	return out, nil
}

func (a *Assembler) registerFonts(pdf *gopdf.GoPdf) error {
	if err := pdf.AddTTFFont(layout.FontFamily, a.fonts.RegularPath); err != nil {
		return fmt.Errorf("failed to load font %s: %w", a.fonts.RegularPath, err)
	}
	boldPath := a.fonts.BoldPath
	if boldPath == "" {
		boldPath = a.fonts.RegularPath
	}
	if err := pdf.AddTTFFontWithOption(layout.FontFamily, boldPath, gopdf.TtfOption{Style: gopdf.Bold}); err != nil {
		return fmt.Errorf("failed to load bold font %s: %w", boldPath, err)
	}
	return nil
}

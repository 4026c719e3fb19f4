// Package service exposes the generation workflow behind the HTTP surface.
package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/adamwal/payout-receipt/internal/receipt"
)

// MediaType is the media type of every generated document.
const MediaType = "application/pdf"

// DocumentBuilder assembles a receipt document from form data and
// attachments.
type DocumentBuilder interface {
	Assemble(ctx context.Context, form receipt.FormData, attachments []receipt.Attachment) ([]byte, error)
}

// GeneratedReceipt is the result of one generate call: a named in-memory
// file ready for download, sharing or saving.
type GeneratedReceipt struct {
	FileName  string
	MediaType string
	Data      []byte
}

// ReceiptService guards document generation at the caller boundary: a new
// generate call supersedes a still-pending one, which observes its
// cancelled context and stops.
type ReceiptService struct {
	builder   DocumentBuilder
	outputDir string
	logger    *zap.Logger

	mu      sync.Mutex
	pending *pendingGeneration
}

type pendingGeneration struct {
	cancel context.CancelFunc
}

// NewReceiptService creates a new receipt service
func NewReceiptService(builder DocumentBuilder, outputDir string, logger *zap.Logger) *ReceiptService {
	return &ReceiptService{
		builder:   builder,
		outputDir: outputDir,
		logger:    logger,
	}
}

// Generate assembles the receipt document and names it after the date
// field. A concurrent second call cancels the first.
func (s *ReceiptService) Generate(ctx context.Context, form receipt.FormData, attachments []receipt.Attachment) (*GeneratedReceipt, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	gen := &pendingGeneration{cancel: cancel}
	s.mu.Lock()
	if s.pending != nil {
		s.logger.Info("Superseding pending generation")
		s.pending.cancel()
	}
	s.pending = gen
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		// Only clear our own registration; a newer call may have
		// replaced it already.
		if s.pending == gen {
			s.pending = nil
		}
		s.mu.Unlock()
	}()

	s.logger.Info("Generating receipt document",
		zap.String("date", form.Date),
		zap.Int("attachments", len(attachments)))

	data, err := s.builder.Assemble(ctx, form, attachments)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble document: %w", err)
	}

	out := &GeneratedReceipt{
		FileName:  receipt.FileName(form.Date),
		MediaType: MediaType,
		Data:      data,
	}

	s.logger.Info("Receipt document generated",
		zap.String("file_name", out.FileName),
		zap.Int("bytes", len(data)))

	return out, nil
}

// Save writes a generated receipt under the output directory and returns
// the full path. Save failures propagate; they are the caller's to report.
func (s *ReceiptService) Save(doc *GeneratedReceipt) (string, error) {
	if err := os.MkdirAll(s.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(s.outputDir, doc.FileName)
	if err := os.WriteFile(path, doc.Data, 0644); err != nil {
		return "", fmt.Errorf("failed to save document: %w", err)
	}

	s.logger.Info("Receipt document saved", zap.String("path", path))
	return path, nil
}

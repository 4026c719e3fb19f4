package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/adamwal/payout-receipt/internal/money"
	"github.com/adamwal/payout-receipt/internal/receipt"
	"github.com/adamwal/payout-receipt/internal/service"
	"github.com/adamwal/payout-receipt/internal/words"
)

// Handlers contains all HTTP request handlers
type Handlers struct {
	receipts *service.ReceiptService
	logger   *zap.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(receipts *service.ReceiptService, logger *zap.Logger) *Handlers {
	return &Handlers{receipts: receipts, logger: logger}
}

// Response represents a standard JSON response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// AmountRequest carries a raw amount value
type AmountRequest struct {
	Amount string `json:"amount"`
}

// AmountResponse carries a normalized amount value
type AmountResponse struct {
	Amount string `json:"amount"`
}

// WordsRequest asks for an amount rendered as words
type WordsRequest struct {
	Amount   string `json:"amount"`
	Locale   string `json:"locale" binding:"required"`
	Currency string `json:"currency" binding:"required"`
}

// WordsResponse carries the rendered phrase; empty while the amount is not
// yet parseable.
type WordsResponse struct {
	Words string `json:"words"`
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "payout-receipt",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// SanitizeAmount handles POST /api/v1/amount/sanitize, the live keystroke
// path: strip junk, cap at two decimals, never round.
func (h *Handlers) SanitizeAmount(c *gin.Context) {
	var req AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid request body"})
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Data: AmountResponse{Amount: money.SanitizeInput(req.Amount)}})
}

// FormatAmount handles POST /api/v1/amount/format, the field-blur path:
// full normalization with rounding to two decimals.
func (h *Handlers) FormatAmount(c *gin.Context) {
	var req AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid request body"})
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Data: AmountResponse{Amount: money.Format(req.Amount)}})
}

// AmountToWords handles POST /api/v1/amount/words
func (h *Handlers) AmountToWords(c *gin.Context) {
	var req WordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid request body"})
		return
	}

	locale, err := words.ParseLocale(req.Locale)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}
	currency, err := words.ParseCurrency(req.Currency)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, Response{Success: true, Data: WordsResponse{Words: words.ToWords(req.Amount, locale, currency)}})
}

// GenerateReceipt handles POST /api/v1/receipts. The multipart form carries
// the validated field values, an optional signature image and any number of
// attachment files; the response body is the assembled PDF.
func (h *Handlers) GenerateReceipt(c *gin.Context) {
	form := receipt.FormData{
		Date:           c.PostForm("date"),
		Amount:         c.PostForm("amount"),
		Currency:       c.PostForm("currency"),
		IssuedTo:       c.PostForm("issued_to"),
		AccountInfo:    c.PostForm("account_info"),
		DepartmentName: c.PostForm("department_name"),
		BasedOn:        c.PostForm("based_on"),
		AmountInWords:  c.PostForm("amount_in_words"),
	}

	if msg := validateForm(form); msg != "" {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: msg})
		return
	}

	currency, err := words.ParseCurrency(form.Currency)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}
	locale, err := words.ParseLocale(c.DefaultPostForm("locale", string(words.LocaleRU)))
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: err.Error()})
		return
	}

	// Derived but overridable: only recompute when the caller sent no
	// explicit override.
	if form.AmountInWords == "" {
		form.DeriveAmountInWords(locale, currency)
	}

	multipartForm, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "invalid multipart form"})
		return
	}

	if files := multipartForm.File["signature"]; len(files) > 0 {
		data, err := readUpload(files[0])
		if err != nil {
			c.JSON(http.StatusBadRequest, Response{Success: false, Error: "unreadable signature upload"})
			return
		}
		form.RecipientSignature = data
	}

	var attachments []receipt.Attachment
	for _, fh := range multipartForm.File["attachments"] {
		data, err := readUpload(fh)
		if err != nil {
			c.JSON(http.StatusBadRequest, Response{Success: false, Error: fmt.Sprintf("unreadable upload %s", fh.Filename)})
			return
		}
		attachments = append(attachments, receipt.Attachment{
			FileName: fh.Filename,
			MimeType: fh.Header.Get("Content-Type"),
			Data:     data,
		})
	}

	doc, err := h.receipts.Generate(c.Request.Context(), form, attachments)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			c.JSON(http.StatusConflict, Response{Success: false, Error: "generation superseded by a newer request"})
			return
		}
		h.logger.Error("Failed to generate receipt", zap.Error(err))
		c.JSON(http.StatusInternalServerError, Response{Success: false, Error: "failed to generate receipt"})
		return
	}

	if c.Query("save") == "1" {
		if _, err := h.receipts.Save(doc); err != nil {
			h.logger.Error("Failed to save receipt", zap.Error(err))
			c.JSON(http.StatusInternalServerError, Response{Success: false, Error: "failed to save receipt"})
			return
		}
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	c.Data(http.StatusOK, doc.MediaType, doc.Data)
}

// validateForm checks the mandatory text fields. The core assumes
// non-empty values; this boundary is where the guarantee is made.
func validateForm(form receipt.FormData) string {
	required := []struct {
		name  string
		value string
	}{
		{"date", form.Date},
		{"amount", form.Amount},
		{"currency", form.Currency},
		{"issued_to", form.IssuedTo},
		{"account_info", form.AccountInfo},
		{"department_name", form.DepartmentName},
		{"based_on", form.BasedOn},
	}
	for _, f := range required {
		if f.value == "" {
			return fmt.Sprintf("missing required field: %s", f.name)
		}
	}
	return ""
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

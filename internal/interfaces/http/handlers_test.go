package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/adamwal/payout-receipt/internal/service"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	receipts := service.NewReceiptService(nil, t.TempDir(), zap.NewNop())
	server := NewServer(ServerConfig{Host: "127.0.0.1", Port: 0}, receipts, zap.NewNop())
	return server.Router()
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestSanitizeAmount(t *testing.T) {
	router := testRouter(t)

	w := postJSON(t, router, "/api/v1/amount/sanitize", AmountRequest{Amount: "1a2,345 zł"})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, map[string]interface{}{"amount": "12.34"}, resp.Data)
}

func TestFormatAmount(t *testing.T) {
	router := testRouter(t)

	w := postJSON(t, router, "/api/v1/amount/format", AmountRequest{Amount: "12,5"})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, map[string]interface{}{"amount": "12.50"}, resp.Data)
}

func TestAmountToWords(t *testing.T) {
	router := testRouter(t)

	w := postJSON(t, router, "/api/v1/amount/words", WordsRequest{
		Amount:   "21.00",
		Locale:   "ru",
		Currency: "PLN",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, map[string]interface{}{"words": "двадцать один злотый"}, resp.Data)
}

func TestAmountToWordsRejectsUnknownLocale(t *testing.T) {
	router := testRouter(t)

	w := postJSON(t, router, "/api/v1/amount/words", WordsRequest{
		Amount:   "1.00",
		Locale:   "de",
		Currency: "EUR",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAmountToWordsRejectsUnknownCurrency(t *testing.T) {
	router := testRouter(t)

	w := postJSON(t, router, "/api/v1/amount/words", WordsRequest{
		Amount:   "1.00",
		Locale:   "en",
		Currency: "GBP",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// The multipart boundary is where the non-empty-fields guarantee is made.
func TestGenerateReceiptMissingFields(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/receipts", bytes.NewReader(nil))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "missing required field")
}

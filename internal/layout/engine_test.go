package layout

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"

	"github.com/signintech/gopdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/adamwal/payout-receipt/internal/receipt"
)

// testFont finds a Cyrillic-capable TTF on the host, skipping the test on
// machines without one.
func testFont(t *testing.T) string {
	t.Helper()
	candidates := []string{
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/TTF/DejaVuSans.ttf",
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	t.Skip("no TTF font available on this host")
	return ""
}

func newFormPage(t *testing.T) *gopdf.GoPdf {
	t.Helper()
	font := testFont(t)

	pdf := &gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: gopdf.Rect{W: PageWidth, H: PageHeight}})
	require.NoError(t, pdf.AddTTFFont(FontFamily, font))
	require.NoError(t, pdf.AddTTFFontWithOption(FontFamily, font, gopdf.TtfOption{Style: gopdf.Bold}))
	pdf.AddPage()
	return pdf
}

func sampleForm() receipt.FormData {
	return receipt.FormData{
		Date:           "2024-05-17",
		Amount:         "123.45",
		Currency:       "PLN",
		IssuedTo:       "Jan Kowalski",
		AccountInfo:    "+48 600 000 000",
		DepartmentName: "Dział młodzieżowy",
		BasedOn:        "Zakup materiałów na spotkanie młodzieżowe w maju",
		AmountInWords:  "sto dwadzieścia trzy złote czterdzieści pięć groszy",
	}
}

func TestRenderForm(t *testing.T) {
	pdf := newFormPage(t)
	engine := NewEngine(zap.NewNop())

	err := engine.RenderForm(pdf, sampleForm())
	require.NoError(t, err)

	out, err := pdf.GetBytesPdfReturnErr()
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

// A very long basedOn value must truncate, not overflow the page.
func TestRenderFormTruncatesLongText(t *testing.T) {
	pdf := newFormPage(t)
	engine := NewEngine(zap.NewNop())

	form := sampleForm()
	for i := 0; i < 8; i++ {
		form.BasedOn += " bardzo długie uzasadnienie wydatku które nie zmieści się w trzech liniach"
	}

	require.NoError(t, engine.RenderForm(pdf, form))
	_, err := pdf.GetBytesPdfReturnErr()
	require.NoError(t, err)
}

func TestRenderFormWithSignature(t *testing.T) {
	pdf := newFormPage(t)
	engine := NewEngine(zap.NewNop())

	img := image.NewRGBA(image.Rect(0, 0, 120, 40))
	for x := 0; x < 120; x++ {
		img.Set(x, 20, color.Black)
	}
	var sig bytes.Buffer
	require.NoError(t, png.Encode(&sig, img))

	form := sampleForm()
	form.RecipientSignature = sig.Bytes()

	require.NoError(t, engine.RenderForm(pdf, form))
	_, err := pdf.GetBytesPdfReturnErr()
	require.NoError(t, err)
}

// A corrupt signature leaves the box empty instead of failing the page.
func TestRenderFormBadSignatureIgnored(t *testing.T) {
	pdf := newFormPage(t)
	engine := NewEngine(zap.NewNop())

	form := sampleForm()
	form.RecipientSignature = []byte("not an image")

	require.NoError(t, engine.RenderForm(pdf, form))
}

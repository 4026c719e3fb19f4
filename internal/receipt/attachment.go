package receipt

import (
	"net/http"
	"strings"
)

// Kind classifies an attachment by media class.
type Kind int

// Attachment kinds
const (
	KindUnknown Kind = iota
	KindImage
	KindPDF
)

// Attachment is one user-supplied blob. The caller owns the byte buffer;
// assembly reads it once and does not retain it.
type Attachment struct {
	FileName string
	MimeType string // declared by the uploader, may be empty
	Data     []byte
}

// Kind resolves the media class from the declared MIME type, falling back
// to content sniffing and the file extension.
func (a Attachment) Kind() Kind {
	if k := kindOfMime(a.MimeType); k != KindUnknown {
		return k
	}
	if len(a.Data) > 0 {
		if k := kindOfMime(http.DetectContentType(a.Data)); k != KindUnknown {
			return k
		}
	}
	if strings.HasSuffix(strings.ToLower(a.FileName), ".pdf") {
		return KindPDF
	}
	return KindUnknown
}

func kindOfMime(mime string) Kind {
	mime = strings.ToLower(strings.TrimSpace(mime))
	switch {
	case mime == "application/pdf":
		return KindPDF
	case strings.HasPrefix(mime, "image/"):
		return KindImage
	default:
		return KindUnknown
	}
}

// Partition splits attachments into raster images and PDF documents,
// preserving relative order within each class. Images render before PDFs in
// the output document regardless of upload order; the reordering is
// deliberate, observable behavior. Unclassifiable blobs are returned
// separately so the caller can log and skip them.
func Partition(attachments []Attachment) (images, pdfs, unknown []Attachment) {
	for _, att := range attachments {
		switch att.Kind() {
		case KindImage:
			images = append(images, att)
		case KindPDF:
			pdfs = append(pdfs, att)
		default:
			unknown = append(unknown, att)
		}
	}
	return images, pdfs, unknown
}

package ocr

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/heartmarshall/wordsnap-backend/internal/domain"
)

// DefaultMediaType is assumed when the client omits the media type.
const DefaultMediaType = "image/jpeg"

// ExtractInput is one submitted page.
type ExtractInput struct {
	// Data is the base64 payload. A data URL ("data:image/png;base64,...")
	// is accepted and its media type wins over MediaType.
	Data      string
	MediaType string
}

// Validate checks the fields that need no configuration.
func (i ExtractInput) Validate() error {
	if strings.TrimSpace(i.Data) == "" {
		return domain.NewValidationError("image.data", "required")
	}
	return nil
}

// prepare validates the input against the limits and decodes the payload.
// field prefixes error fields, e.g. "images[2]".
func (s *Service) prepare(input ExtractInput, field string) (domain.ScanImage, []domain.FieldError) {
	if err := input.Validate(); err != nil {
		return domain.ScanImage{}, []domain.FieldError{{Field: field + ".data", Message: "required"}}
	}

	data, mediaType := splitDataURL(strings.TrimSpace(input.Data))
	if mediaType == "" {
		mediaType = strings.ToLower(strings.TrimSpace(input.MediaType))
	}
	if mediaType == "" {
		mediaType = DefaultMediaType
	}

	var errs []domain.FieldError

	if !s.cfg.IsMediaTypeAllowed(mediaType) {
		errs = append(errs, domain.FieldError{
			Field:   field + ".media_type",
			Message: fmt.Sprintf("unsupported media type %q", mediaType),
		})
	}

	raw, err := decodeBase64(data)
	switch {
	case err != nil:
		errs = append(errs, domain.FieldError{Field: field + ".data", Message: "invalid base64"})
	case len(raw) == 0:
		errs = append(errs, domain.FieldError{Field: field + ".data", Message: "required"})
	case int64(len(raw)) > s.cfg.MaxImageBytes:
		errs = append(errs, domain.FieldError{
			Field:   field + ".data",
			Message: fmt.Sprintf("image exceeds %d bytes", s.cfg.MaxImageBytes),
		})
	}

	if len(errs) > 0 {
		return domain.ScanImage{}, errs
	}

	return domain.NewScanImage(mediaType, raw), nil
}

// splitDataURL strips a "data:<type>;base64," prefix and returns the media type.
func splitDataURL(s string) (data, mediaType string) {
	if !strings.HasPrefix(s, "data:") {
		return s, ""
	}
	header, payload, ok := strings.Cut(s, ",")
	if !ok {
		return s, ""
	}
	header = strings.TrimPrefix(header, "data:")
	header = strings.TrimSuffix(header, ";base64")
	return payload, strings.ToLower(header)
}

func decodeBase64(s string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err == nil {
		return raw, nil
	}
	if raw, rawErr := base64.RawStdEncoding.DecodeString(s); rawErr == nil {
		return raw, nil
	}
	return nil, err
}

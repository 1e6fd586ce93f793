package usecase

import (
	"fmt"
	"net/http"
	"strings"

	"kaamwala/internal/infrastructure/marketplace"
)

// MaxImageSize is the largest profile image accepted.
const MaxImageSize = 5 << 20

// checkImage accepts image/* content up to MaxImageSize. The declared type is
// cross-checked against the sniffed one.
func checkImage(f marketplace.File) error {
	if len(f.Data) == 0 {
		return fmt.Errorf("%w: empty file", ErrInvalidImage)
	}
	if len(f.Data) > MaxImageSize {
		return fmt.Errorf("%w: file exceeds %d bytes", ErrInvalidImage, MaxImageSize)
	}
	declared := strings.ToLower(strings.TrimSpace(f.ContentType))
	if declared != "" && !strings.HasPrefix(declared, "image/") {
		return fmt.Errorf("%w: content type %s", ErrInvalidImage, declared)
	}
	if sniffed := http.DetectContentType(f.Data); !strings.HasPrefix(sniffed, "image/") {
		return fmt.Errorf("%w: content type %s", ErrInvalidImage, sniffed)
	}
	return nil
}

package profile

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/collegecupid/cupid-cli/internal/common"
)

// MaxPhotoBytes is the client-side upload size cap. Files over this are
// rejected before any transmission.
const MaxPhotoBytes = 10 << 20

var allowedPhotoTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

// CheckPhotoFile enforces the client-side upload constraints on one file:
// size at most MaxPhotoBytes and a sniffed image media type. Violations map
// to common.ErrFileConstraint.
func CheckPhotoFile(name string, content []byte) error {
	if len(content) > MaxPhotoBytes {
		return fmt.Errorf("%w: %s is over the 10MB limit", common.ErrFileConstraint, name)
	}

	kind := http.DetectContentType(content)
	if _, ok := allowedPhotoTypes[kind]; !ok {
		return fmt.Errorf("%w: %s is %s, not a supported image type", common.ErrFileConstraint, name, kind)
	}
	return nil
}

// PhotoID extracts the server-assigned identifier embedded in a stored
// photo URL's query component. A URL with no identifier fails locally with
// common.ErrValidation; no removal request may be issued for it.
func PhotoID(photoURL string) (string, error) {
	u, err := url.Parse(photoURL)
	if err != nil {
		return "", fmt.Errorf("%w: malformed photo URL: %v", common.ErrValidation, err)
	}
	id := u.Query().Get("id")
	if id == "" {
		return "", fmt.Errorf("%w: photo URL has no id", common.ErrValidation)
	}
	return id, nil
}

package domain

import (
	"io"
	"strings"
)

// MediaRef is an opaque handle to a blob held by the media store.
// It is owned by whichever entity embeds it: replacing or deleting the
// embedding entity releases the blob through the media store.
type MediaRef struct {
	StorageID string
	URL       string
}

// MediaUpload carries an incoming media payload on its way to the store.
type MediaUpload struct {
	Data        io.Reader
	ContentType string
}

// SupportedMediaType reports whether a mime type may be stored at all.
// Only images and videos are accepted; everything else is rejected with
// ErrForbidden before the media store is ever called.
func SupportedMediaType(contentType string) bool {
	return strings.HasPrefix(contentType, "image/") ||
		strings.HasPrefix(contentType, "video/")
}

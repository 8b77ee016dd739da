// Package media uploads profile images to a blob store and returns their public URLs.
package media

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Prefix namespaces uploads under a user's folder.
type Prefix string

const (
	ProfileImages Prefix = "profileImages"
	GalleryImages Prefix = "galleryImages"
)

// ErrEmptyObject is returned when an upload carries no bytes.
var ErrEmptyObject = errors.New("empty object")

// Store writes an object and returns a URL that serves it.
type Store interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// Key builds the object key {userID}/{prefix}/{userID}_{prefix}_{unixMillis}.
// A positive seq is appended as _{seq} so several uploads in the same
// millisecond do not overwrite each other.
func Key(userID string, prefix Prefix, at time.Time, seq int) string {
	key := fmt.Sprintf("%s/%s/%s_%s_%d", userID, prefix, userID, prefix, at.UnixMilli())
	if seq > 0 {
		key += "_" + strconv.Itoa(seq)
	}
	return key
}

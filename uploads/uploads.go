// Package uploads is the accessor for the image host. Uploads are the one
// multipart request in the API; everything else is JSON.
package uploads

import (
	"context"
	"io"
	"net/url"

	"github.com/pkg/errors"

	"github.com/otonaba/otonaba-cli/transport"
)

// Image is a hosted image: the retrievable URL plus the id needed to delete it.
type Image struct {
	URL          string `json:"url"`
	CloudinaryID string `json:"cloudinary_id"`
}

// Upload sends an image file to the host and returns where it landed.
func Upload(ctx context.Context, c *transport.Client, filename string, file io.Reader) (*Image, error) {
	var img Image
	if err := c.PostMultipart(ctx, "/upload", "image", filename, file, &img); err != nil {
		return nil, errors.Wrapf(err, "[uploads.Upload] %s", filename)
	}
	return &img, nil
}

// Delete removes a hosted image by its deletion id.
func Delete(ctx context.Context, c *transport.Client, cloudinaryID string) error {
	if err := c.Delete(ctx, "/upload/"+url.PathEscape(cloudinaryID)); err != nil {
		return errors.Wrapf(err, "[uploads.Delete] %s", cloudinaryID)
	}
	return nil
}

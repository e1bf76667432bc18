package imaging

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// ErrUnreadableImage matches every error returned by Load.
var ErrUnreadableImage = errors.New("unreadable image")

// LoadError describes an image file that could not be opened or decoded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cannot read image: %s: %v", e.Path, e.Err)
}

// Unwrap exposes both ErrUnreadableImage and the underlying cause.
func (e *LoadError) Unwrap() []error {
	return []error{ErrUnreadableImage, e.Err}
}

// Load opens and decodes the image at path.
//
// Parameters:
//   - path: Absolute or relative file path. Supported formats are PNG, JPEG,
//     GIF, BMP, TIFF and WebP; detection is by content, not extension.
//
// Returns:
//   - image.Image: The decoded image, rotated according to its EXIF
//     orientation tag when it has one.
//   - error: A *LoadError (matching ErrUnreadableImage) if the file does not
//     exist, cannot be read, or is not a decodable image.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if img.Bounds().Empty() {
		return nil, &LoadError{Path: path, Err: errors.New("image has no pixels")}
	}
	return img, nil
}

// ImageInfo summarizes a loaded image.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the lowercase format name guessed from the file extension
	// ("png", "jpeg", ...), or "unknown".
	Format string `json:"format"`
}

// Describe returns the dimensions of img and the format implied by path.
func Describe(path string, img image.Image) ImageInfo {
	bounds := img.Bounds()

	format := "unknown"
	if f, err := imaging.FormatFromFilename(path); err == nil {
		format = strings.ToLower(f.String())
	}

	return ImageInfo{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Format: format,
	}
}

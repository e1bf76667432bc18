// Package imaging loads images, prepares them for circle detection, and
// renders the debug overlay.
//
// All operations work with standard Go image.Image types and use a coordinate
// system where (0,0) is the top-left corner of the image bounds, X increases
// rightward, and Y increases downward.
//
// # Loading
//
// Load decodes PNG, JPEG, GIF, BMP, TIFF and WebP files and applies the EXIF
// orientation tag, so a portrait photo is measured the way it is displayed.
// Every failure matches ErrUnreadableImage.
//
// # Preprocessing
//
// Smooth reduces an image to BT.601 luminance and applies a median blur.
// The median filter removes isolated bright and dark pixels (print grain,
// sensor noise) while keeping the step edge of a lens rim sharp, which
// gradient-based edge detection depends on.
//
// # Overlay
//
// DrawOverlay marks a circle on a copy of the source image; SaveOverlay
// encodes the result according to the file extension. Save failures match
// ErrOverlayWrite.
//
// # Error Handling
//
// Errors carry the offending path and wrap the underlying cause, so callers
// can use errors.Is for classification and still print a precise message.
package imaging

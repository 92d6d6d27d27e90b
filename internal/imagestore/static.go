package imagestore

import (
	"io"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// decodeStatic decodes a single frame using the registered image decoders,
// applying any EXIF orientation.
func decodeStatic(r io.Reader) ([]Frame, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}
	return []Frame{{Image: img}}, nil
}

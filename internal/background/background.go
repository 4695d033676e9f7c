package background

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"strings"

	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"

	"until/internal/constants"
)

// Prefix marks a stored background as a self-contained encoded image.
const Prefix = "data:image/jpeg;base64,"

// Encode decodes an image, scales it down to the configured maximum width
// (preserving aspect ratio; smaller images are left alone), re-encodes it
// as JPEG and wraps it in a self-contained data URL. The result depends on
// no external file.
func Encode(r io.Reader) (string, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width > constants.BgMaxWidth {
		height = height * constants.BgMaxWidth / width
		width = constants.BgMaxWidth

		scaled := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, bounds, draw.Over, nil)
		img = scaled
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: constants.BgJPEGQuality}); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	return Prefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Decode reverses Encode, returning the embedded image. Used to verify a
// stored background still parses.
func Decode(s string) (image.Image, error) {
	raw, ok := strings.CutPrefix(s, Prefix)
	if !ok {
		return nil, fmt.Errorf("not an embedded background image")
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode background: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode background: %w", err)
	}
	return img, nil
}

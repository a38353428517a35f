package editor

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"

	// Decoders for formats beyond the standard library.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const (
	dataURLPrefix = "data:"
	base64Marker  = ";base64"
)

// FileToDataURL reads an image file and returns it as a base64 data URL.
// The MIME type is sniffed from the content, not taken from the file name.
func FileToDataURL(r io.Reader) (string, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading image: %w", err)
	}
	if !filetype.IsImage(buf) {
		return "", ErrUnsupportedType
	}
	kind, err := filetype.Match(buf)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedType, err)
	}

	var sb strings.Builder
	sb.Grow(len(dataURLPrefix) + len(kind.MIME.Value) + len(base64Marker) + 1 + base64.StdEncoding.EncodedLen(len(buf)))
	sb.WriteString(dataURLPrefix)
	sb.WriteString(kind.MIME.Value)
	sb.WriteString(base64Marker)
	sb.WriteByte(',')
	sb.WriteString(base64.StdEncoding.EncodeToString(buf))
	return sb.String(), nil
}

// DecodeDataURL decodes a base64 image data URL, applying EXIF orientation.
func DecodeDataURL(ctx context.Context, url string) (image.Image, error) {
	if !strings.HasPrefix(url, dataURLPrefix) {
		return nil, ErrNotDataURL
	}
	header, payload, ok := strings.Cut(url[len(dataURLPrefix):], ",")
	if !ok || !strings.HasSuffix(header, base64Marker) {
		return nil, ErrNotDataURL
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotDataURL, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", strings.TrimSuffix(header, base64Marker), err)
	}
	return img, nil
}

package favicon

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // decoder registration
	_ "image/jpeg" // decoder registration
	"image/png"

	"golang.org/x/image/draw"
)

// NormalizePNG decodes an icon image, center-crops it to a square and
// scales it to size x size, returning PNG bytes. Images that are already
// square PNGs of the right size are returned unchanged.
func NormalizePNG(data []byte, size int) ([]byte, error) {
	srcImg, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode icon: %w", err)
	}

	srcBounds := srcImg.Bounds()
	srcW := srcBounds.Dx()
	srcH := srcBounds.Dy()

	if format == "png" && srcW == size && srcH == size {
		return data, nil
	}

	var cropRect image.Rectangle
	if srcW > srcH {
		// Wider than tall - crop sides
		offset := (srcW - srcH) / 2
		cropRect = image.Rect(srcBounds.Min.X+offset, srcBounds.Min.Y, srcBounds.Min.X+offset+srcH, srcBounds.Max.Y)
	} else if srcH > srcW {
		// Taller than wide - crop top/bottom
		offset := (srcH - srcW) / 2
		cropRect = image.Rect(srcBounds.Min.X, srcBounds.Min.Y+offset, srcBounds.Max.X, srcBounds.Min.Y+offset+srcW)
	} else {
		cropRect = srcBounds
	}

	croppedImg := cropImage(srcImg, cropRect)
	dstImg := image.NewRGBA(image.Rect(0, 0, size, size))

	// CatmullRom for smooth upscaling of tiny service fallbacks.
	draw.CatmullRom.Scale(dstImg, dstImg.Bounds(), croppedImg, croppedImg.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dstImg); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// cropImage returns a cropped portion of the source image.
func cropImage(src image.Image, rect image.Rectangle) image.Image {
	if subImager, ok := src.(interface {
		SubImage(r image.Rectangle) image.Image
	}); ok {
		return subImager.SubImage(rect)
	}

	dst := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	for y := 0; y < rect.Dy(); y++ {
		for x := 0; x < rect.Dx(); x++ {
			dst.Set(x, y, src.At(rect.Min.X+x, rect.Min.Y+y))
		}
	}
	return dst
}

// Package imageio converts between shape matrices and image files.
//
// Matrix cell (i, j) maps to pixel (x=i, y=j). Shapes are stored as
// grayscale c*255; weights are stored centered, c+128. Values that fall
// outside a byte are clamped to [0, 255].
package imageio

import (
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"shape-perceptron/internal/shape"
)

const weightOffset = 128.0

// LoadImage decodes the image at path, drops alpha, resizes it to the shape
// grid with nearest-neighbour sampling and converts each pixel to Rec. 709
// luma scaled to [0, 1].
func LoadImage(path string) (shape.Matrix, error) {
	src, err := decode(path)
	if err != nil {
		return shape.Matrix{}, err
	}
	grid := resizeOpaque(src)

	var m shape.Matrix
	for x := 0; x < shape.Size; x++ {
		for y := 0; y < shape.Size; y++ {
			m.Set(x, y, float64(luma(grid.NRGBAAt(x, y)))/255.0)
		}
	}
	return m, nil
}

// LoadWeights decodes a weight image written by SaveWeights. Only the raw
// red channel is read; each byte v becomes v-128. Images that are not
// Size×Size are resized with nearest-neighbour sampling first.
func LoadWeights(path string) (shape.Matrix, error) {
	src, err := decode(path)
	if err != nil {
		return shape.Matrix{}, err
	}
	grid := resizeOpaque(src)

	var m shape.Matrix
	for x := 0; x < shape.Size; x++ {
		for y := 0; y < shape.Size; y++ {
			m.Set(x, y, float64(grid.NRGBAAt(x, y).R)-weightOffset)
		}
	}
	return m, nil
}

// resizeOpaque keeps the unpremultiplied colour channels of src, forces
// alpha to opaque and samples the result down to the shape grid.
func resizeOpaque(src image.Image) *image.NRGBA {
	b := src.Bounds()
	rgb := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			c.A = 0xff
			rgb.SetNRGBA(x, y, c)
		}
	}
	grid := image.NewNRGBA(image.Rect(0, 0, shape.Size, shape.Size))
	draw.NearestNeighbor.Scale(grid, grid.Rect, rgb, b, draw.Src, nil)
	return grid
}

// luma weights sRGB channels 2126/7152/722 per 10000, truncating.
func luma(c color.NRGBA) uint8 {
	return uint8((2126*uint32(c.R) + 7152*uint32(c.G) + 722*uint32(c.B)) / 10000)
}

// SaveImage writes a mask or normalized image as grayscale floor(c*255).
func SaveImage(m shape.Matrix, path string) error {
	return save(render(m, func(c float64) float64 { return c * 255 }), path)
}

// SaveWeights writes a weight matrix as grayscale floor(c+128).
func SaveWeights(m shape.Matrix, path string) error {
	return save(render(m, func(c float64) float64 { return c + weightOffset }), path)
}

func render(m shape.Matrix, level func(float64) float64) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, shape.Size, shape.Size))
	for x := 0; x < shape.Size; x++ {
		for y := 0; y < shape.Size; y++ {
			img.SetGray(x, y, color.Gray{Y: toByte(level(m.At(x, y)))})
		}
	}
	return img
}

func toByte(v float64) uint8 {
	v = math.Floor(v)
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &ReadError{Path: path, Err: errors.Wrap(err, "decode")}
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return nil, &ReadError{Path: path, Err: errors.New("empty image")}
	}
	return img, nil
}

type encodeFunc func(w io.Writer, img image.Image) error

func encoderFor(path string) (encodeFunc, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode, nil
	case ".jpg", ".jpeg":
		return func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
		}, nil
	case ".gif":
		return func(w io.Writer, img image.Image) error {
			return gif.Encode(w, img, nil)
		}, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, nil)
		}, nil
	}
	return nil, errors.Wrapf(ErrUnsupportedFormat, "extension %q", filepath.Ext(path))
}

func save(img image.Image, path string) error {
	encode, err := encoderFor(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	f, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := encode(f, img); err != nil {
		f.Close()
		return &WriteError{Path: path, Err: errors.Wrap(err, "encode")}
	}
	if err := f.Close(); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

package glitch

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// DecodeImages takes a list of image files and decodes them into image.Image
// types. Note that the number of images returned may not be the number of
// image files passed in. Namely, an image file is skipped if it cannot be
// read or decoded into an image type that Go understands.
func DecodeImages(imageFiles []string) ([]string, []image.Image) {
	type decoded struct {
		img  image.Image
		name string
	}

	// One channel per file keeps the results in argument order.
	results := make([]chan decoded, len(imageFiles))
	for i, fName := range imageFiles {
		results[i] = make(chan decoded, 1)
		go func(out chan<- decoded, fName string) {
			defer close(out)
			img, err := decodeFile(fName)
			if err != nil {
				fmt.Println(err)
				return
			}
			out <- decoded{img: img, name: Basename(fName)}
		}(results[i], fName)
	}

	names := make([]string, 0, len(imageFiles))
	imgs := make([]image.Image, 0, len(imageFiles))
	for _, res := range results {
		if d, ok := <-res; ok {
			names = append(names, d.name)
			imgs = append(imgs, d.img)
		}
	}
	return names, imgs
}

// DecodeRaster loads an image file back into a Raster.
func DecodeRaster(fName string) (*Raster, error) {
	img, err := decodeFile(fName)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

func decodeFile(fName string) (image.Image, error) {
	file, err := os.Open(fName)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("could not decode %q: %w", fName, err)
	}
	return img, nil
}

// VpCenter inspects the canvas and image geometry, and determines where the
// origin of the image should be painted into the canvas.
// If a dimension of the image is smaller than the canvas it is centred,
// otherwise that coordinate is 0.
func VpCenter(ximg image.Image, canWidth, canHeight int) image.Point {
	xmargin, ymargin := 0, 0
	if ximg.Bounds().Dx() < canWidth {
		xmargin = (canWidth - ximg.Bounds().Dx()) / 2
	}
	if ximg.Bounds().Dy() < canHeight {
		ymargin = (canHeight - ximg.Bounds().Dy()) / 2
	}
	return image.Point{xmargin, ymargin}
}

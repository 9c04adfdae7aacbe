package imageio

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"glcm-texture/pkg/geometry"
)

// LoadGrayCV reads path through OpenCV in greyscale mode. It accepts every
// format the linked OpenCV build supports.
func LoadGrayCV(path string) (*image.Gray, error) {
	mat := gocv.IMRead(path, gocv.IMReadGrayScale)
	defer mat.Close()
	if mat.Empty() {
		return nil, fmt.Errorf("failed to read image %s", path)
	}
	return matToGray(mat)
}

// PolygonMaskCV rasterises poly into a width x height mask with OpenCV. Pixels
// inside the polygon are 255, the rest 0.
func PolygonMaskCV(poly geometry.Polygon, width, height int) (*image.Gray, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid mask size %dx%d", width, height)
	}
	mask := gocv.NewMatWithSize(height, width, gocv.MatTypeCV8UC1)
	defer mask.Close()
	mask.SetTo(gocv.NewScalar(0, 0, 0, 0))

	pts := gocv.NewPointsVectorFromPoints([][]image.Point{poly.ImagePoints()})
	defer pts.Close()
	gocv.FillPoly(&mask, pts, color.RGBA{255, 255, 255, 255})

	return matToGray(mask)
}

func matToGray(mat gocv.Mat) (*image.Gray, error) {
	if mat.Channels() != 1 {
		return nil, fmt.Errorf("expected 1-channel Mat, got %d channels", mat.Channels())
	}
	rows, cols := mat.Rows(), mat.Cols()
	img := image.NewGray(image.Rect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			img.SetGray(x, y, color.Gray{Y: mat.GetUCharAt(y, x)})
		}
	}
	return img, nil
}

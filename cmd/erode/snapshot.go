package main

import (
	"image"
	"image/color"
	"image/png"
	"log"
	"os"

	"github.com/ob6160/hydroerode/erosion"
)

// mustWriteSnapshots writes two debug PNGs under prefix: a grayscale
// heightmap and a separate blue water-depth mask whose opacity grows with
// depth. This harness has no GUI to drive, so these files are the only view
// of a run's result.
func mustWriteSnapshots(prefix string, grid *erosion.FlatGrid, sim *erosion.Simulation) {
	writeHeightmapPNG(prefix+"_height.png", grid)
	writeWaterPNG(prefix+"_water.png", grid)
}

func writeHeightmapPNG(path string, grid *erosion.FlatGrid) {
	min, max := minMax(grid.HeightBuf)
	img := image.NewGray(image.Rect(0, 0, grid.Width, grid.Height))
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			v := grid.HeightBuf[y*grid.Width+x]
			img.SetGray(x, y, color.Gray{Y: normalizeToByte(v, min, max)})
		}
	}
	writePNG(path, img)
}

func writeWaterPNG(path string, grid *erosion.FlatGrid) {
	_, max := minMax(grid.WaterBuf)
	img := image.NewRGBA(image.Rect(0, 0, grid.Width, grid.Height))
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			w := grid.WaterBuf[y*grid.Width+x]
			depth := normalizeToByte(w, 0, max)
			img.SetRGBA(x, y, color.RGBA{R: 20, G: 40, B: 80 + depth/2, A: depth})
		}
	}
	writePNG(path, img)
}

func writePNG(path string, img image.Image) {
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("erode: creating %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("erode: encoding %s: %v", path, err)
	}
	log.Printf("wrote %s", path)
}

func minMax(vs []float32) (float32, float32) {
	if len(vs) == 0 {
		return 0, 0
	}
	min, max := vs[0], vs[0]
	for _, v := range vs[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

func normalizeToByte(v, min, max float32) uint8 {
	if max-min <= 0 {
		return 0
	}
	t := (v - min) / (max - min)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return uint8(t * 255)
}

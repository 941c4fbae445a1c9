package raster

import (
	"os"

	imgcat "github.com/martinlindhe/imgcat/lib"
)

// This is for debugging purposes only

func dbgShow(pm *Pixmap) {
	pm.SavePNG("/tmp/raster_fill.png")
	imgcat.CatFile("/tmp/raster_fill.png", os.Stdout)
}

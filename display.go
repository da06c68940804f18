package main

import (
	"fmt"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/dialog"
	"github.com/chewxy/math32"
	"image"
	"image/color"

	"SpecMapViewer/colormap"
	"SpecMapViewer/cutout"
	"SpecMapViewer/fitscube"
)

// Pixels with no finite value (blanked map regions) show as mid grey.
var blankColor = color.RGBA{R: 120, G: 120, B: 120, A: 255}

func renderView() {
	if myWin.view == nil || myWin.cmap == nil {
		return
	}

	mapImage := canvas.NewImageFromImage(colormapImage(myWin.view, myWin.cmap, myWin.vmin, myWin.vmax))
	mapImage.FillMode = canvas.ImageFillContain
	myWin.mapImage = mapImage
	myWin.centerContent.Objects[0] = mapImage

	myWin.colorbarImage.Image = colorbarImage(myWin.cmap)
	myWin.colorbarImage.Refresh()

	myWin.vminLabel.SetText(fmt.Sprintf("%.3g", myWin.vmin))
	myWin.vmidLabel.SetText(fmt.Sprintf("%.3g", (myWin.vmin+myWin.vmax)/2))
	myWin.vmaxLabel.SetText(fmt.Sprintf("%.3g", myWin.vmax))

	status := fmt.Sprintf("%d x %d pixels   %s", myWin.view.NX(), myWin.view.NY(), myWin.cmap.Name)
	if myWin.haveBeam {
		status += fmt.Sprintf("   beam %.2g\" x %.2g\" @ %.0f°",
			myWin.beam.MajorDeg*3600, myWin.beam.MinorDeg*3600, myWin.beam.PosAngleDeg)
	}
	myWin.statusLabel.SetText(status)

	myWin.centerContent.Refresh()
}

// colormapImage maps a 2D plane through the colour lookup table. FITS row 0
// sits at the bottom of the map, so rows are flipped for screen display.
func colormapImage(plane *fitscube.Cube, cm *colormap.Colormap, vmin, vmax float64) *image.RGBA {
	nx, ny := plane.NX(), plane.NY()
	img := image.NewRGBA(image.Rect(0, 0, nx, ny))

	span := vmax - vmin
	if span <= 0 {
		span = 1
	}

	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			v := plane.At(y, x)
			if math32.IsNaN(v) || math32.IsInf(v, 0) {
				img.SetRGBA(x, ny-1-y, blankColor)
				continue
			}
			img.SetRGBA(x, ny-1-y, cm.At((float64(v)-vmin)/span))
		}
	}
	return img
}

func colorbarImage(cm *colormap.Colormap) *image.RGBA {
	const width, height = 512, 24
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		col := cm.At(float64(x) / float64(width-1))
		for y := 0; y < height; y++ {
			img.SetRGBA(x, y, col)
		}
	}
	return img
}

func processLevelSliderMove() {
	span := myWin.dataMax - myWin.dataMin
	myWin.vmin = myWin.dataMin + span*myWin.vminSlider.Value/1000.0
	myWin.vmax = myWin.dataMin + span*myWin.vmaxSlider.Value/1000.0
	if myWin.vmax < myWin.vmin {
		myWin.vmin, myWin.vmax = myWin.vmax, myWin.vmin
	}
	renderView()
}

// applyAutoRange picks display limits from the 0.5 and 99.5 percentiles of
// the currently shown region, so a few hot pixels cannot blow out the scale.
func applyAutoRange() {
	if myWin.view == nil {
		return
	}
	lo, hi, err := cutout.PercentileRange(myWin.view, 0.5, 99.5)
	if err != nil {
		dialog.ShowInformation("Oops", err.Error(), myWin.parentWindow)
		return
	}
	myWin.vmin, myWin.vmax = lo, hi

	span := myWin.dataMax - myWin.dataMin
	if span > 0 {
		myWin.vminSlider.SetValue(1000 * (lo - myWin.dataMin) / span)
		myWin.vmaxSlider.SetValue(1000 * (hi - myWin.dataMin) / span)
	}
	renderView()
}

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/dialog"

	"SpecMapViewer/colormap"
)

// The registered maps are built once at startup from the designed parameter
// sets. The normalization against the data range happens at display time, so
// the design-time min/max here only fix where the divergence features sit
// along the bar.
func registerStandardColormaps() {
	both := colormap.MakeOptions{Modes: []colormap.GamutMode{colormap.Clip, colormap.Crop}}

	cp, err := colormap.CreateSpecIndex(-1.3, 0.3, -0.8, -0.1)
	if err != nil {
		panic(err)
	}
	if _, err = colormap.MakeSegmented("CC-specindex-default", cp, both); err != nil {
		panic(err)
	}

	cp, err = colormap.CreateSpecIndexError(colormap.DefaultErrorMapConfig())
	if err != nil {
		panic(err)
	}
	if _, err = colormap.MakeSegmented("CC-specindex-error", cp, both); err != nil {
		panic(err)
	}

	cp, err = colormap.CreateSpecIndexConstantL(75, 35, 70, "left")
	if err != nil {
		panic(err)
	}
	if _, err = colormap.MakeSegmented("CC-specindex-constL", cp, both); err != nil {
		panic(err)
	}

	cp, err = colormap.CreateVelocity(-1, 1, 0, 0.001, colormap.DefaultVelocityConfig())
	if err != nil {
		panic(err)
	}
	if _, err = colormap.MakeSegmented("blue-red", cp, both); err != nil {
		panic(err)
	}

	cp, err = colormap.CreateVelocityDoubleComplement(-1, 1, 0, 0.001)
	if err != nil {
		panic(err)
	}
	if _, err = colormap.MakeSegmented("blue-red-dblcomp", cp, both); err != nil {
		panic(err)
	}
}

func showLCHPlot() {
	if myWin.cmap == nil {
		return
	}

	// Writes lchPlot.png in the current working directory
	err := colormap.SavePlotLCH(myWin.cmap.Points, myWin.cmap.Name, "lchPlot.png")
	if err != nil {
		dialog.ShowInformation("Oops", err.Error(), myWin.parentWindow)
		return
	}

	pngWin := myWin.App.NewWindow("L C H curves")
	pngWin.Resize(fyne.Size{Height: 500, Width: 1000})

	plotImage := canvas.NewImageFromFile("lchPlot.png")
	pngWin.SetContent(plotImage)
	pngWin.CenterOnScreen()
	pngWin.Show()
}

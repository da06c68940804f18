package main

import (
	_ "embed"
	"fmt"
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/astrogo/fitsio"
	"image/color"
	"os"
	"sort"
	"strings"

	"SpecMapViewer/colormap"
	"SpecMapViewer/cutout"
	"SpecMapViewer/fitscube"
	"SpecMapViewer/wcs"
)

type Config struct {
	App           fyne.App
	parentWindow  fyne.Window
	centerContent *fyne.Container
	showFolder    *dialog.FileDialog

	mapImage      *canvas.Image
	colorbarImage *canvas.Image

	fileLabel   *widget.Label
	statusLabel *widget.Label
	vminLabel   *widget.Label
	vmidLabel   *widget.Label
	vmaxLabel   *widget.Label

	cmapSelect     *widget.Select
	vminSlider     *widget.Slider
	vmaxSlider     *widget.Slider
	recenterButton *widget.Button
	fullMapButton  *widget.Button
	lchPlotButton  *widget.Button
	metaButton     *widget.Button

	raStr     binding.String
	decStr    binding.String
	radiusStr binding.String
	trimMode  string

	currentFilePath string
	cube            *fitscube.Cube
	header          *fitsio.Header
	coords          wcs.CoordSystem
	beam            fitscube.Beam
	haveBeam        bool

	view       *fitscube.Cube
	viewCoords wcs.CoordSystem
	cmap       *colormap.Colormap

	dataMin float64
	dataMax float64
	vmin    float64
	vmax    float64
}

const version = " 1.0.0"

//go:embed help.txt
var helpText string

var myWin Config

func main() {

	// We supply an ID (hopefully unique) because we need to use the preferences API
	myApp := app.NewWithID("com.github.specmapviewer")
	myWin.App = myApp

	// We start the app using the dark theme. Anything on the command line selects light.
	myApp.Settings().SetTheme(&forcedVariant{Theme: theme.DefaultTheme(), variant: theme.VariantDark})
	if len(os.Args) > 1 {
		myApp.Settings().SetTheme(&forcedVariant{Theme: theme.DefaultTheme(), variant: theme.VariantLight})
	}

	registerStandardColormaps()

	myWin.raStr = binding.NewString()
	myWin.decStr = binding.NewString()
	myWin.radiusStr = binding.NewString()
	myWin.trimMode = string(cutout.ModeRectangle)

	w := myApp.NewWindow("Spectral index / velocity map viewer" + version)
	w.Resize(fyne.Size{Height: 800, Width: 1200})
	myWin.parentWindow = w

	sliderMax := widget.NewSlider(0, 1000)
	sliderMax.OnChanged = func(value float64) { processLevelSliderMove() }
	sliderMax.Orientation = 1
	sliderMax.Value = 1000
	myWin.vmaxSlider = sliderMax

	sliderMin := widget.NewSlider(0, 1000)
	sliderMin.Orientation = 1
	sliderMin.Value = 0
	sliderMin.OnChanged = func(value float64) { processLevelSliderMove() }
	myWin.vminSlider = sliderMin

	rightItem := container.NewHBox(sliderMin, sliderMax)

	leftItem := container.NewVBox()
	leftItem.Add(widget.NewButton("Select FITS file", func() { chooseFitsFile() }))
	myWin.metaButton = widget.NewButton("Show meta-data", func() { showMetaData() })
	leftItem.Add(myWin.metaButton)
	leftItem.Add(widget.NewButton("Help", func() { showSplash() }))

	leftItem.Add(layout.NewSpacer())

	names := colormap.DefaultRegistry.Names()
	sort.Strings(names)
	myWin.cmapSelect = widget.NewSelect(names, func(opt string) { processColormapSelection(opt) })
	myWin.cmapSelect.PlaceHolder = "Pick a colour map"
	leftItem.Add(myWin.cmapSelect)

	myWin.lchPlotButton = widget.NewButton("Show LCH plot", func() { showLCHPlot() })
	leftItem.Add(myWin.lchPlotButton)

	leftItem.Add(layout.NewSpacer())
	myWin.recenterButton = widget.NewButton("Recenter ...", func() { recenterEntry() })
	leftItem.Add(myWin.recenterButton)
	myWin.fullMapButton = widget.NewButton("Full map", func() { showFullMap() })
	leftItem.Add(myWin.fullMapButton)
	leftItem.Add(widget.NewButton("Auto range", func() { applyAutoRange() }))

	disableMapControls()

	myWin.fileLabel = widget.NewLabel("File name goes here")
	myWin.statusLabel = widget.NewLabel("")

	myWin.colorbarImage = canvas.NewImageFromImage(nil)
	myWin.colorbarImage.SetMinSize(fyne.Size{Width: 512, Height: 24})
	myWin.colorbarImage.FillMode = canvas.ImageFillStretch

	myWin.vminLabel = widget.NewLabel("")
	myWin.vmidLabel = widget.NewLabel("")
	myWin.vmaxLabel = widget.NewLabel("")
	tickRow := container.NewHBox(myWin.vminLabel, layout.NewSpacer(), myWin.vmidLabel, layout.NewSpacer(), myWin.vmaxLabel)

	row1 := container.NewHBox(layout.NewSpacer(), myWin.statusLabel, layout.NewSpacer())
	row2 := container.NewHBox(layout.NewSpacer(), myWin.fileLabel, layout.NewSpacer())

	bottomItem := container.NewVBox(myWin.colorbarImage, tickRow, row1, row2)

	centerItem := widget.NewLabel("") // Blank placeholder until a file is opened
	centerContent := container.NewBorder(
		nil,
		bottomItem,
		leftItem,
		rightItem,
		centerItem)

	myWin.centerContent = centerContent
	w.SetContent(myWin.centerContent)
	w.CenterOnScreen()

	w.ShowAndRun()
}

type forcedVariant struct {
	fyne.Theme

	variant fyne.ThemeVariant
}

func (f *forcedVariant) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return f.Theme.Color(name, f.variant)
}

func enableMapControls() {
	myWin.cmapSelect.Enable()
	myWin.lchPlotButton.Enable()
	myWin.fullMapButton.Enable()
	myWin.metaButton.Enable()
	if myWin.coords != nil {
		myWin.recenterButton.Enable()
	} else {
		myWin.recenterButton.Disable()
	}
}

func disableMapControls() {
	myWin.lchPlotButton.Disable()
	myWin.recenterButton.Disable()
	myWin.fullMapButton.Disable()
	myWin.metaButton.Disable()
}

func chooseFitsFile() {
	showFile := dialog.NewFileOpen(
		func(reader fyne.URIReadCloser, err error) { processFitsFileSelection(reader, err) },
		myWin.parentWindow,
	)
	showFile.SetFilter(storage.NewExtensionFileFilter([]string{".fits", ".fit", ".fts"}))
	showFile.Resize(fyne.Size{
		Width:  800,
		Height: 600,
	})

	lastFitsFolderStr := myWin.App.Preferences().StringWithFallback("lastFitsFolder", "")
	if lastFitsFolderStr != "" {
		uriOfLastFitsFolder := storage.NewFileURI(lastFitsFolderStr)
		fitsDir, err := storage.ListerForURI(uriOfLastFitsFolder)
		if err != nil {
			myWin.App.Preferences().SetString("lastFitsFolder", "")
		} else {
			showFile.SetLocation(fitsDir)
		}
	}

	myWin.showFolder = showFile
	showFile.Show()
}

func processFitsFileSelection(reader fyne.URIReadCloser, err error) {
	if err != nil {
		fmt.Println(fmt.Errorf("%w", err))
		return
	}
	if reader == nil {
		return // User cancelled
	}
	path := reader.URI().Path()
	_ = reader.Close()

	folder := path
	if i := strings.LastIndex(path, "/"); i >= 0 {
		folder = path[:i]
	}
	myWin.App.Preferences().SetString("lastFitsFolder", folder)

	loadFitsFile(path)
}

func loadFitsFile(path string) {
	cube, hdr, err := fitscube.Load(path)
	if err != nil {
		dialog.ShowInformation("Oops", err.Error(), myWin.parentWindow)
		return
	}

	myWin.currentFilePath = path
	myWin.cube = cube
	myWin.header = hdr
	myWin.fileLabel.SetText(path)

	myWin.coords = nil
	coords, err := fitscube.WCSFromHeader(hdr)
	if err != nil {
		fmt.Printf("no usable world coordinates in %s (%v) - recentering disabled\n", path, err)
	} else {
		myWin.coords = coords
	}

	myWin.beam, myWin.haveBeam = fitscube.BeamFromHeader(hdr)

	myWin.view = cube.Plane()
	myWin.viewCoords = myWin.coords

	lo, hi, err := cutout.FiniteRange(myWin.view)
	if err != nil {
		dialog.ShowInformation("Oops", "The map holds no finite values.", myWin.parentWindow)
		return
	}
	myWin.dataMin, myWin.dataMax = lo, hi
	myWin.vmin, myWin.vmax = lo, hi
	myWin.vminSlider.SetValue(0)
	myWin.vmaxSlider.SetValue(1000)

	if myWin.cmap == nil {
		myWin.cmapSelect.SetSelected("CC-specindex-default_clip")
	}

	enableMapControls()
	renderView()
}

func showFullMap() {
	if myWin.cube == nil {
		return
	}
	myWin.view = myWin.cube.Plane()
	myWin.viewCoords = myWin.coords
	renderView()
}

func processColormapSelection(name string) {
	m, ok := colormap.DefaultRegistry.Lookup(name)
	if !ok {
		dialog.ShowInformation("Oops", fmt.Sprintf("No colour map named %s is registered.", name), myWin.parentWindow)
		return
	}
	myWin.cmap = m
	renderView()
}

func showMetaData() {
	if myWin.header == nil {
		return
	}
	metaWin := myWin.App.NewWindow("FITS Meta-data")
	metaWin.Resize(fyne.Size{Height: 600, Width: 700})

	metaData := ""
	for i := 0; i < len(myWin.header.Keys()); i += 1 {
		card := myWin.header.Card(i)
		if card.Comment == "" {
			metaData += fmt.Sprintf("%8s: %8v\n", card.Name, card.Value)
		} else {
			metaData += fmt.Sprintf("%8s: %8v (%s)\n", card.Name, card.Value, card.Comment)
		}
	}

	scrollableText := container.NewVScroll(widget.NewRichTextWithText(metaData))
	metaWin.SetContent(scrollableText)
	metaWin.Show()
	metaWin.CenterOnScreen()
}

func showSplash() {
	helpWin := myWin.App.NewWindow("Hello")
	helpWin.Resize(fyne.Size{Height: 450, Width: 700})
	scrollableText := container.NewVScroll(widget.NewRichTextWithText(helpText))
	helpWin.SetContent(scrollableText)
	helpWin.Show()
	helpWin.CenterOnScreen()
}

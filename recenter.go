package main

import (
	"fmt"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"math"
	"strconv"
	"strings"

	"SpecMapViewer/cutout"
	"SpecMapViewer/wcs"
)

// recenterEntry asks for a sky position and a radius, then cuts the map
// around it. RA goes in as "h m s", Dec as "d m s" (sexagesimal, the way
// observers quote positions), radius in degrees.
func recenterEntry() {
	raWidget := widget.NewEntryWithData(myWin.raStr)
	raWidget.PlaceHolder = "13 29 52.7"
	decWidget := widget.NewEntryWithData(myWin.decStr)
	decWidget.PlaceHolder = "47 11 43"
	radiusWidget := widget.NewEntryWithData(myWin.radiusStr)
	radiusWidget.PlaceHolder = "0.05"

	modeWidget := widget.NewSelect(
		[]string{string(cutout.ModeRectangle), string(cutout.ModeNoTrim)},
		func(opt string) { myWin.trimMode = opt })
	modeWidget.SetSelected(myWin.trimMode)

	items := []*widget.FormItem{
		widget.NewFormItem("RA (h m s)", raWidget),
		widget.NewFormItem("Dec (d m s)", decWidget),
		widget.NewFormItem("radius (deg)", radiusWidget),
		widget.NewFormItem("trim mode", modeWidget),
	}
	recenterForm := dialog.NewForm("Recenter on sky position", "OK", "Cancel", items,
		func(ok bool) { processRecenterEntryInfo(ok) }, myWin.parentWindow)
	recenterForm.Show()
}

func processRecenterEntryInfo(ok bool) {
	if !ok {
		return // User cancelled
	}

	raStr, err0 := myWin.raStr.Get()
	decStr, err1 := myWin.decStr.Get()
	radiusStr, err2 := myWin.radiusStr.Get()
	if err0 != nil || err1 != nil || err2 != nil {
		dialog.ShowInformation("Oops", "format error", myWin.parentWindow)
		return
	}

	lon, err := parseSexagesimal(raStr)
	if err != nil {
		dialog.ShowInformation("Oops", "RA needs three numbers: hours minutes seconds.", myWin.parentWindow)
		return
	}
	lon *= 15.0 // hours to degrees

	lat, err := parseSexagesimal(decStr)
	if err != nil {
		dialog.ShowInformation("Oops", "Dec needs three numbers: degrees minutes seconds.", myWin.parentWindow)
		return
	}

	radius, err := strconv.ParseFloat(strings.TrimSpace(radiusStr), 64)
	if err != nil || radius <= 0 {
		dialog.ShowInformation("Oops", "A radius > 0 (in degrees) is needed.", myWin.parentWindow)
		return
	}

	doRecenter(lon, lat, radius)
}

// parseSexagesimal turns "h m s" (or "d m s") into a decimal value. The sign
// of the leading term carries to the minutes and seconds.
func parseSexagesimal(s string) (float64, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return 0, fmt.Errorf("expected three fields, got %d", len(fields))
	}
	var parts [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return 0, err
		}
		parts[i] = v
	}
	value := math.Abs(parts[0]) + parts[1]/60.0 + parts[2]/3600.0
	if strings.HasPrefix(strings.TrimSpace(s), "-") {
		value = -value
	}
	return value, nil
}

func doRecenter(lon, lat, radius float64) {
	if myWin.cube == nil || myWin.coords == nil {
		return
	}

	center := wcs.SkyCoord{Lon: lon, Lat: lat, Frame: myWin.coords.Frame()}
	size := cutout.Size{Radius: radius}

	view, viewCoords, report, err := cutout.Trim(myWin.cube, myWin.coords, cutout.Mode(myWin.trimMode), size, center)
	if err != nil {
		dialog.ShowInformation("Oops", err.Error(), myWin.parentWindow)
		return
	}

	myWin.view = view
	myWin.viewCoords = viewCoords
	renderView()

	if report.Clamped {
		dialog.ShowInformation("Information",
			fmt.Sprintf("The requested radius ran past the map edge.\n"+
				"The cutout was reduced to %d x %d pixels, still centered on the position.",
				report.Bounds.X1-report.Bounds.X0, report.Bounds.Y1-report.Bounds.Y0),
			myWin.parentWindow)
	}
}

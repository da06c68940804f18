package colormap

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// SavePlotLCH writes a diagnostic plot of the interpolated L, C and H
// curves of a control point set to pngPath. Hue is divided by 3.6 so all
// three curves share the 0-100 axis.
func SavePlotLCH(cp ControlPoints, title, pngPath string) error {
	if err := cp.Validate(); err != nil {
		return err
	}

	const n = 101
	lPts := make(plotter.XYs, n)
	cPts := make(plotter.XYs, n)
	hPts := make(plotter.XYs, n)
	for i := 0; i < n; i++ {
		x := float64(i) / float64(n-1)
		lPts[i].X = x
		lPts[i].Y = interpAt(cp.Pos, cp.L, x)
		cPts[i].X = x
		cPts[i].Y = interpAt(cp.Pos, cp.C, x)
		hPts[i].X = x
		h := interpAt(cp.Pos, cp.H, x)
		for h < 0 {
			h += 360.0
		}
		for h >= 360.0 {
			h -= 360.0
		}
		hPts[i].Y = h / 3.6
	}

	plot.DefaultFont = font.Font{Typeface: "Liberation", Variant: "Sans", Style: 0, Weight: 3, Size: font.Points(20)}

	plt := plot.New()
	plt.X.Min = 0
	plt.X.Max = 1
	plt.Y.Min = 0
	plt.Y.Max = 100
	plt.Title.Text = title
	plt.X.Label.Text = "position along bar"
	plt.Y.Label.Text = "L / C / H÷3.6"

	err := plotutil.AddLines(plt, "L", lPts, "C", cPts, "H", hPts)
	if err != nil {
		return err
	}

	return plt.Save(10*vg.Inch, 5*vg.Inch, pngPath)
}

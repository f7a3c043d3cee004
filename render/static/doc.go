// Package static draws PLS diagnostics with gonum.org/v1/plot.
//
// A Renderer is built from an explicit Theme; there is no package-level
// style state. Every method returns Figures: grids of *plot.Plot that can be
// written as png, jpg, tiff, svg, pdf or eps.
//
//	r := static.NewRenderer(static.DefaultTheme())
//	fig, err := r.PlotLoadings(m, vars, meta, layout.WithFactor(0.5))
//	if err != nil { ... }
//	err = fig.Save("loadings.svg")
package static

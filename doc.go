// Package plsviz draws diagnostic figures for fitted PLS regression models:
// predicted-vs-observed scatter plots, coefficient plots and loading biplots.
//
// 🚀 What is plsviz?
//
//	A small, stateless toolkit that brings together:
//		• Model views: a read-only PLS model and its YAML/JSON document form
//		• Data adapter: coefficient tables, loading-family selection
//		• Geometry: component-pair projection, vector scaling, label anchors,
//		  axis limits and category grouping for biplots
//		• Static figures on gonum/plot (png, svg, pdf, eps, jpg, tiff)
//		• Interactive pages on go-echarts (hover tooltips, one HTML page)
//
// ✨ Why choose plsviz?
//
//   - No hidden state: themes are values handed to each renderer
//   - Fail-fast: shape, index and attribute errors surface before any drawing
//   - Pure Go: no cgo
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/             - dense storage, kernels, R², gonum interop
//	model/              - FittedModel, PLS, model documents
//	adapter/            - VariableSet, Metadata, coefficients, Family selection
//	layout/             - biplot geometry
//	style/              - shared palette
//	render/static/      - gonum/plot figures
//	render/interactive/ - go-echarts charts and pages
//	wget/               - notebook download commands
//	cmd/plsplot/        - command-line front end
//
// Quick ASCII biplot:
//
//	        │  ● A
//	   y1 ↖ │
//	────────┼────────
//	        │ ↘ y2
//	● C     │    ● B
//
// predictors are points, responses are vectors from the origin.
//
//	go install github.com/katalvlaran/plsviz/cmd/plsplot@latest
package plsviz

// Package interactive builds hoverable PLS diagnostics with go-echarts.
//
// Charts are go-echarts values; compose several with Renderer.Page and
// write the HTML with RenderPage. Styling comes from the Theme given to
// NewRenderer.
package interactive

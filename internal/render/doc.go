// Package render draws chart views as PNG or SVG images with go-chart and
// formats entry lists as terminal tables with lipgloss.
package render

// Package templates renders the HTML pages of the stock search UI as templ
// components. The _templ.go files are generated from the .templ sources.
package templates

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.960 generate

// AppTitle is shown in the browser tab and page header.
const AppTitle = "Pipe Stock Search Tool"

// Banner kinds.
const (
	bannerInfo  = "info"
	bannerWarn  = "warn"
	bannerError = "error"
)

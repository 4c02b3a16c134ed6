// Package component contains the presentational components the host renders
// for a selected dashboard tab.
//
// Components only describe a table (title, headers, rows). Rendering to HTML
// or to a terminal lives in this package too, so hosts never assemble markup.
package component

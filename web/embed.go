// Package web carries the embedded UI assets so the binary ships
// self-contained.
package web

import "embed"

// TemplatesFS holds the server-rendered page and fragment templates.
//
//go:embed templates/*.html
var TemplatesFS embed.FS

// StaticFS holds the stylesheet and the HTMX glue script.
//
//go:embed static/*
var StaticFS embed.FS

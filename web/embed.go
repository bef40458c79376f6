// Package web holds default templates and static files.
// Those are the bottom layer of application layered filesystem,
// so any file can be overridden from working directory.
package web

import "embed"

//go:embed templates/**
//go:embed static/**
var FS embed.FS

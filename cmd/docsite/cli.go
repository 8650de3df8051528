package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/awalczuk/docsite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Source docsite.EntitySource
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Build    BuildCmd    `cmd:"" help:"Generate the navigation tree and search index artifacts"`
	Validate ValidateCmd `cmd:"" help:"Check an entity collection against the extractor contract"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Input   string `arg:"" help:"Entity dump (.json) or entity database (.db, .sqlite)"`
	Out     string `short:"o" help:"Output directory (default: $DOCSITE_OUT or ./site)"`
	Gzip    bool   `help:"Also write precompressed .gz artifact siblings"`
	Verbose bool   `short:"v" help:"Log build steps"`
}

// ValidateCmd is the "validate" subcommand.
type ValidateCmd struct {
	Input string `arg:"" help:"Entity dump (.json) or entity database (.db, .sqlite)"`
}

package main

import (
	"context"
	"io"

	"github.com/fwojciec/docview"
	"github.com/fwojciec/docview/nav"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Session  *nav.Session
	Terminal docview.Renderer
	HTML     docview.Renderer
	Outline  docview.OutlineBuilder
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	View   ViewCmd   `cmd:"" help:"Render a document"`
	Search SearchCmd `cmd:"" help:"Search the documentation"`
	Toc    TocCmd    `cmd:"" help:"Show a document's table of contents"`
	Tree   TreeCmd   `cmd:"" help:"Show the document tree"`
	Info   InfoCmd   `cmd:"" help:"Show site information"`
}

// ViewCmd is the "view" subcommand.
type ViewCmd struct {
	Slug string `arg:"" optional:"" help:"Document slug (defaults to the site's default page)"`
	HTML bool   `help:"Render HTML instead of terminal output"`
	Raw  bool   `help:"Print transformed markdown without rendering"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Search query"`
}

// TocCmd is the "toc" subcommand.
type TocCmd struct {
	Slug string `arg:"" optional:"" help:"Document slug (defaults to the site's default page)"`
}

// TreeCmd is the "tree" subcommand.
type TreeCmd struct{}

// InfoCmd is the "info" subcommand.
type InfoCmd struct{}

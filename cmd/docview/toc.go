package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/docview"
)

// Run executes the toc command.
func (c *TocCmd) Run(deps *Dependencies) error {
	doc, err := deps.Session.Navigate(deps.Ctx, c.Slug, "")
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docview.ErrorMessage(err))
		return err
	}

	markup, err := deps.HTML.Render(deps.Ctx, doc.Content, doc.Title)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docview.ErrorMessage(err))
		return err
	}

	entries, err := deps.Outline.Outline(markup)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docview.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintf(deps.Stdout, "%s has no sections.\n", doc.Title)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "%s\n\n", doc.Title)
	for _, e := range entries {
		indent := strings.Repeat("  ", e.Level-2)
		fmt.Fprintf(deps.Stdout, "%s%s (#%s)\n", indent, e.Title, e.Anchor)
	}

	return nil
}

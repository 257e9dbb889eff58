package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/docview"
)

// Run executes the view command.
func (c *ViewCmd) Run(deps *Dependencies) error {
	doc, err := deps.Session.Navigate(deps.Ctx, c.Slug, "")
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docview.ErrorMessage(err))
		return err
	}

	if c.Raw {
		fmt.Fprintln(deps.Stdout, doc.Content)
		return nil
	}

	renderer := deps.Terminal
	if c.HTML {
		renderer = deps.HTML
	}

	out, err := renderer.Render(deps.Ctx, doc.Content, doc.Title)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docview.ErrorMessage(err))
		return err
	}

	if crumb := deps.Session.Breadcrumb(); !c.HTML && len(crumb) > 0 {
		fmt.Fprintf(deps.Stdout, "%s\n", strings.Join(crumb, " / "))
	}
	fmt.Fprintln(deps.Stdout, out)
	return nil
}

package main

import (
	"fmt"

	"github.com/fwojciec/docview"
)

// Run executes the info command.
func (c *InfoCmd) Run(deps *Dependencies) error {
	idx := deps.Session.Index()

	fmt.Fprintf(deps.Stdout, "Site:         %s\n", idx.Metadata.SiteName)
	if idx.Author.Name != "" {
		author := idx.Author.Name
		if idx.Author.Role != "" {
			author += " (" + idx.Author.Role + ")"
		}
		fmt.Fprintf(deps.Stdout, "Author:       %s\n", author)
	}
	fmt.Fprintf(deps.Stdout, "Default page: ?%s\n", idx.DefaultPage)
	fmt.Fprintf(deps.Stdout, "Pages:        %d\n", len(docview.Pages(idx.Documents)))

	return nil
}

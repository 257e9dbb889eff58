package main

import (
	"fmt"

	"github.com/fwojciec/docview"
)

// Run executes the tree command.
func (c *TreeCmd) Run(deps *Dependencies) error {
	tree := docview.FormatTree(deps.Session.Index().Documents)
	if tree == "" {
		fmt.Fprintln(deps.Stdout, "No documents.")
		return nil
	}
	fmt.Fprint(deps.Stdout, tree)
	return nil
}

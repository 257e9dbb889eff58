package main

import "fmt"

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	results := deps.Session.Search(c.Query)

	if len(results) == 0 {
		fmt.Fprintf(deps.Stdout, "No results for %q.\n", c.Query)
		return nil
	}

	for _, r := range results {
		location := r.Location
		if location == "" {
			location = "/"
		}
		fmt.Fprintf(deps.Stdout, "%3d  %-6s  %-30s  %s  (?%s)\n", r.Score, r.Type, r.Title, location, r.Slug)
	}

	return nil
}

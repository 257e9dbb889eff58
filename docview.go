// Package docview provides a viewer for statically generated documentation
// sites: it loads a JSON document index and markdown files, resolves slugs
// through the document tree, builds an in-memory search index with a scored
// query engine, and transforms documents (front-matter, wiki-links, media
// embeds) before handing them to a renderer.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, fs/, goldmark/, glamour/).
package docview

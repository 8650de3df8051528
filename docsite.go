// Package docsite builds the navigation tree and client-side search index
// for a statically generated documentation site. An external extractor
// supplies a flat, fully resolved collection of documentable entities
// (classes, modules, files); this package turns it into the nested tree
// consumed by the site's navigation panel and the flat record list consumed
// by the in-browser fuzzy search.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., tree/, search/, fs/,
// sqlite/).
package docsite

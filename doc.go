// Package prose converts a lightweight prose markup into HTML.
//
// # Quick Start
//
//	doc := prose.NewDocument("Hello\n=====\n\nSome *bold* text.\n")
//	html := doc.Render(prose.Full)
//
// # Modes
//
// Full trusts the author: embedded HTML passes through and headers are
// rendered. Lite is meant for untrusted input such as comments: HTML is
// escaped, headers are skipped and links are marked rel='nofollow'.
//
// # Documents
//
// A Document derives its title from the first "=" underlined line, its id
// from the title slug (or SetID), and its metadata from lines of the form
//
//	@author: "cloudhead"
//
// Metadata lines and // comments never appear in the output.
//
// # Formats
//
// Encode writes the fragment as HTML, or wraps it in a JSON or YAML
// envelope carrying the title, date-based id and uri, and metadata.
// Page wraps it in a standalone HTML page using an embedded or custom
// style and layout.
//
// # Concurrency
//
// Render and the default pipeline are safe for concurrent use. A Document
// caches derived fields without locking and must not be shared between
// goroutines.
package prose

// Package assets provides the CSS styles and HTML layouts used to wrap a
// rendered fragment in a standalone page.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in styles and layouts (go:embed)
//	    ├── FilesystemLoader  - custom directory on disk
//	    └── AssetResolver     - custom first, embedded as fallback
//
// AssetResolver lets a user override a single style or layout while
// keeping the built-in ones for everything else.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css     # e.g. default.css, plain.css
//	└── layouts/
//	    └── {name}.html    # html/template page layout
//
// # Security
//
// Asset names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within basePath.
package assets

// Names of the built-in assets.
const (
	DefaultStyleName  = "default"
	DefaultLayoutName = "page"
)

package prose

import "github.com/alnah/go-prose/internal/assets"

// AssetLoader loads CSS styles and page layouts by name.
type AssetLoader = assets.AssetLoader

// Asset lookup errors.
var (
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrLayoutNotFound   = assets.ErrLayoutNotFound
	ErrInvalidAssetName = assets.ErrInvalidAssetName
)

// Built-in asset names.
const (
	DefaultStyle  = assets.DefaultStyleName
	DefaultLayout = assets.DefaultLayoutName
)

// NewAssetLoader returns a loader reading {basePath}/styles/*.css and
// {basePath}/layouts/*.html, falling back to the built-in assets.
// An empty basePath uses the built-in assets only.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	return assets.NewAssetResolver(basePath)
}

// Styles lists the built-in style names.
func Styles() []string {
	return assets.Styles()
}

// Layouts lists the built-in layout names.
func Layouts() []string {
	return assets.Layouts()
}

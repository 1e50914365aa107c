package prose

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/alnah/go-prose/internal/assets"
)

// NoStyle disables the <style> block of a standalone page.
const NoStyle = "none"

// PageData is the value passed to a page layout.
type PageData struct {
	Lang     string
	Title    string
	Style    template.CSS
	Body     template.HTML
	Metadata map[string]string
}

type pageConfig struct {
	style  string
	layout string
	lang   string
	loader AssetLoader
}

// PageOption configures Document.Page.
type PageOption func(*pageConfig)

// WithStyle selects the CSS style by name. NoStyle omits the style block.
func WithStyle(name string) PageOption {
	return func(c *pageConfig) {
		c.style = name
	}
}

// WithLayout selects the page layout by name.
func WithLayout(name string) PageOption {
	return func(c *pageConfig) {
		c.layout = name
	}
}

// WithLang sets the lang attribute of the page.
func WithLang(lang string) PageOption {
	return func(c *pageConfig) {
		c.lang = lang
	}
}

// WithAssets sets the loader used for styles and layouts.
func WithAssets(loader AssetLoader) PageOption {
	return func(c *pageConfig) {
		c.loader = loader
	}
}

// Page renders the document as a complete HTML page. The fragment is
// inserted as-is; title and metadata are escaped by the layout.
func (d *Document) Page(mode Mode, opts ...PageOption) ([]byte, error) {
	cfg := pageConfig{
		style:  DefaultStyle,
		layout: DefaultLayout,
		lang:   "en",
		loader: assets.NewEmbeddedLoader(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	layout, err := cfg.loader.LoadLayout(cfg.layout)
	if err != nil {
		return nil, err
	}
	tmpl, err := template.New(cfg.layout).Parse(layout)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %q: %v", ErrLayoutRender, cfg.layout, err)
	}

	var style string
	if cfg.style != NoStyle {
		if style, err = cfg.loader.LoadStyle(cfg.style); err != nil {
			return nil, err
		}
	}

	meta := d.Metadata()
	title, ok := d.Title()
	if !ok {
		title = meta[KeyTitle]
	}

	data := PageData{
		Lang:     cfg.lang,
		Title:    title,
		Style:    template.CSS(style),           // #nosec G203 -- style comes from the asset loader
		Body:     template.HTML(d.Render(mode)), // #nosec G203 -- rendered fragment
		Metadata: meta,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLayoutRender, err)
	}
	return buf.Bytes(), nil
}

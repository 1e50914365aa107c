package prose

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/alnah/go-prose/internal/dateutil"
	"github.com/alnah/go-prose/internal/yamlutil"
)

// Envelope keys computed from the document. They win over metadata keys
// of the same name.
const (
	KeyTitle     = "title"
	KeyID        = "id"
	KeyURI       = "uri"
	KeyTimestamp = "timestamp"
	KeyDate      = "date"
	KeyBody      = "body"
)

// Body renders the document and removes the title header once. Other
// <h1> elements, such as raw markup ahead of the title line, are kept.
func (d *Document) Body(mode Mode) string {
	html := d.Render(mode)
	header, ok := d.titleHeader(mode)
	if !ok {
		return html
	}
	i := strings.Index(html, header)
	if i < 0 {
		return html
	}
	end := i + len(header)
	if strings.HasPrefix(html[end:], "\n") {
		end++
	}
	return html[:i] + html[end:]
}

// titleHeader renders the title line on its own, giving the exact header
// the title produces in the full fragment. Lite mode has no headers.
func (d *Document) titleHeader(mode Mode) (string, bool) {
	title, ok := d.Title()
	if !ok || mode != Full {
		return "", false
	}
	header := strings.TrimSuffix(Render(title+"\n=\n", Full), "\n")
	return header, strings.HasPrefix(header, "<h1>")
}

// Envelope returns the metadata merged with the computed fields:
// title, id, uri, timestamp, date and body. now supplies the date.
// It returns ErrNoTitle when the id cannot be derived.
func (d *Document) Envelope(mode Mode, now time.Time) (map[string]any, error) {
	id, err := d.ID()
	if err != nil {
		return nil, err
	}

	meta := d.Metadata()
	env := make(map[string]any, len(meta)+6)
	for k, v := range meta {
		env[k] = v
	}

	env[KeyTitle] = d.titleValue()
	env[KeyID] = dateutil.MustFormatDate(dateutil.ISOFormat, now) + "-" + id
	env[KeyURI] = "/" + dateutil.MustFormatDate(dateutil.PathFormat, now) + "/" + id
	env[KeyTimestamp] = now.Unix()
	env[KeyDate] = dateutil.MustFormatDate(dateutil.LongFormat, now)
	env[KeyBody] = d.Body(mode)

	return env, nil
}

// JSON serializes the envelope. HTML in the body is not escaped.
func (d *Document) JSON(mode Mode, now time.Time) ([]byte, error) {
	env, err := d.Envelope(mode, now)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		return nil, fmt.Errorf("encoding json: %w", err)
	}
	return buf.Bytes(), nil
}

// YAML serializes the metadata plus title, date (YYYY/MM/DD) and body.
// Metadata keys come first in sorted order. A document without a title
// is encoded with a null title.
func (d *Document) YAML(mode Mode, now time.Time) ([]byte, error) {
	meta := d.Metadata()
	keys := make([]string, 0, len(meta))
	for k := range meta {
		if k == KeyTitle || k == KeyDate || k == KeyBody {
			continue
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)

	fields := make([]yamlutil.Field, 0, len(keys)+3)
	for _, k := range keys {
		fields = append(fields, yamlutil.Field{Key: k, Value: meta[k]})
	}
	fields = append(fields,
		yamlutil.Field{Key: KeyTitle, Value: d.titleValue()},
		yamlutil.Field{Key: KeyDate, Value: dateutil.MustFormatDate(dateutil.PathFormat, now)},
		yamlutil.Field{Key: KeyBody, Value: d.Body(mode)},
	)

	out, err := yamlutil.MarshalFields(fields)
	if err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	return out, nil
}

// Encode renders the document in the given format. FormatHTML returns
// the full fragment, title header included.
func (d *Document) Encode(format Format, mode Mode, now time.Time) ([]byte, error) {
	switch format {
	case FormatHTML:
		return []byte(d.Render(mode)), nil
	case FormatJSON:
		return d.JSON(mode, now)
	case FormatYAML:
		return d.YAML(mode, now)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// titleValue returns the title, or nil so encoders emit null.
func (d *Document) titleValue() any {
	if title, ok := d.Title(); ok {
		return title
	}
	return nil
}

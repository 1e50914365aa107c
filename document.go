package prose

import (
	"fmt"
	"io"
	"maps"
	"regexp"
	"strings"

	"github.com/alnah/go-prose/internal/pipeline"
)

// MaxInputSize limits ReadDocument input (default 10MB).
var MaxInputSize int64 = 10 << 20

var (
	// Characters allowed in an explicit id.
	validID = regexp.MustCompile(`^[a-z0-9-]+$`)

	// Runs of characters a slug cannot carry.
	nonSlug = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify lower-cases title and replaces every run of characters outside
// [a-z0-9] with a single hyphen. Leading and trailing hyphens are kept.
func Slugify(title string) string {
	return nonSlug.ReplaceAllString(strings.ToLower(title), "-")
}

// ValidateID reports whether id may be assigned with SetID.
func ValidateID(id string) error {
	if !validID.MatchString(id) {
		return fmt.Errorf("%w: %q (only lowercase letters, digits and hyphens)", ErrInvalidID, id)
	}
	return nil
}

// Document owns a source text and lazily derives its title, id and
// metadata. Each derived field is computed once and cached.
//
// A Document is not safe for concurrent use: the caches are unguarded.
// Use one Document per goroutine.
type Document struct {
	text string

	title      string
	titleFound bool
	titleDone  bool

	explicitID string
	derivedID  string
	idDone     bool

	metadata     map[string]string
	metadataDone bool
}

// NewDocument creates a Document from source text.
func NewDocument(text string) *Document {
	return &Document{text: text}
}

// ReadDocument reads source text from r. It returns ErrEmptyInput when the
// input holds only whitespace and ErrInputTooLarge past MaxInputSize.
func ReadDocument(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxInputSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	if int64(len(data)) > MaxInputSize {
		return nil, fmt.Errorf("%w: max %d bytes", ErrInputTooLarge, MaxInputSize)
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, ErrEmptyInput
	}
	return NewDocument(string(data)), nil
}

// Text returns the source text.
func (d *Document) Text() string {
	return d.text
}

// SetText replaces the source text. Cached fields are kept; call
// ClearCache to derive them again.
func (d *Document) SetText(text string) {
	d.text = text
}

// Title returns the text of the first "=" underlined line.
func (d *Document) Title() (string, bool) {
	if !d.titleDone {
		d.title, d.titleFound = pipeline.MatchTitle(d.text)
		d.titleDone = true
	}
	return d.title, d.titleFound
}

// ID returns the explicit id if one was set, otherwise the slug of the
// title. It returns ErrNoTitle when neither exists.
func (d *Document) ID() (string, error) {
	if d.explicitID != "" {
		return d.explicitID, nil
	}
	if !d.idDone {
		if title, ok := d.Title(); ok {
			d.derivedID = Slugify(title)
		}
		d.idDone = true
	}
	if d.derivedID == "" {
		return "", ErrNoTitle
	}
	return d.derivedID, nil
}

// SetID assigns an explicit id. On a validation error the previous id is kept.
func (d *Document) SetID(id string) error {
	if err := ValidateID(id); err != nil {
		return err
	}
	d.explicitID = id
	return nil
}

// Metadata returns a copy of the @key: value lines of the source text.
// A repeated key keeps its last value.
func (d *Document) Metadata() map[string]string {
	if !d.metadataDone {
		d.metadata = pipeline.ScanMetadata(d.text)
		d.metadataDone = true
	}
	return maps.Clone(d.metadata)
}

// ClearCache discards the derived title, id and metadata. An explicit id
// set with SetID is kept.
func (d *Document) ClearCache() {
	d.title, d.titleFound, d.titleDone = "", false, false
	d.derivedID, d.idDone = "", false
	d.metadata, d.metadataDone = nil, false
}

// Render converts the source text to an HTML fragment.
func (d *Document) Render(mode Mode) string {
	return Render(d.text, mode)
}

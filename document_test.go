package prose

import (
	"errors"
	"maps"
	"strings"
	"testing"
	"testing/iotest"
)

const post = "Hello World\n===========\n\n@author: \"cloudhead\"\n@tags: go\n\nSome *bold* text.\n"

// ---------------------------------------------------------------------------
// TestSlugify / TestValidateID - Id derivation
// ---------------------------------------------------------------------------

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"Go 1.25 is out!", "go-1-25-is-out-"},
		{"  spaced  ", "-spaced-"},
		{"already-slug", "already-slug"},
		{"Déjà vu", "d-j-vu"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id      string
		wantErr bool
	}{
		{"hello-world", false},
		{"2026", false},
		{"", true},
		{"Hello", true},
		{"a b", true},
		{"a/b", true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			t.Parallel()

			err := ValidateID(tt.id)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidID) {
				t.Errorf("ValidateID(%q) error = %v, want ErrInvalidID", tt.id, err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDocument - Title, id and metadata accessors
// ---------------------------------------------------------------------------

func TestDocument_Title(t *testing.T) {
	t.Parallel()

	t.Run("underlined first line", func(t *testing.T) {
		t.Parallel()

		title, ok := NewDocument(post).Title()
		if !ok || title != "Hello World" {
			t.Errorf("Title() = (%q, %v), want (%q, true)", title, ok, "Hello World")
		}
	})

	t.Run("no title", func(t *testing.T) {
		t.Parallel()

		if title, ok := NewDocument("just text\n").Title(); ok {
			t.Errorf("Title() = (%q, true), want no title", title)
		}
	})
}

func TestDocument_ID(t *testing.T) {
	t.Parallel()

	t.Run("derived from title", func(t *testing.T) {
		t.Parallel()

		id, err := NewDocument(post).ID()
		if err != nil {
			t.Fatalf("ID() unexpected error: %v", err)
		}
		if id != "hello-world" {
			t.Errorf("ID() = %q, want %q", id, "hello-world")
		}
	})

	t.Run("no title returns ErrNoTitle", func(t *testing.T) {
		t.Parallel()

		_, err := NewDocument("no title here\n").ID()
		if !errors.Is(err, ErrNoTitle) {
			t.Errorf("ID() error = %v, want ErrNoTitle", err)
		}
	})

	t.Run("explicit id wins", func(t *testing.T) {
		t.Parallel()

		doc := NewDocument(post)
		if err := doc.SetID("custom"); err != nil {
			t.Fatalf("SetID() unexpected error: %v", err)
		}
		if id, _ := doc.ID(); id != "custom" {
			t.Errorf("ID() = %q, want %q", id, "custom")
		}
	})

	t.Run("explicit id without title", func(t *testing.T) {
		t.Parallel()

		doc := NewDocument("untitled\n")
		if err := doc.SetID("note-1"); err != nil {
			t.Fatalf("SetID() unexpected error: %v", err)
		}
		if id, err := doc.ID(); err != nil || id != "note-1" {
			t.Errorf("ID() = (%q, %v), want (%q, nil)", id, err, "note-1")
		}
	})

	t.Run("invalid id keeps previous", func(t *testing.T) {
		t.Parallel()

		doc := NewDocument(post)
		if err := doc.SetID("first"); err != nil {
			t.Fatal(err)
		}
		if err := doc.SetID("Not Valid"); !errors.Is(err, ErrInvalidID) {
			t.Errorf("SetID() error = %v, want ErrInvalidID", err)
		}
		if id, _ := doc.ID(); id != "first" {
			t.Errorf("ID() = %q, want %q", id, "first")
		}
	})
}

func TestDocument_Metadata(t *testing.T) {
	t.Parallel()

	doc := NewDocument(post)
	want := map[string]string{"author": "cloudhead", "tags": "go"}
	if got := doc.Metadata(); !maps.Equal(got, want) {
		t.Errorf("Metadata() = %v, want %v", got, want)
	}

	// Callers get a copy.
	doc.Metadata()["author"] = "someone"
	if got := doc.Metadata()["author"]; got != "cloudhead" {
		t.Errorf("Metadata()[author] = %q after mutation, want %q", got, "cloudhead")
	}
}

// ---------------------------------------------------------------------------
// TestDocument_Cache - Memoization and ClearCache
// ---------------------------------------------------------------------------

func TestDocument_Cache(t *testing.T) {
	t.Parallel()

	t.Run("SetText keeps cached fields", func(t *testing.T) {
		t.Parallel()

		doc := NewDocument(post)
		doc.Title()
		doc.SetText("Other\n=====\n")

		if title, _ := doc.Title(); title != "Hello World" {
			t.Errorf("Title() = %q, want cached %q", title, "Hello World")
		}
		if got := doc.Text(); got != "Other\n=====\n" {
			t.Errorf("Text() = %q, want new text", got)
		}
	})

	t.Run("ClearCache derives again", func(t *testing.T) {
		t.Parallel()

		doc := NewDocument(post)
		doc.Title()
		doc.ID()
		doc.Metadata()
		doc.SetText("Other\n=====\n\n@lang: fr\n")
		doc.ClearCache()

		if title, _ := doc.Title(); title != "Other" {
			t.Errorf("Title() = %q, want %q", title, "Other")
		}
		if id, _ := doc.ID(); id != "other" {
			t.Errorf("ID() = %q, want %q", id, "other")
		}
		if got := doc.Metadata(); !maps.Equal(got, map[string]string{"lang": "fr"}) {
			t.Errorf("Metadata() = %v, want map[lang:fr]", got)
		}
	})

	t.Run("ClearCache keeps explicit id", func(t *testing.T) {
		t.Parallel()

		doc := NewDocument(post)
		if err := doc.SetID("pinned"); err != nil {
			t.Fatal(err)
		}
		doc.ClearCache()
		if id, _ := doc.ID(); id != "pinned" {
			t.Errorf("ID() = %q, want %q", id, "pinned")
		}
	})
}

// ---------------------------------------------------------------------------
// TestReadDocument - Reader input
// ---------------------------------------------------------------------------

func TestReadDocument(t *testing.T) {
	t.Parallel()

	t.Run("reads text", func(t *testing.T) {
		t.Parallel()

		doc, err := ReadDocument(strings.NewReader(post))
		if err != nil {
			t.Fatalf("ReadDocument() unexpected error: %v", err)
		}
		if doc.Text() != post {
			t.Errorf("Text() = %q, want %q", doc.Text(), post)
		}
	})

	t.Run("blank input returns ErrEmptyInput", func(t *testing.T) {
		t.Parallel()

		_, err := ReadDocument(strings.NewReader(" \n\t\n"))
		if !errors.Is(err, ErrEmptyInput) {
			t.Errorf("ReadDocument() error = %v, want ErrEmptyInput", err)
		}
	})

	t.Run("read failure is returned", func(t *testing.T) {
		t.Parallel()

		readErr := errors.New("boom")
		_, err := ReadDocument(iotest.ErrReader(readErr))
		if !errors.Is(err, readErr) {
			t.Errorf("ReadDocument() error = %v, want %v", err, readErr)
		}
	})
}

// Not parallel: mutates MaxInputSize.
func TestReadDocument_TooLarge(t *testing.T) {
	orig := MaxInputSize
	MaxInputSize = 8
	t.Cleanup(func() { MaxInputSize = orig })

	_, err := ReadDocument(strings.NewReader("123456789"))
	if !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("ReadDocument() error = %v, want ErrInputTooLarge", err)
	}

	if _, err := ReadDocument(strings.NewReader("12345678")); err != nil {
		t.Errorf("ReadDocument() at limit error = %v, want nil", err)
	}
}

func TestDocument_Render(t *testing.T) {
	t.Parallel()

	got := NewDocument(post).Render(Full)
	for _, want := range []string{"<h1>Hello World</h1>", "<strong>bold</strong>"} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() = %q, want containing %q", got, want)
		}
	}
	if strings.Contains(got, "cloudhead") {
		t.Errorf("Render() = %q, metadata should be hidden", got)
	}
}

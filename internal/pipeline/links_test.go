package pipeline

import "testing"

func TestParseLinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "labelled link",
			input:    `"Click":http://x.com`,
			expected: `<a href='http://x.com'>Click</a>`,
		},
		{
			name:     "labelled link inside sentence",
			input:    `see "Go docs":https://go.dev now`,
			expected: `see <a href='https://go.dev'>Go docs</a> now`,
		},
		{
			name:     "only the quoted pair before the colon is a label",
			input:    `"a" and "b":http://x`,
			expected: `"a" and <a href='http://x'>b</a>`,
		},
		{
			name:     "bare link at line start",
			input:    "\":http://x.com\n",
			expected: "<a href='http://x.com'>http://x.com</a>\n",
		},
		{
			name:     "quoted text without URL unchanged",
			input:    `"quoted" text`,
			expected: `"quoted" text`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ParseLinks(tt.input)
			if got != tt.expected {
				t.Errorf("ParseLinks() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestParseLinksNoFollow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "raw quotes",
			input:    `"Click":http://x.com`,
			expected: `<a rel='nofollow' href='http://x.com'>Click</a>`,
		},
		{
			name:     "escaped quotes",
			input:    `&quot;Click&quot;:http://x.com`,
			expected: `<a rel='nofollow' href='http://x.com'>Click</a>`,
		},
		{
			name:     "earlier escaped quote pair stays outside the label",
			input:    `She said &quot;hi&quot; and &quot;Click&quot;:http://x.com now`,
			expected: `She said &quot;hi&quot; and <a rel='nofollow' href='http://x.com'>Click</a> now`,
		},
		{
			name:     "escaped bare link",
			input:    "&quot;:http://x.com\n",
			expected: "<a rel='nofollow' href='http://x.com'>http://x.com</a>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ParseLinksNoFollow(tt.input)
			if got != tt.expected {
				t.Errorf("ParseLinksNoFollow() = %q, want %q", got, tt.expected)
			}
		})
	}
}

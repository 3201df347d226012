package directive_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jcorbin/godoctest/internal/directive"
)

func TestExtract(t *testing.T) {
	for _, tc := range []struct {
		name string
		text string
		want []directive.Directive
	}{
		{
			name: "none",
			text: "x = 1",
		},
		{
			name: "python hash comment is not a directive",
			text: "# xdoctest: +SKIP",
		},
		{
			name: "inline go comment",
			text: "b = 2 // doctest: +SKIP",
			want: []directive.Directive{{Name: "SKIP", Enabled: true, Inline: true}},
		},
		{
			name: "standalone block directive",
			text: "// doctest: -NORMALIZE_WHITESPACE",
			want: []directive.Directive{{Name: "NORMALIZE_WHITESPACE", Enabled: false, Inline: false}},
		},
		{
			name: "multiple lines",
			text: "a := 1 // doctest: +SKIP\nb := 2\n// doctest: -REQUIRES(py3)",
			want: []directive.Directive{
				{Name: "SKIP", Enabled: true, Inline: true},
				{Name: "REQUIRES", Enabled: false, Inline: false},
			},
		},

		{
			name: "url literal isn't mistaken for a comment",
			text: `url := "http://example.com"`,
		},

		{
			name: "url literal followed by a real directive",
			text: `url := "http://example.com" // doctest: +SKIP`,
			want: []directive.Directive{{Name: "SKIP", Enabled: true, Inline: true}},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := directive.Extract(tc.text)
			require.Equal(t, tc.want, got)
		})
	}
}

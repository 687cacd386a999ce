package macro_test

import (
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-slidemacro/pkg/macro"
)

func TestBuiltinScenarios(t *testing.T) {
	cases := []struct {
		name string
		got  string
		want string
	}{
		{
			name: "scale",
			got:  macro.Scale("pic.png", "50%"),
			want: `<img src="pic.png" style="width: 50%" />`,
		},
		{
			name: "size",
			got:  macro.Size("pic.png", 100, 200),
			want: `<img src="pic.png" style="width: 100px; height: 200px" />`,
		},
		{
			name: "author",
			got:  macro.Author("me.png"),
			want: `<img src="me.png" class=author-pic />`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Fatalf("want %q, got %q", tc.want, tc.got)
			}
		})
	}
}

func TestScaleInterpolatesTextualForm(t *testing.T) {
	for _, p := range []any{"50%", "12em", 75, 0.5, "", "<b>", true, time.Second} {
		out := macro.Scale("pic.png", p)
		if n := strings.Count(out, "<img"); n != 1 {
			t.Fatalf("scale(%v): expected one img tag, got %d in %q", p, n, out)
		}
		want := `style="width: ` + macro.Text(p) + `"`
		if !strings.Contains(out, want) {
			t.Fatalf("scale(%v): expected %s in %q", p, want, out)
		}
	}
}

func TestSizeInterpolatesPixels(t *testing.T) {
	pairs := [][2]any{{100, 200}, {"1", "2"}, {1.5, int64(3)}, {nil, 4}, {"a", "b"}}
	for _, pair := range pairs {
		out := macro.Size("x.png", pair[0], pair[1])
		want := `style="width: ` + macro.Text(pair[0]) + `px; height: ` + macro.Text(pair[1]) + `px"`
		if !strings.Contains(out, want) {
			t.Fatalf("size(%v, %v): expected %s in %q", pair[0], pair[1], want, out)
		}
	}
}

func TestAuthorIgnoresContext(t *testing.T) {
	for _, src := range []string{"me.png", "", "https://example.com/a b.jpg"} {
		out := macro.Author(src)
		if strings.Count(out, "<img") != 1 || !strings.Contains(out, "class="+macro.AuthorPicClass) {
			t.Fatalf("author(%q) unexpected output %q", src, out)
		}
	}
}

func TestTextPlaceholders(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, macro.Undefined},
		{"50%", "50%"},
		{100, "100"},
		{2.25, "2.25"},
		{false, "false"},
		{[]byte("raw"), "raw"},
	}
	for _, tc := range cases {
		if got := macro.Text(tc.in); got != tc.want {
			t.Fatalf("Text(%#v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBuiltinsMissingAndExtraArgs(t *testing.T) {
	reg := macro.NewDefaultRegistry()

	out, err := reg.Expand(macro.NameSize, "pic.png", 100)
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if want := `<img src="pic.png" style="width: 100px; height: undefinedpx" />`; out != want {
		t.Fatalf("want %q, got %q", want, out)
	}

	out, err = reg.Expand(macro.NameAuthor, "me.png", "ignored", 3)
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if out != macro.Author("me.png") {
		t.Fatalf("extra args should be ignored, got %q", out)
	}
}

package remark_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-slidemacro/pkg/macro"
	"github.com/goliatone/go-slidemacro/pkg/remark"
	"github.com/goliatone/go-slidemacro/pkg/testsupport"
)

func TestExpandDeckGolden(t *testing.T) {
	input := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "deck.md"))

	got, err := remark.New().Expand(testsupport.Context(), input)
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	testsupport.AssertGolden(t, filepath.Join("testdata", "deck.golden.md"), got)
}

func TestExpandScenarios(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "scale",
			in:   "![:scale 50%](pic.png)",
			want: `<img src="pic.png" style="width: 50%" />`,
		},
		{
			name: "size",
			in:   "![:size 100, 200](pic.png)",
			want: `<img src="pic.png" style="width: 100px; height: 200px" />`,
		},
		{
			name: "author",
			in:   "![:author](me.png)",
			want: `<img src="me.png" class=author-pic />`,
		},
		{
			name: "missing source",
			in:   "![:author]",
			want: `<img src="undefined" class=author-pic />`,
		},
		{
			name: "missing percentage",
			in:   "![:scale](pic.png)",
			want: `<img src="pic.png" style="width: undefined" />`,
		},
		{
			name: "malformed passes through",
			in:   "![:scale fifty](pic.png)",
			want: `<img src="pic.png" style="width: fifty" />`,
		},
		{
			name: "regular images untouched",
			in:   "![alt](pic.png) ![:scale 1%](a.png)",
			want: `![alt](pic.png) <img src="a.png" style="width: 1%" />`,
		},
		{
			name: "no trailing newline preserved",
			in:   "a\n![:author](me.png)",
			want: "a\n" + `<img src="me.png" class=author-pic />`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := remark.New().Expand(context.Background(), tc.in)
			if err != nil {
				t.Fatalf("expand: %v", err)
			}
			if got != tc.want {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
		})
	}
}

func TestExpandUnknownMacro(t *testing.T) {
	in := "intro\n\n![:missing 1](pic.png)\n"

	_, err := remark.New().Expand(context.Background(), in)
	if !errors.Is(err, macro.ErrMacroNotFound) {
		t.Fatalf("expected ErrMacroNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Fatalf("expected line number in error, got %v", err)
	}

	got, err := remark.New(remark.WithPassthroughUnknown()).Expand(context.Background(), in)
	if err != nil {
		t.Fatalf("expand with passthrough: %v", err)
	}
	if got != in {
		t.Fatalf("passthrough should leave document untouched, got %q", got)
	}
}

func TestExpandCustomRegistry(t *testing.T) {
	reg := macro.NewDefaultRegistry()
	reg.MustRegister(macro.New("caption", func(src string, args ...any) string {
		return "<figure>" + src + "|" + strings.Join(macro.Texts(args), "|") + "</figure>"
	}))

	got, err := remark.New(remark.WithRegistry(reg)).Expand(context.Background(), "![:caption  a , , b ](x.png)")
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if want := "<figure>x.png|a|b</figure>"; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestExpandSanitizer(t *testing.T) {
	got, err := remark.New(remark.WithSanitizer(upper{})).Expand(context.Background(), "x ![:author](me.png)")
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if want := `x <IMG SRC="ME.PNG" CLASS=AUTHOR-PIC />`; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestExpandHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := remark.New().Expand(ctx, "![:author](me.png)"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestExpandReader(t *testing.T) {
	var out bytes.Buffer
	err := remark.New().ExpandReader(context.Background(), strings.NewReader("![:scale 50%](pic.png)\n"), &out)
	if err != nil {
		t.Fatalf("expand reader: %v", err)
	}
	if want := "<img src=\"pic.png\" style=\"width: 50%\" />\n"; out.String() != want {
		t.Fatalf("want %q, got %q", want, out.String())
	}
}

func TestScan(t *testing.T) {
	doc := "# Title\n![:size 1, 2](a.png) `![:scale 3%](b.png)`\n```\n![:author](c.png)\n```\n![:author]\n"

	got := remark.Scan(doc)
	want := []remark.Invocation{
		{Name: "size", Args: []string{"1", "2"}, Src: "a.png", HasSrc: true, Raw: "![:size 1, 2](a.png)", Line: 2, Start: 8, End: 28},
		{Name: "author", Src: macro.Undefined, Raw: "![:author]", Line: 6, Start: 77, End: 87},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("scan mismatch (-want +got):\n%s", diff)
	}
}

type upper struct{}

func (upper) Sanitize(markup string) string {
	return strings.ToUpper(markup)
}

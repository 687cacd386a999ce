package slidemacro

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/goliatone/go-slidemacro/pkg/macro"
	"github.com/goliatone/go-slidemacro/pkg/remark"
)

func TestMacros(t *testing.T) {
	cases := map[string]struct {
		got  string
		want string
	}{
		"scale":  {Scale("pic.png", "50%"), `<img src="pic.png" style="width: 50%" />`},
		"size":   {Size("pic.png", 100, 200), `<img src="pic.png" style="width: 100px; height: 200px" />`},
		"author": {Author("me.png"), `<img src="me.png" class=author-pic />`},
	}
	for name, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("%s mismatch\nwant: %q\n got: %q", name, tc.want, tc.got)
		}
	}
}

func TestExpand(t *testing.T) {
	out, err := Expand(context.Background(), "![:author](me.png) and ![:scale 30%](pic.png)")
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	want := `<img src="me.png" class=author-pic /> and <img src="pic.png" style="width: 30%" />`
	if out != want {
		t.Fatalf("expand mismatch\nwant: %q\n got: %q", want, out)
	}
}

func TestExpandUnknownMacro(t *testing.T) {
	_, err := Expand(context.Background(), "![:spin](x.png)")
	if !errors.Is(err, macro.ErrMacroNotFound) {
		t.Fatalf("expected ErrMacroNotFound, got %v", err)
	}

	out, err := Expand(context.Background(), "![:spin](x.png)", remark.WithPassthroughUnknown())
	if err != nil || out != "![:spin](x.png)" {
		t.Fatalf("passthrough: out=%q err=%v", out, err)
	}
}

func TestDefaultRegistry(t *testing.T) {
	names := strings.Join(DefaultRegistry().List(), ",")
	if names != "author,scale,size" {
		t.Fatalf("unexpected builtins %q", names)
	}
}

func TestAssetsFSContainsStyleSheet(t *testing.T) {
	data, err := fs.ReadFile(AssetsFS(), "slidemacro.css")
	if err != nil {
		t.Fatalf("expected stylesheet to be readable: %v", err)
	}
	if !strings.Contains(string(data), ".author-pic") {
		t.Fatalf("expected stylesheet to style author pictures")
	}
	if StyleSheet() != string(data) {
		t.Fatalf("StyleSheet should match the embedded file")
	}
}

package pandoc

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const metaTitleBGEncoded = "title_bg_encoded"

// URLEncode inlines slide background images as base64 data URIs so the
// generated HTML is self-contained. Relative paths are read from Images;
// absolute paths are read from disk.
type URLEncode struct {
	Images fs.FS
}

func (URLEncode) Name() string { return "url-encode" }

func (f URLEncode) Apply(doc *Document, _ string) error {
	if doc.Meta == nil {
		doc.Meta = Meta{}
	}
	if bg, ok := doc.Meta.Text("title_bg"); ok {
		if _, done := doc.Meta[metaTitleBGEncoded]; !done {
			uri, err := f.encode(bg)
			if err != nil {
				return err
			}
			doc.Meta["title_bg"] = MetaString(uri)
			doc.Meta[metaTitleBGEncoded] = MetaString("yes")
		}
	}

	blocks, err := walkBlocks(doc.Blocks, func(el Element) ([]Element, bool, error) {
		h, ok, err := slideHeader(el)
		if err != nil || !ok {
			return nil, false, err
		}
		for i, kv := range h.Attr.KeyValues {
			if kv[0] != AttrBackgroundImage {
				continue
			}
			uri, err := f.encode(kv[1])
			if err != nil {
				return nil, false, err
			}
			h.Attr.KeyValues[i][1] = uri
		}
		return single(h.Element())
	})
	if err != nil {
		return err
	}
	doc.Blocks = blocks
	return nil
}

func (f URLEncode) encode(src string) (string, error) {
	if strings.HasPrefix(src, "data:") {
		return src, nil
	}
	data, err := f.read(src)
	if err != nil {
		return "", fmt.Errorf("pandoc: url-encode %s: %w", src, err)
	}
	return "data:" + mediaType(src) + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func (f URLEncode) read(src string) ([]byte, error) {
	if filepath.IsAbs(src) {
		return os.ReadFile(src)
	}
	if f.Images == nil {
		return nil, errors.New("no image source configured")
	}
	name := path.Clean(filepath.ToSlash(src))
	if !fs.ValidPath(name) {
		return nil, errors.New("path escapes the image directory")
	}
	return fs.ReadFile(f.Images, name)
}

func mediaType(path string) string {
	t := mime.TypeByExtension(filepath.Ext(path))
	if t == "" {
		return "image/png"
	}
	if i := strings.IndexByte(t, ';'); i >= 0 {
		t = t[:i]
	}
	return strings.TrimSpace(t)
}

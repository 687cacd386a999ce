package pandoc

// BackgroundImage gives title, author and section slides a theme background
// image. In reST sources the class sits on a container Div, which is replaced
// by its header.
type BackgroundImage struct{}

var slideKinds = []string{"title", "author", "section"}

func (BackgroundImage) Name() string { return "background-image" }

func (BackgroundImage) Apply(doc *Document, _ string) error {
	if doc.Meta == nil {
		doc.Meta = Meta{}
	}
	lang := metaOr(doc.Meta, "lang", "en")
	themePath := metaOr(doc.Meta, "themepath", "theme")
	image := func(kind string) string {
		if kind == "title" {
			kind += "-" + lang
		}
		return themePath + "/img/" + kind + ".png"
	}

	if _, ok := doc.Meta["title_bg"]; !ok {
		doc.Meta["title_bg"] = MetaString(image("title"))
	}

	blocks, err := walkBlocks(doc.Blocks, func(el Element) ([]Element, bool, error) {
		h, ok, err := slideHeader(el)
		if err != nil {
			return nil, false, err
		}
		if ok {
			if kind, found := slideKind(h.Attr); found {
				h.Attr.SetDefault(AttrBackgroundImage, image(kind))
			}
			return single(h.Element())
		}

		div, h, ok, err := headedDiv(el)
		if err != nil || !ok {
			return nil, false, err
		}
		kind, found := slideKind(div.Attr)
		if !found {
			return nil, false, nil
		}
		if _, set := h.Attr.Value(AttrBackgroundImage); !set {
			h.Attr.AddClass(kind)
			h.Attr.SetDefault(AttrBackgroundImage, image(kind))
		}
		out, err := unwrapDiv(div, h)
		return out, err == nil, err
	})
	if err != nil {
		return err
	}
	doc.Blocks = blocks
	return nil
}

func slideKind(attr Attr) (string, bool) {
	for _, kind := range slideKinds {
		if attr.HasClass(kind) {
			return kind, true
		}
	}
	return "", false
}

func metaOr(meta Meta, key, fallback string) string {
	if v, ok := meta.Text(key); ok && v != "" {
		return v
	}
	return fallback
}

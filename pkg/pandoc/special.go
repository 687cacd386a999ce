package pandoc

// SpecialSlides is the older class convention: a title-en, title-fi or author
// class is swapped for a generic title-slide or author-slide class and the
// header gets an img/KEY.png data-background. Headers that already carry a
// data-background are left alone.
type SpecialSlides struct{}

var specialKinds = []string{"title-en", "title-fi", "author"}

func (SpecialSlides) Name() string { return "special-slides" }

func (SpecialSlides) Apply(doc *Document, _ string) error {
	blocks, err := walkBlocks(doc.Blocks, func(el Element) ([]Element, bool, error) {
		h, ok, err := slideHeader(el)
		if err != nil {
			return nil, false, err
		}
		if ok {
			if _, set := h.Attr.Value(AttrBackground); !set {
				if kind, found := specialKind(h.Attr); found {
					h.Attr.RemoveClass(kind)
					markSpecial(&h.Attr, kind)
				}
			}
			return single(h.Element())
		}

		div, h, ok, err := headedDiv(el)
		if err != nil || !ok {
			return nil, false, err
		}
		kind, found := specialKind(div.Attr)
		if !found {
			return nil, false, nil
		}
		markSpecial(&h.Attr, kind)
		out, err := unwrapDiv(div, h)
		return out, err == nil, err
	})
	if err != nil {
		return err
	}
	doc.Blocks = blocks
	return nil
}

func specialKind(attr Attr) (string, bool) {
	for _, kind := range specialKinds {
		if attr.HasClass(kind) {
			return kind, true
		}
	}
	return "", false
}

func markSpecial(attr *Attr, kind string) {
	attr.KeyValues = append(attr.KeyValues, [2]string{AttrBackground, "img/" + kind + ".png"})
	if kind == "author" {
		attr.AddClass("author-slide")
		return
	}
	attr.AddClass("title-slide")
}

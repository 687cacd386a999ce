package pandoc

import "encoding/json"

// FixHeader unwraps a leading Strong in slide titles.
type FixHeader struct{}

func (FixHeader) Name() string { return "fix-header" }

func (FixHeader) Apply(doc *Document, _ string) error {
	blocks, err := walkBlocks(doc.Blocks, func(el Element) ([]Element, bool, error) {
		h, ok, err := slideHeader(el)
		if err != nil || !ok {
			return nil, false, err
		}
		if len(h.Inlines) == 0 || h.Inlines[0].T != TypeStrong {
			return nil, false, nil
		}
		var inner []Element
		if err := json.Unmarshal(h.Inlines[0].C, &inner); err != nil {
			return nil, false, nil
		}
		h.Inlines = append(inner, h.Inlines[1:]...)
		return single(h.Element())
	})
	if err != nil {
		return err
	}
	doc.Blocks = blocks
	return nil
}

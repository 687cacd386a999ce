package pandoc

// ContainSlide scales slide backgrounds to fit and turns horizontal rules
// into empty slides.
type ContainSlide struct{}

func (ContainSlide) Name() string { return "contain-slide" }

func (ContainSlide) Apply(doc *Document, _ string) error {
	blocks, err := walkBlocks(doc.Blocks, func(el Element) ([]Element, bool, error) {
		if el.T == TypeHorizontalRule {
			return single(Header{
				Level: 1,
				Attr: Attr{
					ID: "section",
					KeyValues: [][2]string{
						{AttrBackground, "empty-slide"},
						{AttrBackgroundSize, "contain"},
					},
				},
			}.Element())
		}
		h, ok, err := slideHeader(el)
		if err != nil || !ok {
			return nil, false, err
		}
		h.Attr.SetDefault(AttrBackgroundSize, "contain")
		return single(h.Element())
	})
	if err != nil {
		return err
	}
	doc.Blocks = blocks
	return nil
}

package pandoc

// visitFunc returns the replacement blocks for el and whether el was
// replaced. Divs that are not replaced are walked recursively.
type visitFunc func(el Element) ([]Element, bool, error)

func walkBlocks(blocks []Element, visit visitFunc) ([]Element, error) {
	out := make([]Element, 0, len(blocks))
	for _, el := range blocks {
		replacement, replaced, err := visit(el)
		if err != nil {
			return nil, err
		}
		if replaced {
			out = append(out, replacement...)
			continue
		}
		if el.T == TypeDiv {
			nested, err := walkDiv(el, visit)
			if err != nil {
				return nil, err
			}
			out = append(out, nested)
			continue
		}
		out = append(out, el)
	}
	return out, nil
}

func walkDiv(el Element, visit visitFunc) (Element, error) {
	div, err := DecodeDiv(el)
	if err != nil {
		return Element{}, err
	}
	div.Blocks, err = walkBlocks(div.Blocks, visit)
	if err != nil {
		return Element{}, err
	}
	return div.Element()
}

// slideHeader decodes el when it is a level-1 header.
func slideHeader(el Element) (Header, bool, error) {
	if el.T != TypeHeader {
		return Header{}, false, nil
	}
	h, err := DecodeHeader(el)
	if err != nil {
		return Header{}, false, err
	}
	return h, h.Level == 1, nil
}

// headedDiv decodes el when it is a Div whose first block is a Header.
func headedDiv(el Element) (Div, Header, bool, error) {
	if el.T != TypeDiv {
		return Div{}, Header{}, false, nil
	}
	div, err := DecodeDiv(el)
	if err != nil {
		return Div{}, Header{}, false, err
	}
	if len(div.Blocks) == 0 || div.Blocks[0].T != TypeHeader {
		return Div{}, Header{}, false, nil
	}
	h, err := DecodeHeader(div.Blocks[0])
	if err != nil {
		return Div{}, Header{}, false, err
	}
	return div, h, true, nil
}

// unwrapDiv replaces a headed div with its (modified) header followed by the
// rest of its content.
func unwrapDiv(div Div, h Header) ([]Element, error) {
	headerEl, err := h.Element()
	if err != nil {
		return nil, err
	}
	out := make([]Element, 0, len(div.Blocks))
	out = append(out, headerEl)
	out = append(out, div.Blocks[1:]...)
	return out, nil
}

func single(el Element, err error) ([]Element, bool, error) {
	if err != nil {
		return nil, false, err
	}
	return []Element{el}, true, nil
}

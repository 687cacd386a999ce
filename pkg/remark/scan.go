package remark

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-slidemacro/pkg/macro"
)

var tokenPattern = regexp.MustCompile(`!\[:([^\] ]+)([^\]]*)\](?:\(([^)]*)\))?`)

// Invocation is a macro token found in a document.
type Invocation struct {
	Name   string
	Args   []string
	Src    string
	HasSrc bool
	Raw    string
	// Line is 1-based. Start and End are byte offsets into the document.
	Line  int
	Start int
	End   int
}

// Scan returns every macro token outside code, in document order.
func Scan(markdown string) []Invocation {
	var out []Invocation
	forEachLine(markdown, func(line string, lineNo, offset int, code bool) bool {
		if code {
			return true
		}
		out = append(out, scanLine(line, lineNo, offset)...)
		return true
	})
	return out
}

func scanLine(line string, lineNo, offset int) []Invocation {
	matches := tokenPattern.FindAllStringSubmatchIndex(line, -1)
	if len(matches) == 0 {
		return nil
	}
	spans := codeSpans(line)

	var out []Invocation
	for _, m := range matches {
		if insideSpan(spans, m[0]) {
			continue
		}
		inv := Invocation{
			Name:  line[m[2]:m[3]],
			Args:  splitArgs(line[m[4]:m[5]]),
			Src:   macro.Undefined,
			Raw:   line[m[0]:m[1]],
			Line:  lineNo,
			Start: offset + m[0],
			End:   offset + m[1],
		}
		if m[6] >= 0 {
			inv.Src = line[m[6]:m[7]]
			inv.HasSrc = true
		}
		out = append(out, inv)
	}
	return out
}

func splitArgs(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// forEachLine walks the document line by line, reporting whether each line
// belongs to a fenced code block. Fence lines themselves count as code.
func forEachLine(doc string, fn func(line string, lineNo, offset int, code bool) bool) {
	var (
		fenceChar byte
		fenceLen  int
		offset    int
	)
	lineNo := 0
	for offset < len(doc) {
		lineNo++
		end := strings.IndexByte(doc[offset:], '\n')
		var line string
		if end < 0 {
			line = doc[offset:]
		} else {
			line = doc[offset : offset+end+1]
		}

		char, n := fence(line)
		code := fenceLen > 0
		switch {
		case fenceLen == 0 && n > 0:
			fenceChar, fenceLen = char, n
			code = true
		case fenceLen > 0 && char == fenceChar && n >= fenceLen && isClosingFence(line, n):
			fenceChar, fenceLen = 0, 0
		}

		if !fn(line, lineNo, offset, code) {
			return
		}
		offset += len(line)
	}
}

// fence reports the fence character and run length when line opens or
// closes a fenced block.
func fence(line string) (byte, int) {
	trimmed := strings.TrimLeft(line, " ")
	if len(line)-len(trimmed) > 3 || len(trimmed) < 3 {
		return 0, 0
	}
	char := trimmed[0]
	if char != '`' && char != '~' {
		return 0, 0
	}
	n := 0
	for n < len(trimmed) && trimmed[n] == char {
		n++
	}
	if n < 3 {
		return 0, 0
	}
	if char == '`' && strings.ContainsRune(trimmed[n:], '`') {
		return 0, 0
	}
	return char, n
}

func isClosingFence(line string, n int) bool {
	rest := strings.TrimLeft(line, " ")[n:]
	return strings.TrimSpace(rest) == ""
}

// codeSpans returns the [start, end) ranges of inline code spans in line.
func codeSpans(line string) [][2]int {
	var spans [][2]int
	for i := 0; i < len(line); {
		if line[i] != '`' {
			i++
			continue
		}
		j := i
		for j < len(line) && line[j] == '`' {
			j++
		}
		ticks := j - i
		closing := closingTicks(line, j, ticks)
		if closing < 0 {
			i = j
			continue
		}
		spans = append(spans, [2]int{i, closing + ticks})
		i = closing + ticks
	}
	return spans
}

func closingTicks(line string, from, ticks int) int {
	for k := from; k < len(line); {
		if line[k] != '`' {
			k++
			continue
		}
		m := k
		for m < len(line) && line[m] == '`' {
			m++
		}
		if m-k == ticks {
			return k
		}
		k = m
	}
	return -1
}

func insideSpan(spans [][2]int, pos int) bool {
	for _, span := range spans {
		if pos >= span[0] && pos < span[1] {
			return true
		}
	}
	return false
}

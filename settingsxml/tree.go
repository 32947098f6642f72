package settingsxml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/encoding/ianaindex"

	"github.com/randalmurphal/mvnsettings/dom"
)

// lineIndex maps byte offsets to 1-based line and column numbers.
type lineIndex []int

func newLineIndex(data []byte) lineIndex {
	starts := lineIndex{0}
	for i, b := range data {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func (idx lineIndex) position(offset int64) (line, column int) {
	off := int(offset)
	i := sort.Search(len(idx), func(i int) bool { return idx[i] > off }) - 1
	if i < 0 {
		i = 0
	}
	return i + 1, off - idx[i] + 1
}

// charsetReader resolves the encoding named in the XML declaration.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", label)
	}
	return enc.NewDecoder().Reader(input), nil
}

// parseTree parses a well-formed XML document into a tree rooted at the
// document element.
func parseTree(data []byte) (*dom.Node, error) {
	idx := newLineIndex(data)
	d := xml.NewDecoder(bytes.NewReader(data))
	d.Strict = true
	d.CharsetReader = charsetReader

	var (
		root  *dom.Node
		stack []*dom.Node
		texts []*strings.Builder
	)

	for {
		offset := d.InputOffset()
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			line, col := idx.position(d.InputOffset())
			var se *xml.SyntaxError
			if errors.As(err, &se) {
				if se.Line > 0 && se.Line != line {
					line, col = se.Line, 0
				}
				return nil, &ParseError{Line: line, Column: col, Message: se.Msg, Err: err}
			}
			return nil, &ParseError{Line: line, Column: col, Message: err.Error(), Err: err}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if root != nil && len(stack) == 0 {
				line, col := idx.position(offset)
				return nil, errorAt(line, col, "unexpected element <%s> after document element", t.Name.Local)
			}
			n := dom.New(t.Name.Local)
			n.Line, n.Column = idx.position(offset)
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
					continue
				}
				n.Attrs = append(n.Attrs, dom.Attr{Name: a.Name.Local, Value: a.Value})
			}
			if len(stack) > 0 {
				stack[len(stack)-1].AddChild(n)
			} else {
				root = n
			}
			stack = append(stack, n)
			texts = append(texts, &strings.Builder{})

		case xml.EndElement:
			top := len(stack) - 1
			stack[top].Value = strings.TrimSpace(texts[top].String())
			stack = stack[:top]
			texts = texts[:top]

		case xml.CharData:
			if len(stack) > 0 {
				texts[len(texts)-1].Write(t)
			}
		}
	}

	if root == nil {
		line, col := idx.position(int64(len(data)))
		return nil, errorAt(line, col, "no document element found")
	}
	return root, nil
}

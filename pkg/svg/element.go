package svg

import (
	"bytes"
	"strconv"
	"strings"
)

// Attr is a single name/value attribute pair.
type Attr struct {
	Key, Value string
}

// Element is one node of an SVG document tree.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []*Element
	Text     string
}

// NewElement returns an element with the given tag name.
func NewElement(name string) *Element {
	return &Element{Name: name}
}

// Set assigns an attribute, replacing an existing value for the same
// key and otherwise appending it, so first-set order is kept.
func (e *Element) Set(key, value string) *Element {
	for i, a := range e.Attrs {
		if a.Key == key {
			e.Attrs[i].Value = value
			return e
		}
	}
	e.Attrs = append(e.Attrs, Attr{Key: key, Value: value})
	return e
}

// SetFloat assigns a numeric attribute using the shortest decimal
// representation of v.
func (e *Element) SetFloat(key string, v float64) *Element {
	return e.Set(key, FormatFloat(v))
}

// Get returns the value of an attribute and whether it is present.
func (e *Element) Get(key string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Append attaches children to the element.
func (e *Element) Append(children ...*Element) *Element {
	e.Children = append(e.Children, children...)
	return e
}

// FormatFloat renders v without trailing zeros ("40", "0.35", "33.33").
// Negative zero normalizes to "0".
func FormatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Bytes serializes the element tree.
func (e *Element) Bytes() []byte {
	var buf bytes.Buffer
	e.write(&buf)
	buf.WriteByte('\n')
	return buf.Bytes()
}

// String serializes the element tree.
func (e *Element) String() string {
	var buf bytes.Buffer
	e.write(&buf)
	return buf.String()
}

func (e *Element) write(buf *bytes.Buffer) {
	buf.WriteByte('<')
	buf.WriteString(e.Name)
	for _, a := range e.Attrs {
		buf.WriteByte(' ')
		buf.WriteString(a.Key)
		buf.WriteString(`="`)
		buf.WriteString(escape(a.Value))
		buf.WriteByte('"')
	}
	if e.Text == "" && len(e.Children) == 0 {
		buf.WriteString(" />")
		return
	}
	buf.WriteByte('>')
	if e.Text != "" {
		buf.WriteString(escape(e.Text))
	}
	for _, c := range e.Children {
		c.write(buf)
	}
	buf.WriteString("</")
	buf.WriteString(e.Name)
	buf.WriteByte('>')
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// escape makes a string safe for use as attribute value or text content.
func escape(s string) string {
	return escaper.Replace(s)
}

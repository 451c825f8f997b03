// Package svg reads the parts of an SVG document needed to place its paths in
// a simulation domain: the element tree, the coordinate space of the root
// element, transforms and path data.
package svg

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/xml"

	"github.com/meshmerizeme/meshmerize/curve"
	"github.com/meshmerizeme/meshmerize/internal/logging"
)

// Element is a node of the document's element tree.
type Element struct {
	// Tag is the element name without a namespace prefix.
	Tag   string
	Attrs map[string]string
	// Parent is the index of the parent element in Document.Elements, or -1
	// for the root.
	Parent int
}

// Document is a parsed SVG document. Elements are stored in document order, so
// a parent always precedes its descendants. The root svg element is at index 0.
type Document struct {
	Elements []Element
	space    Space
}

// Parse reads an SVG document from r. Malformed XML, including unclosed and
// mismatched tags, is an error, as is a root element other than svg or one
// without a usable coordinate space.
func Parse(r io.Reader) (*Document, error) {
	z := parse.NewInput(r)
	defer z.Restore()

	l := xml.NewLexer(z)
	doc := &Document{}
	var open []int
	for {
		tt, _ := l.Next()
		switch tt {
		case xml.ErrorToken:
			if l.Err() != io.EOF {
				return nil, l.Err()
			}
			if len(doc.Elements) == 0 {
				return nil, errors.New("svg: expected svg tag")
			}
			if len(open) > 0 {
				return nil, parse.NewErrorLexer(z, "unclosed %s tag", doc.Elements[open[len(open)-1]].Tag)
			}
			space, err := resolveSpace(doc.Elements[0].Attrs)
			if err != nil {
				return nil, err
			}
			doc.space = space
			logging.Logger().Debug("parsed svg", "elements", len(doc.Elements), "space", space)
			return doc, nil
		case xml.StartTagToken:
			tag := localName(string(l.Text()))
			attrs := map[string]string{}
			for {
				tt, _ = l.Next()
				if tt != xml.AttributeToken {
					break
				}
				val := l.AttrVal()
				if len(val) > 1 && (val[0] == '\'' || val[0] == '"') && val[0] == val[len(val)-1] {
					val = val[1 : len(val)-1]
				}
				attrs[localName(string(l.Text()))] = string(val)
			}

			parent := -1
			if len(open) > 0 {
				parent = open[len(open)-1]
			} else if len(doc.Elements) > 0 {
				return nil, parse.NewErrorLexer(z, "multiple root elements")
			} else if tag != "svg" {
				return nil, parse.NewErrorLexer(z, "expected svg tag, got %s", tag)
			}
			doc.Elements = append(doc.Elements, Element{Tag: tag, Attrs: attrs, Parent: parent})
			if tt != xml.StartTagCloseVoidToken {
				open = append(open, len(doc.Elements)-1)
			}
		case xml.EndTagToken:
			if len(open) == 0 {
				return nil, parse.NewErrorLexer(z, "unexpected end tag")
			}
			want := doc.Elements[open[len(open)-1]].Tag
			if tag := localName(string(l.Text())); tag != want {
				return nil, parse.NewErrorLexer(z, "expected end tag %s, got %s", want, tag)
			}
			open = open[:len(open)-1]
		}
	}
}

func localName(name string) string {
	if i := strings.LastIndexByte(name, ':'); i != -1 {
		return name[i+1:]
	}
	return name
}

// Space returns the coordinate space of the root element.
func (doc *Document) Space() Space {
	return doc.space
}

// Paths returns the indices of all path elements in document order.
func (doc *Document) Paths() []int {
	var paths []int
	for i, el := range doc.Elements {
		if el.Tag == "path" {
			paths = append(paths, i)
		}
	}
	return paths
}

// AggregateTransform returns the transform from the local coordinates of
// element i to the coordinates of the root element, composing the transform
// attributes of i and all its ancestors. The ancestor closest to the root is
// applied last.
//
// Malformed transform components contribute the identity. Their errors are
// returned joined, alongside the matrix of the components that did parse.
func (doc *Document) AggregateTransform(i int) (curve.Affine, error) {
	m := curve.Identity
	var errs []error
	for j := i; j >= 0; j = doc.Elements[j].Parent {
		el := doc.Elements[j]
		t, err := ParseTransform(el.Attrs["transform"])
		if err != nil {
			errs = append(errs, fmt.Errorf("%s element %d: %w", el.Tag, j, err))
		}
		m = t.Mul(m)
	}
	return m, errors.Join(errs...)
}

// Path parses the path data of element i.
func (doc *Document) Path(i int) (curve.Path, error) {
	d, ok := doc.Elements[i].Attrs["d"]
	if !ok {
		return curve.Path{}, fmt.Errorf("svg: %s element %d has no path data", doc.Elements[i].Tag, i)
	}
	p, err := ParsePathData(d)
	if err != nil {
		return curve.Path{}, fmt.Errorf("svg: path element %d: %w", i, err)
	}
	return p, nil
}

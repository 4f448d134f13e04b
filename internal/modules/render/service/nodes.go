package service

import (
	"bytes"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// element creates an element node with an optional class and children.
// Nil children are skipped so optional sections can be passed inline.
func element(a atom.Atom, class string, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	if class != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: class})
	}
	appendChildren(n, children...)
	return n
}

func appendChildren(parent *html.Node, children ...*html.Node) {
	for _, child := range children {
		if child != nil {
			parent.AppendChild(child)
		}
	}
}

// attr sets an attribute and returns the node for chaining
func attr(n *html.Node, key, val string) *html.Node {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return n
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func image(class, src, alt string) *html.Node {
	img := element(atom.Img, class)
	attr(img, "src", src)
	attr(img, "alt", alt)
	return img
}

// Write serializes nodes in order
func Write(w io.Writer, nodes ...*html.Node) error {
	for _, n := range nodes {
		if err := html.Render(w, n); err != nil {
			return err
		}
	}
	return nil
}

// String serializes nodes into a string
func String(nodes ...*html.Node) string {
	var buf bytes.Buffer
	// bytes.Buffer never fails a write
	_ = Write(&buf, nodes...)
	return buf.String()
}

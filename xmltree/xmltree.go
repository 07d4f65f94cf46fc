// Package xmltree has small traversal and lookup helpers on top of the
// xmlquery node tree. It only deals with element structure; text content
// is reached through Text instead of a node name.
package xmltree

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/antchfx/xmlquery"
)

// PathSep separates components in a Find path.
const PathSep = '.'

// MaxDepth limits tree recursion. Trees deeper than this stop descending.
const MaxDepth = 1000

// SkipChildren can be returned by a VisitFunc to skip the children of the
// current node but keep going with its siblings. An AttrFunc can return it
// to stop the attribute iteration without raising an error.
var SkipChildren = errors.New("skip children")

// Diag receives diagnostics that are tolerated rather than returned, such
// as hitting MaxDepth. Defaults to stderr.
var Diag io.Writer = os.Stderr

// VisitFunc is called for every element visited. depth starts at 1 for the
// children of the node given to Visit; n is the index of the element among
// its element siblings. Returning nil descends into the element's children,
// SkipChildren moves on to the next sibling, and any other error aborts the
// whole traversal.
type VisitFunc func(node *xmlquery.Node, depth, n int) error

// AttrFunc is called for each attribute, in document order.
type AttrFunc func(name, value string, n int) error

// Visit walks the element children of root depth first, in document order.
// Non-element nodes (text, comments, processing instructions) are not
// reported. The error returned by fn, other than SkipChildren, is returned
// unchanged.
func Visit(root *xmlquery.Node, fn VisitFunc) error {
	return visit(root, 1, fn)
}

func visit(node *xmlquery.Node, depth int, fn VisitFunc) error {
	n := 0
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != xmlquery.ElementNode {
			continue
		}
		err := fn(child, depth, n)
		n++
		if err == SkipChildren {
			continue
		}
		if err != nil {
			return err
		}
		if depth+1 > MaxDepth {
			fmt.Fprintln(Diag, "xmltree: reached maximum nesting depth")
			continue
		}
		if err := visit(child, depth+1, fn); err != nil {
			return err
		}
	}
	return nil
}

// Find returns the node at path relative to root, where path components are
// element names separated by PathSep. The first component is matched against
// root itself; each following component is matched against element children,
// first match in document order. Returns nil when the path does not exist or
// is malformed (empty components).
func Find(root *xmlquery.Node, path string) *xmlquery.Node {
	return find(root, 1, path)
}

func find(node *xmlquery.Node, depth int, path string) *xmlquery.Node {
	if node == nil || path == "" {
		return nil
	}

	head := path
	rest := ""
	if i := strings.IndexByte(path, PathSep); i >= 0 {
		head, rest = path[:i], path[i+1:]
		if head == "" || rest == "" {
			// Catches ".x", "x.", "x..y" and a bare "."
			return nil
		}
	}

	if node.Data != head {
		return nil
	}
	if rest == "" {
		return node
	}
	if depth+1 > MaxDepth {
		fmt.Fprintln(Diag, "xmltree: reached maximum nesting depth")
		return nil
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != xmlquery.ElementNode {
			continue
		}
		if found := find(child, depth+1, rest); found != nil {
			return found
		}
	}
	return nil
}

// Attrs iterates the attributes of node in document order. fn may return
// SkipChildren to stop early; any other error aborts and is returned.
func Attrs(node *xmlquery.Node, fn AttrFunc) error {
	for i, attr := range node.Attr {
		err := fn(attr.Name.Local, attr.Value, i)
		if err == SkipChildren {
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Attr returns the value of the named attribute, or "" and false when the
// node has no such attribute.
func Attr(node *xmlquery.Node, name string) (string, bool) {
	for _, attr := range node.Attr {
		if attr.Name.Local == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Text returns the immediate text content of node: the concatenation of its
// text and CDATA children. Element children contribute nothing.
func Text(node *xmlquery.Node) string {
	if node == nil {
		return ""
	}
	// Common case: a single text child. Return its data directly so the
	// caller shares the parsed tree's memory instead of copying it.
	if first := node.FirstChild; first != nil && first.NextSibling == nil &&
		(first.Type == xmlquery.TextNode || first.Type == xmlquery.CharDataNode) {
		return first.Data
	}
	var sb strings.Builder
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.TextNode || child.Type == xmlquery.CharDataNode {
			sb.WriteString(child.Data)
		}
	}
	return sb.String()
}

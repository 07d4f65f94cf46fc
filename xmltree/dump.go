package xmltree

import (
	"fmt"
	"io"

	"github.com/antchfx/xmlquery"
)

// DumpNode writes a one-line description of node to w: namespace prefix,
// name and attributes.
func DumpNode(w io.Writer, node *xmlquery.Node) {
	if node.Prefix != "" {
		fmt.Fprintf(w, "'%s':", node.Prefix)
	}
	fmt.Fprintf(w, "'%s'", node.Data)

	for _, attr := range node.Attr {
		fmt.Fprintf(w, " (%s=[%s])", attr.Name.Local, attr.Value)
	}
}

// Dump writes an indented description of the whole tree under root to w.
// Leaf text content is printed next to its element.
func Dump(w io.Writer, root *xmlquery.Node) {
	fmt.Fprint(w, "- ")
	DumpNode(w, root)
	fmt.Fprintln(w)

	_ = Visit(root, func(node *xmlquery.Node, depth, n int) error {
		fmt.Fprintf(w, "%*s- ", depth*2, "")
		DumpNode(w, node)
		fmt.Fprintf(w, " [%d]", n)

		if text := Text(node); text != "" {
			fmt.Fprintf(w, " %q", text)
		}
		fmt.Fprintln(w)
		return nil
	})
}

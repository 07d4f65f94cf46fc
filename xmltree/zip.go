package xmltree

import (
	"archive/zip"
	"bytes"
	"io"
	"io/ioutil"

	"github.com/antchfx/xmlquery"
	"github.com/pkg/errors"
)

// Root parses an XML document from r and returns its root element.
func Root(r io.Reader) (*xmlquery.Node, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "xml parse failed")
	}
	for node := doc.FirstChild; node != nil; node = node.NextSibling {
		if node.Type == xmlquery.ElementNode {
			return node, nil
		}
	}
	return nil, errors.New("xml document has no root element")
}

// RootAt reads the named entry of a zip archive fully into memory, parses
// it and returns the root element of the resulting tree.
func RootAt(zr *zip.Reader, name string) (*xmlquery.Node, error) {
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, errors.Wrapf(err, "open %s in archive", name)
		}
		buf, err := ioutil.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, errors.Wrapf(err, "read %s from archive", name)
		}
		return Root(bytes.NewReader(buf))
	}
	return nil, errors.Errorf("archive has no entry %s", name)
}

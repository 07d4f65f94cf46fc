package xlsx

import (
	"archive/zip"
	"bytes"
	"io/ioutil"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/pkg/errors"

	"github.com/rgdias/xlsq/xmltree"
)

// relsPath is where the package describes how to reach its parts.
const relsPath = "xl/_rels/workbook.xml.rels"

// Option configures Open.
type Option func(*config)

type config struct {
	log Logger
}

// WithLogger redirects decode diagnostics, which otherwise go to stderr.
func WithLogger(log Logger) Option {
	return func(c *config) { c.log = log }
}

// Open decodes the spreadsheet package at path into a Document. The
// relationships manifest locates the worksheet and shared strings parts;
// the strings part is read first, then the worksheet grid is decoded
// against it. Any failure aborts the whole decode; no partial Document is
// ever returned.
func Open(path string, opts ...Option) (*Document, error) {
	cfg := config{log: stderrLogger{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, errors.Wrapf(ErrArchive, "open %s: %v", path, err)
	}
	defer zr.Close()

	worksheet, shared, err := findParts(&zr.Reader, cfg.log)
	if err != nil {
		return nil, err
	}

	strRoot, err := partRoot(&zr.Reader, xlPath(shared))
	if err != nil {
		return nil, err
	}
	strtab, err := newStringTable(strRoot, cfg.log)
	if err != nil {
		return nil, err
	}

	sheetRoot, err := partRoot(&zr.Reader, xlPath(worksheet))
	if err != nil {
		return nil, err
	}
	return decodeSheet(sheetRoot, strtab, cfg.log)
}

// findParts scans the relationships manifest for the first target typed
// worksheet and the first typed sharedStrings. Both are required.
func findParts(zr *zip.Reader, log Logger) (worksheet, shared string, err error) {
	rels, err := partRoot(zr, relsPath)
	if err != nil {
		return "", "", err
	}

	rdata := xmltree.Find(rels, "Relationships")
	if rdata == nil {
		return "", "", errors.Wrap(ErrFormat, "document is missing relationship info")
	}

	_ = xmltree.Visit(rdata, func(node *xmlquery.Node, depth, n int) error {
		if node.Data != "Relationship" {
			return xmltree.SkipChildren
		}

		var target, typ string
		_ = xmltree.Attrs(node, func(name, value string, n int) error {
			switch name {
			case "Type":
				// Only the final URL component classifies the part.
				typ = value
				if i := strings.LastIndexByte(value, '/'); i >= 0 {
					typ = value[i+1:]
				}
			case "Target":
				target = value
			}
			if target != "" && typ != "" {
				return xmltree.SkipChildren
			}
			return nil
		})
		if target == "" || typ == "" {
			return xmltree.SkipChildren
		}

		log.Debug("document has part of type %q at %q", typ, target)

		switch typ {
		case "worksheet":
			if worksheet == "" {
				worksheet = target
			}
		case "sharedStrings":
			if shared == "" {
				shared = target
			}
		}
		return xmltree.SkipChildren
	})

	if worksheet == "" || shared == "" {
		return "", "", errors.Wrap(ErrFormat, "document is missing worksheet and/or strings")
	}
	return worksheet, shared, nil
}

// xlPath resolves a relationship target, which is relative to the xl/
// directory inside the package. A single leading parent escape reaches
// the package root.
func xlPath(target string) string {
	if strings.HasPrefix(target, "../") {
		return target[len("../"):]
	}
	return "xl/" + target
}

// partRoot reads the named package part fully into memory and parses it,
// returning the root element of its tree.
func partRoot(zr *zip.Reader, name string) (*xmlquery.Node, error) {
	var part *zip.File
	for _, f := range zr.File {
		if f.Name == name {
			part = f
			break
		}
	}
	if part == nil {
		return nil, errors.Wrapf(ErrFormat, "package has no part %s", name)
	}

	rc, err := part.Open()
	if err != nil {
		return nil, errors.Wrapf(ErrArchive, "open part %s: %v", name, err)
	}
	buf, err := ioutil.ReadAll(rc)
	rc.Close()
	if err != nil {
		return nil, errors.Wrapf(ErrArchive, "read part %s: %v", name, err)
	}

	root, err := xmltree.Root(bytes.NewReader(buf))
	if err != nil {
		return nil, errors.Wrapf(ErrFormat, "parse part %s: %v", name, err)
	}
	return root, nil
}

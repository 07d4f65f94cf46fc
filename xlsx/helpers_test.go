package xlsx

import (
	"archive/zip"
	"io/ioutil"
	"os"
	"strings"
	"testing"

	"github.com/antchfx/xmlquery"

	"github.com/rgdias/xlsq/xmltree"
)

// discardLogger keeps decode diagnostics out of the test output.
type discardLogger struct{}

func (discardLogger) Debug(format string, v ...interface{}) {}
func (discardLogger) Warn(format string, v ...interface{})  {}

func parseRoot(t *testing.T, doc string) *xmlquery.Node {
	t.Helper()
	root, err := xmltree.Root(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return root
}

func tempFilename(t *testing.T) string {
	f, err := ioutil.TempFile("", "xlsq-test-")
	if err != nil {
		t.Fatal(err)
	}
	f.Close()
	return f.Name()
}

// writePackage builds a zip package on disk from entry name to content.
// The caller removes the returned path.
func writePackage(t *testing.T, entries map[string]string) string {
	t.Helper()

	path := tempFilename(t)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	return path
}

const testRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet1.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/sharedStrings" Target="sharedStrings.xml"/>
</Relationships>`

const testStrings = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<sst xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" count="4" uniqueCount="4"><si><t>name</t></si><si><t>age</t></si><si><t>Alice</t></si><si><t>Bob</t></si></sst>`

const testSheet = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main"><sheetData>
<row r="1"><c r="A1" t="s"><v>0</v></c><c r="B1" t="s"><v>1</v></c></row>
<row r="2"><c r="A2" t="s"><v>2</v></c><c r="B2"><v>30</v></c></row>
</sheetData></worksheet>`

// testPackage writes the standard two-by-two fixture document.
func testPackage(t *testing.T) string {
	return writePackage(t, map[string]string{
		"xl/_rels/workbook.xml.rels": testRels,
		"xl/sharedStrings.xml":       testStrings,
		"xl/worksheets/sheet1.xml":   testSheet,
	})
}

// buildTable is a shortcut for tests that need a populated string table.
func buildTable(t *testing.T, doc string) *stringTable {
	t.Helper()
	st, err := newStringTable(parseRoot(t, doc), discardLogger{})
	if err != nil {
		t.Fatalf("newStringTable() error = %v", err)
	}
	return st
}

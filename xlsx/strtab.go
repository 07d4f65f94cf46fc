package xlsx

import (
	"strconv"

	"github.com/antchfx/xmlquery"
	"github.com/pkg/errors"

	"github.com/rgdias/xlsq/xmltree"
)

// stringTable is the package's deduplicated string list, indexed by the
// worksheet's shared string references. Entries keep the parsed tree's
// text directly; a missing entry marks a malformed source slot that was
// tolerated during the build.
type stringTable struct {
	entries []strEntry
}

type strEntry struct {
	text string
	ok   bool
}

// Count returns the number of addressable slots.
func (t *stringTable) Count() int { return len(t.entries) }

// Lookup returns the string at index i, or "" and false when the index is
// out of range or the slot is a tolerated-malformed entry.
func (t *stringTable) Lookup(i int) (string, bool) {
	if i < 0 || i >= len(t.entries) || !t.entries[i].ok {
		return "", false
	}
	return t.entries[i].text, true
}

// newStringTable builds the table from the root of the strings part.
// The declared count attribute sizes the table in one allocation; when it
// is missing or unparsable a counting pre-pass takes its place. Entries
// whose text cannot be located are tolerated; more entries than declared
// is fatal.
func newStringTable(root *xmlquery.Node, log Logger) (*stringTable, error) {
	table := xmltree.Find(root, "sst")
	if table == nil {
		return nil, errors.Wrap(ErrFormat, "strings part has no sst table")
	}

	count := -1
	if decl, ok := xmltree.Attr(table, "count"); ok && decl != "" {
		if n, err := strconv.Atoi(decl); err == nil && n >= 0 {
			count = n
		}
	}
	if count < 0 {
		log.Warn("strings part does not declare its size")

		count = 0
		_ = xmltree.Visit(table, func(node *xmlquery.Node, depth, n int) error {
			count++
			return xmltree.SkipChildren
		})
	}

	st := &stringTable{entries: make([]strEntry, count)}

	err := xmltree.Visit(table, func(node *xmlquery.Node, depth, n int) error {
		if n >= count {
			return errors.Wrapf(ErrFormat, "strings part has more than the %d declared entries", count)
		}

		tnode := xmltree.Find(node, "si.t")
		if tnode == nil {
			log.Warn("string entry %d is invalid", n)
			return xmltree.SkipChildren
		}

		st.entries[n] = strEntry{text: xmltree.Text(tnode), ok: true}
		return xmltree.SkipChildren
	})
	if err != nil {
		return nil, err
	}

	log.Debug("read %d strings from package", count)
	return st, nil
}

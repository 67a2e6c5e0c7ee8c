package bom

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/cfortier/sheetsvg/host"
)

// Row holds the descriptive fields of one bill-of-materials line, keyed by
// its item number.
type Row struct {
	ItemNumber    string
	PartNumber    string
	Name          string
	Specification string
}

// header keyword sets per column role, in folded form (lowercase, no
// diacritics). Matching is substring-based: "ITEM NO." contains "item".
var (
	itemKeywords = []string{"item", "repere"}
	partKeywords = []string{"part number", "part no", "partnumber", "piece"}
	nameKeywords = []string{"name", "nom", "description"}
	specKeywords = []string{"specification", "spec"}
)

// foldTransformer lowercases later; this chain only strips diacritics:
// decompose, drop combining marks, recompose.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// fold normalizes header text for keyword matching.
func fold(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// matchColumn reports whether a folded header cell matches any keyword.
func matchColumn(folded string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(folded, kw) {
			return true
		}
	}
	return false
}

// columns holds the resolved header column indices; -1 means not found.
type columns struct {
	item int
	part int
	name int
	spec int
}

// findColumns scans the header row (row 0) for the four column roles. The
// first matching column wins per role.
func findColumns(table host.Table) columns {
	cols := columns{item: -1, part: -1, name: -1, spec: -1}
	for col := 0; col < table.ColumnCount(); col++ {
		folded := fold(table.CellText(0, col))
		if folded == "" {
			continue
		}
		switch {
		case cols.item < 0 && matchColumn(folded, itemKeywords):
			cols.item = col
		case cols.part < 0 && matchColumn(folded, partKeywords):
			cols.part = col
		case cols.name < 0 && matchColumn(folded, nameKeywords):
			cols.name = col
		case cols.spec < 0 && matchColumn(folded, specKeywords):
			cols.spec = col
		}
	}
	return cols
}

// Extract builds an item-number-keyed lookup from a tabular annotation.
// The result is a snapshot: callers only read it. Extraction never fails;
// a nil table, a table without an item-number column, or a panicking table
// implementation all yield an empty map.
func Extract(table host.Table) (rows map[string]Row) {
	rows = make(map[string]Row)
	if table == nil {
		return rows
	}

	// Metadata enrichment is best effort: a misbehaving host table must
	// not abort the render pass.
	defer func() {
		if r := recover(); r != nil {
			rows = make(map[string]Row)
		}
	}()

	cols := findColumns(table)
	if cols.item < 0 {
		return rows
	}

	cell := func(row, col int) string {
		if col < 0 {
			return ""
		}
		return strings.TrimSpace(table.CellText(row, col))
	}

	for row := 1; row < table.RowCount(); row++ {
		item := cell(row, cols.item)
		if item == "" {
			continue
		}
		if _, exists := rows[item]; exists {
			// First occurrence wins on duplicate item numbers.
			continue
		}
		rows[item] = Row{
			ItemNumber:    item,
			PartNumber:    cell(row, cols.part),
			Name:          cell(row, cols.name),
			Specification: cell(row, cols.spec),
		}
	}

	return rows
}

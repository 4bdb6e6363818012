package lib

import (
	"regexp"
	"strings"
)

/*
	The grammar works on sanitized text. Every production either consumes input
	and reports success, or leaves the cursor where it found it.

	FILE_TYPE = MULTI_PHYS_TABLE;
	PART 'RES-SMD'
	CLASS = DISCRETE
	: PART_NUMBER (OPT='') | VALUE = DESCRIPTION;
	  '0402' ('R0402',1,Y) = '10K 1%'
	END_PART
	END.
*/

// FileTypes lists the FILE_TYPE tags the grammar accepts.
var FileTypes = []string{"MULTI_PHYS_TABLE"}

// ClassTypes lists the CLASS tokens, in the order they are tried.
var ClassTypes = []string{"IC", "DISCRETE", "Discrete", "discrete", "IO", "MECHANICAL", ""}

var (
	rePadding    = regexp.MustCompile(`^[ \t]*`)
	reWhitespace = regexp.MustCompile(`^\s*`)
	rePartName   = regexp.MustCompile(`^[0-9a-zA-Z\-_+]+`)
	reKey        = regexp.MustCompile(`^[A-Z_\-]+`)
	reValue      = regexp.MustCompile(`^[0-9a-zA-Z_| ='\t)(,><\-]+`)
)

type rawTable struct {
	Name   string
	Class  string
	Header string
	Rows   []string
	Pairs  [][2]string
}

type rawFile struct {
	FileType string
	Tables   []*rawTable
	KeyValue bool
}

type grammar struct {
	text string
	pos  int
	far  int
}

func (g *grammar) advance(n int) {
	g.pos += n
	if g.pos > g.far {
		g.far = g.pos
	}
}

/*
	attempt runs a production and rewinds the cursor if it fails
*/
func (g *grammar) attempt(production func() bool) bool {
	start := g.pos
	if production() {
		return true
	}

	g.pos = start
	return false
}

func (g *grammar) literal(s string) bool {
	if !strings.HasPrefix(g.text[g.pos:], s) {
		return false
	}

	g.advance(len(s))
	return true
}

func (g *grammar) pattern(re *regexp.Regexp) (string, bool) {
	match := re.FindString(g.text[g.pos:])
	if match == "" {
		return "", false
	}

	g.advance(len(match))
	return match, true
}

func (g *grammar) padding() {
	g.pattern(rePadding)
}

func (g *grammar) whitespace() {
	g.pattern(reWhitespace)
}

func (g *grammar) eol() bool {
	return g.attempt(func() bool {
		g.padding()
		return g.literal("\n")
	})
}

func (g *grammar) equal() bool {
	return g.attempt(func() bool {
		g.whitespace()
		if !g.literal("=") {
			return false
		}
		g.whitespace()

		return true
	})
}

func (g *grammar) fileType() (filetype string, ok bool) {
	ok = g.attempt(func() bool {
		if !g.literal("FILE_TYPE") || !g.equal() {
			return false
		}

		for _, candidate := range FileTypes {
			if g.literal(candidate) {
				filetype = candidate
				return g.literal(";") && g.eol()
			}
		}

		return false
	})

	return filetype, ok
}

func (g *grammar) partName() (name string, ok bool) {
	ok = g.attempt(func() bool {
		if !g.literal("PART") {
			return false
		}
		g.whitespace()

		if !g.literal("'") {
			return false
		}

		if name, ok = g.pattern(rePartName); !ok {
			return false
		}

		return g.literal("'") && g.eol()
	})

	return name, ok
}

/*
	className is optional; a missing CLASS line yields the empty class
*/
func (g *grammar) className() string {
	class := ""
	g.attempt(func() bool {
		if !g.literal("CLASS") || !g.equal() {
			return false
		}

		g.literal("'")
		for _, candidate := range ClassTypes {
			if g.literal(candidate) {
				class = candidate
				break
			}
		}
		g.literal("'")
		g.whitespace()

		return true
	})

	return class
}

func (g *grammar) header() (header string, ok bool) {
	ok = g.attempt(func() bool {
		if !g.literal(":") {
			return false
		}

		rest := g.text[g.pos:]
		if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
			rest = rest[:nl]
		}

		end := strings.IndexByte(rest, ';')
		if end < 1 {
			return false
		}

		header = rest[:end]
		g.advance(end)

		return g.literal(";") && g.eol()
	})

	return header, ok
}

func (g *grammar) row() (row string, ok bool) {
	ok = g.attempt(func() bool {
		g.padding()

		rest := g.text[g.pos:]
		if strings.HasPrefix(rest, "END_PART") {
			return false
		}

		nl := strings.IndexByte(rest, '\n')
		if nl < 0 {
			return false
		}

		row = rest[:nl]
		g.advance(nl)

		return g.eol()
	})

	return row, ok
}

func (g *grammar) endPart() bool {
	return g.attempt(func() bool {
		g.padding()
		return g.literal("END_PART") && g.eol()
	})
}

func (g *grammar) end() bool {
	return g.attempt(func() bool {
		g.padding()
		g.literal("'")
		if !g.literal("END.") {
			return false
		}
		g.eol()

		return true
	})
}

func (g *grammar) keyVal() (pair [2]string, ok bool) {
	ok = g.attempt(func() bool {
		key, ok := g.pattern(reKey)
		if !ok || !g.equal() {
			return false
		}

		value, ok := g.pattern(reValue)
		if !ok {
			return false
		}

		pair = [2]string{key, value}
		return g.eol()
	})

	return pair, ok
}

func (g *grammar) tabularBlock() (table *rawTable, ok bool) {
	table = &rawTable{}
	ok = g.attempt(func() bool {
		if table.Name, ok = g.partName(); !ok {
			return false
		}

		table.Class = g.className()
		if table.Header, ok = g.header(); !ok {
			return false
		}

		for row, ok := g.row(); ok; row, ok = g.row() {
			table.Rows = append(table.Rows, row)
		}

		return len(table.Rows) > 0 && g.endPart()
	})

	return table, ok
}

func (g *grammar) keyValueBlock() (table *rawTable, ok bool) {
	table = &rawTable{}
	ok = g.attempt(func() bool {
		if table.Name, ok = g.partName(); !ok {
			return false
		}

		table.Class = g.className()
		for pair, ok := g.keyVal(); ok; pair, ok = g.keyVal() {
			table.Pairs = append(table.Pairs, pair)
		}

		return len(table.Pairs) > 0 && g.endPart()
	})

	return table, ok
}

func (g *grammar) file(block func() (*rawTable, bool)) (file *rawFile, ok bool) {
	file = &rawFile{}
	ok = g.attempt(func() bool {
		if file.FileType, ok = g.fileType(); !ok {
			return false
		}

		for table, ok := block(); ok; table, ok = block() {
			file.Tables = append(file.Tables, table)
		}

		return len(file.Tables) > 0 && g.end() && g.pos == len(g.text)
	})

	return file, ok
}

/*
	parseGrammar tries the tabular grammar and then the key/value grammar; the
	first one to consume the whole text wins.
*/
func parseGrammar(text string) (*rawFile, error) {
	g := &grammar{text: text}
	if file, ok := g.file(g.tabularBlock); ok {
		return file, nil
	}

	if file, ok := g.file(g.keyValueBlock); ok {
		file.KeyValue = true
		return file, nil
	}

	return nil, &GrammarError{Line: strings.Count(text[:g.far], "\n") + 1}
}

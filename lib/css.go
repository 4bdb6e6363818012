package lib

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode"
)

/*
	A connectivity (css) file describes footprint pins one line at a time:

		C 120 40 VCC ...      connection, 11 tokens
		P NAME VALUE ...      property, 16 tokens
		L ...                 line, 7 tokens
		X                     marker

	Anything else is empty.
*/

// CssElement is one of CssConnection, CssProperty, CssLine, CssMarker or CssEmpty.
type CssElement interface {
	cssElement()
}

type CssConnection struct {
	X    int
	Y    int
	Name string
}

type CssProperty struct {
	Name  string
	Value string
}

type CssLine struct{}

type CssMarker struct{}

type CssEmpty struct{}

func (*CssConnection) cssElement() {}
func (*CssProperty) cssElement()   {}
func (*CssLine) cssElement()       {}
func (*CssMarker) cssElement()     {}
func (*CssEmpty) cssElement()      {}

/*
	OnGrid reports whether the connection sits on the 10 unit grid
*/
func (c *CssConnection) OnGrid() bool {
	return c.X%10 == 0 && c.Y%10 == 0
}

func ParseCssLine(line string) (CssElement, error) {
	tokens, err := splitCssTokens(line)
	if err != nil {
		return nil, err
	}

	switch {
	case len(tokens) == 0:
		return &CssEmpty{}, nil
	case tokens[0] == "C" && len(tokens) == 11:
		x, err := strconv.Atoi(tokens[1])
		if err != nil {
			return nil, fmt.Errorf("connection x: %w", err)
		}

		y, err := strconv.Atoi(tokens[2])
		if err != nil {
			return nil, fmt.Errorf("connection y: %w", err)
		}

		return &CssConnection{X: x, Y: y, Name: tokens[3]}, nil
	case tokens[0] == "X":
		return &CssMarker{}, nil
	case tokens[0] == "L" && len(tokens) == 7:
		return &CssLine{}, nil
	case tokens[0] == "P" && len(tokens) == 16:
		return &CssProperty{Name: tokens[1], Value: tokens[2]}, nil
	}

	return &CssEmpty{}, nil
}

func ParseCss(r io.Reader) ([]CssElement, error) {
	elements := []CssElement{}
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		element, err := ParseCssLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}

		elements = append(elements, element)
	}

	return elements, scanner.Err()
}

func ParseCssFile(src string) ([]CssElement, error) {
	fp, err := os.Open(src)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	return ParseCss(fp)
}

/*
	OffGrid returns the connections that are not on the grid
*/
func OffGrid(elements []CssElement) []*CssConnection {
	connections := []*CssConnection{}
	for _, element := range elements {
		if c, ok := element.(*CssConnection); ok && !c.OnGrid() {
			connections = append(connections, c)
		}
	}

	return connections
}

/*
	splitCssTokens splits on whitespace. A token that opens with a quote runs
	to the matching quote, which ends it; the quotes are kept.
*/
func splitCssTokens(line string) ([]string, error) {
	tokens := []string{}
	runes := []rune(line)
	for i := 0; i < len(runes); {
		if unicode.IsSpace(runes[i]) {
			i++
			continue
		}

		start := i
		if quote := runes[i]; quote == '"' || quote == '\'' {
			for i++; i < len(runes) && runes[i] != quote; i++ {
			}

			if i == len(runes) {
				return nil, fmt.Errorf("no closing quotation in %q", line)
			}
			i++
		} else {
			for i < len(runes) && !unicode.IsSpace(runes[i]) {
				i++
			}
		}

		tokens = append(tokens, string(runes[start:i]))
	}

	return tokens, nil
}

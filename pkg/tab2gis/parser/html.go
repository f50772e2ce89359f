package parser

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/ukaji3/tab2gis-go/pkg/tab2gis/models"
)

// ReadHTML reads every <table> element of an HTML page. Tables are named
// after their id attribute, their caption, or "table_N".
func ReadHTML(path string, params ReadParams) (*models.Workbook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	source := sourceName(path)
	wb := &models.Workbook{BookName: source}

	for i, tbl := range findTables(doc) {
		name := tableName(tbl, i+1)
		if t, ok := gridTable(source, name, tableRows(tbl), params); ok {
			wb.Tables = append(wb.Tables, t)
		}
	}

	return wb, nil
}

func findTables(n *html.Node) []*html.Node {
	var tables []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "table" {
			tables = append(tables, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return tables
}

// tableRows collects the cell text of tbl's own rows, ignoring nested tables.
func tableRows(tbl *html.Node) [][]string {
	var rows [][]string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "table":
				continue
			case "tr":
				rows = append(rows, rowCells(c))
			default:
				walk(c)
			}
		}
	}
	walk(tbl)
	return rows
}

func rowCells(tr *html.Node) []string {
	var cells []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			cells = append(cells, strings.Join(strings.Fields(nodeText(c)), " "))
		}
	}
	return cells
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func tableName(tbl *html.Node, index int) string {
	for _, a := range tbl.Attr {
		if a.Key == "id" && strings.TrimSpace(a.Val) != "" {
			return strings.TrimSpace(a.Val)
		}
	}
	for c := tbl.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "caption" {
			if text := strings.Join(strings.Fields(nodeText(c)), " "); text != "" {
				return text
			}
		}
	}
	return fmt.Sprintf("table_%d", index)
}

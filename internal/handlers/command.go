package handlers

import (
	"strconv"
	"strings"

	"github.com/Lixing-Zhang/table-orders/internal/models"
)

// Command keywords
const (
	KeywordExit       = "exit"
	KeywordSales      = "sales"
	KeywordInfo       = "info"
	KeywordCategories = "categories"
	KeywordMenu       = "menu"
)

var helpKeywords = map[string]bool{
	"help":     true,
	"?":        true,
	"commands": true,
}

// Kind is the classification of an input line
type Kind int

const (
	KindEmpty Kind = iota
	KindExit
	KindAddProduct
	KindPlaceOrder
	KindSales
	KindInfo
	KindListCategories
	KindListMenu
	KindHelp
	KindUnrecognized
)

// Command is a classified input line
type Command struct {
	Kind Kind
	// Line is the trimmed input
	Line string
	// Fields are the comma separated parts, set for add and order commands
	Fields []string
	// Table is the parsed table number of an order command
	Table int
	// Arg is the product name of an info command
	Arg string
}

// Classify decides what a line asks for. Rules are tried in a fixed
// order and the first match wins.
func Classify(line string) Command {
	line = strings.TrimSpace(line)
	cmd := Command{Line: line}

	if line == "" {
		cmd.Kind = KindEmpty
		return cmd
	}

	if line == KeywordExit {
		cmd.Kind = KindExit
		return cmd
	}

	fields := splitFields(line)

	// Category tokens and integers are disjoint, so these two never compete
	if _, ok := models.ResolveCategory(fields[0]); ok {
		cmd.Kind = KindAddProduct
		cmd.Fields = fields
		return cmd
	}

	if table, err := strconv.Atoi(fields[0]); err == nil {
		cmd.Kind = KindPlaceOrder
		cmd.Fields = fields
		cmd.Table = table
		return cmd
	}

	if line == KeywordSales {
		cmd.Kind = KindSales
		return cmd
	}

	if words := strings.Fields(line); words[0] == KeywordInfo {
		cmd.Kind = KindInfo
		cmd.Arg = strings.Join(words[1:], " ")
		return cmd
	}

	switch {
	case line == KeywordCategories:
		cmd.Kind = KindListCategories
	case line == KeywordMenu:
		cmd.Kind = KindListMenu
	case helpKeywords[line]:
		cmd.Kind = KindHelp
	default:
		cmd.Kind = KindUnrecognized
	}
	return cmd
}

// splitFields splits on commas and trims each field
func splitFields(line string) []string {
	parts := strings.Split(line, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

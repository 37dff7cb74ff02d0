package yamldoc

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ukaji3/yxf-go/pkg/yxf/models"
	"gopkg.in/yaml.v3"
)

// Write renders form as a YAML document: the yxf header block first, then
// every sheet in form order with row keys in header order.
//
// YAML cannot keep an empty sheet apart from a missing one, so an empty
// sheet is written with a single placeholder comment row. form itself is
// left unchanged.
func Write(form *models.Form) ([]byte, error) {
	form = form.Clone()
	for _, sheet := range form.Sheets() {
		if len(sheet.Rows) == 0 {
			sheet.Append(models.RowOf(models.CommentColumn, fmt.Sprintf("Empty %s sheet", sheet.Name)))
			form.Headers.EnsureCommentFirst(sheet.Name)
		}
	}

	root := mapping()
	root.Content = append(root.Content, scalar(metadataKey), headersNode(form))

	for _, sheet := range form.Sheets() {
		headers := form.Columns(sheet.Name)
		rows := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, row := range sheet.Rows {
			if err := models.CheckRowKeys(sheet.Name, headers, row); err != nil {
				return nil, err
			}
			m := mapping()
			for _, key := range headers {
				if v, ok := row.Get(key); ok {
					m.Content = append(m.Content, scalar(key), scalar(v))
				}
			}
			rows.Content = append(rows.Content, m)
		}
		root.Content = append(root.Content, scalar(string(sheet.Name)), rows)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func headersNode(form *models.Form) *yaml.Node {
	sheets := mapping()
	for _, name := range form.Headers.Names() {
		cols := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, c := range form.Columns(name) {
			cols.Content = append(cols.Content, scalar(c))
		}
		sheets.Content = append(sheets.Content, scalar(string(name)), cols)
	}
	m := mapping()
	m.Content = append(m.Content, scalar(headersKey), sheets)
	return m
}

func mapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func scalar(v string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
	if needsQuotes(v) {
		n.Style = yaml.DoubleQuotedStyle
	}
	return n
}

// needsQuotes reports whether a multi-line value would lose line breaks or
// indentation in a literal block.
func needsQuotes(v string) bool {
	if !strings.Contains(v, "\n") {
		return false
	}
	return strings.HasPrefix(v, "\n") ||
		strings.HasPrefix(v, " ") ||
		strings.HasSuffix(v, "\n") ||
		strings.TrimSpace(v) == ""
}

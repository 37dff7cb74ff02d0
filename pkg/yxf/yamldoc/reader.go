// Package yamldoc converts forms to and from YAML documents.
//
// A document holds one top-level entry per sheet, each a list of rows, plus
// a "yxf" entry recording the column order of every sheet:
//
//	yxf:
//	  headers:
//	    survey: [type, name, label]
//	survey:
//	  - type: text
//	    name: q1
//	    label: Question 1
//
// All scalars are read and written as strings.
package yamldoc

import (
	"errors"
	"fmt"

	"github.com/ukaji3/yxf-go/pkg/yxf/models"
	"gopkg.in/yaml.v3"
)

const (
	metadataKey = "yxf"
	headersKey  = "headers"
	formatName  = "yaml"
)

// Read parses a YAML document into a form. source names the document in
// error messages.
func Read(content []byte, source string) (*models.Form, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, models.NewParseError(formatName, source, 0, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, models.ErrMissingYxfMetadata
	}

	root := resolve(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, parseError(source, root, "document must be a mapping")
	}

	var metadata *yaml.Node
	var sheetKeys, sheetValues []*yaml.Node
	seen := make(map[string]bool)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], resolve(root.Content[i+1])
		if seen[key.Value] {
			return nil, parseError(source, key, fmt.Sprintf("duplicate entry %q", key.Value))
		}
		seen[key.Value] = true

		if key.Value == metadataKey {
			metadata = value
			continue
		}
		sheetKeys = append(sheetKeys, key)
		sheetValues = append(sheetValues, value)
	}

	if metadata == nil {
		return nil, models.ErrMissingYxfMetadata
	}
	if !seen[string(models.Survey)] {
		return nil, models.ErrMissingSurveyEntry
	}

	form := models.New()
	if err := readHeaders(form, metadata, source); err != nil {
		return nil, err
	}
	for i, key := range sheetKeys {
		if err := models.ValidateSheetName(key.Value, source, key.Line); err != nil {
			return nil, err
		}
		rows, err := readRows(sheetValues[i], source)
		if err != nil {
			return nil, err
		}
		form.AddSheet(models.SheetName(key.Value)).Append(rows...)
	}
	return form, nil
}

// readHeaders fills form.Headers from the yxf entry.
func readHeaders(form *models.Form, metadata *yaml.Node, source string) error {
	if metadata.Kind != yaml.MappingNode {
		return parseError(source, metadata, "yxf entry must be a mapping")
	}
	var headers *yaml.Node
	for i := 0; i+1 < len(metadata.Content); i += 2 {
		if metadata.Content[i].Value == headersKey {
			headers = resolve(metadata.Content[i+1])
		}
	}
	if headers == nil || headers.Kind != yaml.MappingNode {
		return parseError(source, metadata, `yxf entry must contain a "headers" mapping`)
	}

	for i := 0; i+1 < len(headers.Content); i += 2 {
		key, value := headers.Content[i], resolve(headers.Content[i+1])
		if err := models.ValidateSheetName(key.Value, source, key.Line); err != nil {
			return err
		}
		sheet := models.SheetName(key.Value)

		columns := []string{}
		switch {
		case isNull(value):
		case value.Kind == yaml.SequenceNode:
			for _, item := range value.Content {
				item = resolve(item)
				if item.Kind != yaml.ScalarNode {
					return parseError(source, item, fmt.Sprintf("header of sheet %s must be a string", sheet))
				}
				columns = append(columns, item.Value)
			}
		default:
			return parseError(source, value, fmt.Sprintf("headers of sheet %s must be a list", sheet))
		}

		if err := models.CheckCommentColumn(sheet, columns); err != nil {
			return err
		}
		form.Headers.Set(sheet, columns)
	}

	if !form.Headers.Has(models.Survey) {
		return fmt.Errorf("%w: yxf.headers has no survey entry", models.ErrMissingYxfMetadata)
	}
	return nil
}

// readRows converts a sheet entry to rows. Null values are absent.
func readRows(node *yaml.Node, source string) ([]*models.Row, error) {
	if isNull(node) {
		return nil, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, parseError(source, node, "sheet must be a list of rows")
	}

	rows := make([]*models.Row, 0, len(node.Content))
	for _, item := range node.Content {
		item = resolve(item)
		if item.Kind != yaml.MappingNode {
			return nil, parseError(source, item, "row must be a mapping")
		}
		row := models.NewRow()
		for i := 0; i+1 < len(item.Content); i += 2 {
			key, value := item.Content[i], resolve(item.Content[i+1])
			if key.Kind != yaml.ScalarNode {
				return nil, parseError(source, key, "column name must be a string")
			}
			if row.Has(key.Value) {
				return nil, parseError(source, key, fmt.Sprintf("duplicate column %q", key.Value))
			}
			if isNull(value) {
				continue
			}
			if value.Kind != yaml.ScalarNode {
				return nil, parseError(source, value, fmt.Sprintf("value of column %q must be a string", key.Value))
			}
			row.Set(key.Value, value.Value)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}

func parseError(source string, n *yaml.Node, msg string) error {
	return models.NewParseError(formatName, source, n.Line, errors.New(msg))
}

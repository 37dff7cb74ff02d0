package models

import (
	"fmt"
	"strings"
)

// commentPrefix marks a provenance comment written by a previous conversion.
const commentPrefix = "Converted by yxf,"

// ProvenanceComment returns the comment recorded in the first survey row.
func ProvenanceComment(label, format string) string {
	return fmt.Sprintf("Converted by yxf, from %s. Edit the %s file instead of the Excel file.", label, format)
}

// EnsureComment records where the form came from in the first survey row.
//
// An existing provenance comment is overwritten in place; otherwise a new
// leading comment row is inserted. "#" is made the first survey column.
func EnsureComment(form *Form, label, format string) error {
	survey, ok := form.Sheet(Survey)
	if !ok {
		return ErrMissingSurveySheet
	}
	comment := ProvenanceComment(label, format)

	if len(survey.Rows) > 0 {
		first := survey.Rows[0]
		if existing, ok := first.Get(CommentColumn); ok && strings.HasPrefix(existing, commentPrefix) {
			first.Set(CommentColumn, comment)
		} else {
			survey.Insert(0, RowOf(CommentColumn, comment))
		}
	} else {
		survey.Append(RowOf(CommentColumn, comment))
	}

	form.Headers.EnsureCommentFirst(Survey)
	return nil
}

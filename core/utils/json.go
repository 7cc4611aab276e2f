package utils

import (
	"strings"

	"github.com/goccy/go-json"
)

// PrettyJSON renders v as JSON indented by two spaces, the form codes are
// shown and copied in.
func PrettyJSON(v any) (string, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// SplitIDs splits a comma or whitespace separated identifier list.
// Empty items are dropped.
func SplitIDs(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

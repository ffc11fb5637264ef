package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// SearchKey is the form names are matched in: NFC-normalized and
// Unicode case-folded, so "CAFÉ" and "café" share a key.
func SearchKey(s string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(s)))
}

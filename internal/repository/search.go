package repository

import (
	"strings"

	"fyyur/internal/domain"
)

const likeEscape = "!"

var likeReplacer = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// namePattern builds a substring pattern over search_name. Both sides are
// folded by domain.SearchKey, so matching ignores case beyond ASCII on every
// driver. An empty term matches every row.
func namePattern(term string) string {
	return "%" + likeReplacer.Replace(domain.SearchKey(term)) + "%"
}

const nameSearchClause = "search_name LIKE ? ESCAPE '" + likeEscape + "'"

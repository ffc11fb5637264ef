package domain

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

type Genre string

var genreChoices = []Genre{
	"Alternative",
	"Blues",
	"Classical",
	"Country",
	"Electronic",
	"Folk",
	"Funk",
	"Hip-Hop",
	"Heavy Metal",
	"Instrumental",
	"Jazz",
	"Musical Theatre",
	"Pop",
	"Punk",
	"R&B",
	"Reggae",
	"Rock n Roll",
	"Soul",
	"Other",
}

func GenreChoices() []Genre {
	out := make([]Genre, len(genreChoices))
	copy(out, genreChoices)
	return out
}

func IsGenre(s string) bool {
	for _, g := range genreChoices {
		if string(g) == s {
			return true
		}
	}
	return false
}

// Genres is the canonical tag list. It is written to the store as a JSON array.
type Genres []Genre

// ParseGenres normalizes every encoding the old forms produced: a JSON array,
// a postgres array literal like {Jazz,"R&B"} or a comma separated string.
// Blank and repeated tags are dropped; order is kept.
func ParseGenres(raw string) Genres {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Genres{}
	}

	var parts []string
	if strings.HasPrefix(raw, "[") {
		if err := json.Unmarshal([]byte(raw), &parts); err != nil {
			parts = strings.Split(strings.Trim(raw, "[]"), ",")
		}
	} else {
		parts = strings.Split(strings.Trim(raw, "{}"), ",")
	}
	return normalizeGenres(parts)
}

func normalizeGenres(parts []string) Genres {
	out := make(Genres, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		p = strings.Trim(strings.TrimSpace(p), `"'`)
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, Genre(p))
	}
	return out
}

func (g Genres) Strings() []string {
	out := make([]string, len(g))
	for i, v := range g {
		out[i] = string(v)
	}
	return out
}

func (g Genres) MarshalJSON() ([]byte, error) {
	if g == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Genre(g))
}

// UnmarshalJSON accepts both a list and the legacy single string form.
func (g *Genres) UnmarshalJSON(b []byte) error {
	trimmed := strings.TrimSpace(string(b))
	switch {
	case trimmed == "null":
		*g = nil
		return nil
	case strings.HasPrefix(trimmed, `"`):
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*g = ParseGenres(s)
		return nil
	}

	var parts []string
	if err := json.Unmarshal(b, &parts); err != nil {
		return err
	}
	*g = normalizeGenres(parts)
	return nil
}

// Value writes the tags as a JSON array without HTML escaping; the column
// holds "R&B", not "R\u0026B".
func (g Genres) Value() (driver.Value, error) {
	if g == nil {
		g = Genres{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode([]Genre(g)); err != nil {
		return nil, err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func (g *Genres) Scan(src any) error {
	switch v := src.(type) {
	case string:
		*g = ParseGenres(v)
	case []byte:
		*g = ParseGenres(string(v))
	case nil:
		*g = Genres{}
	default:
		return fmt.Errorf("cannot scan %T into Genres", src)
	}
	return nil
}

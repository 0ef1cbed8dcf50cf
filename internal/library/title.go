package library

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	reYear = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)
	reTag  = regexp.MustCompile(`(?i)\b(2160p?|1080p?|720p?|480p?|4k|x26[45]|h26[45]|hevc|bluray|web[-.]?dl|webrip|hdtv)\b`)
)

// TitleFromFilename turns "Big.Buck.Bunny.2008.1080p.mp4" into
// "Big Buck Bunny". Everything from the first year or release tag on is
// dropped; separators collapse to single spaces.
func TitleFromFilename(name string) string {
	base := filepath.Base(name)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	cut := len(stem)
	if loc := reYear.FindStringIndex(stem); loc != nil && loc[0] < cut {
		cut = loc[0]
	}
	if loc := reTag.FindStringIndex(stem); loc != nil && loc[0] < cut {
		cut = loc[0]
	}
	if cut > 0 {
		stem = stem[:cut]
	}

	clean := strings.NewReplacer(".", " ", "_", " ", "-", " ").Replace(stem)
	clean = strings.Join(strings.Fields(clean), " ")
	if clean == "" {
		clean = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return clean
}

// Initial is the A-Z bucket a title sorts under in the UI; digits and
// anything else land in "#".
func Initial(title string) string {
	if title == "" {
		return "#"
	}
	r, _ := utf8.DecodeRuneInString(Normalize(title))
	if r == utf8.RuneError || unicode.IsDigit(r) {
		return "#"
	}
	if unicode.IsLetter(r) {
		return strings.ToUpper(string(r))
	}
	return "#"
}

// Normalize removes accents using NFD and drops combining marks.
func Normalize(s string) string {
	ss := norm.NFD.String(s)
	b := strings.Builder{}
	b.Grow(len(ss))
	for _, r := range ss {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

package report

import (
	"mime"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fileNameSuffix is appended when the file name is synthesized from the
// company name instead of a server hint.
const fileNameSuffix = "_Analisi.pdf"

var whitespaceRun = regexp.MustCompile(`\s+`)

// asciiFold strips diacritics: decompose, drop combining marks, recompose.
var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FileName derives the name an exported report is saved under. A parseable
// Content-Disposition hint from the server wins; otherwise the name is
// synthesized from the company name.
func FileName(companyName, dispositionHint string) string {
	if name := fileNameFromHint(dispositionHint); name != "" {
		return name
	}
	return SynthesizeFileName(companyName)
}

func fileNameFromHint(hint string) string {
	if hint == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(hint)
	if err != nil {
		return ""
	}
	name := params["filename"]
	// Reject path fragments smuggled into the hint.
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return ""
	}
	return name
}

// SynthesizeFileName builds a file name from the company name: diacritics
// folded to ASCII, whitespace runs collapsed to single underscores, fixed
// suffix appended.
func SynthesizeFileName(companyName string) string {
	name := strings.TrimSpace(companyName)
	if folded, _, err := transform.String(asciiFold, name); err == nil {
		name = folded
	}
	name = whitespaceRun.ReplaceAllString(name, "_")
	if name == "" {
		name = "Report"
	}
	return name + fileNameSuffix
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package claim

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Info holds the structural facts extracted from a block of text. Used by
// the check command to show what the pipeline saw in a message, and to
// propose alternate search queries.
type Info struct {
	// KeyClaims lists candidate verifiable assertions, at most five.
	KeyClaims []string `json:"key_claims" yaml:"key_claims"`

	// Dates, Numbers and Names are the literal matches found in the text,
	// deduplicated in order of first appearance.
	Dates   []string `json:"dates" yaml:"dates"`
	Numbers []string `json:"numbers" yaml:"numbers"`
	Names   []string `json:"names" yaml:"names"`

	// Links lists the URLs embedded in the text.
	Links []string `json:"links" yaml:"links"`

	// Queries proposes up to three search queries combining the claims
	// with the extracted dates and names.
	Queries []string `json:"queries" yaml:"queries"`
}

var datePatterns = []*regexp.Regexp{
	// DD.MM.YYYY or DD/MM/YYYY.
	regexp.MustCompile(`\b\d{1,2}[./]\d{1,2}[./]\d{2,4}\b`),
	// YYYY-MM-DD.
	regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
	// English "Month DD, YYYY".
	regexp.MustCompile(`(?i)\b(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4}\b`),
	// Russian "DD месяц YYYY".
	regexp.MustCompile(`(?i)\d{1,2}\s+(?:января|февраля|марта|апреля|мая|июня|июля|августа|сентября|октября|ноября|декабря)\s+\d{4}`),
}

var numberPatterns = []*regexp.Regexp{
	// Percentages.
	regexp.MustCompile(`\d+\.?\d*\s*%`),
	// Money amounts (rubles, dollars, euros).
	regexp.MustCompile(`(?i)\d+[\s,.]?\d*\s*(?:руб|₽|USD|\$|EUR|€|долл)`),
	// Large numbers with group separators.
	regexp.MustCompile(`\b\d{1,3}(?:[\s,.]?\d{3})+\b`),
	// Plain numbers of two or more digits.
	regexp.MustCompile(`\b\d{2,}\b`),
}

var namePatterns = []*regexp.Regexp{
	// Two capitalized words in a row (Latin or Cyrillic).
	regexp.MustCompile(`[A-ZА-ЯЁ][a-zа-яё]+\s+[A-ZА-ЯЁ][a-zа-яё]+`),
	// Organization names with a legal-form prefix.
	regexp.MustCompile(`(?:ООО|ЗАО|ПАО|АО|LLC|Inc|Corp)\s+[A-ZА-ЯЁ][A-Za-zА-Яа-яЁё0-9_ ]+`),
}

var urlPattern = regexp.MustCompile(`(?i)https?://\S+`)

// claimKeywords marks sentences likely to carry a verifiable assertion.
var claimKeywords = []string{
	"утверждает", "заявляет", "сообщает", "объявляет",
	"обнаружено", "найдено", "выявлено", "установлено",
	"результат", "исследование", "анализ", "данные",
	"статистика", "процент", "увеличение", "уменьшение",
}

// Analyze extracts structural facts from text and proposes alternate search
// queries. Empty input yields a zero Info.
func Analyze(text string) Info {
	if strings.TrimSpace(text) == "" {
		return Info{}
	}

	info := Info{
		KeyClaims: extractKeyClaims(text),
		Dates:     matchAll(text, datePatterns),
		Numbers:   matchAll(text, numberPatterns),
		Names:     extractNames(text),
		Links:     uniq(urlPattern.FindAllString(text, -1)),
	}
	info.Queries = buildQueries(info)
	return info
}

// matchAll runs every pattern over the text and returns the deduplicated
// matches in order of first appearance.
func matchAll(text string, patterns []*regexp.Regexp) []string {
	var all []string
	for _, p := range patterns {
		all = append(all, p.FindAllString(text, -1)...)
	}
	return uniq(all)
}

func extractNames(text string) []string {
	var names []string
	for _, p := range namePatterns {
		for _, m := range p.FindAllString(text, -1) {
			if utf8.RuneCountInString(m) > 3 {
				names = append(names, m)
			}
		}
	}
	return uniq(names)
}

// extractKeyClaims picks sentences containing a reporting keyword; when
// none match it falls back to the first three sentences. At most five
// claims are returned.
func extractKeyClaims(text string) []string {
	var sentences []string
	for _, s := range splitSentences(text) {
		if utf8.RuneCountInString(strings.TrimSpace(s)) > 20 {
			sentences = append(sentences, strings.TrimSpace(s))
		}
	}

	var claims []string
	for _, s := range sentences {
		lower := strings.ToLower(s)
		for _, kw := range claimKeywords {
			if strings.Contains(lower, kw) {
				claims = append(claims, s)
				break
			}
		}
	}

	if len(claims) == 0 {
		n := min(3, len(sentences))
		claims = append(claims, sentences[:n]...)
	}

	if len(claims) > 5 {
		claims = claims[:5]
	}
	return claims
}

// buildQueries combines the main claim with extracted dates and names into
// up to three search queries.
func buildQueries(info Info) []string {
	var queries []string

	if len(info.KeyClaims) > 0 {
		main := info.KeyClaims[0]
		if len(info.Dates) > 0 {
			queries = append(queries, main+" "+info.Dates[0])
		}
		if len(info.Names) > 0 {
			queries = append(queries, main+" "+info.Names[0])
		}
		queries = append(queries, main)
	}

	if len(info.Names) > 0 && len(info.Dates) > 0 {
		queries = append(queries, info.Names[0]+" "+info.Dates[0])
	}
	if len(info.Names) > 0 && len(queries) < 3 {
		n := min(2, len(info.Names))
		queries = append(queries, info.Names[:n]...)
	}

	if len(queries) == 0 {
		words := strings.Fields(strings.Join(info.KeyClaims, " "))
		n := min(5, len(words))
		if n > 0 {
			queries = append(queries, strings.Join(words[:n], " "))
		}
	}

	if len(queries) > 3 {
		queries = queries[:3]
	}
	return queries
}

func splitSentences(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
}

func uniq(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(in))
	var out []string
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

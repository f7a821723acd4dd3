// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"
	"math"
	"strings"

	"github.com/pdiddy/factcheck-bot/pkg/types"
)

// renderDigest formats the accepted sources as the final report: a header
// with the mean confidence, then rank, title, score, link and snippet per
// source.
func renderDigest(top []types.ScoredSource) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📋 *Найденные источники (уверенность: %d%%):*\n\n", meanScore(top))
	for i, s := range top {
		fmt.Fprintf(&b, "%d. *%s* (%d%%)\n%s\n%s\n\n", i+1, s.Title, s.Score, s.Link, s.Snippet)
	}
	return b.String()
}

// renderFallback formats the unranked top results shown when nothing
// passed the acceptance threshold: title and link only, no snippet.
func renderFallback(results []types.CandidateSource, maxSources int) string {
	if len(results) > maxSources {
		results = results[:maxSources]
	}

	var b strings.Builder
	b.WriteString("Поиск выполнен, но релевантные источники не найдены.\n\n")
	fmt.Fprintf(&b, "📌 *Топ-%d результата поиска (без ранжирования):*\n", len(results))
	for i, s := range results {
		fmt.Fprintf(&b, "%d. [%s](%s)\n", i+1, s.Title, s.Link)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// meanScore is the arithmetic mean of the scores, rounded to the nearest
// integer.
func meanScore(sources []types.ScoredSource) int {
	if len(sources) == 0 {
		return 0
	}
	sum := 0
	for _, s := range sources {
		sum += s.Score
	}
	return int(math.Round(float64(sum) / float64(len(sources))))
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"strconv"
	"strings"
)

// ParseScores extracts per-candidate scores from a free-form model reply
// expected to be comma-separated integers. The i-th token belongs to the
// i-th candidate: a token that does not parse as an integer in [0, 100]
// zeroes its own candidate without shifting the rest. Missing trailing
// tokens default to 0; extra tokens are ignored. The result always has
// exactly n entries.
func ParseScores(reply string, n int) []int {
	if n <= 0 {
		return nil
	}

	scores := make([]int, n)
	tokens := strings.Split(reply, ",")
	for i := 0; i < n && i < len(tokens); i++ {
		v, err := strconv.Atoi(strings.TrimSpace(tokens[i]))
		if err != nil || v < 0 || v > 100 {
			continue
		}
		scores[i] = v
	}
	return scores
}

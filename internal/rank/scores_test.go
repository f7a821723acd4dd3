// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"reflect"
	"testing"
)

func TestParseScores(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		n     int
		want  []int
	}{
		{"exact match", "85, 42, 10", 3, []int{85, 42, 10}},
		{"no spaces", "85,42,10", 3, []int{85, 42, 10}},
		{"invalid token zeroes its position", "85, not-a-number, 40", 3, []int{85, 0, 40}},
		{"fewer tokens pad with zero", "85", 3, []int{85, 0, 0}},
		{"extra tokens ignored", "85, 42, 10, 99, 1", 3, []int{85, 42, 10}},
		{"over 100 discarded", "150, 42", 2, []int{0, 42}},
		{"negative discarded", "-5, 42", 2, []int{0, 42}},
		{"boundary values kept", "0, 100", 2, []int{0, 100}},
		{"empty reply", "", 3, []int{0, 0, 0}},
		{"garbage reply", "sorry, I cannot rate these", 2, []int{0, 0}},
		{"float discarded", "85.5, 42", 2, []int{0, 42}},
		{"surrounding whitespace", "  85 , 42\n", 2, []int{85, 42}},
		{"zero candidates", "85, 42", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseScores(tt.reply, tt.n)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseScores(%q, %d) = %v, want %v", tt.reply, tt.n, got, tt.want)
			}
		})
	}
}

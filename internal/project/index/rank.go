package index

import (
	"sort"
	"unicode"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

func init() {
	algo.Init("default")
}

var slab = util.MakeSlab(100*1024, 2048)

// Match is a ranked candidate.
type Match struct {
	Text  string
	Index int // position in the candidate list
	Score int
}

// Rank scores candidates against query with fzf's fuzzy matcher and
// returns at most limit matches, best first. Ties keep shorter candidates
// first, then the original order. An empty query returns the first limit
// candidates unscored. Matching is case sensitive only when the query has
// an upper case letter.
func Rank(candidates []string, query string, limit int) []Match {
	var matches []Match

	if query == "" {
		for i, c := range candidates {
			if limit > 0 && i >= limit {
				break
			}
			matches = append(matches, Match{Text: c, Index: i})
		}
		return matches
	}

	caseSensitive := hasUpper(query)
	pattern := []rune(query)
	if !caseSensitive {
		for i, r := range pattern {
			pattern[i] = unicode.ToLower(r)
		}
	}

	for i, c := range candidates {
		chars := util.ToChars([]byte(c))
		result, _ := algo.FuzzyMatchV2(caseSensitive, false, true, &chars, pattern, false, slab)
		if result.Start < 0 {
			continue
		}
		matches = append(matches, Match{Text: c, Index: i, Score: result.Score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return len(matches[i].Text) < len(matches[j].Text)
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func hasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

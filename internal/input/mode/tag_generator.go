package mode

// TagLimit is the number of distinct jump tags per session. Targets past
// the limit receive no tag.
const TagLimit = 26 * 26

// TagGenerator produces two-letter jump tags "aa", "ab", ... "zz".
type TagGenerator struct {
	index int
}

// Next returns the next tag, or false once all tags are used.
func (g *TagGenerator) Next() (string, bool) {
	if g.index >= TagLimit {
		return "", false
	}

	first := rune('a' + g.index/26)
	second := rune('a' + g.index%26)
	g.index++
	return string([]rune{first, second}), true
}

// Reset starts the sequence over.
func (g *TagGenerator) Reset() {
	g.index = 0
}

package episode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		sep  string
		want string
	}{
		{"stopwords", "the lord of the rings", " ", "The Lord of the Rings"},
		{"dot separator", "breaking.bad", ".", "Breaking.Bad"},
		{"dots to spaces", "game.of.thrones", " ", "Game of Thrones"},
		{"uppercase input", "SHOW.NAME", " ", "Show Name"},
		{"mixed case", "mAsH", " ", "Mash"},
		{"leading article", "a.touch.of.frost", " ", "A Touch of Frost"},
		{"or and with", "love.or.money.with.friends", ".", "Love.or.Money.with.Friends"},
		{"internal punctuation", "x-men.the.animated.series", " ", "X-men the Animated Series"},
		{"leading digit", "3rd.rock.from.the.sun", " ", "3rd Rock From the Sun"},
		{"digits only", "24", " ", "24"},
		{"collapses whitespace", "  spaced   out  ", " ", "Spaced Out"},
		{"collapses dots", "mr..robot", ".", "Mr.Robot"},
		{"empty", "", " ", ""},
		{"only dots", "...", " ", ""},
		{"non ascii", "élite", " ", "Élite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTitle(tt.raw, tt.sep))
		})
	}
}

// Package analyzer classifies the codepoints of a text and estimates its
// terminal display width.
//
// The width model is a deliberate approximation: CJK and emoji weigh 2, a
// horizontal tab weighs 4 and everything else weighs 1. It does not follow
// the East Asian Width tables and does not cluster graphemes.
package analyzer

import (
	"unicode"
	"unicode/utf8"

	"github.com/younsl/widthscan/internal/models"
)

const (
	wideWeight    = 2
	tabWeight     = 4
	defaultWeight = 1
)

type runeRange struct {
	lo, hi rune
}

var cjkRanges = []runeRange{
	{0x4E00, 0x9FFF}, // CJK Unified Ideographs
	{0x3400, 0x4DBF}, // CJK Extension A
	{0x3040, 0x309F}, // Hiragana
	{0x30A0, 0x30FF}, // Katakana
	{0xAC00, 0xD7AF}, // Hangul Syllables
}

var emojiRanges = []runeRange{
	{0x1F600, 0x1F64F}, // Emoticons
	{0x1F300, 0x1F5FF}, // Misc Symbols and Pictographs
	{0x1F680, 0x1F6FF}, // Transport and Map
	{0x1F1E0, 0x1F1FF}, // Regional indicators
}

func inRanges(r rune, ranges []runeRange) bool {
	for _, rr := range ranges {
		if r >= rr.lo && r <= rr.hi {
			return true
		}
	}
	return false
}

// IsASCII reports whether r is an ASCII letter, an ASCII digit or whitespace
func IsASCII(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	// U+001C..U+001F are whitespace for str.isspace but not for unicode.IsSpace
	return unicode.IsSpace(r) || (r >= 0x1C && r <= 0x1F)
}

// IsCJK reports whether r is an ideograph, kana or Hangul syllable
func IsCJK(r rune) bool {
	return inRanges(r, cjkRanges)
}

// IsEmoji reports whether r falls in one of the common emoji blocks
func IsEmoji(r rune) bool {
	return inRanges(r, emojiRanges)
}

// IsNonASCII reports whether r lies outside the 7-bit range
func IsNonASCII(r rune) bool {
	return r >= utf8.RuneSelf
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7F
}

// RuneWidth returns the display weight of a single codepoint
func RuneWidth(r rune) int {
	if IsCJK(r) {
		return wideWeight
	} else if IsEmoji(r) {
		return wideWeight
	} else if r == '\t' {
		return tabWeight
	}
	return defaultWeight
}

// Classify returns the class of r. Detectors are tried in a fixed order
// (CJK, emoji, control, non-ASCII) and the first match wins.
func Classify(r rune) models.CharClass {
	if !utf8.ValidRune(r) {
		return models.ClassOtherUnicode
	}
	if IsCJK(r) {
		return models.ClassCJK
	}
	if IsEmoji(r) {
		return models.ClassEmoji
	}
	if isControl(r) {
		return models.ClassControl
	}
	if IsNonASCII(r) {
		return models.ClassOtherUnicode
	}
	return models.ClassASCII
}

// counter folds codepoints into an AnalysisResult
type counter struct {
	res models.AnalysisResult
}

func (c *counter) add(r rune, valid bool) {
	c.res.TotalCount++
	if !valid {
		c.res.DisplayWidth += defaultWeight
		return
	}
	if IsASCII(r) {
		c.res.ASCIICount++
	}
	if IsCJK(r) {
		c.res.CJKCount++
	}
	if IsEmoji(r) {
		c.res.EmojiCount++
	}
	if IsNonASCII(r) {
		c.res.UnicodeCount++
	}
	c.res.DisplayWidth += RuneWidth(r)
}

// Analyze counts the character classes of text and computes its display width.
// Each invalid UTF-8 byte counts as one unit of width 1 that matches no class.
func Analyze(text string) models.AnalysisResult {
	var c counter
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		c.add(r, !(r == utf8.RuneError && size == 1))
		i += size
	}
	return c.res
}

// AnalyzeRunes is Analyze over a rune slice. Surrogates and out of range
// values are treated like invalid bytes.
func AnalyzeRunes(rs []rune) models.AnalysisResult {
	var c counter
	for _, r := range rs {
		c.add(r, utf8.ValidRune(r))
	}
	return c.res
}

// DisplayWidth returns the summed display weight of text
func DisplayWidth(text string) int {
	width := 0
	for _, r := range text {
		width += RuneWidth(r)
	}
	return width
}

// Breakdown returns the exclusive per-class tally of text. The values sum to
// the codepoint count.
func Breakdown(text string) map[models.CharClass]int {
	counts := make(map[models.CharClass]int, len(models.AllClasses()))
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size == 1 {
			counts[models.ClassOtherUnicode]++
		} else {
			counts[Classify(r)]++
		}
		i += size
	}
	return counts
}

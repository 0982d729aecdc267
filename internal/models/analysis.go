package models

// CharClass is the mutually exclusive category assigned to a single codepoint
type CharClass int

const (
	ClassASCII CharClass = iota
	ClassCJK
	ClassEmoji
	ClassOtherUnicode
	ClassControl
)

// String returns the display label of the class
func (c CharClass) String() string {
	switch c {
	case ClassASCII:
		return "ASCII"
	case ClassCJK:
		return "CJK"
	case ClassEmoji:
		return "Emoji"
	case ClassOtherUnicode:
		return "OtherUnicode"
	case ClassControl:
		return "Control"
	default:
		return "Unknown"
	}
}

// AllClasses returns every class in display order
func AllClasses() []CharClass {
	return []CharClass{ClassASCII, ClassCJK, ClassEmoji, ClassOtherUnicode, ClassControl}
}

// AnalysisResult holds the character counts and display width of one text.
// UnicodeCount overlaps with CJKCount and EmojiCount.
type AnalysisResult struct {
	ASCIICount   int `json:"ascii"`
	CJKCount     int `json:"cjk"`
	EmojiCount   int `json:"emoji"`
	UnicodeCount int `json:"unicode"`
	TotalCount   int `json:"total"`
	DisplayWidth int `json:"display_width"`
}

// TextReport is one analyzed input as rendered by the CLI
type TextReport struct {
	Label          string            `json:"label"`
	Source         string            `json:"source"`
	Text           string            `json:"-"`
	Bytes          int64             `json:"bytes"`
	Result         AnalysisResult    `json:"result"`
	Breakdown      map[CharClass]int `json:"-"`
	ReferenceWidth int               `json:"reference_width"`
}

// WidthDrift returns how far the naive width is from the reference width
func (r TextReport) WidthDrift() int {
	return r.Result.DisplayWidth - r.ReferenceWidth
}

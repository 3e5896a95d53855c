package construct

import "strings"

// Kind is the type of a construct. The set of kinds is closed.
type Kind int8

// Construct kinds. Unknown is reserved for nodes built from elements
// without a known construct kind; it never has a renderer.
const (
	Unknown Kind = iota
	Algorithm
	If
	ElseIf
	Else
	ForEach
	For
	ForDownto
	Forever
	While
	RepeatUntil
	Step
	Return
	Print
	Output
	Yield
	Break
	Continue
	maxKind
)

var kindNames = [...]string{
	Unknown:     "unknown",
	Algorithm:   "algorithm",
	If:          "if",
	ElseIf:      "else-if",
	Else:        "else",
	ForEach:     "for-each",
	For:         "for",
	ForDownto:   "for-downto",
	Forever:     "forever",
	While:       "while",
	RepeatUntil: "repeat-until",
	Step:        "step",
	Return:      "return",
	Print:       "print",
	Output:      "output",
	Yield:       "yield",
	Break:       "break",
	Continue:    "continue",
}

var kindTags = [...]string{
	Algorithm:   "alg-algorithm",
	If:          "alg-if",
	ElseIf:      "alg-else-if",
	Else:        "alg-else",
	ForEach:     "alg-foreach",
	For:         "alg-for",
	ForDownto:   "alg-for-downto",
	Forever:     "alg-forever",
	While:       "alg-while",
	RepeatUntil: "alg-repeat-until",
	Step:        "alg-step",
	Return:      "alg-return",
	Print:       "alg-print",
	Output:      "alg-output",
	Yield:       "alg-yield",
	Break:       "alg-break",
	Continue:    "alg-continue",
}

// tagAliases holds element names which have been in use in earlier
// versions of the markup vocabulary.
var tagAliases = map[string]Kind{
	"alg-elseif": ElseIf,
}

func (k Kind) String() string {
	if k < 0 || k >= maxKind {
		return "unknown"
	}
	return kindNames[k]
}

// Tag returns the element name for a kind, e.g. "alg-while".
func (k Kind) Tag() string {
	if k <= Unknown || k >= maxKind {
		return ""
	}
	return kindTags[k]
}

// KindForTag returns the construct kind for an element name. Matching is
// case-insensitive. Element names which do not denote a construct
// result in Unknown.
func KindForTag(tag string) Kind {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return Unknown
	}
	for k := Algorithm; k < maxKind; k++ {
		if kindTags[k] == tag {
			return k
		}
	}
	if k, ok := tagAliases[tag]; ok {
		return k
	}
	return Unknown
}

// IsBlock is true for constructs which own a list of child constructs.
func (k Kind) IsBlock() bool {
	return k >= If && k <= RepeatUntil
}

// IsTerminal is true for constructs rendered as a single statement row.
func (k Kind) IsTerminal() bool {
	return k >= Step && k <= Continue
}

// IsLoop is true for the loop constructs. Loops are the only constructs
// which may carry a label and which may be targeted by break and continue.
func (k Kind) IsLoop() bool {
	return k >= ForEach && k <= RepeatUntil
}

// TakesLabel is true for constructs which render a label row in front of
// their header row.
func (k Kind) TakesLabel() bool {
	return k.IsLoop()
}

// RequiredAttributes lists the attributes a construct of kind k cannot be
// typeset meaningfully without.
func (k Kind) RequiredAttributes() []string {
	switch k {
	case If, ElseIf, ForEach, While, RepeatUntil:
		return []string{AttrCondition}
	case For, ForDownto:
		return []string{AttrInit, AttrTo}
	}
	return nil
}

package prompter

// Unit is one tokenized piece of a script.
type Unit struct {
	Text   string
	Source string
	Kind   unitKind
	Index  int
}

type unitKind uint8

// Kind is the exported alias of unitKind for surfaces and tooling.
type Kind = unitKind

const (
	kindWord unitKind = iota
	kindWhitespace
	kindNewline
)

const (
	// KindWord is a run of non-whitespace. It is the only kind the cursor rests on.
	KindWord Kind = kindWord
	// KindWhitespace is a whitespace run or the placeholder of an empty line.
	KindWhitespace Kind = kindWhitespace
	// KindNewline separates two lines.
	KindNewline Kind = kindNewline
)

func (k unitKind) String() string {
	switch k {
	case kindWord:
		return "word"
	case kindWhitespace:
		return "whitespace"
	case kindNewline:
		return "newline"
	default:
		return "unknown"
	}
}

// Advanceable reports whether the cursor may rest on the unit.
func (u Unit) Advanceable() bool {
	return u.Kind == kindWord
}

// Literal returns the characters of the original input the unit was cut from.
func (u Unit) Literal() string {
	return u.Source
}

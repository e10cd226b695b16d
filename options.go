package regex

// Options holds the compile-time flags controlling a pattern's
// parsing and matching behavior. The bit positions are stable so a
// caller that has them as a packed integer (e.g. read from a config
// file) can pass it through unchanged via OptionsFromBits.
type Options struct {
	IgnoreCase   bool // bit 1
	Multiline    bool // bit 2
	SingleLine   bool // bit 4 (dot-all)
	Extended     bool // bit 8 (reserved; recognized but inert, see DESIGN.md)
	FindLongest  bool // bit 16
	FindNotEmpty bool // bit 32
}

const (
	FlagIgnoreCase   = 1 << 0
	FlagMultiline    = 1 << 1
	FlagSingleLine   = 1 << 2
	FlagExtended     = 1 << 3
	FlagFindLongest  = 1 << 4
	FlagFindNotEmpty = 1 << 5
)

// Option is a functional option constructor for New, a small
// option-struct idiom preferred here over a constructor with a long
// positional parameter list.
type Option func(*Options)

// IgnoreCase makes literals and backreferences compare
// case-insensitively (ASCII fold only; character classes are never
// folded, see DESIGN.md).
func IgnoreCase() Option { return func(o *Options) { o.IgnoreCase = true } }

// Multiline makes ^ and $ match at line boundaries, not just at the
// start/end of the whole input.
func Multiline() Option { return func(o *Options) { o.Multiline = true } }

// SingleLine makes `.` also match line separators.
func SingleLine() Option { return func(o *Options) { o.SingleLine = true } }

// Extended is recognized and stored but never changes parsing or
// matching (see DESIGN.md).
func Extended() Option { return func(o *Options) { o.Extended = true } }

// FindLongest changes root selection at each scan position to the
// candidate result with the greatest end position.
func FindLongest() Option { return func(o *Options) { o.FindLongest = true } }

// FindNotEmpty skips a zero-width match at the scan position when
// searching for the first/next match.
func FindNotEmpty() Option { return func(o *Options) { o.FindNotEmpty = true } }

// OptionsFromBits decodes a packed bit-flag integer into an Options
// value.
func OptionsFromBits(bits int) Options {
	return Options{
		IgnoreCase:   bits&FlagIgnoreCase != 0,
		Multiline:    bits&FlagMultiline != 0,
		SingleLine:   bits&FlagSingleLine != 0,
		Extended:     bits&FlagExtended != 0,
		FindLongest:  bits&FlagFindLongest != 0,
		FindNotEmpty: bits&FlagFindNotEmpty != 0,
	}
}

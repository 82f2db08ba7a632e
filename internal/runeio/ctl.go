// Package runeio names control runes for readable diagnostics: rather than
// splatting a raw NUL or ESC byte into an error message, callers render it
// through CaretForm or Name.
package runeio

// ControlRune represents a named control unicode codepoint.
type ControlRune struct {
	N string
	R rune
}

// C0Ctls contains the classic ASCII control characters.
var C0Ctls = [32]ControlRune{
	{"<NUL>", 0x00},
	{"<SOH>", 0x01},
	{"<STX>", 0x02},
	{"<ETX>", 0x03},
	{"<EOT>", 0x04},
	{"<ENQ>", 0x05},
	{"<ACK>", 0x06},
	{"<BEL>", 0x07},
	{"<BS>", 0x08},
	{"<HT>", 0x09},
	{"<NL>", 0x0A},
	{"<VT>", 0x0B},
	{"<NP>", 0x0C},
	{"<CR>", 0x0D},
	{"<SO>", 0x0E},
	{"<SI>", 0x0F},
	{"<DLE>", 0x10},
	{"<DC1>", 0x11},
	{"<DC2>", 0x12},
	{"<DC3>", 0x13},
	{"<DC4>", 0x14},
	{"<NAK>", 0x15},
	{"<SYN>", 0x16},
	{"<ETB>", 0x17},
	{"<CAN>", 0x18},
	{"<EM>", 0x19},
	{"<SUB>", 0x1A},
	{"<ESC>", 0x1B},
	{"<FS>", 0x1C},
	{"<GS>", 0x1D},
	{"<RS>", 0x1E},
	{"<US>", 0x1F},
}

// PseudoCtls provides the typical mnemonics for space and delete.
var PseudoCtls = [2]ControlRune{
	{"<SP>", 0x20},
	{"<DEL>", 0x7F},
}

var byRune = buildByRune()

func buildByRune() map[rune]string {
	m := make(map[rune]string, len(C0Ctls)+len(PseudoCtls))
	for _, ctl := range C0Ctls {
		m[ctl.R] = ctl.N
	}
	for _, ctl := range PseudoCtls {
		m[ctl.R] = ctl.N
	}
	return m
}

// Name returns the control mnemonic for r, e.g. "<NUL>", or "" if r is not a
// known control rune.
func Name(r rune) string {
	return byRune[r]
}

// CaretForm computes the ^-escaped printable form of a C0 control rune.
func CaretForm(r rune) string {
	if r < 0x20 || r == 0x7f {
		return "^" + string(r^0x40)
	}
	return ""
}

// Describe renders r for a diagnostic message: the mnemonic name if known,
// the caret form if it's an unnamed control rune, or the rune itself quoted.
func Describe(r rune) string {
	if n := Name(r); n != "" {
		return n
	}
	if c := CaretForm(r); c != "" {
		return c
	}
	return "'" + string(r) + "'"
}

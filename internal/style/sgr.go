package style

import "strconv"

// Reset is the full SGR reset emitted after every rendered character.
const Reset = "\x1b[0m"

const (
	csi     = "\x1b["
	fgTrue  = "\x1b[38;2;"
	bgTrue  = "\x1b[48;2;"
	sgrTerm = 'm'
)

// sgrCodes maps attribute bit i to its SGR code. Code 6 (rapid blink) is
// skipped.
var sgrCodes = [...]int{1, 2, 3, 4, 5, 7, 8, 9}

// AppendSGR appends the escape form of one styled character to dst:
// attribute codes (or a reset when no attributes are set), truecolor
// foreground, truecolor background, the character, then a reset.
func AppendSGR(dst []byte, s Style, ch byte) []byte {
	dst = AppendAttrs(dst, s.Attrs)
	dst = appendColor(dst, fgTrue, s.Fg)
	dst = appendColor(dst, bgTrue, s.Bg)
	dst = append(dst, ch)
	return append(dst, Reset...)
}

// SGR is the string form of AppendSGR.
func SGR(s Style, ch byte) string {
	return string(AppendSGR(make([]byte, 0, 48), s, ch))
}

// AppendAttrs appends one "ESC[<code>m" per set attribute bit in bit order,
// or a single reset when a is AttrReset.
func AppendAttrs(dst []byte, a Attr) []byte {
	if a == AttrReset {
		return append(dst, Reset...)
	}
	for i, code := range sgrCodes {
		if a&(1<<i) == 0 {
			continue
		}
		dst = append(dst, csi...)
		dst = strconv.AppendInt(dst, int64(code), 10)
		dst = append(dst, sgrTerm)
	}
	return dst
}

func appendColor(dst []byte, prefix string, c RGB) []byte {
	dst = append(dst, prefix...)
	dst = strconv.AppendUint(dst, uint64(c.R), 10)
	dst = append(dst, ';')
	dst = strconv.AppendUint(dst, uint64(c.G), 10)
	dst = append(dst, ';')
	dst = strconv.AppendUint(dst, uint64(c.B), 10)
	return append(dst, sgrTerm)
}

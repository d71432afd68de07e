package style

import "testing"

func TestSGR(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		ch    byte
		want  string
	}{
		{
			name:  "no attributes emits reset first",
			style: DefaultStyle(),
			ch:    'H',
			want:  "\x1b[0m\x1b[38;2;255;255;255m\x1b[48;2;0;0;0mH\x1b[0m",
		},
		{
			name:  "single attribute",
			style: New(RGB{1, 2, 3}, RGB{4, 5, 6}, AttrBold),
			ch:    'x',
			want:  "\x1b[1m\x1b[38;2;1;2;3m\x1b[48;2;4;5;6mx\x1b[0m",
		},
		{
			name:  "reverse skips code 6",
			style: New(White, Black, AttrBlink|AttrReverse),
			ch:    ' ',
			want:  "\x1b[5m\x1b[7m\x1b[38;2;255;255;255m\x1b[48;2;0;0;0m \x1b[0m",
		},
		{
			name:  "all attributes in bit order",
			style: New(Black, White, AttrBold|AttrFaint|AttrItalic|AttrUnderline|AttrBlink|AttrReverse|AttrInvisible|AttrStrikethrough),
			ch:    '#',
			want: "\x1b[1m\x1b[2m\x1b[3m\x1b[4m\x1b[5m\x1b[7m\x1b[8m\x1b[9m" +
				"\x1b[38;2;0;0;0m\x1b[48;2;255;255;255m#\x1b[0m",
		},
		{
			name:  "undefined bits emit nothing",
			style: New(Black, Black, 0x200),
			ch:    'a',
			want:  "\x1b[38;2;0;0;0m\x1b[48;2;0;0;0ma\x1b[0m",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SGR(tt.style, tt.ch); got != tt.want {
				t.Errorf("SGR() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAppendSGRReusesBuffer(t *testing.T) {
	buf := make([]byte, 0, 64)
	buf = AppendSGR(buf, DefaultStyle(), 'a')
	first := len(buf)
	buf = AppendSGR(buf, DefaultStyle(), 'b')
	if len(buf) != 2*first {
		t.Errorf("len = %d, want %d", len(buf), 2*first)
	}
}

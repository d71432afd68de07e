package style

import "testing"

func TestNewRGBClamps(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		want    RGB
	}{
		{"in range", 10, 20, 30, RGB{10, 20, 30}},
		{"above range", 256, 1000, 255, RGB{255, 255, 255}},
		{"below range", -1, 0, -300, RGB{0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewRGB(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("NewRGB(%d, %d, %d) = %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestStyleSetters(t *testing.T) {
	var s Style
	s.SetFg(300, 128, 5)
	s.SetBg(-4, 64, 999)
	s.SetAttrs(AttrBold | AttrUnderline)

	if s.Fg != (RGB{255, 128, 5}) {
		t.Errorf("Fg = %v", s.Fg)
	}
	if s.Bg != (RGB{0, 64, 255}) {
		t.Errorf("Bg = %v", s.Bg)
	}
	if s.Attrs != AttrBold|AttrUnderline {
		t.Errorf("Attrs = %v", s.Attrs)
	}
}

func TestDefaultStyles(t *testing.T) {
	if d := DefaultStyle(); d.Fg != White || d.Bg != Black || d.Attrs != AttrReset {
		t.Errorf("DefaultStyle() = %+v", d)
	}
	if b := BorderStyle(); b.Fg != Black || b.Bg != White || b.Attrs != AttrReset {
		t.Errorf("BorderStyle() = %+v", b)
	}
}

func TestAttrBits(t *testing.T) {
	want := []Attr{1, 2, 4, 8, 16, 32, 64, 128}
	got := []Attr{AttrBold, AttrFaint, AttrItalic, AttrUnderline, AttrBlink, AttrReverse, AttrInvisible, AttrStrikethrough}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("attr %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestParseRGB(t *testing.T) {
	c, err := ParseRGB("#FF8000")
	if err != nil {
		t.Fatalf("ParseRGB failed: %v", err)
	}
	if c != (RGB{255, 128, 0}) {
		t.Errorf("ParseRGB = %v", c)
	}
	if c.Hex() != "#ff8000" {
		t.Errorf("Hex() = %q", c.Hex())
	}

	short, err := ParseRGB("#fff")
	if err != nil || short != White {
		t.Errorf("ParseRGB(#fff) = %v, %v", short, err)
	}

	if _, err := ParseRGB("orange"); err == nil {
		t.Error("expected error for non-hex color")
	}
}

func TestParseAttrs(t *testing.T) {
	tests := []struct {
		in      string
		want    Attr
		wantErr bool
	}{
		{"", AttrReset, false},
		{"reset", AttrReset, false},
		{"bold", AttrBold, false},
		{"Bold|underline", AttrBold | AttrUnderline, false},
		{"italic,strikethrough", AttrItalic | AttrStrikethrough, false},
		{"sparkly", AttrReset, true},
	}
	for _, tt := range tests {
		got, err := ParseAttrs(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAttrs(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAttrs(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAttrString(t *testing.T) {
	if s := AttrReset.String(); s != "reset" {
		t.Errorf("AttrReset.String() = %q", s)
	}
	if s := (AttrBold | AttrReverse).String(); s != "bold|reverse" {
		t.Errorf("String() = %q", s)
	}
	if s := (AttrBold | 0x100).String(); s != "bold|0x100" {
		t.Errorf("String() = %q", s)
	}
}

package colour

import "testing"

func TestPackARGBRoundTrip(t *testing.T) {
	tests := []struct {
		name       string
		a, r, g, b uint8
	}{
		{"opaque red", 255, 255, 0, 0},
		{"translucent blue", 128, 0, 0, 255},
		{"transparent black", 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := PackARGB(tt.a, tt.r, tt.g, tt.b)
			if c.A() != tt.a || c.R() != tt.r || c.G() != tt.g || c.B() != tt.b {
				t.Errorf("PackARGB(%d,%d,%d,%d) = A:%d R:%d G:%d B:%d", tt.a, tt.r, tt.g, tt.b, c.A(), c.R(), c.G(), c.B())
			}
		})
	}
}

func TestColor32ToRGBRoundTrip(t *testing.T) {
	c := PackARGB(200, 10, 20, 30)
	rgb := c.ToRGB()
	if rgb.R != 10 || rgb.G != 20 || rgb.B != 30 || rgb.A != 200 {
		t.Fatalf("ToRGB() = %+v", rgb)
	}
	if got := rgb.ToColor32(); got != c {
		t.Fatalf("ToColor32() = %v, want %v", got, c)
	}
}

func TestSetAlphaComponent(t *testing.T) {
	c := PackARGB(255, 10, 20, 30)
	c2 := c.SetAlphaComponent(50)
	if c2.A() != 50 || c2.R() != 10 || c2.G() != 20 || c2.B() != 30 {
		t.Fatalf("SetAlphaComponent(50) = %v", c2)
	}
}

func TestRGBHex(t *testing.T) {
	rgb := RGB{R: 26, G: 43, B: 60, A: 255}
	if got, want := rgb.Hex(), "#1a2b3c"; got != want {
		t.Errorf("Hex() = %s, want %s", got, want)
	}
}

func TestCompositeColorsOpaqueOverOpaqueIsForeground(t *testing.T) {
	fg := PackARGB(255, 10, 20, 30)
	bg := PackARGB(255, 200, 200, 200)
	got := CompositeColors(fg, bg, CompositeStandard)
	if got.A() != 255 || got.R() != 10 || got.G() != 20 || got.B() != 30 {
		t.Errorf("CompositeColors(opaque fg, opaque bg) = %v, want fg unchanged", got)
	}
}

func TestCompositeColorsTransparentFgIsBackground(t *testing.T) {
	fg := PackARGB(0, 10, 20, 30)
	bg := PackARGB(255, 200, 200, 200)
	got := CompositeColors(fg, bg, CompositeStandard)
	if got.A() != 255 || got.R() != 200 || got.G() != 200 || got.B() != 200 {
		t.Errorf("CompositeColors(transparent fg, opaque bg) = %v, want bg", got)
	}
}

func TestCompositeColorsVariantsDiffer(t *testing.T) {
	fg := PackARGB(128, 10, 20, 30)
	bg := PackARGB(255, 200, 200, 200)
	std := CompositeColors(fg, bg, CompositeStandard)
	bug := CompositeColors(fg, bg, CompositeReferenceBug)
	if std == bug {
		t.Errorf("expected CompositeStandard and CompositeReferenceBug to differ for a translucent fg, got %v for both", std)
	}
}

package color

import (
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGB
		wantErr bool
	}{
		{name: "plain", input: "ff8800", want: RGB{R: 255, G: 136, B: 0}},
		{name: "hash prefix", input: "#00ff00", want: RGB{G: 255}},
		{name: "uppercase", input: "FFFFFF", want: RGB{R: 255, G: 255, B: 255}},
		{name: "black", input: "000000", want: RGB{}},
		{name: "too short", input: "fff", wantErr: true},
		{name: "too long", input: "ff88001", wantErr: true},
		{name: "not hex", input: "zzzzzz", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseHex(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	c := RGB{R: 18, G: 52, B: 86}
	got, err := ParseHex(c.Hex())
	if err != nil {
		t.Fatalf("ParseHex(Hex()) returned error: %v", err)
	}
	if got != c {
		t.Errorf("round trip = %v, want %v", got, c)
	}
}

func TestScale_Identity(t *testing.T) {
	c := RGB{R: 255, G: 136, B: 7}
	if got := c.Scale(100); got != c {
		t.Errorf("Scale(100) = %v, want identity %v", got, c)
	}
}

func TestScale_Truncation(t *testing.T) {
	// 255 * 50 / 100 = 127 with truncating division
	c := RGB{R: 255}
	want := RGB{R: 127}
	if got := c.Scale(50); got != want {
		t.Errorf("Scale(50) = %v, want %v", got, want)
	}
}

func TestScale_Monotonic(t *testing.T) {
	c := RGB{R: 255, G: 136, B: 7}
	prev := c.Scale(100)
	for b := 99; b >= 0; b-- {
		got := c.Scale(b)
		if got.R > prev.R || got.G > prev.G || got.B > prev.B {
			t.Fatalf("Scale(%d) = %v exceeds Scale(%d) = %v", b, got, b+1, prev)
		}
		prev = got
	}
	if prev != (RGB{}) {
		t.Errorf("Scale(0) = %v, want black", prev)
	}
}

func TestScale_Clamps(t *testing.T) {
	c := RGB{R: 100, G: 100, B: 100}
	if got := c.Scale(150); got != c {
		t.Errorf("Scale(150) = %v, want clamped identity %v", got, c)
	}
	if got := c.Scale(-5); got != (RGB{}) {
		t.Errorf("Scale(-5) = %v, want black", got)
	}
}

func TestHSVToRGB_CanonicalHues(t *testing.T) {
	tests := []struct {
		hue  int
		want RGB
	}{
		{0, RGB{R: 255}},
		{60, RGB{R: 255, G: 255}},
		{120, RGB{G: 255}},
		{180, RGB{G: 255, B: 255}},
		{240, RGB{B: 255}},
		{300, RGB{R: 255, B: 255}},
	}

	for _, tt := range tests {
		if got := HSVToRGB(tt.hue, 100, 100); got != tt.want {
			t.Errorf("HSVToRGB(%d,100,100) = %v, want %v", tt.hue, got, tt.want)
		}
	}
}

func TestHSVToRGB_ZeroValue(t *testing.T) {
	if got := HSVToRGB(42, 100, 0); got != (RGB{}) {
		t.Errorf("HSVToRGB(42,100,0) = %v, want black", got)
	}
}

func TestHSVToRGB_ZeroSaturation(t *testing.T) {
	got := HSVToRGB(200, 0, 100)
	if got.R != got.G || got.G != got.B {
		t.Errorf("HSVToRGB(200,0,100) = %v, want grey", got)
	}
}

func TestHSVToRGB_WrapsHue(t *testing.T) {
	if got, want := HSVToRGB(360, 100, 100), HSVToRGB(0, 100, 100); got != want {
		t.Errorf("HSVToRGB(360) = %v, want %v", got, want)
	}
	if got, want := HSVToRGB(-120, 100, 100), HSVToRGB(240, 100, 100); got != want {
		t.Errorf("HSVToRGB(-120) = %v, want %v", got, want)
	}
}

func TestSine_Anchors(t *testing.T) {
	tests := []struct {
		deg  int
		want int
	}{
		{0, 0},
		{30, 50},
		{60, 87},
		{90, 100},
		{120, 87},
		{150, 50},
		{180, 0},
		{270, -100},
	}

	for _, tt := range tests {
		if got := Sine(tt.deg); got != tt.want {
			t.Errorf("Sine(%d) = %d, want %d", tt.deg, got, tt.want)
		}
	}
}

func TestSine_Periodic(t *testing.T) {
	for deg := -360; deg <= 360; deg += 15 {
		if got, want := Sine(deg+360), Sine(deg); got != want {
			t.Errorf("Sine(%d+360) = %d, want Sine(%d) = %d", deg, got, deg, want)
		}
	}
}

func TestSine_Symmetric(t *testing.T) {
	for deg := 0; deg <= 180; deg += 5 {
		if got, want := Sine(-deg), -Sine(deg); got != want {
			t.Errorf("Sine(-%d) = %d, want %d", deg, got, want)
		}
		if got, want := Sine(180-deg), Sine(deg); got != want {
			t.Errorf("Sine(180-%d) = %d, want %d", deg, got, want)
		}
	}
}

func TestSine_Bounded(t *testing.T) {
	for deg := 0; deg < 360; deg++ {
		v := Sine(deg)
		if v < -100 || v > 100 {
			t.Fatalf("Sine(%d) = %d out of [-100,100]", deg, v)
		}
	}
}

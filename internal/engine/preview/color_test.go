package preview

import "testing"

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#ffffff")
	if err != nil {
		t.Fatalf("ParseHexColor: %v", err)
	}
	if c.R != 1 || c.G != 1 || c.B != 1 {
		t.Errorf("white = %v", c)
	}

	c, err = ParseHexColor("#1a1a1a")
	if err != nil {
		t.Fatalf("ParseHexColor: %v", err)
	}
	want := float32(0x1a) / 255.0
	if c.R != want || c.G != want || c.B != want {
		t.Errorf("#1a1a1a = %v, want %f per channel", c, want)
	}
}

func TestParseHexColorShort(t *testing.T) {
	c, err := ParseHexColor("#f00")
	if err != nil {
		t.Fatalf("ParseHexColor: %v", err)
	}
	if c.R != 1 || c.G != 0 || c.B != 0 {
		t.Errorf("#f00 = %v, want red", c)
	}
}

func TestParseHexColorInvalid(t *testing.T) {
	for _, s := range []string{"", "#12345", "#gggggg", "red"} {
		if _, err := ParseHexColor(s); err == nil {
			t.Errorf("ParseHexColor(%q) should fail", s)
		}
	}
}

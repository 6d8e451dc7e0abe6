package style

import (
	"testing"

	"bioPress/internal/profile"
)

func TestResolveThemeDefaults(t *testing.T) {
	r := Resolve(profile.Customizations{ThemeID: "royal"})
	if r.PrimaryColor != "#a37b2c" {
		t.Errorf("primary = %q", r.PrimaryColor)
	}
	if r.BackgroundColor != "#fdf6e3" {
		t.Errorf("background = %q", r.BackgroundColor)
	}
	if r.FontFamilyClass != "font-serif" {
		t.Errorf("font class = %q", r.FontFamilyClass)
	}
	if r.ImagePlacement != profile.PlaceRight || r.ImageShape != profile.ShapeCircle {
		t.Errorf("image defaults = %q/%q", r.ImagePlacement, r.ImageShape)
	}
}

func TestResolveUserChoicesWinOverTheme(t *testing.T) {
	r := Resolve(profile.Customizations{
		ThemeID:      "royal",
		PrimaryColor: "#112233",
		FontFamily:   profile.FontMono,
		FontSize:     17,
		ImageShape:   profile.ShapeRect,
	})
	if r.PrimaryColor != "#112233" {
		t.Errorf("primary = %q, explicit choice must win", r.PrimaryColor)
	}
	if r.FontFamilyClass != "font-mono" {
		t.Errorf("font class = %q", r.FontFamilyClass)
	}
	if r.FontSizePx != 17 {
		t.Errorf("font size = %d", r.FontSizePx)
	}
	if r.ImageShape != profile.ShapeRect {
		t.Errorf("image shape = %q", r.ImageShape)
	}
	// 未显式选择的项仍取主题默认
	if r.BackgroundColor != "#fdf6e3" {
		t.Errorf("background = %q, should come from theme", r.BackgroundColor)
	}
}

func TestResolveUnknownThemeFallsBack(t *testing.T) {
	got := Resolve(profile.Customizations{ThemeID: "no-such-theme"})
	want := Resolve(profile.Customizations{ThemeID: DefaultThemeID})
	if got != want {
		t.Fatalf("unknown theme must resolve like the default theme\n got %+v\nwant %+v", got, want)
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	c := profile.Customizations{ThemeID: "slate", PrimaryColor: "#445566", FontSize: 15}
	if Resolve(c) != Resolve(c) {
		t.Fatalf("resolve must be a pure function")
	}
}

func TestThemesGalleryOrder(t *testing.T) {
	ts := Themes()
	if len(ts) != 8 {
		t.Fatalf("themes = %d, want 8", len(ts))
	}
	if ts[0].ID != DefaultThemeID {
		t.Errorf("gallery should start with the default theme, got %q", ts[0].ID)
	}
	seen := map[string]bool{}
	for _, th := range ts {
		if seen[th.ID] {
			t.Errorf("duplicate theme %q", th.ID)
		}
		seen[th.ID] = true
	}
}

func TestPDFFontName(t *testing.T) {
	cases := map[string]string{
		"font-serif": "Times",
		"font-sans":  "Helvetica",
		"font-mono":  "Courier",
		"":           "Times",
	}
	for class, want := range cases {
		if got := PDFFontName(class); got != want {
			t.Errorf("PDFFontName(%q) = %q, want %q", class, got, want)
		}
	}
}

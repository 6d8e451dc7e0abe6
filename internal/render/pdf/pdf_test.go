package pdf

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"bioPress/internal/profile"
	"bioPress/internal/style"
)

var allRenderers = []struct {
	name string
	fn   Renderer
}{
	{"classic", Classic},
	{"sidebar-left", SidebarLeft},
	{"sidebar-right", SidebarRight},
	{"centered-elegance", CenteredElegance},
	{"timeline", Timeline},
	{"grid-cards", GridCards},
	{"banner", Banner},
	{"minimal-lines", MinimalLines},
	{"royal-frame", RoyalFrame},
	{"two-column", TwoColumnFields},
	{"monogram", Monogram},
	{"accent-bar", AccentBar},
	{"photo-band", PhotoBand},
	{"compact-table", CompactTable},
}

func renderBytes(t *testing.T, fn Renderer, p *profile.Profile, as Assets) []byte {
	t.Helper()
	st := style.Resolve(p.Customizations)
	f, err := fn(p, st, as)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	var buf bytes.Buffer
	if err := f.Output(&buf); err != nil {
		t.Fatalf("output: %v", err)
	}
	return buf.Bytes()
}

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for i := range img.Pix {
		img.Pix[i] = 0xcc
	}
	img.Set(0, 0, color.RGBA{R: 0xff, A: 0xff})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestAllRenderersProducePDF(t *testing.T) {
	p := profile.Default()
	for _, r := range allRenderers {
		t.Run(r.name, func(t *testing.T) {
			data := renderBytes(t, r.fn, &p, Assets{})
			if !bytes.HasPrefix(data, []byte("%PDF-")) {
				t.Fatalf("output is not a pdf")
			}
		})
	}
}

func TestRenderersAcceptPhotoAsset(t *testing.T) {
	p := profile.Default()
	as := Assets{Photo: tinyPNG(t)}
	for _, r := range allRenderers {
		t.Run(r.name, func(t *testing.T) {
			data := renderBytes(t, r.fn, &p, as)
			if len(data) == 0 {
				t.Fatalf("empty output with photo asset")
			}
		})
	}
}

func TestInvalidAssetsAreSkipped(t *testing.T) {
	p := profile.Default()
	as := Assets{
		Photo:      []byte("not an image"),
		Background: []byte("also not an image"),
		HeaderIcon: []byte{0x00},
	}
	for _, r := range allRenderers {
		t.Run(r.name, func(t *testing.T) {
			data := renderBytes(t, r.fn, &p, as)
			if !bytes.HasPrefix(data, []byte("%PDF-")) {
				t.Fatalf("render must survive unusable assets")
			}
		})
	}
}

// 小档案（页头关闭、单节少量字段）必须落在一页内。
func TestMinimalProfileFitsOnePage(t *testing.T) {
	p := profile.Profile{
		Template: profile.DefaultTemplate,
		Sections: []profile.Section{
			{
				ID: profile.SectionPersonal, Title: "Personal Details", Enabled: true,
				Fields: []profile.Field{
					{ID: "name", Label: "Name", Value: "Asha", Type: profile.FieldText, Enabled: true, ShowLabel: true},
					{ID: "dob", Label: "Date of Birth", Value: "02 Feb 1996", Type: profile.FieldDate, Enabled: true, ShowLabel: true},
					{ID: "city", Label: "City", Value: "Pune", Type: profile.FieldText, Enabled: true, ShowLabel: true},
				},
			},
		},
	}
	st := style.Resolve(p.Customizations)

	for _, r := range allRenderers {
		t.Run(r.name, func(t *testing.T) {
			f, err := r.fn(&p, st, Assets{})
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if got := f.PageCount(); got != 1 {
				t.Fatalf("pages = %d, want 1", got)
			}
		})
	}
}

func manyFieldSection(n int) profile.Section {
	s := profile.Section{ID: "details", Title: "Details", Enabled: true}
	for i := 0; i < n; i++ {
		s.Fields = append(s.Fields, profile.Field{
			ID: "f" + string(rune('a'+i)), Label: "Label", Value: "Value",
			Type: profile.FieldText, Enabled: true, ShowLabel: true,
		})
	}
	return s
}

func TestEnsureSectionKeepsBlockTogether(t *testing.T) {
	st := style.Resolve(profile.Customizations{})
	d := NewDoc(st, Assets{})

	s := manyFieldSection(10)
	h := d.SectionHeight(s, d.ContentW())
	if h <= 0 {
		t.Fatalf("section height = %v", h)
	}

	// 光标压到只剩半个 Section 的空间
	d.F.SetY(pageH - d.MarginB - h/2)
	before := d.F.PageNo()
	d.EnsureSection(s, d.ContentW())
	if d.F.PageNo() != before+1 {
		t.Fatalf("section that cannot fit must start on a fresh page")
	}
	if y := d.F.GetY(); y > d.MarginT+1 {
		t.Errorf("cursor should reset to top margin, got %v", y)
	}
}

func TestEnsureSectionKeepsCursorWhenFitting(t *testing.T) {
	st := style.Resolve(profile.Customizations{})
	d := NewDoc(st, Assets{})

	s := manyFieldSection(3)
	before := d.F.PageNo()
	y := d.F.GetY()
	d.EnsureSection(s, d.ContentW())
	if d.F.PageNo() != before || d.F.GetY() != y {
		t.Fatalf("fitting section must not move the cursor")
	}
}

// 比整页还高的节不预先换页，交给逐字段绘制与自动分页兜底强拆。
func TestEnsureSectionForceSplitsOversized(t *testing.T) {
	st := style.Resolve(profile.Customizations{})
	d := NewDoc(st, Assets{})

	s := manyFieldSection(26)
	for i := range s.Fields {
		s.Fields[i].Value = "line one\nline two\nline three\nline four"
		s.Fields[i].Type = profile.FieldTextarea
	}
	capacity := pageH - d.MarginT - d.MarginB
	if h := d.SectionHeight(s, d.ContentW()); h <= capacity {
		t.Fatalf("test section should exceed one page, height %v <= %v", h, capacity)
	}

	before := d.F.PageNo()
	d.EnsureSection(s, d.ContentW())
	if d.F.PageNo() != before {
		t.Fatalf("oversized section must not trigger a pre-emptive page break")
	}

	d.DrawSectionBlock(s, d.MarginL, d.ContentW())
	if d.F.PageCount() < 2 {
		t.Fatalf("oversized section should spill onto following pages")
	}
}

// 比整页还高的 Section 装不进双列卡片，必须退回整宽直排跨页续排，
// 而不是在单页上被截断。
func TestGridCardsForceSplitsOversizedSection(t *testing.T) {
	s := manyFieldSection(26)
	for i := range s.Fields {
		s.Fields[i].Value = "line one\nline two\nline three\nline four"
		s.Fields[i].Type = profile.FieldTextarea
	}
	p := profile.Profile{Template: "template6", Sections: []profile.Section{s}}
	st := style.Resolve(p.Customizations)

	f, err := GridCards(&p, st, Assets{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := f.PageCount(); got < 2 {
		t.Fatalf("pages = %d, oversized section must spill onto following pages", got)
	}
}

func TestInitialOf(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Asha Sharma", "A"},
		{"  ravi", "R"},
		{"अर्जुन", "अ"},
		{"张伟", "张"},
		{"", ""},
	}
	for _, c := range cases {
		if got := initialOf(c.in); got != c.want {
			t.Errorf("initialOf(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestHexRGB(t *testing.T) {
	cases := []struct {
		in      string
		r, g, b int
	}{
		{"#8b2942", 0x8b, 0x29, 0x42},
		{"#fff", 0xff, 0xff, 0xff},
		{" #102030 ", 0x10, 0x20, 0x30},
		{"garbage", 0, 0, 0},
		{"", 0, 0, 0},
	}
	for _, c := range cases {
		r, g, b := hexRGB(c.in)
		if r != c.r || g != c.g || b != c.b {
			t.Errorf("hexRGB(%q) = %d,%d,%d", c.in, r, g, b)
		}
	}
}

func TestSniffImageType(t *testing.T) {
	if got := sniffImageType([]byte("\x89PNG\r\n\x1a\nxxxx")); got != "PNG" {
		t.Errorf("png sniff = %q", got)
	}
	if got := sniffImageType([]byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00}); got != "JPG" {
		t.Errorf("jpg sniff = %q", got)
	}
	if got := sniffImageType([]byte("plain text")); got != "" {
		t.Errorf("garbage sniff = %q", got)
	}
}

package export

import (
	"bytes"
	"testing"

	"bioPress/internal/profile"
)

func TestToPDFProducesDocument(t *testing.T) {
	p := profile.Default()
	data, name, err := ToPDF(&p, nil)
	if err != nil {
		t.Fatalf("ToPDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("output is not a pdf")
	}
	if name != "your_name_biodata.pdf" {
		t.Errorf("filename = %q", name)
	}
}

func TestToPDFWithFramedTheme(t *testing.T) {
	p := profile.Default()
	p.Customizations.ThemeID = "royal"
	data, _, err := ToPDF(&p, nil)
	if err != nil {
		t.Fatalf("ToPDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("output is not a pdf")
	}
}

// 无专属导出排版的模板经注册表回落仍可导出。
func TestToPDFFallsBackForHTMLOnlyTemplate(t *testing.T) {
	p := profile.Default().WithTemplate("template22")
	data, _, err := ToPDF(&p, nil)
	if err != nil {
		t.Fatalf("ToPDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("output is not a pdf")
	}
}

func TestToPDFIgnoresUndecodablePhoto(t *testing.T) {
	p := profile.Default()
	if _, _, err := ToPDF(&p, []byte("definitely not an image")); err != nil {
		t.Fatalf("undecodable photo must not fail the export: %v", err)
	}
}

func TestFilename(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Asha Sharma", "asha_sharma_biodata.pdf"},
		{"Ravi-Kumar J.", "ravi_kumar_j_biodata.pdf"},
		{"  Priya  ", "priya_biodata.pdf"},
		{"!!!", "biodata.pdf"},
	}
	for _, c := range cases {
		p := profile.Default().UpsertField(profile.SectionPersonal, profile.Field{
			ID: "name", Label: "Name", Value: c.name,
			Type: profile.FieldText, Enabled: true, ShowLabel: true,
		})
		if got := Filename(&p); got != c.want {
			t.Errorf("Filename(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestFilenameWithoutName(t *testing.T) {
	p := profile.Default().ToggleField(profile.SectionPersonal, "name")
	if got := Filename(&p); got != "biodata.pdf" {
		t.Errorf("Filename = %q, want generic fallback", got)
	}
}

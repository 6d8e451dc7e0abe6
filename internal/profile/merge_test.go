package profile

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestMergeOverDefaultsEmptySnapshot(t *testing.T) {
	p, err := MergeOverDefaults(nil)
	if err != nil {
		t.Fatalf("merge empty: %v", err)
	}
	if !reflect.DeepEqual(p, Default()) {
		t.Fatalf("empty snapshot should yield defaults")
	}
}

func TestMergeOverDefaultsKeepsMissingKeys(t *testing.T) {
	p, err := MergeOverDefaults([]byte(`{"template":"template9"}`))
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if p.Template != "template9" {
		t.Errorf("template = %q, want template9", p.Template)
	}
	if len(p.Sections) != 3 {
		t.Errorf("sections = %d, want defaults preserved", len(p.Sections))
	}
	if !p.Header.Enabled || p.Header.Text != "Biodata" {
		t.Errorf("header should stay default, got %+v", p.Header)
	}
}

func TestMergeCustomizationsPartialOverride(t *testing.T) {
	raw := []byte(`{"customizations":{"primary_color":"#112233"}}`)
	p, err := MergeOverDefaults(raw)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if p.Customizations.PrimaryColor != "#112233" {
		t.Errorf("primary_color = %q", p.Customizations.PrimaryColor)
	}
	if p.Customizations.ThemeID != "classic" {
		t.Errorf("theme_id should keep default, got %q", p.Customizations.ThemeID)
	}
	if p.Customizations.ImageShape != ShapeCircle {
		t.Errorf("image_shape should keep default, got %q", p.Customizations.ImageShape)
	}
}

func TestMergeOverDefaultsCorruptSnapshot(t *testing.T) {
	p, err := MergeOverDefaults([]byte(`{"sections": [{`))
	if err == nil {
		t.Fatalf("expected error for corrupt snapshot")
	}
	if !reflect.DeepEqual(p, Default()) {
		t.Fatalf("corrupt snapshot should fall back to defaults")
	}
}

func TestMergeOverDefaultsRoundTrip(t *testing.T) {
	p := Default().
		WithTemplate("template6").
		ToggleSection("family").
		ToggleField(SectionPersonal, "religion")
	p.Customizations.ThemeID = "midnight"
	p.Customizations.FontSize = 16

	raw, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := MergeOverDefaults(raw)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if !reflect.DeepEqual(got, p) {
		t.Fatalf("round trip changed the profile\n got: %+v\nwant: %+v", got, p)
	}
}

func TestValidateShape(t *testing.T) {
	p := Default()
	if err := ValidateShape(&p); err != nil {
		t.Fatalf("default profile should validate: %v", err)
	}

	bad := Default()
	bad.Template = ""
	if err := ValidateShape(&bad); err == nil {
		t.Errorf("expected error for empty template")
	}

	dup := Default()
	dup.Sections = append(dup.Sections, Section{ID: SectionPersonal, Title: "Copy"})
	if err := ValidateShape(&dup); err == nil {
		t.Errorf("expected error for duplicate section id")
	}

	dupField := Default()
	dupField.Sections[0].Fields = append(dupField.Sections[0].Fields, Field{ID: "name"})
	if err := ValidateShape(&dupField); err == nil {
		t.Errorf("expected error for duplicate field id")
	}
}

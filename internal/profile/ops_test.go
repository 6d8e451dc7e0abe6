package profile

import (
	"reflect"
	"testing"
)

func sectionIDs(p Profile) []string {
	ids := make([]string, len(p.Sections))
	for i, s := range p.Sections {
		ids[i] = s.ID
	}
	return ids
}

func TestMoveSectionReordersOnly(t *testing.T) {
	p := Default()
	moved := p.MoveSection(0, 2)

	want := []string{"family", SectionContact, SectionPersonal}
	if got := sectionIDs(moved); !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}

	// 原快照不受影响
	if got := sectionIDs(p); !reflect.DeepEqual(got, []string{SectionPersonal, "family", SectionContact}) {
		t.Fatalf("original mutated: %v", got)
	}

	// 只动顺序，内容逐节等价
	for _, s := range moved.Sections {
		orig, ok := p.SectionByID(s.ID)
		if !ok {
			t.Fatalf("section %q lost", s.ID)
		}
		if !reflect.DeepEqual(s, orig) {
			t.Errorf("section %q changed content during move", s.ID)
		}
	}
}

func TestMoveSectionOutOfRangeIsIdentity(t *testing.T) {
	p := Default()
	for _, pair := range [][2]int{{-1, 0}, {0, 3}, {5, 1}, {1, 1}} {
		moved := p.MoveSection(pair[0], pair[1])
		if !reflect.DeepEqual(moved, p) {
			t.Errorf("MoveSection(%d,%d) should be identity", pair[0], pair[1])
		}
	}
}

func TestMoveFieldWithinSection(t *testing.T) {
	p := Default()
	moved := p.MoveField(SectionPersonal, 0, 2)

	s, _ := moved.SectionByID(SectionPersonal)
	if s.Fields[2].ID != "name" {
		t.Errorf("field order after move: %q at index 2", s.Fields[2].ID)
	}
	if len(s.Fields) != 7 {
		t.Errorf("field count changed: %d", len(s.Fields))
	}

	orig, _ := p.SectionByID(SectionPersonal)
	if orig.Fields[0].ID != "name" {
		t.Errorf("original mutated")
	}
}

func TestToggleSectionIsSoftDelete(t *testing.T) {
	p := Default().ToggleSection("family")

	s, ok := p.SectionByID("family")
	if !ok {
		t.Fatalf("toggled section must stay in the document")
	}
	if s.Enabled {
		t.Fatalf("section should be disabled")
	}
	if len(s.Fields) == 0 {
		t.Fatalf("fields must be retained on disable")
	}

	for _, es := range EnabledSections(&p) {
		if es.ID == "family" {
			t.Fatalf("disabled section leaked into EnabledSections")
		}
	}

	back := p.ToggleSection("family")
	s2, _ := back.SectionByID("family")
	if !s2.Enabled {
		t.Fatalf("re-enable should restore the section")
	}
}

func TestEnabledSectionsFiltersFields(t *testing.T) {
	p := Default().ToggleField(SectionPersonal, "religion")
	for _, s := range EnabledSections(&p) {
		for _, f := range s.Fields {
			if f.ID == "religion" {
				t.Fatalf("disabled field leaked into EnabledSections")
			}
		}
	}
}

func TestUpsertField(t *testing.T) {
	p := Default()

	added := p.UpsertField("family", Field{ID: "pets", Label: "Pets", Value: "One dog", Type: FieldText, Enabled: true})
	s, _ := added.SectionByID("family")
	if s.Fields[len(s.Fields)-1].ID != "pets" {
		t.Errorf("new field should append at the end")
	}

	updated := added.UpsertField("family", Field{ID: "pets", Label: "Pets", Value: "Two cats", Type: FieldText, Enabled: true})
	s2, _ := updated.SectionByID("family")
	if got := s2.Fields[len(s2.Fields)-1].Value; got != "Two cats" {
		t.Errorf("upsert existing should replace, got %q", got)
	}
	if len(s2.Fields) != len(s.Fields) {
		t.Errorf("upsert existing should not grow the list")
	}
}

func TestRemoveField(t *testing.T) {
	p := Default().RemoveField(SectionContact, "email")
	s, _ := p.SectionByID(SectionContact)
	for _, f := range s.Fields {
		if f.ID == "email" {
			t.Fatalf("removed field still present")
		}
	}
	if len(s.Fields) != 2 {
		t.Errorf("field count = %d, want 2", len(s.Fields))
	}
}

func TestCloneIsolation(t *testing.T) {
	p := Default()
	c := p.Clone()
	c.Sections[0].Fields[0].Value = "Changed"
	if p.Sections[0].Fields[0].Value != "Your Name" {
		t.Fatalf("clone shares field storage with original")
	}
}

func TestNameValue(t *testing.T) {
	p := Default()
	if v, ok := p.NameValue(); !ok || v != "Your Name" {
		t.Fatalf("NameValue = %q, %v", v, ok)
	}

	noName := p.ToggleField(SectionPersonal, "name")
	if _, ok := noName.NameValue(); ok {
		t.Fatalf("disabled name field must not be used")
	}

	// personal 整节禁用时允许从其他节找 name 标签
	moved := p.ToggleSection(SectionPersonal).
		UpsertField("family", Field{ID: "alt-name", Label: "Name", Value: "Asha", Type: FieldText, Enabled: true})
	if v, ok := moved.NameValue(); !ok || v != "Asha" {
		t.Fatalf("fallback NameValue = %q, %v", v, ok)
	}
}

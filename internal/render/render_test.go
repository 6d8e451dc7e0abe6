package render

import (
	"fmt"
	"strings"
	"testing"

	"bioPress/internal/profile"
	"bioPress/internal/style"
)

func TestRegistryComplete(t *testing.T) {
	entries := List()
	if len(entries) != 25 {
		t.Fatalf("templates = %d, want 25", len(entries))
	}

	pdfCount := 0
	for i, e := range entries {
		wantID := fmt.Sprintf("template%d", i+1)
		if e.ID != wantID {
			t.Errorf("entry %d id = %q, want %q", i, e.ID, wantID)
		}
		if e.Name == "" {
			t.Errorf("template %s has no display name", e.ID)
		}
		if len(e.Thumbnail) == 0 || !strings.Contains(string(e.Thumbnail), "<svg") {
			t.Errorf("template %s thumbnail is not svg", e.ID)
		}
		if e.PDF != nil {
			pdfCount++
		}
	}
	if pdfCount != 14 {
		t.Errorf("pdf renderers = %d, want 14", pdfCount)
	}
}

func TestGetFallsBackToDefault(t *testing.T) {
	e := Get("no-such-template")
	if e.ID != profile.DefaultTemplate {
		t.Fatalf("fallback id = %q, want %q", e.ID, profile.DefaultTemplate)
	}
	if Get("").ID != profile.DefaultTemplate {
		t.Fatalf("empty id should fall back too")
	}
}

func TestKnown(t *testing.T) {
	if !Known(profile.DefaultTemplate) || !Known("template6") {
		t.Errorf("registered ids must be known")
	}
	if Known("no-such-template") || Known("") {
		t.Errorf("unregistered ids must not be known")
	}
}

func TestPDFForAlwaysReturnsRenderer(t *testing.T) {
	for _, e := range List() {
		if PDFFor(e.ID) == nil {
			t.Errorf("PDFFor(%s) = nil", e.ID)
		}
	}
	if PDFFor("unknown") == nil {
		t.Errorf("PDFFor must fall back for unknown ids")
	}
}

// 带哨兵值的档案：禁用的内容不允许出现在任何渲染输出里。
func sentinelProfile() profile.Profile {
	p := profile.Default()
	p.Header.Enabled = false
	p.Header.Text = "ZZ-DISABLED-HEADER"
	p.Overview.Enabled = false
	p.Overview.Text = "ZZ-DISABLED-OVERVIEW"
	p = p.ToggleSection("family")
	for i := range p.Sections {
		if p.Sections[i].ID == "family" {
			p.Sections[i].Fields[0].Value = "ZZ-DISABLED-SECTION"
		}
	}
	p = p.ToggleField(profile.SectionPersonal, "religion")
	for i := range p.Sections {
		if p.Sections[i].ID != profile.SectionPersonal {
			continue
		}
		for j := range p.Sections[i].Fields {
			if p.Sections[i].Fields[j].ID == "religion" {
				p.Sections[i].Fields[j].Value = "ZZ-DISABLED-FIELD"
			}
		}
	}
	return p
}

func TestDisabledContentNeverRendered(t *testing.T) {
	p := sentinelProfile()
	st := style.Resolve(p.Customizations)

	for _, e := range List() {
		out, err := e.HTML(&p, st)
		if err != nil {
			t.Fatalf("%s: render: %v", e.ID, err)
		}
		html := string(out)
		for _, sentinel := range []string{
			"ZZ-DISABLED-HEADER",
			"ZZ-DISABLED-OVERVIEW",
			"ZZ-DISABLED-SECTION",
			"ZZ-DISABLED-FIELD",
		} {
			if strings.Contains(html, sentinel) {
				t.Errorf("%s: disabled content %q leaked into output", e.ID, sentinel)
			}
		}
		if !strings.Contains(html, "Your Name") {
			t.Errorf("%s: enabled field value missing from output", e.ID)
		}
	}
}

func TestHTMLRenderersAreDeterministic(t *testing.T) {
	p := profile.Default()
	st := style.Resolve(p.Customizations)
	for _, e := range List() {
		a, err := e.HTML(&p, st)
		if err != nil {
			t.Fatalf("%s: render: %v", e.ID, err)
		}
		b, err := e.HTML(&p, st)
		if err != nil {
			t.Fatalf("%s: render: %v", e.ID, err)
		}
		if a != b {
			t.Errorf("%s: same input produced different html", e.ID)
		}
	}
}

func TestPreviewDocumentShell(t *testing.T) {
	p := profile.Default()
	st := style.Resolve(p.Customizations)
	body, err := Get(p.Template).HTML(&p, st)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	doc := PreviewDocument(body)
	if !strings.HasPrefix(doc, "<!doctype html>") {
		t.Errorf("shell must be a standalone document")
	}
	if !strings.Contains(doc, `id="pdf-root"`) {
		t.Errorf("shell must mark the page canvas with #pdf-root")
	}
	if !strings.Contains(doc, string(body)) {
		t.Errorf("shell must embed the rendered page")
	}
}

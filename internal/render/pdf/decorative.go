package pdf

// 变体 11–14：装饰与强调族。

import (
	"strings"
	"unicode/utf8"

	"github.com/jung-kurt/gofpdf"

	"bioPress/internal/profile"
	"bioPress/internal/style"
)

// Monogram (template11)：页主姓名首字母作为右上角大号水印。
func Monogram(p *profile.Profile, st style.Resolved, as Assets) (*gofpdf.Fpdf, error) {
	d := NewDoc(st, as)
	f := d.F

	if p.Header.Enabled {
		if ini := initialOf(p.Header.Text); ini != "" {
			pr, pg, pb := hexRGB(st.PrimaryColor)
			f.SetAlpha(0.08, "Normal")
			f.SetTextColor(pr, pg, pb)
			f.SetFont(d.Font, "B", 140)
			f.SetXY(pageW-80, 10)
			f.CellFormat(70, 50, ini, "", 0, "R", false, 0, "")
			f.SetAlpha(1, "Normal")
			f.SetXY(d.MarginL, d.MarginT)
			d.SetBody()
		}
	}

	d.DrawHeaderBlock(p, false)
	d.DrawPhotoFlow(profile.PlaceRight, st.ImageShape, 34)
	d.DrawOverviewBlock(p, d.MarginL, d.ContentW(), false)

	pr, pg, pb := hexRGB(st.PrimaryColor)
	w := d.ContentW()
	for _, s := range profile.EnabledSections(p) {
		d.EnsureSection(s, w)
		d.SetAccent("B", d.BaseSize+2)
		f.CellFormat(w, d.LineH+1, s.Title, "", 1, "L", false, 0, "")
		// 标题下只画一小段粗线，而不是整行下划线。
		f.SetDrawColor(pr, pg, pb)
		f.SetLineWidth(1)
		f.Line(d.MarginL, f.GetY()+0.5, d.MarginL+14, f.GetY()+0.5)
		f.Ln(3)
		d.SetBody()
		for _, fld := range s.EnabledFields() {
			d.DrawFieldRow(fld, d.MarginL, w)
		}
		f.Ln(3)
	}
	return d.Output()
}

// initialOf 取首个字符而不是首个字节，多字节文字的首字母才不会变成乱码。
func initialOf(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(s)
	return strings.ToUpper(string(r))
}

// AccentBar (template12)：每个 Section 左侧一条强调色竖条。
func AccentBar(p *profile.Profile, st style.Resolved, as Assets) (*gofpdf.Fpdf, error) {
	d := NewDoc(st, as)
	f := d.F
	d.DrawHeaderBlock(p, false)
	d.DrawPhotoFlow(st.ImagePlacement, st.ImageShape, 34)
	d.DrawOverviewBlock(p, d.MarginL, d.ContentW(), false)

	pr, pg, pb := hexRGB(st.PrimaryColor)
	const indent = 6.0
	x := d.MarginL + indent
	w := d.ContentW() - indent
	for _, s := range profile.EnabledSections(p) {
		d.EnsureSection(s, w)
		top := f.GetY()
		d.DrawSectionBlock(s, x, w)
		bottom := f.GetY() - 3
		if bottom > top {
			f.SetFillColor(pr, pg, pb)
			f.Rect(d.MarginL, top, 2, bottom-top, "F")
		}
		f.SetY(bottom + 4)
	}
	return d.Output()
}

// PhotoBand (template13)：顶部强调色横带，照片居中压在横带下沿。
func PhotoBand(p *profile.Profile, st style.Resolved, as Assets) (*gofpdf.Fpdf, error) {
	d := NewDoc(st, as)
	f := d.F
	pr, pg, pb := hexRGB(st.PrimaryColor)

	const bandH = 30.0
	f.SetFillColor(pr, pg, pb)
	f.Rect(0, 0, pageW, bandH, "F")

	y := bandH + 6.0
	if d.HasPhoto() {
		const size = 36.0
		d.DrawPhoto((pageW-size)/2, bandH-size/2, size, st.ImageShape)
		y = bandH + size/2 + 5
	}
	f.SetY(y)
	d.SetBody()

	d.DrawHeaderBlock(p, true)
	d.DrawOverviewBlock(p, d.MarginL, d.ContentW(), true)

	w := d.ContentW()
	for _, s := range profile.EnabledSections(p) {
		d.EnsureSection(s, w)
		d.SetAccent("B", d.BaseSize+2)
		f.CellFormat(w, d.LineH+1, s.Title, "", 1, "C", false, 0, "")
		f.Ln(2)
		d.SetBody()
		for _, fld := range s.EnabledFields() {
			d.DrawFieldRow(fld, d.MarginL, w)
		}
		f.Ln(3)
	}
	return d.Output()
}

// CompactTable (template14)：表格式标签/值行，信息密度最高的变体。
func CompactTable(p *profile.Profile, st style.Resolved, as Assets) (*gofpdf.Fpdf, error) {
	d := NewDoc(st, as)
	f := d.F
	d.DrawHeaderBlock(p, false)
	d.DrawPhotoFlow(profile.PlaceRight, profile.ShapeRect, 30)
	d.DrawOverviewBlock(p, d.MarginL, d.ContentW(), false)

	tr, tg, tb := hexRGB(st.TextColor)
	w := d.ContentW()
	labelW := w * 0.34
	for _, s := range profile.EnabledSections(p) {
		d.EnsureSection(s, w)
		d.SetAccent("B", d.BaseSize+1)
		f.CellFormat(w, d.LineH+1, s.Title, "", 1, "L", false, 0, "")
		f.Ln(1)
		d.SetBody()
		for _, fld := range s.EnabledFields() {
			y := f.GetY()
			valueX, valueW := d.MarginL, w
			if fld.ShowLabel {
				f.SetXY(d.MarginL, y)
				f.SetFont(d.Font, "B", d.BaseSize)
				f.MultiCell(labelW, d.LineH, fld.Label, "", "L", false)
				labelEnd := f.GetY()
				valueX, valueW = d.MarginL+labelW, w-labelW
				f.SetXY(valueX, y)
				f.SetFont(d.Font, "", d.BaseSize)
				f.MultiCell(valueW, d.LineH, fld.Value, "", "L", false)
				if f.GetY() < labelEnd {
					f.SetY(labelEnd)
				}
			} else {
				f.SetXY(valueX, y)
				f.MultiCell(valueW, d.LineH, fld.Value, "", "L", false)
			}
			// 行底细线模拟表格分隔。
			f.SetDrawColor(tr, tg, tb)
			f.SetLineWidth(0.1)
			f.Line(d.MarginL, f.GetY()+0.6, d.MarginL+w, f.GetY()+0.6)
			f.Ln(2)
			f.SetX(d.MarginL)
		}
		f.Ln(3)
	}
	return d.Output()
}

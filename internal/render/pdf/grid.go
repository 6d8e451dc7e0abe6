package pdf

// 变体 6–10：网格与分栏族。

import (
	"strings"

	"github.com/jung-kurt/gofpdf"

	"bioPress/internal/profile"
	"bioPress/internal/style"
)

// GridCards (template6)：Section 按索引奇偶分到左右两列的卡片流。
// 与 HTML 侧同一条奇偶规则：偶数索引进左列，奇数进右列。
func GridCards(p *profile.Profile, st style.Resolved, as Assets) (*gofpdf.Fpdf, error) {
	d := NewDoc(st, as)
	f := d.F
	d.DrawHeaderBlock(p, true)
	d.DrawPhotoFlow(profile.PlaceCenter, st.ImageShape, 34)
	d.DrawOverviewBlock(p, d.MarginL, d.ContentW(), true)

	const gap = 6.0
	const pad = 4.0
	colW := (d.ContentW() - gap) / 2
	innerW := colW - 2*pad
	colX := [2]float64{d.MarginL, d.MarginL + colW + gap}
	colY := [2]float64{f.GetY(), f.GetY()}
	capacity := pageH - d.MarginT - d.MarginB

	pr, pg, pb := hexRGB(st.PrimaryColor)

	// 两列各自独立的游标让自动分页失效，这里手动管理换页：
	// 任一列放不下时两列一起翻到新页。
	f.SetAutoPageBreak(false, d.MarginB)
	for i, s := range profile.EnabledSections(p) {
		c := i % 2
		h := d.SectionHeight(s, innerW) + 2*pad
		if h > capacity {
			// 比整页还高的 Section 装不进卡片，退回整宽直排并允许
			// 跨页续排；排完后两列在其下方同一行重新起步。
			f.SetAutoPageBreak(true, d.MarginB)
			startY := colY[0]
			if colY[1] > startY {
				startY = colY[1]
			}
			if startY > pageH-d.MarginB {
				f.AddPage()
				startY = d.MarginT
			}
			f.SetY(startY)
			d.DrawSectionBlock(s, d.MarginL, d.ContentW())
			f.SetAutoPageBreak(false, d.MarginB)
			colY[0], colY[1] = f.GetY()+gap, f.GetY()+gap
			continue
		}
		if colY[c]+h > pageH-d.MarginB {
			f.AddPage()
			colY[0], colY[1] = d.MarginT, d.MarginT
		}
		f.SetDrawColor(pr, pg, pb)
		f.SetLineWidth(0.4)
		f.RoundedRect(colX[c], colY[c], colW, h, 2, "1234", "D")
		f.SetXY(colX[c]+pad, colY[c]+pad)
		d.DrawSectionBlock(s, colX[c]+pad, innerW)
		colY[c] += h + gap
	}
	f.SetAutoPageBreak(true, d.MarginB)
	return d.Output()
}

// Banner (template7)：首页顶部整宽强调色横幅，照片圆形压在横幅下沿。
func Banner(p *profile.Profile, st style.Resolved, as Assets) (*gofpdf.Fpdf, error) {
	d := NewDoc(st, as)
	f := d.F
	pr, pg, pb := hexRGB(st.PrimaryColor)

	const bandH = 52.0
	f.SetFillColor(pr, pg, pb)
	f.Rect(0, 0, pageW, bandH, "F")
	if p.Header.Enabled {
		if d.HasIcon() {
			f.ImageOptions("header-icon", d.MarginL, 10, 12, 12, false, imgOpts("PNG"), 0, "")
		}
		f.SetTextColor(255, 255, 255)
		f.SetFont(d.Font, "B", d.BaseSize+10)
		f.SetXY(d.MarginL, 24)
		f.CellFormat(d.ContentW(), 12, p.Header.Text, "", 1, "L", false, 0, "")
	}

	y := bandH + 6.0
	if d.HasPhoto() {
		const size = 34.0
		d.DrawPhoto((pageW-size)/2, bandH-size/2, size, profile.ShapeCircle)
		y = bandH + size/2 + 6
	}
	f.SetY(y)
	d.SetBody()

	d.DrawOverviewBlock(p, d.MarginL, d.ContentW(), true)
	for _, s := range profile.EnabledSections(p) {
		d.EnsureSection(s, d.ContentW())
		d.DrawSectionBlock(s, d.MarginL, d.ContentW())
	}
	return d.Output()
}

// MinimalLines (template8)：大写小字号标题、细分隔线的极简排版。
func MinimalLines(p *profile.Profile, st style.Resolved, as Assets) (*gofpdf.Fpdf, error) {
	d := NewDoc(st, as)
	f := d.F
	pr, pg, pb := hexRGB(st.PrimaryColor)
	tr, tg, tb := hexRGB(st.TextColor)

	if p.Header.Enabled {
		d.SetAccent("", d.BaseSize+6)
		f.CellFormat(d.ContentW(), d.LineH+4, strings.ToUpper(p.Header.Text), "", 1, "L", false, 0, "")
		f.SetDrawColor(pr, pg, pb)
		f.SetLineWidth(0.3)
		f.Line(d.MarginL, f.GetY()+1, pageW-d.MarginR, f.GetY()+1)
		f.Ln(5)
		d.SetBody()
	}
	d.DrawPhotoFlow(st.ImagePlacement, st.ImageShape, 32)
	d.DrawOverviewBlock(p, d.MarginL, d.ContentW(), false)

	w := d.ContentW()
	for _, s := range profile.EnabledSections(p) {
		d.EnsureSection(s, w)
		d.SetAccent("", d.BaseSize-1)
		f.CellFormat(w, d.LineH, strings.ToUpper(s.Title), "", 1, "L", false, 0, "")
		f.Ln(1)
		d.SetBody()
		for _, fld := range s.EnabledFields() {
			d.DrawFieldRow(fld, d.MarginL, w)
		}
		f.SetDrawColor(tr, tg, tb)
		f.SetLineWidth(0.1)
		f.Line(d.MarginL, f.GetY()+1, pageW-d.MarginR, f.GetY()+1)
		f.Ln(5)
	}
	return d.Output()
}

// RoyalFrame (template9)：每页画双线框，内容整体居中。
func RoyalFrame(p *profile.Profile, st style.Resolved, as Assets) (*gofpdf.Fpdf, error) {
	d := NewDoc(st, as)
	f := d.F
	pr, pg, pb := hexRGB(st.PrimaryColor)

	d.MarginL, d.MarginT, d.MarginR, d.MarginB = 26, 26, 26, 26
	f.SetMargins(d.MarginL, d.MarginT, d.MarginR)
	f.SetAutoPageBreak(true, d.MarginB)
	f.SetY(d.MarginT)
	d.SetPageDecor(func(f *gofpdf.Fpdf) {
		f.SetDrawColor(pr, pg, pb)
		f.SetLineWidth(0.7)
		f.Rect(14, 14, pageW-28, pageH-28, "D")
		f.SetLineWidth(0.3)
		f.Rect(17, 17, pageW-34, pageH-34, "D")
	})

	d.DrawHeaderBlock(p, true)
	d.DrawPhotoFlow(profile.PlaceCenter, st.ImageShape, 36)
	d.DrawOverviewBlock(p, d.MarginL, d.ContentW(), true)

	w := d.ContentW()
	for _, s := range profile.EnabledSections(p) {
		d.EnsureSection(s, w)
		d.SetAccent("B", d.BaseSize+2)
		f.CellFormat(w, d.LineH+1, s.Title, "", 1, "C", false, 0, "")
		f.Ln(1)
		d.SetBody()
		for _, fld := range s.EnabledFields() {
			text := fld.Value
			if fld.ShowLabel {
				text = fld.Label + ": " + fld.Value
			}
			f.MultiCell(w, d.LineH, text, "", "C", false)
			f.Ln(1)
		}
		f.Ln(3)
	}
	return d.Output()
}

// TwoColumnFields (template10)：Section 直排，短字段在 Section 内两列排，
// textarea 独占整行。
func TwoColumnFields(p *profile.Profile, st style.Resolved, as Assets) (*gofpdf.Fpdf, error) {
	d := NewDoc(st, as)
	f := d.F
	pr, pg, pb := hexRGB(st.PrimaryColor)

	d.DrawHeaderBlock(p, false)
	d.DrawPhotoFlow(profile.PlaceRight, st.ImageShape, 34)
	d.DrawOverviewBlock(p, d.MarginL, d.ContentW(), false)

	w := d.ContentW()
	const gap = 8.0
	halfW := (w - gap) / 2
	for _, s := range profile.EnabledSections(p) {
		d.EnsureSection(s, halfW)
		d.SetAccent("B", d.BaseSize+2)
		f.CellFormat(w, d.LineH+1, s.Title, "", 1, "L", false, 0, "")
		f.SetDrawColor(pr, pg, pb)
		f.SetLineWidth(0.5)
		f.Line(d.MarginL, f.GetY(), d.MarginL+w, f.GetY())
		f.Ln(2)
		d.SetBody()

		fields := s.EnabledFields()
		for i := 0; i < len(fields); {
			if fields[i].Type == profile.FieldTextarea {
				d.DrawFieldRow(fields[i], d.MarginL, w)
				i++
				continue
			}
			// 凑一对短字段并排；配不上对或下一个是长文就单列。
			pair := i+1 < len(fields) && fields[i+1].Type != profile.FieldTextarea
			y := f.GetY()
			drawStackedField(d, fields[i], d.MarginL, halfW)
			leftEnd := f.GetY()
			if pair {
				f.SetY(y)
				drawStackedField(d, fields[i+1], d.MarginL+halfW+gap, halfW)
				if f.GetY() < leftEnd {
					f.SetY(leftEnd)
				}
				i += 2
			} else {
				i++
			}
		}
		f.Ln(4)
	}
	return d.Output()
}

// drawStackedField 画"小号标签在上、值在下"的字段块。
func drawStackedField(d *Doc, fld profile.Field, x, w float64) {
	f := d.F
	f.SetX(x)
	if fld.ShowLabel {
		tr, tg, tb := hexRGB(d.St.TextColor)
		f.SetTextColor(tr, tg, tb)
		f.SetFont(d.Font, "", d.BaseSize-3)
		f.CellFormat(w, d.LineH-1, fld.Label, "", 1, "L", false, 0, "")
		f.SetX(x)
	}
	d.SetBody()
	f.MultiCell(w, d.LineH, fld.Value, "", "L", false)
	f.Ln(1)
}

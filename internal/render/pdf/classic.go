package pdf

// 变体 1–5：经典排版族，逐一镜像同编号的 HTML 变体。

import (
	"strings"

	"github.com/jung-kurt/gofpdf"

	"bioPress/internal/profile"
	"bioPress/internal/style"
)

// Classic (template1)：居中页头，照片按用户选择摆放，Section 顺序直排。
func Classic(p *profile.Profile, st style.Resolved, as Assets) (*gofpdf.Fpdf, error) {
	d := NewDoc(st, as)
	d.DrawHeaderBlock(p, true)
	d.DrawOverviewBlock(p, d.MarginL, d.ContentW(), true)
	d.DrawPhotoFlow(st.ImagePlacement, st.ImageShape, 36)
	for _, s := range profile.EnabledSections(p) {
		d.EnsureSection(s, d.ContentW())
		d.DrawSectionBlock(s, d.MarginL, d.ContentW())
	}
	return d.Output()
}

// SidebarLeft (template2)：左侧强调色侧栏放照片与联系方式，主区放其余。
// 侧栏内容只出现在第一页，主区分页续排。
func SidebarLeft(p *profile.Profile, st style.Resolved, as Assets) (*gofpdf.Fpdf, error) {
	return sidebar(p, st, as, false)
}

// SidebarRight (template3)：template2 的镜像，侧栏描边而非填充。
func SidebarRight(p *profile.Profile, st style.Resolved, as Assets) (*gofpdf.Fpdf, error) {
	return sidebar(p, st, as, true)
}

func sidebar(p *profile.Profile, st style.Resolved, as Assets, right bool) (*gofpdf.Fpdf, error) {
	d := NewDoc(st, as)
	f := d.F

	const sideW = pageW * 0.34
	sideX, mainX := 0.0, sideW
	if right {
		sideX, mainX = pageW-sideW, 0
	}

	pr, pg, pb := hexRGB(st.PrimaryColor)
	if right {
		// 右栏版本只画一条分隔竖线。
		d.SetPageDecor(func(f *gofpdf.Fpdf) {
			f.SetDrawColor(pr, pg, pb)
			f.SetLineWidth(0.8)
			f.Line(sideX, 0, sideX, pageH)
		})
	} else {
		d.SetPageDecor(func(f *gofpdf.Fpdf) {
			f.SetFillColor(pr, pg, pb)
			f.Rect(0, 0, sideW, pageH, "F")
		})
	}

	// 侧栏：照片固定顶部 + contact Section。填充侧栏上文字反白。
	sidePad := 10.0
	innerX := sideX + sidePad
	innerW := sideW - 2*sidePad
	y := d.MarginT
	if d.HasPhoto() {
		size := innerW * 0.8
		d.DrawPhoto(sideX+(sideW-size)/2, y, size, st.ImageShape)
		y += size + 8
	}
	f.SetY(y)
	sideText := st.TextColor
	if !right {
		sideText = "#ffffff"
	}
	for _, s := range profile.EnabledSections(p) {
		if s.ID != profile.SectionContact {
			continue
		}
		drawTintedSection(d, s, innerX, innerW, sideText)
	}

	// 主区：收窄左右边距后正常续排。
	mainPad := 12.0
	d.MarginL = mainX + mainPad
	d.MarginR = pageW - (mainX + pageW*0.66) + mainPad
	f.SetMargins(d.MarginL, d.MarginT, d.MarginR)
	f.SetXY(d.MarginL, d.MarginT)

	d.DrawHeaderBlock(p, false)
	d.DrawOverviewBlock(p, d.MarginL, d.ContentW(), false)
	for _, s := range profile.EnabledSections(p) {
		if s.ID == profile.SectionContact {
			continue
		}
		d.EnsureSection(s, d.ContentW())
		d.DrawSectionBlock(s, d.MarginL, d.ContentW())
	}
	return d.Output()
}

// drawTintedSection 画一个用指定文字色的 Section 块，供反白侧栏使用。
func drawTintedSection(d *Doc, s profile.Section, x, w float64, textHex string) {
	f := d.F
	tr, tg, tb := hexRGB(textHex)

	f.SetX(x)
	f.SetTextColor(tr, tg, tb)
	f.SetFont(d.Font, "B", d.BaseSize+1)
	f.CellFormat(w, d.LineH+1, s.Title, "", 1, "L", false, 0, "")
	f.SetDrawColor(tr, tg, tb)
	f.SetLineWidth(0.3)
	f.Line(x, f.GetY(), x+w, f.GetY())
	f.Ln(2)

	f.SetFont(d.Font, "", d.BaseSize-1)
	for _, fld := range s.EnabledFields() {
		f.SetX(x)
		if fld.ShowLabel {
			f.SetFont(d.Font, "B", d.BaseSize-2)
			f.MultiCell(w, d.LineH-0.5, fld.Label, "", "L", false)
			f.SetX(x)
			f.SetFont(d.Font, "", d.BaseSize-1)
		}
		f.MultiCell(w, d.LineH, fld.Value, "", "L", false)
		f.Ln(1)
	}
	f.Ln(3)
}

// CenteredElegance (template4)：全部居中，标签在值上方，照片固定居中圆形。
func CenteredElegance(p *profile.Profile, st style.Resolved, as Assets) (*gofpdf.Fpdf, error) {
	d := NewDoc(st, as)
	f := d.F
	d.DrawHeaderBlock(p, true)
	d.DrawPhotoFlow(profile.PlaceCenter, profile.ShapeCircle, 36)
	d.DrawOverviewBlock(p, d.MarginL, d.ContentW(), true)

	w := d.ContentW()
	for _, s := range profile.EnabledSections(p) {
		d.EnsureSection(s, w)
		d.SetAccent("B", d.BaseSize+2)
		f.CellFormat(w, d.LineH+1, strings.ToUpper(s.Title), "", 1, "C", false, 0, "")
		f.Ln(1)
		for _, fld := range s.EnabledFields() {
			if fld.ShowLabel {
				tr, tg, tb := hexRGB(st.TextColor)
				f.SetTextColor(tr, tg, tb)
				f.SetFont(d.Font, "", d.BaseSize-3)
				f.CellFormat(w, d.LineH-1, strings.ToUpper(fld.Label), "", 1, "C", false, 0, "")
			}
			d.SetBody()
			f.MultiCell(w, d.LineH, fld.Value, "", "C", false)
			f.Ln(1)
		}
		f.Ln(3)
	}
	return d.Output()
}

// Timeline (template5)：每个 Section 左侧竖线加节点。
func Timeline(p *profile.Profile, st style.Resolved, as Assets) (*gofpdf.Fpdf, error) {
	d := NewDoc(st, as)
	f := d.F
	d.DrawHeaderBlock(p, false)
	d.DrawPhotoFlow(profile.PlaceRight, st.ImageShape, 34)
	d.DrawOverviewBlock(p, d.MarginL, d.ContentW(), false)

	pr, pg, pb := hexRGB(st.PrimaryColor)
	const indent = 8.0
	x := d.MarginL + indent
	w := d.ContentW() - indent
	for _, s := range profile.EnabledSections(p) {
		d.EnsureSection(s, w)
		top := f.GetY()
		f.SetX(x)
		d.DrawSectionBlock(s, x, w)
		bottom := f.GetY() - 3

		// 竖线与节点后画，长度由实际占高决定。
		// 强拆跨页时 bottom 落在新页，竖线只画得出同页部分，略过即可。
		if bottom > top {
			f.SetDrawColor(pr, pg, pb)
			f.SetFillColor(pr, pg, pb)
			f.SetLineWidth(0.9)
			f.Line(d.MarginL+2, top, d.MarginL+2, bottom)
			f.Circle(d.MarginL+2, top+2, 1.8, "F")
		}
		f.SetY(bottom + 4)
	}
	return d.Output()
}

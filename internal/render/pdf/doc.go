// Package pdf 是模板族的导出渲染侧：在 gofpdf 的固定页绘制模型上
// 逐模板镜像 HTML 变体的结构。这里没有 CSS 级联、没有跨栏文本回流、
// 也不能在绘制时给矢量染色，装饰资源必须已经在 assets 阶段烘焙成位图。
package pdf

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"bioPress/internal/profile"
	"bioPress/internal/style"
)

// Assets 是导出前预处理好的位图资源；任意一项可为 nil，渲染器按
// "省略该装饰"处理，绝不因缺图失败。
type Assets struct {
	Background []byte // 整页装饰框，已烘焙强调色
	HeaderIcon []byte // 页头图标，已烘焙强调色
	Photo      []byte // 用户照片（JPEG/PNG）
}

// Renderer 是所有 PDF 变体的统一契约。
type Renderer func(p *profile.Profile, st style.Resolved, as Assets) (*gofpdf.Fpdf, error)

// A4 页面与通用排版常量，单位毫米。
const (
	pageW = 210.0
	pageH = 297.0

	defaultMargin = 16.0
	labelColW     = 48.0
)

// Doc 包装一个正在构建的 gofpdf 文档，持有分页与公共块绘制逻辑。
type Doc struct {
	F  *gofpdf.Fpdf
	St style.Resolved

	Font     string  // gofpdf 内置字体名
	BaseSize float64 // 正文字号（pt）
	LineH    float64 // 正文行高（mm）

	MarginL, MarginT, MarginR, MarginB float64

	hasBG      bool
	hasIcon    bool
	hasPhoto   bool
	photoType  string
	fillPageBG func(f *gofpdf.Fpdf)
}

// NewDoc 建立 A4 文档：背景色整页填充，装饰框（若有）在每页重绘。
func NewDoc(st style.Resolved, as Assets) *Doc {
	f := gofpdf.New("P", "mm", "A4", "")

	d := &Doc{
		F:        f,
		St:       st,
		Font:     style.PDFFontName(st.FontFamilyClass),
		BaseSize: pxToPt(st.FontSizePx),
		MarginL:  defaultMargin,
		MarginT:  defaultMargin,
		MarginR:  defaultMargin,
		MarginB:  defaultMargin,
	}
	d.LineH = d.BaseSize * 0.55 // pt 字号对应的毫米行高近似

	if len(as.Background) > 0 {
		if d.registerImage("page-bg", as.Background) {
			d.hasBG = true
		}
	}
	if len(as.HeaderIcon) > 0 {
		if d.registerImage("header-icon", as.HeaderIcon) {
			d.hasIcon = true
		}
	}
	if len(as.Photo) > 0 {
		if d.registerImage("photo", as.Photo) {
			d.hasPhoto = true
		}
	}

	// 每页先铺背景色，再叠装饰框，正文绘制在其上。
	f.SetHeaderFunc(func() {
		r, g, b := hexRGB(st.BackgroundColor)
		f.SetFillColor(r, g, b)
		f.Rect(0, 0, pageW, pageH, "F")
		if d.fillPageBG != nil {
			d.fillPageBG(f)
		}
		if d.hasBG {
			f.ImageOptions("page-bg", 0, 0, pageW, pageH, false, imgOpts("PNG"), 0, "")
		}
	})

	f.SetMargins(d.MarginL, d.MarginT, d.MarginR)
	f.SetAutoPageBreak(true, d.MarginB)
	f.AddPage()
	d.SetBody()
	return d
}

// SetPageDecor 注册每页都要重绘的额外装饰（色条、侧栏底色等）。
// 必须在 AddPage 之外生效，所以挂在 header 钩子里。
func (d *Doc) SetPageDecor(fn func(f *gofpdf.Fpdf)) {
	d.fillPageBG = fn
	// 首页已经画过 header，这里手动补一次装饰。
	fn(d.F)
}

func (d *Doc) registerImage(name string, data []byte) bool {
	t := sniffImageType(data)
	if t == "" {
		return false
	}
	if name == "photo" {
		d.photoType = t
	}
	info := d.F.RegisterImageOptionsReader(name, imgOpts(t), bytes.NewReader(data))
	return info != nil && !d.F.Err()
}

func imgOpts(t string) gofpdf.ImageOptions {
	return gofpdf.ImageOptions{ImageType: t}
}

func sniffImageType(data []byte) string {
	switch {
	case len(data) > 8 && bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return "PNG"
	case len(data) > 3 && data[0] == 0xFF && data[1] == 0xD8:
		return "JPG"
	default:
		return ""
	}
}

// pxToPt 把 HTML 侧的像素字号换算成打印磅值（96dpi -> 72pt）。
func pxToPt(px int) float64 {
	if px <= 0 {
		px = 14
	}
	return float64(px) * 72.0 / 96.0
}

// hexRGB 解析 #rrggbb / #rgb；解析失败回落为黑色。
func hexRGB(hex string) (int, int, int) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}

// SetBody / SetAccent / SetTitle 切换常用的字色与字号组合。
func (d *Doc) SetBody() {
	r, g, b := hexRGB(d.St.TextColor)
	d.F.SetTextColor(r, g, b)
	d.F.SetFont(d.Font, "", d.BaseSize)
}

func (d *Doc) SetAccent(styleStr string, size float64) {
	r, g, b := hexRGB(d.St.PrimaryColor)
	d.F.SetTextColor(r, g, b)
	d.F.SetFont(d.Font, styleStr, size)
}

// ContentW 返回当前左右边距之间的可用宽度。
func (d *Doc) ContentW() float64 {
	return pageW - d.MarginL - d.MarginR
}

// ---- 分页策略 ----

// SectionHeight 预测一个 Section（标题 + 启用字段）在宽度 w 下的高度。
func (d *Doc) SectionHeight(s profile.Section, w float64) float64 {
	h := d.LineH + 3 // 标题行 + 下方间隙
	for _, f := range s.EnabledFields() {
		h += d.fieldHeight(f, w)
	}
	return h + 4 // Section 尾部间隙
}

func (d *Doc) fieldHeight(f profile.Field, w float64) float64 {
	valueW := w
	if f.ShowLabel {
		valueW = w - labelColW
		if valueW < 20 {
			valueW = 20
		}
	}
	d.F.SetFont(d.Font, "", d.BaseSize)
	lines := len(d.F.SplitText(f.Value, valueW))
	if lines < 1 {
		lines = 1
	}
	return float64(lines)*d.LineH + 1.2
}

// EnsureSection 实现整节不拆分的分页策略：放不进本页剩余空间、
// 但能放进一张空页时先换页。比整页还高的 Section 允许按字段拆分
// （强拆是兜底策略，保证病态长节仍可导出）。
func (d *Doc) EnsureSection(s profile.Section, w float64) {
	h := d.SectionHeight(s, w)
	capacity := pageH - d.MarginT - d.MarginB
	remaining := pageH - d.MarginB - d.F.GetY()
	if h > remaining && h <= capacity {
		d.F.AddPage()
		d.F.SetY(d.MarginT)
	}
}

// ---- 公共块 ----

// DrawSectionBlock 绘制标准的 Section 块：强调色标题加下划线，
// 字段按"标签列 + 值列"排，textarea 的硬换行原样保留。
func (d *Doc) DrawSectionBlock(s profile.Section, x, w float64) {
	f := d.F
	f.SetX(x)
	d.SetAccent("B", d.BaseSize+2)
	f.CellFormat(w, d.LineH+1, s.Title, "", 1, "L", false, 0, "")

	r, g, b := hexRGB(d.St.PrimaryColor)
	f.SetDrawColor(r, g, b)
	f.SetLineWidth(0.5)
	f.Line(x, f.GetY(), x+w, f.GetY())
	f.Ln(2)

	d.SetBody()
	for _, fld := range s.EnabledFields() {
		d.DrawFieldRow(fld, x, w)
	}
	f.Ln(3)
}

// DrawFieldRow 绘制一行标签/值。值列用 MultiCell 自动换行。
func (d *Doc) DrawFieldRow(fld profile.Field, x, w float64) {
	f := d.F
	y := f.GetY()
	valueX, valueW := x, w
	if fld.ShowLabel {
		f.SetXY(x, y)
		f.SetFont(d.Font, "B", d.BaseSize)
		f.MultiCell(labelColW, d.LineH, fld.Label, "", "L", false)
		labelEnd := f.GetY()
		valueX = x + labelColW
		valueW = w - labelColW
		f.SetXY(valueX, y)
		f.SetFont(d.Font, "", d.BaseSize)
		f.MultiCell(valueW, d.LineH, fld.Value, "", "L", false)
		if f.GetY() < labelEnd {
			f.SetY(labelEnd)
		}
	} else {
		f.SetXY(valueX, y)
		f.SetFont(d.Font, "", d.BaseSize)
		f.MultiCell(valueW, d.LineH, fld.Value, "", "L", false)
	}
	f.SetX(x)
	f.Ln(1.2)
}

// DrawHeaderBlock 绘制页头（若启用）：图标 + 标题，水平居中可选。
func (d *Doc) DrawHeaderBlock(p *profile.Profile, centered bool) {
	if !p.Header.Enabled {
		return
	}
	f := d.F
	if d.hasIcon {
		iconSize := 10.0
		iconX := d.MarginL
		if centered {
			iconX = (pageW - iconSize) / 2
		}
		f.ImageOptions("header-icon", iconX, f.GetY(), iconSize, iconSize, false, imgOpts("PNG"), 0, "")
		f.SetY(f.GetY() + iconSize + 2)
	}
	d.SetAccent("B", d.BaseSize+10)
	align := "L"
	if centered {
		align = "C"
	}
	f.CellFormat(d.ContentW(), d.LineH+5, p.Header.Text, "", 1, align, false, 0, "")
	f.Ln(2)
	d.SetBody()
}

// DrawOverviewBlock 绘制开场介绍（若启用）。
func (d *Doc) DrawOverviewBlock(p *profile.Profile, x, w float64, centered bool) {
	if !p.Overview.Enabled {
		return
	}
	f := d.F
	f.SetX(x)
	if p.Overview.Title != "" {
		d.SetAccent("B", d.BaseSize+2)
		align := "L"
		if centered {
			align = "C"
		}
		f.CellFormat(w, d.LineH+1, p.Overview.Title, "", 1, align, false, 0, "")
	}
	d.SetBody()
	f.SetX(x)
	align := "L"
	if centered {
		align = "C"
	}
	f.MultiCell(w, d.LineH, p.Overview.Text, "", align, false)
	f.Ln(3)
}

// DrawPhoto 在指定位置绘制照片；shape 为 circle 时用圆形裁剪。
// 没有照片时什么都不画（调用方无需判断）。
func (d *Doc) DrawPhoto(x, y, size float64, shape profile.ImageShape) float64 {
	if !d.hasPhoto {
		return 0
	}
	f := d.F
	if shape == profile.ShapeCircle {
		f.ClipCircle(x+size/2, y+size/2, size/2, false)
	} else {
		f.ClipRoundedRect(x, y, size, size, 1.5, false)
	}
	f.ImageOptions("photo", x, y, size, size, false, imgOpts(d.photoType), 0, "")
	f.ClipEnd()
	return size
}

// DrawPhotoFlow 在正文流中放照片并前移光标。固定页绘制模型不做
// 文本环绕，left/right 摆放只决定照片的水平对齐。
func (d *Doc) DrawPhotoFlow(placement profile.ImagePlacement, shape profile.ImageShape, size float64) {
	if !d.hasPhoto {
		return
	}
	x := (pageW - size) / 2
	switch placement {
	case profile.PlaceLeft:
		x = d.MarginL
	case profile.PlaceRight:
		x = pageW - d.MarginR - size
	}
	y := d.F.GetY()
	d.DrawPhoto(x, y, size, shape)
	d.F.SetY(y + size + 4)
}

// HasPhoto 报告文档是否注册了可用的照片资源。
func (d *Doc) HasPhoto() bool { return d.hasPhoto }

// HasIcon 报告文档是否注册了可用的页头图标。
func (d *Doc) HasIcon() bool { return d.hasIcon }

// Output 校验并序列化文档。
func (d *Doc) Output() (*gofpdf.Fpdf, error) {
	if d.F.Err() {
		return nil, fmt.Errorf("build pdf: %w", d.F.Error())
	}
	return d.F, nil
}

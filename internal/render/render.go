// Package render 是模板注册表：把 HTML 与 PDF 两个渲染族按模板 ID
// 绑定成对外的查询面。注册表在进程启动时固化，运行期只读。
package render

import (
	"fmt"
	"html/template"

	"bioPress/internal/profile"
	"bioPress/internal/render/html"
	"bioPress/internal/render/pdf"
)

// Entry 是注册表中的一个模板条目。
// PDF 为 nil 表示该模板没有专属导出排版，导出时回退 template1 的 PDF 族。
type Entry struct {
	ID        string
	Name      string
	HTML      html.Renderer
	PDF       pdf.Renderer
	Thumbnail []byte // 布局占位 SVG，image/svg+xml
}

var entries = []Entry{
	{ID: "template1", Name: "Classic", HTML: html.Classic, PDF: pdf.Classic},
	{ID: "template2", Name: "Sidebar Left", HTML: html.SidebarLeft, PDF: pdf.SidebarLeft},
	{ID: "template3", Name: "Sidebar Right", HTML: html.SidebarRight, PDF: pdf.SidebarRight},
	{ID: "template4", Name: "Centered Elegance", HTML: html.CenteredElegance, PDF: pdf.CenteredElegance},
	{ID: "template5", Name: "Timeline", HTML: html.Timeline, PDF: pdf.Timeline},
	{ID: "template6", Name: "Grid Cards", HTML: html.GridCards, PDF: pdf.GridCards},
	{ID: "template7", Name: "Banner", HTML: html.Banner, PDF: pdf.Banner},
	{ID: "template8", Name: "Minimal Lines", HTML: html.MinimalLines, PDF: pdf.MinimalLines},
	{ID: "template9", Name: "Royal Frame", HTML: html.RoyalFrame, PDF: pdf.RoyalFrame},
	{ID: "template10", Name: "Two Column", HTML: html.TwoColumnFields, PDF: pdf.TwoColumnFields},
	{ID: "template11", Name: "Monogram", HTML: html.Monogram, PDF: pdf.Monogram},
	{ID: "template12", Name: "Accent Bar", HTML: html.AccentBar, PDF: pdf.AccentBar},
	{ID: "template13", Name: "Photo Band", HTML: html.PhotoBand, PDF: pdf.PhotoBand},
	{ID: "template14", Name: "Compact Table", HTML: html.CompactTable, PDF: pdf.CompactTable},
	{ID: "template15", Name: "Split Header", HTML: html.SplitHeader},
	{ID: "template16", Name: "Floral Corners", HTML: html.FloralCorners},
	{ID: "template17", Name: "Dual Tone", HTML: html.DualTone},
	{ID: "template18", Name: "Serif Letter", HTML: html.SerifLetter},
	{ID: "template19", Name: "Polaroid", HTML: html.Polaroid},
	{ID: "template20", Name: "Boxed Sections", HTML: html.BoxedSections},
	{ID: "template21", Name: "Gradient Header", HTML: html.GradientHeader},
	{ID: "template22", Name: "Offset Grid", HTML: html.OffsetGrid},
	{ID: "template23", Name: "Ribbon Titles", HTML: html.RibbonTitles},
	{ID: "template24", Name: "Midnight Contrast", HTML: html.MidnightContrast},
	{ID: "template25", Name: "Airy Wide", HTML: html.AiryWide},
}

var byID map[string]*Entry

// init 固化索引并校验完整性。注册表残缺属于构建错误，直接中止进程。
func init() {
	byID = make(map[string]*Entry, len(entries))
	for i := range entries {
		e := &entries[i]
		if e.HTML == nil {
			panic(fmt.Sprintf("render: template %s has no html renderer", e.ID))
		}
		if _, dup := byID[e.ID]; dup {
			panic(fmt.Sprintf("render: duplicate template id %s", e.ID))
		}
		shapes, ok := thumbLayouts[e.ID]
		if !ok {
			panic(fmt.Sprintf("render: template %s has no thumbnail layout", e.ID))
		}
		e.Thumbnail = renderThumb(shapes)
		byID[e.ID] = e
	}
	if _, ok := byID[profile.DefaultTemplate]; !ok {
		panic("render: default template missing from registry")
	}
	if byID[profile.DefaultTemplate].PDF == nil {
		panic("render: default template must have a pdf renderer")
	}
}

// Get 按 ID 取模板条目。未知 ID 回退默认模板而不是报错，
// 保证任何历史数据都能渲染出结果。
func Get(id string) Entry {
	if e, ok := byID[id]; ok {
		return *e
	}
	return *byID[profile.DefaultTemplate]
}

// Known 报告 ID 是否为注册模板。回退策略只服务历史数据，
// 外部入参（如画廊交接的查询参数）应先用它过滤。
func Known(id string) bool {
	_, ok := byID[id]
	return ok
}

// PDFFor 返回模板的导出渲染器；无专属 PDF 排版的模板回退默认模板的。
func PDFFor(id string) pdf.Renderer {
	e := Get(id)
	if e.PDF != nil {
		return e.PDF
	}
	return byID[profile.DefaultTemplate].PDF
}

// List 返回注册顺序的模板目录。
func List() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// PreviewDocument 把渲染好的页面包成独立 HTML 文档。
// 实时预览接口与后台快照任务共用这层外壳，保证两边所见一致。
func PreviewDocument(page template.HTML) string {
	return fmt.Sprintf(
		"<!doctype html><html><head><meta charset=\"utf-8\"><title>Preview</title>"+
			"<style>body{margin:0;display:flex;justify-content:center;background:#e8e8e8}</style>"+
			"</head><body><div id=\"pdf-root\">%s</div></body></html>",
		page,
	)
}

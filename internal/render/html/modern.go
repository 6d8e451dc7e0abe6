package html

// 变体 21–25：现代排版族。

// GradientHeader (template21)：页头用强调色到透明的渐变底。
var GradientHeader = newRenderer("template21", `
{{define "page"}}
<style>
{{template "baseCSS"}}
.t21 .head { padding: 40px 56px 28px; }
.t21 .head h1 { margin: 0; font-size: 1.9em; color: #fff; }
.t21 .body { padding: 20px 56px 44px; }
.t21 .photo { width: 116px; height: 116px; float: right; margin: -10px 0 10px 14px; }
.t21 .sec-title::after { content: ""; display: block; width: 36px; border-bottom: 3px solid; margin-top: 2px; }
</style>
<div class="page t21 {{.S.FontFamilyClass}}" style="background: {{.S.BackgroundColor}}; color: {{.S.TextColor}}; font-size: {{.S.FontSizePx}}px; font-family: {{.FontStack}}">
  {{if .HeaderEnabled}}
  <div class="head" style="background: linear-gradient(135deg, {{.S.PrimaryColor}}, {{.S.PrimaryColor}}88)">
    <h1>{{.HeaderText}}</h1>
  </div>
  {{end}}
  <div class="body">
    {{template "photoBlock" .}}
    {{template "overviewBlock" .}}
    {{range .Sections}}{{template "sectionBlock" ($.SectionData .)}}{{end}}
  </div>
</div>
{{end}}`, variantOpts{
	fixedPlacement: "right",
})

// OffsetGrid (template22)：标题列与内容列错位的两栏排版（自带字段排版）。
var OffsetGrid = newRenderer("template22", `
{{define "page"}}
<style>
{{template "baseCSS"}}
.t22 { padding: 52px 56px; }
.t22 .page-header h1 { margin: 0 0 16px; font-size: 1.8em; }
.t22 .photo { width: 112px; height: 112px; float: right; margin: 0 0 10px 14px; }
.t22 .srow { display: flex; gap: 20px; margin-bottom: 16px; }
.t22 .srow .stitle { width: 30%; text-align: right; font-weight: 700; }
.t22 .srow .sbody { width: 70%; border-left: 2px solid; padding-left: 18px; }
</style>
<div class="page t22 {{.S.FontFamilyClass}}" style="background: {{.S.BackgroundColor}}; color: {{.S.TextColor}}; font-size: {{.S.FontSizePx}}px; font-family: {{.FontStack}}">
  {{template "headerBlock" .}}
  {{template "photoBlock" .}}
  {{template "overviewBlock" .}}
  {{range .Sections}}
  <div class="srow">
    <div class="stitle" style="color: {{$.S.PrimaryColor}}">{{.Title}}</div>
    <div class="sbody" style="border-color: {{$.S.PrimaryColor}}">
      {{range .Fields}}
      <div class="row">
        {{if .ShowLabel}}<span class="label">{{.Label}}</span>{{end}}
        <span class="value">{{if eq .Type "textarea"}}{{breaks .Value}}{{else}}{{.Value}}{{end}}</span>
      </div>
      {{end}}
    </div>
  </div>
  {{end}}
</div>
{{end}}`, variantOpts{
	fixedPlacement: "right",
})

// RibbonTitles (template23)：Section 标题做成突出的丝带色块。
var RibbonTitles = newRenderer("template23", `
{{define "page"}}
<style>
{{template "baseCSS"}}
.t23 { padding: 48px 56px; }
.t23 .page-header { text-align: center; margin-bottom: 12px; }
.t23 .page-header h1 { margin: 0; font-size: 1.8em; }
.t23 .photo { width: 120px; height: 120px; margin: 0 auto 14px; }
.t23 .ribbon { display: inline-block; color: #fff; padding: 4px 18px 4px 12px; margin: 0 0 8px -18px; clip-path: polygon(0 0, 100% 0, calc(100% - 10px) 50%, 100% 100%, 0 100%); }
.t23 .ribbon h2 { margin: 0; font-size: 1.05em; color: #fff !important; }
</style>
<div class="page t23 {{.S.FontFamilyClass}}" style="background: {{.S.BackgroundColor}}; color: {{.S.TextColor}}; font-size: {{.S.FontSizePx}}px; font-family: {{.FontStack}}">
  {{template "headerBlock" .}}
  {{template "photoBlock" .}}
  {{template "overviewBlock" .}}
  {{range .Sections}}
  <section class="sec">
    <div class="ribbon" style="background: {{$.S.PrimaryColor}}"><h2>{{.Title}}</h2></div>
    {{range .Fields}}
    <div class="row">
      {{if .ShowLabel}}<span class="label">{{.Label}}</span>{{end}}
      <span class="value">{{if eq .Type "textarea"}}{{breaks .Value}}{{else}}{{.Value}}{{end}}</span>
    </div>
    {{end}}
  </section>
  {{end}}
</div>
{{end}}`, variantOpts{
	fixedPlacement: "above",
})

// MidnightContrast (template24)：为深色背景主题调校的高对比变体。
var MidnightContrast = newRenderer("template24", `
{{define "page"}}
<style>
{{template "baseCSS"}}
.t24 { padding: 52px 60px; }
.t24 .page-header h1 { margin: 0; font-size: 1.9em; letter-spacing: 2px; }
.t24 .photo { width: 120px; height: 120px; float: right; margin: 0 0 12px 16px; border: 2px solid; border-radius: 50%; }
.t24 .sec { border: 1px solid rgba(128,128,128,.35); border-radius: 8px; padding: 12px 16px; }
.t24 .sec-title { margin-top: 0; text-transform: uppercase; letter-spacing: 2px; font-size: .95em; }
.t24 .label { opacity: .75; }
</style>
<div class="page t24 {{.S.FontFamilyClass}}" style="background: {{.S.BackgroundColor}}; color: {{.S.TextColor}}; font-size: {{.S.FontSizePx}}px; font-family: {{.FontStack}}">
  {{template "headerBlock" .}}
  {{template "photoBlock" .}}
  {{template "overviewBlock" .}}
  {{range .Sections}}{{template "sectionBlock" ($.SectionData .)}}{{end}}
</div>
{{end}}`, variantOpts{
	fixedPlacement: "right",
	fixedShape:     "circle",
})

// AiryWide (template25)：大留白、低密度的松弛排版。
var AiryWide = newRenderer("template25", `
{{define "page"}}
<style>
{{template "baseCSS"}}
.t25 { padding: 88px 96px; line-height: 1.8; }
.t25 .page-header h1 { margin: 0 0 24px; font-size: 1.6em; font-weight: 400; letter-spacing: 6px; text-transform: uppercase; }
.t25 .photo { width: 104px; height: 104px; }
.t25 .place-above, .t25 .place-center { margin: 0 0 20px; }
.t25 .place-right { float: right; margin: 0 0 12px 16px; }
.t25 .place-left { float: left; margin: 0 16px 12px 0; }
.t25 .sec { margin-bottom: 24px; }
.t25 .sec-title { font-weight: 400; letter-spacing: 3px; }
</style>
<div class="page t25 {{.S.FontFamilyClass}}" style="background: {{.S.BackgroundColor}}; color: {{.S.TextColor}}; font-size: {{.S.FontSizePx}}px; font-family: {{.FontStack}}">
  {{template "headerBlock" .}}
  {{template "photoBlock" .}}
  {{template "overviewBlock" .}}
  {{range .Sections}}{{template "sectionBlock" ($.SectionData .)}}{{end}}
</div>
{{end}}`, variantOpts{})

package html

// 变体 11–15：装饰与强调族。

// Monogram (template11)：档案主人姓名首字母作为大号水印。
var Monogram = newRenderer("template11", `
{{define "page"}}
<style>
{{template "baseCSS"}}
.t11 { padding: 52px 60px; position: relative; }
.t11 .mono { position: absolute; top: 18px; right: 34px; font-size: 160px; opacity: .08; font-weight: 700; line-height: 1; }
.t11 .page-header h1 { margin: 0; font-size: 1.8em; }
.t11 .photo { width: 118px; height: 118px; float: right; margin: 0 0 10px 14px; }
.t11 .sec-title { letter-spacing: 1px; }
.t11 .sec-title::after { content: ""; display: block; width: 48px; border-bottom: 3px solid; margin-top: 3px; }
</style>
<div class="page t11 {{.S.FontFamilyClass}}" style="background: {{.S.BackgroundColor}}; color: {{.S.TextColor}}; font-size: {{.S.FontSizePx}}px; font-family: {{.FontStack}}">
  {{if .HeaderEnabled}}<span class="mono" style="color: {{.S.PrimaryColor}}">{{initial .HeaderText}}</span>{{end}}
  {{template "headerBlock" .}}
  {{template "photoBlock" .}}
  {{template "overviewBlock" .}}
  {{range .Sections}}{{template "sectionBlock" ($.SectionData .)}}{{end}}
</div>
{{end}}`, variantOpts{
	fixedPlacement: "right",
})

// AccentBar (template12)：每个 Section 左侧一条强调色竖条。
var AccentBar = newRenderer("template12", `
{{define "page"}}
<style>
{{template "baseCSS"}}
.t12 { padding: 48px 56px; }
.t12 .page-header { margin-bottom: 14px; }
.t12 .page-header h1 { margin: 0; font-size: 1.8em; }
.t12 .photo { width: 118px; height: 118px; }
.t12 .place-right { float: right; margin: 0 0 10px 14px; }
.t12 .place-left { float: left; margin: 0 14px 10px 0; }
.t12 .place-above, .t12 .place-center { margin: 0 auto 14px; }
.t12 .sec { border-left: 5px solid; padding-left: 14px; }
</style>
<div class="page t12 {{.S.FontFamilyClass}}" style="background: {{.S.BackgroundColor}}; color: {{.S.TextColor}}; font-size: {{.S.FontSizePx}}px; font-family: {{.FontStack}}">
  {{template "headerBlock" .}}
  {{template "photoBlock" .}}
  {{template "overviewBlock" .}}
  {{range .Sections}}
  <div class="sec" style="border-color: {{$.S.PrimaryColor}}">{{template "sectionBlock" ($.SectionData .)}}</div>
  {{end}}
</div>
{{end}}`, variantOpts{})

// PhotoBand (template13)：照片居中压在一条强调色横带上。
var PhotoBand = newRenderer("template13", `
{{define "page"}}
<style>
{{template "baseCSS"}}
.t13 .band { height: 110px; }
.t13 .photo { width: 132px; height: 132px; margin: -66px auto 8px; border: 4px solid #fff; }
.t13 .body { padding: 0 56px 44px; }
.t13 .page-header { text-align: center; margin-bottom: 8px; }
.t13 .page-header h1 { margin: 0; font-size: 1.8em; }
.t13 .overview { text-align: center; margin-bottom: 16px; }
.t13 .sec-title { text-align: center; letter-spacing: 2px; }
</style>
<div class="page t13 {{.S.FontFamilyClass}}" style="background: {{.S.BackgroundColor}}; color: {{.S.TextColor}}; font-size: {{.S.FontSizePx}}px; font-family: {{.FontStack}}">
  <div class="band" style="background: {{.S.PrimaryColor}}"></div>
  {{template "photoBlock" .}}
  <div class="body">
    {{template "headerBlock" .}}
    {{template "overviewBlock" .}}
    {{range .Sections}}{{template "sectionBlock" ($.SectionData .)}}{{end}}
  </div>
</div>
{{end}}`, variantOpts{
	fixedPlacement: "center",
})

// CompactTable (template14)：表格式标签/值行，信息密度最高的变体。
var CompactTable = newRenderer("template14", `
{{define "page"}}
<style>
{{template "baseCSS"}}
.t14 { padding: 44px 52px; }
.t14 .page-header h1 { margin: 0 0 10px; font-size: 1.6em; }
.t14 .photo { width: 108px; height: 108px; float: right; margin: 0 0 8px 12px; }
.t14 table { width: 100%; border-collapse: collapse; margin-bottom: 12px; }
.t14 td { padding: 4px 8px; border-bottom: 1px solid rgba(0,0,0,.08); vertical-align: top; }
.t14 td.label { width: 34%; font-weight: 600; }
.t14 .sec-title { margin-bottom: 2px; }
</style>
<div class="page t14 {{.S.FontFamilyClass}}" style="background: {{.S.BackgroundColor}}; color: {{.S.TextColor}}; font-size: {{.S.FontSizePx}}px; font-family: {{.FontStack}}">
  {{template "headerBlock" .}}
  {{template "photoBlock" .}}
  {{template "overviewBlock" .}}
  {{range .Sections}}
  <section class="sec">
    <h2 class="sec-title" style="color: {{$.S.PrimaryColor}}">{{.Title}}</h2>
    {{if .Fields}}
    <table>
      {{range .Fields}}
      <tr>
        {{if .ShowLabel}}<td class="label">{{.Label}}</td>{{end}}
        <td>{{if eq .Type "textarea"}}{{breaks .Value}}{{else}}{{.Value}}{{end}}</td>
      </tr>
      {{end}}
    </table>
    {{end}}
  </section>
  {{end}}
</div>
{{end}}`, variantOpts{
	fixedPlacement: "right",
	fixedShape:     "rect",
})

// SplitHeader (template15)：页头左文字右照片的分栏头。
var SplitHeader = newRenderer("template15", `
{{define "page"}}
<style>
{{template "baseCSS"}}
.t15 { padding: 48px 56px; }
.t15 .head { display: flex; justify-content: space-between; align-items: center; border-bottom: 3px solid; padding-bottom: 14px; margin-bottom: 16px; }
.t15 .page-header h1 { margin: 0; font-size: 2em; }
.t15 .photo { width: 112px; height: 112px; }
</style>
<div class="page t15 {{.S.FontFamilyClass}}" style="background: {{.S.BackgroundColor}}; color: {{.S.TextColor}}; font-size: {{.S.FontSizePx}}px; font-family: {{.FontStack}}">
  <div class="head" style="border-color: {{.S.PrimaryColor}}">
    <div>{{template "headerBlock" .}}</div>
    {{template "photoBlock" .}}
  </div>
  {{template "overviewBlock" .}}
  {{range .Sections}}{{template "sectionBlock" ($.SectionData .)}}{{end}}
</div>
{{end}}`, variantOpts{
	fixedPlacement: "right",
})

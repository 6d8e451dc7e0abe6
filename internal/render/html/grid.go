package html

// 变体 6–10：网格与分栏族。

// GridCards (template6)：Section 按索引奇偶分到左右两列的卡片流。
// PDF 侧用同样的奇偶规则静态分列，两边观感保持一致。
var GridCards = newRenderer("template6", `
{{define "page"}}
<style>
{{template "baseCSS"}}
.t6 { padding: 40px 44px; }
.t6 .page-header { text-align: center; margin-bottom: 8px; }
.t6 .page-header h1 { margin: 0; font-size: 1.7em; }
.t6 .photo { width: 116px; height: 116px; margin: 0 auto 14px; }
.t6 .cols { display: flex; gap: 16px; }
.t6 .col { width: 50%; display: flex; flex-direction: column; gap: 14px; }
.t6 .card { border: 1px solid; border-radius: 8px; padding: 12px 14px; }
.t6 .card .sec-title { margin-top: 0; font-size: 1.05em; }
.t6 .card .row { display: block; margin-bottom: 6px; }
.t6 .card .label { display: block; font-size: .82em; opacity: .7; min-width: 0; }
.t6 .overview { margin-bottom: 14px; text-align: center; }
</style>
<div class="page t6 {{.S.FontFamilyClass}}" style="background: {{.S.BackgroundColor}}; color: {{.S.TextColor}}; font-size: {{.S.FontSizePx}}px; font-family: {{.FontStack}}">
  {{template "headerBlock" .}}
  {{template "photoBlock" .}}
  {{template "overviewBlock" .}}
  <div class="cols">
    <div class="col">
      {{range $i, $s := .Sections}}{{if isEven $i}}
      <div class="card" style="border-color: {{$.S.PrimaryColor}}">{{template "sectionBlock" ($.SectionData $s)}}</div>
      {{end}}{{end}}
    </div>
    <div class="col">
      {{range $i, $s := .Sections}}{{if not (isEven $i)}}
      <div class="card" style="border-color: {{$.S.PrimaryColor}}">{{template "sectionBlock" ($.SectionData $s)}}</div>
      {{end}}{{end}}
    </div>
  </div>
</div>
{{end}}`, variantOpts{
	fixedPlacement: "above",
})

// Banner (template7)：顶部整宽强调色横幅，照片半叠在横幅下沿。
var Banner = newRenderer("template7", `
{{define "page"}}
<style>
{{template "baseCSS"}}
.t7 .banner { padding: 36px 48px 56px; color: #fff; }
.t7 .banner h1 { margin: 0; font-size: 2em; }
.t7 .banner .header-icon svg { width: 40px; height: 40px; }
.t7 .photo { width: 124px; height: 124px; margin: -62px auto 10px; border: 4px solid #fff; border-radius: 50%; }
.t7 .body { padding: 0 48px 40px; }
.t7 .overview { text-align: center; margin-bottom: 18px; }
.t7 .sec-title { border-left: 4px solid; padding-left: 8px; }
</style>
<div class="page t7 {{.S.FontFamilyClass}}" style="background: {{.S.BackgroundColor}}; color: {{.S.TextColor}}; font-size: {{.S.FontSizePx}}px; font-family: {{.FontStack}}">
  {{if .HeaderEnabled}}
  <header class="banner" style="background: {{.S.PrimaryColor}}">
    {{if .HeaderIcon}}<span class="header-icon">{{.HeaderIcon}}</span>{{end}}
    <h1>{{.HeaderText}}</h1>
  </header>
  {{end}}
  {{template "photoBlock" .}}
  <div class="body">
    {{template "overviewBlock" .}}
    {{range .Sections}}{{template "sectionBlock" ($.SectionData .)}}{{end}}
  </div>
</div>
{{end}}`, variantOpts{
	fixedPlacement: "center",
	fixedShape:     "circle",
})

// MinimalLines (template8)：细分隔线与大写小标题，照片响应用户摆放。
var MinimalLines = newRenderer("template8", `
{{define "page"}}
<style>
{{template "baseCSS"}}
.t8 { padding: 56px 64px; }
.t8 .page-header h1 { margin: 0; font-size: 1.6em; font-weight: 400; letter-spacing: 4px; text-transform: uppercase; }
.t8 .page-header { border-bottom: 1px solid; padding-bottom: 12px; margin-bottom: 18px; }
.t8 .photo { width: 110px; height: 110px; }
.t8 .place-right { float: right; margin: 0 0 10px 14px; }
.t8 .place-left { float: left; margin: 0 14px 10px 0; }
.t8 .place-above, .t8 .place-center { margin: 0 auto 14px; }
.t8 .sec-title { font-size: .95em; letter-spacing: 3px; text-transform: uppercase; font-weight: 500; }
.t8 .sec { border-bottom: 1px solid rgba(0,0,0,.08); padding-bottom: 10px; }
</style>
<div class="page t8 {{.S.FontFamilyClass}}" style="background: {{.S.BackgroundColor}}; color: {{.S.TextColor}}; font-size: {{.S.FontSizePx}}px; font-family: {{.FontStack}}">
  {{if .HeaderEnabled}}
  <header class="page-header" style="border-color: {{.S.PrimaryColor}}; color: {{.S.PrimaryColor}}">
    <h1>{{.HeaderText}}</h1>
  </header>
  {{end}}
  {{template "photoBlock" .}}
  {{template "overviewBlock" .}}
  {{range .Sections}}{{template "sectionBlock" ($.SectionData .)}}{{end}}
</div>
{{end}}`, variantOpts{})

// RoyalFrame (template9)：四边装饰框内的居中排版，配合带边框主题使用。
var RoyalFrame = newRenderer("template9", `
{{define "page"}}
<style>
{{template "baseCSS"}}
.t9 { padding: 64px 72px; position: relative; }
.t9 .inner { border: 3px double; padding: 32px 40px; height: 100%; box-sizing: border-box; }
.t9 .page-header { text-align: center; }
.t9 .page-header h1 { margin: 4px 0 0; font-size: 1.9em; }
.t9 .photo { width: 126px; height: 126px; margin: 14px auto; }
.t9 .overview { text-align: center; margin-bottom: 16px; font-style: italic; }
.t9 .sec-title { text-align: center; }
.t9 .row { justify-content: center; }
.t9 .row .label { min-width: 0; }
.t9 .row .label::after { content: ":"; }
</style>
<div class="page t9 {{.S.FontFamilyClass}}" style="background: {{.S.BackgroundColor}}; color: {{.S.TextColor}}; font-size: {{.S.FontSizePx}}px; font-family: {{.FontStack}}">
  <div class="inner" style="border-color: {{.S.PrimaryColor}}">
    {{template "headerBlock" .}}
    {{template "photoBlock" .}}
    {{template "overviewBlock" .}}
    {{range .Sections}}{{template "sectionBlock" ($.SectionData .)}}{{end}}
  </div>
</div>
{{end}}`, variantOpts{
	fixedPlacement: "center",
})

// TwoColumnFields (template10)：Section 直排，但字段在 Section 内两列网格。
var TwoColumnFields = newRenderer("template10", `
{{define "page"}}
<style>
{{template "baseCSS"}}
.t10 { padding: 48px 52px; }
.t10 .page-header h1 { margin: 0 0 4px; font-size: 1.8em; }
.t10 .photo { width: 120px; height: 120px; float: right; margin: 0 0 10px 14px; }
.t10 .fields { display: grid; grid-template-columns: 1fr 1fr; gap: 4px 24px; }
.t10 .row { display: block; }
.t10 .label { display: block; font-size: .8em; opacity: .7; min-width: 0; }
.t10 .sec-title { border-bottom: 2px solid; padding-bottom: 2px; }
.t10 .full { grid-column: 1 / -1; }
</style>
<div class="page t10 {{.S.FontFamilyClass}}" style="background: {{.S.BackgroundColor}}; color: {{.S.TextColor}}; font-size: {{.S.FontSizePx}}px; font-family: {{.FontStack}}">
  {{template "headerBlock" .}}
  {{template "photoBlock" .}}
  {{template "overviewBlock" .}}
  {{range .Sections}}
  <section class="sec">
    <h2 class="sec-title" style="color: {{$.S.PrimaryColor}}; border-color: {{$.S.PrimaryColor}}">{{.Title}}</h2>
    <div class="fields">
      {{range .Fields}}
      <div class="row{{if eq .Type "textarea"}} full{{end}}">
        {{if .ShowLabel}}<span class="label">{{.Label}}</span>{{end}}
        <span class="value">{{if eq .Type "textarea"}}{{breaks .Value}}{{else}}{{.Value}}{{end}}</span>
      </div>
      {{end}}
    </div>
  </section>
  {{end}}
</div>
{{end}}`, variantOpts{
	fixedPlacement: "right",
})

package html

// 变体 1–5：经典排版族。

// Classic (template1)：居中页头，照片按用户选择摆放，Section 顺序直排。
var Classic = newRenderer("template1", `
{{define "page"}}
<style>
{{template "baseCSS"}}
.t1 { padding: 48px 56px; }
.t1 .page-header { text-align: center; margin-bottom: 10px; }
.t1 .page-header h1 { margin: 4px 0 0; font-size: 1.9em; letter-spacing: 1px; }
.t1 .overview { text-align: center; margin-bottom: 18px; font-style: italic; }
.t1 .photo { width: 128px; height: 128px; }
.t1 .place-above, .t1 .place-center { margin: 0 auto 16px; }
.t1 .place-right { float: right; margin: 0 0 12px 16px; }
.t1 .place-left { float: left; margin: 0 16px 12px 0; }
.t1 .sec-title { border-bottom: 2px solid; padding-bottom: 3px; }
</style>
<div class="page t1 {{.S.FontFamilyClass}}" style="background: {{.S.BackgroundColor}}; color: {{.S.TextColor}}; font-size: {{.S.FontSizePx}}px; font-family: {{.FontStack}}">
  {{template "headerBlock" .}}
  {{template "overviewBlock" .}}
  {{template "photoBlock" .}}
  {{range .Sections}}{{template "sectionBlock" ($.SectionData .)}}{{end}}
  {{range .Aside}}{{template "sectionBlock" ($.SectionData .)}}{{end}}
</div>
{{end}}`, variantOpts{})

// SidebarLeft (template2)：左侧栏放照片与联系方式，主区放其余 Section。
// 照片位置固定在侧栏顶部，不响应 imagePlacement。
var SidebarLeft = newRenderer("template2", `
{{define "page"}}
<style>
{{template "baseCSS"}}
.t2 { display: flex; }
.t2 .side { width: 34%; padding: 40px 22px; color: #fff; box-sizing: border-box; }
.t2 .main { width: 66%; padding: 40px 32px; box-sizing: border-box; }
.t2 .photo { width: 140px; height: 140px; margin: 0 auto 20px; }
.t2 .side .sec-title { color: #fff !important; border-bottom: 1px solid rgba(255,255,255,.5); }
.t2 .side .row { display: block; }
.t2 .side .label { display: block; font-size: .85em; opacity: .8; min-width: 0; }
.t2 .page-header h1 { margin: 0 0 6px; font-size: 1.8em; }
</style>
<div class="page t2 {{.S.FontFamilyClass}}" style="background: {{.S.BackgroundColor}}; color: {{.S.TextColor}}; font-size: {{.S.FontSizePx}}px; font-family: {{.FontStack}}">
  <div class="side" style="background: {{.S.PrimaryColor}}">
    {{template "photoBlock" .}}
    {{range .Aside}}{{template "sectionBlock" ($.SectionData .)}}{{end}}
  </div>
  <div class="main">
    {{template "headerBlock" .}}
    {{template "overviewBlock" .}}
    {{range .Sections}}{{template "sectionBlock" ($.SectionData .)}}{{end}}
  </div>
</div>
{{end}}`, variantOpts{
	asideIDs:       []string{"contact"},
	fixedPlacement: "above",
})

// SidebarRight (template3)：template2 的镜像。
var SidebarRight = newRenderer("template3", `
{{define "page"}}
<style>
{{template "baseCSS"}}
.t3 { display: flex; flex-direction: row-reverse; }
.t3 .side { width: 34%; padding: 40px 22px; box-sizing: border-box; }
.t3 .main { width: 66%; padding: 40px 32px; box-sizing: border-box; }
.t3 .photo { width: 140px; height: 140px; margin: 0 auto 20px; }
.t3 .side { border-left: 3px solid; }
.t3 .side .row { display: block; }
.t3 .side .label { display: block; font-size: .85em; opacity: .75; min-width: 0; }
.t3 .page-header h1 { margin: 0 0 6px; font-size: 1.8em; }
</style>
<div class="page t3 {{.S.FontFamilyClass}}" style="background: {{.S.BackgroundColor}}; color: {{.S.TextColor}}; font-size: {{.S.FontSizePx}}px; font-family: {{.FontStack}}">
  <div class="side" style="border-color: {{.S.PrimaryColor}}">
    {{template "photoBlock" .}}
    {{range .Aside}}{{template "sectionBlock" ($.SectionData .)}}{{end}}
  </div>
  <div class="main">
    {{template "headerBlock" .}}
    {{template "overviewBlock" .}}
    {{range .Sections}}{{template "sectionBlock" ($.SectionData .)}}{{end}}
  </div>
</div>
{{end}}`, variantOpts{
	asideIDs:       []string{"contact"},
	fixedPlacement: "above",
})

// CenteredElegance (template4)：全部居中，标签在值上方（自带字段排版，
// 不用公共 sectionBlock）。照片固定居中圆形。
var CenteredElegance = newRenderer("template4", `
{{define "page"}}
<style>
{{template "baseCSS"}}
.t4 { padding: 56px 72px; text-align: center; }
.t4 .page-header h1 { margin: 4px 0 0; font-size: 2em; letter-spacing: 3px; }
.t4 .photo { width: 132px; height: 132px; margin: 18px auto; }
.t4 .overview { margin: 0 auto 20px; max-width: 80%; font-style: italic; }
.t4 .sec { margin-bottom: 18px; }
.t4 .sec-title { font-size: 1.1em; letter-spacing: 2px; }
.t4 .fv { margin-bottom: 8px; }
.t4 .fv .label { display: block; font-size: .78em; letter-spacing: 1px; opacity: .7; text-transform: uppercase; }
</style>
<div class="page t4 {{.S.FontFamilyClass}}" style="background: {{.S.BackgroundColor}}; color: {{.S.TextColor}}; font-size: {{.S.FontSizePx}}px; font-family: {{.FontStack}}">
  {{template "headerBlock" .}}
  {{template "photoBlock" .}}
  {{template "overviewBlock" .}}
  {{range .Sections}}
  <section class="sec">
    <h2 class="sec-title" style="color: {{$.S.PrimaryColor}}">{{upper .Title}}</h2>
    {{range .Fields}}
    <div class="fv">
      {{if .ShowLabel}}<span class="label">{{.Label}}</span>{{end}}
      <span class="value">{{if eq .Type "textarea"}}{{breaks .Value}}{{else}}{{.Value}}{{end}}</span>
    </div>
    {{end}}
  </section>
  {{end}}
</div>
{{end}}`, variantOpts{
	fixedPlacement: "center",
	fixedShape:     "circle",
})

// Timeline (template5)：左侧竖向连线加节点，自带字段排版。
var Timeline = newRenderer("template5", `
{{define "page"}}
<style>
{{template "baseCSS"}}
.t5 { padding: 48px 56px; }
.t5 .page-header h1 { margin: 0; font-size: 1.8em; }
.t5 .photo { width: 120px; height: 120px; float: right; margin: 0 0 12px 16px; }
.t5 .overview { margin: 10px 0 22px; }
.t5 .tl { position: relative; padding-left: 26px; border-left: 3px solid; margin-bottom: 16px; }
.t5 .tl .dot { position: absolute; left: -8px; top: 2px; width: 13px; height: 13px; border-radius: 50%; }
.t5 .sec-title { margin-top: 0; }
</style>
<div class="page t5 {{.S.FontFamilyClass}}" style="background: {{.S.BackgroundColor}}; color: {{.S.TextColor}}; font-size: {{.S.FontSizePx}}px; font-family: {{.FontStack}}">
  {{template "headerBlock" .}}
  {{template "photoBlock" .}}
  {{template "overviewBlock" .}}
  {{range .Sections}}
  <div class="tl" style="border-color: {{$.S.PrimaryColor}}">
    <span class="dot" style="background: {{$.S.PrimaryColor}}"></span>
    <h2 class="sec-title" style="color: {{$.S.PrimaryColor}}">{{.Title}}</h2>
    {{range .Fields}}
    <div class="row">
      {{if .ShowLabel}}<span class="label">{{.Label}}</span>{{end}}
      <span class="value">{{if eq .Type "textarea"}}{{breaks .Value}}{{else}}{{.Value}}{{end}}</span>
    </div>
    {{end}}
  </div>
  {{end}}
</div>
{{end}}`, variantOpts{
	fixedPlacement: "right",
})

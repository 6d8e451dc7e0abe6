package html

// 变体 16–20：色块与纸面质感族。

// FloralCorners (template16)：内边距大、四角留给主题装饰框的居中排版。
var FloralCorners = newRenderer("template16", `
{{define "page"}}
<style>
{{template "baseCSS"}}
.t16 { padding: 80px 88px; text-align: center; }
.t16 .page-header h1 { margin: 0; font-size: 1.9em; }
.t16 .photo { width: 124px; height: 124px; margin: 14px auto; }
.t16 .overview { font-style: italic; margin-bottom: 16px; }
.t16 .sec-title { letter-spacing: 2px; }
.t16 .sec-title::before, .t16 .sec-title::after { content: "\2766"; margin: 0 10px; opacity: .6; }
.t16 .row { justify-content: center; }
.t16 .row .label { min-width: 0; }
.t16 .row .label::after { content: " \2013"; }
</style>
<div class="page t16 {{.S.FontFamilyClass}}" style="background: {{.S.BackgroundColor}}; color: {{.S.TextColor}}; font-size: {{.S.FontSizePx}}px; font-family: {{.FontStack}}">
  {{template "headerBlock" .}}
  {{template "photoBlock" .}}
  {{template "overviewBlock" .}}
  {{range .Sections}}{{template "sectionBlock" ($.SectionData .)}}{{end}}
</div>
{{end}}`, variantOpts{
	fixedPlacement: "center",
	fixedShape:     "circle",
})

// DualTone (template17)：上三分之一整体铺强调色，姓名反白。
var DualTone = newRenderer("template17", `
{{define "page"}}
<style>
{{template "baseCSS"}}
.t17 .top { padding: 44px 56px; color: #fff; }
.t17 .top h1 { margin: 0; font-size: 2em; }
.t17 .top .overview { margin-top: 8px; opacity: .92; }
.t17 .top .overview h2 { display: none; }
.t17 .photo { width: 120px; height: 120px; float: right; margin-left: 16px; }
.t17 .body { padding: 28px 56px 44px; }
</style>
<div class="page t17 {{.S.FontFamilyClass}}" style="background: {{.S.BackgroundColor}}; color: {{.S.TextColor}}; font-size: {{.S.FontSizePx}}px; font-family: {{.FontStack}}">
  <div class="top" style="background: {{.S.PrimaryColor}}">
    {{template "photoBlock" .}}
    {{if .HeaderEnabled}}<h1>{{.HeaderText}}</h1>{{end}}
    {{template "overviewBlock" .}}
  </div>
  <div class="body">
    {{range .Sections}}{{template "sectionBlock" ($.SectionData .)}}{{end}}
  </div>
</div>
{{end}}`, variantOpts{
	fixedPlacement: "right",
})

// SerifLetter (template18)：书信式排版，开场白优先、字段行右对齐标签。
var SerifLetter = newRenderer("template18", `
{{define "page"}}
<style>
{{template "baseCSS"}}
.t18 { padding: 64px 80px; }
.t18 .page-header { text-align: center; margin-bottom: 4px; }
.t18 .page-header h1 { margin: 0; font-size: 1.7em; font-variant: small-caps; }
.t18 .rule { width: 120px; margin: 10px auto 18px; border-bottom: 1px solid; }
.t18 .overview { margin-bottom: 22px; text-indent: 2em; line-height: 1.6; }
.t18 .overview h2 { display: none; }
.t18 .photo { width: 110px; height: 110px; float: left; margin: 0 16px 10px 0; }
.t18 .row .label { text-align: right; }
</style>
<div class="page t18 {{.S.FontFamilyClass}}" style="background: {{.S.BackgroundColor}}; color: {{.S.TextColor}}; font-size: {{.S.FontSizePx}}px; font-family: {{.FontStack}}">
  {{template "headerBlock" .}}
  <div class="rule" style="border-color: {{.S.PrimaryColor}}"></div>
  {{template "photoBlock" .}}
  {{template "overviewBlock" .}}
  {{range .Sections}}{{template "sectionBlock" ($.SectionData .)}}{{end}}
</div>
{{end}}`, variantOpts{
	fixedPlacement: "left",
})

// Polaroid (template19)：照片加白边并轻微旋转，像贴上去的拍立得。
var Polaroid = newRenderer("template19", `
{{define "page"}}
<style>
{{template "baseCSS"}}
.t19 { padding: 48px 56px; }
.t19 .photo { width: 128px; height: 150px; padding: 8px 8px 26px; background: #fff; box-shadow: 0 2px 8px rgba(0,0,0,.25); transform: rotate(3deg); float: right; margin: 0 0 14px 18px; }
.t19 .photo img { border-radius: 0; }
.t19 .page-header h1 { margin: 0; font-size: 1.8em; }
.t19 .sec-title { border-bottom: 2px dashed; padding-bottom: 3px; }
</style>
<div class="page t19 {{.S.FontFamilyClass}}" style="background: {{.S.BackgroundColor}}; color: {{.S.TextColor}}; font-size: {{.S.FontSizePx}}px; font-family: {{.FontStack}}">
  {{template "headerBlock" .}}
  {{template "photoBlock" .}}
  {{template "overviewBlock" .}}
  {{range .Sections}}{{template "sectionBlock" ($.SectionData .)}}{{end}}
</div>
{{end}}`, variantOpts{
	fixedPlacement: "right",
	fixedShape:     "rect",
})

// BoxedSections (template20)：每个 Section 独立描边盒子，背景微填充。
var BoxedSections = newRenderer("template20", `
{{define "page"}}
<style>
{{template "baseCSS"}}
.t20 { padding: 44px 52px; }
.t20 .page-header { text-align: center; margin-bottom: 12px; }
.t20 .page-header h1 { margin: 0; font-size: 1.8em; }
.t20 .photo { width: 118px; height: 118px; margin: 0 auto 14px; }
.t20 .box { border: 1.5px solid; border-radius: 6px; padding: 12px 16px; margin-bottom: 14px; background: rgba(0,0,0,.02); }
.t20 .box .sec { margin-bottom: 0; }
.t20 .box .sec-title { margin-top: 0; }
</style>
<div class="page t20 {{.S.FontFamilyClass}}" style="background: {{.S.BackgroundColor}}; color: {{.S.TextColor}}; font-size: {{.S.FontSizePx}}px; font-family: {{.FontStack}}">
  {{template "headerBlock" .}}
  {{template "photoBlock" .}}
  {{template "overviewBlock" .}}
  {{range .Sections}}
  <div class="box" style="border-color: {{$.S.PrimaryColor}}">{{template "sectionBlock" ($.SectionData .)}}</div>
  {{end}}
</div>
{{end}}`, variantOpts{
	fixedPlacement: "above",
})

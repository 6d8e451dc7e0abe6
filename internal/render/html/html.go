// Package html 是模板族的屏显渲染侧：每个变体是一个纯函数，
// 把 (Profile, Resolved) 映射为一页 A4 比例的连续画布标记。
// 这一侧不做分页；分页只存在于 PDF 渲染族。
package html

import (
	"bytes"
	"html/template"
	"strings"
	"unicode/utf8"

	"bioPress/internal/assets"
	"bioPress/internal/profile"
	"bioPress/internal/style"
)

// Renderer 是所有 HTML 变体的统一契约。纯函数，不读写共享状态。
type Renderer func(p *profile.Profile, st style.Resolved) (template.HTML, error)

// PageWidthPx 与 PageHeightPx 是 A4 @96DPI 的画布尺寸，
// 预览快照工作器按这个宽度定位页面根节点。
const (
	PageWidthPx  = 794
	PageHeightPx = 1122
)

// view 是传给模板的展示模型。Sections 已按"仅启用"过滤，
// 变体模板不允许绕过它直接访问原始档案的 Sections。
type view struct {
	S style.Resolved
	// FontStack 含引号，必须标记为可信 CSS，否则上下文转义会拒绝它。
	FontStack template.CSS

	HeaderEnabled bool
	HeaderText    string
	HeaderIcon    template.HTML // 内联 SVG，用 CSS currentColor 染色

	OverviewEnabled bool
	OverviewTitle   string
	OverviewText    string

	Sections []profile.Section // 主区顺序 = 档案顺序，除被路由到 Aside 的
	Aside    []profile.Section // 被变体固定路由到侧栏等位置的 Section

	HasPhoto  bool
	PhotoURL  string
	Placement profile.ImagePlacement
	Shape     profile.ImageShape
}

// variantOpts 描述一个变体对展示模型的固定约定。
type variantOpts struct {
	// asideIDs 列出被路由到侧栏的 Section ID（如 "contact"）。
	asideIDs []string
	// fixedPlacement 非空时变体不支持自选照片位置，固定用该约定。
	fixedPlacement profile.ImagePlacement
	// fixedShape 同上。
	fixedShape profile.ImageShape
}

var funcs = template.FuncMap{
	// breaks 转义后把硬换行渲染为 <br>，用于 textarea 类型字段。
	"breaks": func(s string) template.HTML {
		escaped := template.HTMLEscapeString(s)
		return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
	},
	"upper": strings.ToUpper,
	// isEven 服务于奇偶分列的网格变体。
	"isEven": func(i int) bool { return i%2 == 0 },
	// initial 按字符而不是字节取首字母，避免多字节文字出乱码。
	"initial": func(s string) string {
		s = strings.TrimSpace(s)
		if s == "" {
			return ""
		}
		r, _ := utf8.DecodeRuneInString(s)
		return strings.ToUpper(string(r))
	},
}

// sharedDefs 是大多数变体复用的公共块。需要特殊字段排版的变体
// 自带排版，不引用 sectionBlock。
const sharedDefs = `
{{define "sectionBlock"}}
<section class="sec">
  <h2 class="sec-title" style="color: {{.S.PrimaryColor}}">{{.Section.Title}}</h2>
  {{range .Section.Fields}}
  <div class="row">
    {{if .ShowLabel}}<span class="label">{{.Label}}</span>{{end}}
    <span class="value">{{if eq .Type "textarea"}}{{breaks .Value}}{{else}}{{.Value}}{{end}}</span>
  </div>
  {{end}}
</section>
{{end}}

{{define "photoBlock"}}
{{if .HasPhoto}}
<div class="photo photo-{{.Shape}} place-{{.Placement}}">
  <img src="{{.PhotoURL}}" alt="">
</div>
{{end}}
{{end}}

{{define "headerBlock"}}
{{if .HeaderEnabled}}
<header class="page-header" style="color: {{.S.PrimaryColor}}">
  {{if .HeaderIcon}}<span class="header-icon">{{.HeaderIcon}}</span>{{end}}
  <h1>{{.HeaderText}}</h1>
</header>
{{end}}
{{end}}

{{define "overviewBlock"}}
{{if .OverviewEnabled}}
<div class="overview">
  {{if .OverviewTitle}}<h2 style="color: {{.S.PrimaryColor}}">{{.OverviewTitle}}</h2>{{end}}
  <p>{{breaks .OverviewText}}</p>
</div>
{{end}}
{{end}}

{{define "baseCSS"}}
.page { width: 794px; aspect-ratio: 210 / 297; box-sizing: border-box; overflow: hidden; }
.page .sec { margin-bottom: 14px; }
.page .sec-title { margin: 0 0 6px; font-size: 1.15em; }
.page .row { display: flex; gap: 8px; margin-bottom: 4px; }
.page .row .label { font-weight: 600; min-width: 160px; }
.page .photo img { width: 100%; height: 100%; object-fit: cover; display: block; }
.page .photo-circle img { border-radius: 50%; }
.page .photo-rect img { border-radius: 4px; }
.page .header-icon svg { width: 34px; height: 34px; vertical-align: middle; }
.page .overview p { margin: 0; }
{{end}}
`

// sectionView 让 sectionBlock 能同时拿到样式与当前 Section。
type sectionView struct {
	S       style.Resolved
	Section profile.Section
}

// SectionData 供模板内 range 时构造 sectionBlock 的入参。
func (v view) SectionData(s profile.Section) sectionView {
	return sectionView{S: v.S, Section: s}
}

func buildView(p *profile.Profile, st style.Resolved, opts variantOpts) view {
	v := view{
		S:         st,
		FontStack: template.CSS(style.CSSFontStack(st.FontFamilyClass)),
		Placement: st.ImagePlacement,
		Shape:     st.ImageShape,
	}
	if opts.fixedPlacement != "" {
		v.Placement = opts.fixedPlacement
	}
	if opts.fixedShape != "" {
		v.Shape = opts.fixedShape
	}

	if p.Header.Enabled {
		v.HeaderEnabled = true
		v.HeaderText = p.Header.Text
		if svg := assets.Lookup(p.Header.Icon); svg != nil {
			v.HeaderIcon = template.HTML(svg)
		}
	}
	if p.Overview.Enabled {
		v.OverviewEnabled = true
		v.OverviewTitle = p.Overview.Title
		v.OverviewText = p.Overview.Text
	}
	if strings.TrimSpace(p.Photo) != "" {
		v.HasPhoto = true
		v.PhotoURL = p.Photo
	}

	aside := make(map[string]bool, len(opts.asideIDs))
	for _, id := range opts.asideIDs {
		aside[id] = true
	}
	for _, s := range profile.EnabledSections(p) {
		if aside[s.ID] {
			v.Aside = append(v.Aside, s)
		} else {
			v.Sections = append(v.Sections, s)
		}
	}
	return v
}

// newRenderer 把变体模板编译为 Renderer。模板解析错误属于注册表
// 完整性问题，在进程启动时直接暴露。
func newRenderer(id, body string, opts variantOpts) Renderer {
	tmpl := template.Must(
		template.Must(template.New(id).Funcs(funcs).Parse(sharedDefs)).Parse(body),
	)
	return func(p *profile.Profile, st style.Resolved) (template.HTML, error) {
		var buf bytes.Buffer
		if err := tmpl.ExecuteTemplate(&buf, "page", buildView(p, st, opts)); err != nil {
			return "", err
		}
		return template.HTML(buf.String()), nil
	}
}

package profile

import "strings"

// FieldType 表示字段值的展示类型。
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldDate     FieldType = "date"
)

// ImagePlacement 表示照片相对正文的摆放位置。
type ImagePlacement string

const (
	PlaceAbove  ImagePlacement = "above"
	PlaceRight  ImagePlacement = "right"
	PlaceLeft   ImagePlacement = "left"
	PlaceCenter ImagePlacement = "center"
)

// ImageShape 表示照片裁剪形状。
type ImageShape string

const (
	ShapeCircle ImageShape = "circle"
	ShapeRect   ImageShape = "rect"
)

// FontFamily 是封闭的字体族集合，HTML 与 PDF 两侧共用。
type FontFamily string

const (
	FontSerif FontFamily = "serif"
	FontSans  FontFamily = "sans"
	FontMono  FontFamily = "monospace"
)

// 语义特殊的 Section ID：部分模板会把它们固定路由到侧栏等位置。
const (
	SectionContact  = "contact"
	SectionPersonal = "personal"
)

// Profile 是一份个人资料文档的根聚合，整份作为 JSON 快照持久化。
type Profile struct {
	Header         Header         `json:"header"`
	Overview       Overview       `json:"overview"`
	Photo          string         `json:"photo,omitempty"` // 已裁剪照片的对象 Key 或 URL，空表示无照片
	Sections       []Section      `json:"sections"`
	Template       string         `json:"template"`
	Customizations Customizations `json:"customizations"`
}

// Header 是页面顶部的标题区。Enabled 为 false 时任何渲染器都不得输出其内容。
type Header struct {
	Enabled bool   `json:"enabled"`
	Text    string `json:"text"`
	Icon    string `json:"icon,omitempty"` // 指向内嵌矢量图标的引用名
}

// Overview 是自由文本的开场介绍块。
type Overview struct {
	Enabled bool   `json:"enabled"`
	Title   string `json:"title,omitempty"`
	Text    string `json:"text"`
}

// Section 是一组可整体开关、可排序的字段。
// ID 是稳定标识：排序、改名都不会改变它。
type Section struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Enabled bool    `json:"enabled"`
	Fields  []Field `json:"fields"`
}

// Field 是 Section 内的单个带标签值。
type Field struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Value     string    `json:"value"` // 可能包含换行，textarea 类型按硬换行渲染
	Type      FieldType `json:"type"`
	Enabled   bool      `json:"enabled"`
	ShowLabel bool      `json:"show_label"`
}

// Customizations 保存用户显式选择的样式项；零值表示"未选择，用主题默认"。
type Customizations struct {
	ThemeID         string         `json:"theme_id"`
	BackgroundColor string         `json:"background_color,omitempty"`
	PrimaryColor    string         `json:"primary_color,omitempty"`
	TextColor       string         `json:"text_color,omitempty"`
	FontFamily      FontFamily     `json:"font_family,omitempty"`
	FontSize        int            `json:"font_size,omitempty"`
	ImagePlacement  ImagePlacement `json:"image_placement,omitempty"`
	ImageShape      ImageShape     `json:"image_shape,omitempty"`
}

// EnabledSections 返回启用的 Section（其中字段同样只保留启用的）。
// 所有渲染器必须经由此处取数，禁用内容不允许出现在任何输出里。
func EnabledSections(p *Profile) []Section {
	result := make([]Section, 0, len(p.Sections))
	for _, s := range p.Sections {
		if !s.Enabled {
			continue
		}
		s.Fields = s.EnabledFields()
		result = append(result, s)
	}
	return result
}

// EnabledFields 返回 Section 中启用的字段。
func (s Section) EnabledFields() []Field {
	fields := make([]Field, 0, len(s.Fields))
	for _, f := range s.Fields {
		if f.Enabled {
			fields = append(fields, f)
		}
	}
	return fields
}

// SectionByID 按 ID 查找 Section。
func (p *Profile) SectionByID(id string) (Section, bool) {
	for _, s := range p.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// NameValue 返回档案主人的姓名，用于导出文件名。
// 优先在 personal Section 中找 id 或标签为 name 的启用字段，找不到再全局找。
func (p *Profile) NameValue() (string, bool) {
	if s, ok := p.SectionByID(SectionPersonal); ok && s.Enabled {
		if v, ok := nameFromSection(s); ok {
			return v, true
		}
	}
	for _, s := range p.Sections {
		if !s.Enabled {
			continue
		}
		if v, ok := nameFromSection(s); ok {
			return v, true
		}
	}
	return "", false
}

func nameFromSection(s Section) (string, bool) {
	for _, f := range s.EnabledFields() {
		if f.ID == "name" || strings.EqualFold(f.Label, "name") {
			if f.Value != "" {
				return f.Value, true
			}
		}
	}
	return "", false
}

package style

import "bioPress/internal/profile"

// Resolved 是扁平化后的最终样式，HTML 与 PDF 两族渲染器共同消费。
// 两侧必须拿到字节相同的值才能保持视觉一致，所以 Resolve 是纯函数。
type Resolved struct {
	PrimaryColor    string
	BackgroundColor string
	TextColor       string
	FontSizePx      int
	FontFamilyClass string
	ImagePlacement  profile.ImagePlacement
	ImageShape      profile.ImageShape
}

// 系统兜底默认值，主题表本身缺项时使用。
const (
	systemPrimary    = "#8b2942"
	systemBackground = "#ffffff"
	systemText       = "#2b2b2b"
	systemFontSize   = 14
)

// Resolve 合并样式，优先级从高到低：用户显式选择 > 主题默认 > 系统默认。
// 未知 themeId 回落到默认主题；任何输入下都不会失败。
func Resolve(c profile.Customizations) Resolved {
	t := ThemeByID(c.ThemeID)

	r := Resolved{
		PrimaryColor:    systemPrimary,
		BackgroundColor: systemBackground,
		TextColor:       systemText,
		FontSizePx:      systemFontSize,
		FontFamilyClass: FontFamilyClass(profile.FontSerif),
		ImagePlacement:  profile.PlaceRight,
		ImageShape:      profile.ShapeCircle,
	}

	if t.PrimaryColor != "" {
		r.PrimaryColor = t.PrimaryColor
	}
	if t.BackgroundColor != "" {
		r.BackgroundColor = t.BackgroundColor
	}
	if t.TextColor != "" {
		r.TextColor = t.TextColor
	}
	if t.FontSize > 0 {
		r.FontSizePx = t.FontSize
	}
	if t.FontFamily != "" {
		r.FontFamilyClass = FontFamilyClass(t.FontFamily)
	}

	if c.PrimaryColor != "" {
		r.PrimaryColor = c.PrimaryColor
	}
	if c.BackgroundColor != "" {
		r.BackgroundColor = c.BackgroundColor
	}
	if c.TextColor != "" {
		r.TextColor = c.TextColor
	}
	if c.FontSize > 0 {
		r.FontSizePx = c.FontSize
	}
	if c.FontFamily != "" {
		r.FontFamilyClass = FontFamilyClass(c.FontFamily)
	}
	if c.ImagePlacement != "" {
		r.ImagePlacement = c.ImagePlacement
	}
	if c.ImageShape != "" {
		r.ImageShape = c.ImageShape
	}

	return r
}

// FontFamilyClass 把封闭字体族映射为 CSS 类名。
func FontFamilyClass(f profile.FontFamily) string {
	switch f {
	case profile.FontSans:
		return "font-sans"
	case profile.FontMono:
		return "font-mono"
	default:
		return "font-serif"
	}
}

// CSSFontStack 返回字体类对应的 font-family 栈，供模板内联使用。
func CSSFontStack(class string) string {
	switch class {
	case "font-sans":
		return "'Helvetica Neue', Arial, sans-serif"
	case "font-mono":
		return "'Courier New', Courier, monospace"
	default:
		return "Georgia, 'Times New Roman', serif"
	}
}

// PDFFontName 返回字体类对应的 gofpdf 内置字体名。
func PDFFontName(class string) string {
	switch class {
	case "font-sans":
		return "Helvetica"
	case "font-mono":
		return "Courier"
	default:
		return "Times"
	}
}

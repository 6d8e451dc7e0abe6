// Package export 把一份档案编排成可下载的 PDF：解析样式、
// 预处理装饰资源与照片、选择导出渲染器、序列化并命名产物。
package export

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"bioPress/internal/assets"
	"bioPress/internal/profile"
	"bioPress/internal/render"
	"bioPress/internal/render/pdf"
	"bioPress/internal/style"
)

const (
	// 照片最长边上限，避免原图直接进 PDF 导致体积失控。
	maxPhotoPx = 1200
	// 装饰框按 A4 @96DPI 栅格化，PDF 放置时等比落到整页。
	frameW = 794
	frameH = 1122
	iconPx = 128
)

// ToPDF 渲染整份档案。photo 是照片原始字节（无照片传 nil），
// 由调用方负责从对象存储取回。返回 PDF 字节和建议的下载文件名。
func ToPDF(p *profile.Profile, photo []byte) ([]byte, string, error) {
	st := style.Resolve(p.Customizations)
	theme := style.ThemeByID(p.Customizations.ThemeID)

	as := pdf.Assets{
		Photo: assets.NormalizePhoto(photo, maxPhotoPx),
	}
	if theme.Frame != "" {
		as.Background = assets.RasterizeRef(theme.Frame, st.PrimaryColor, frameW, frameH)
	}
	if p.Header.Enabled && p.Header.Icon != "" {
		as.HeaderIcon = assets.RasterizeRef(p.Header.Icon, st.PrimaryColor, iconPx, iconPx)
	}

	renderer := render.PDFFor(p.Template)
	doc, err := renderer(p, st, as)
	if err != nil {
		return nil, "", fmt.Errorf("render template %s: %w", p.Template, err)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("serialize pdf: %w", err)
	}
	return buf.Bytes(), Filename(p), nil
}

var unsafeRunes = regexp.MustCompile(`[^a-z0-9]+`)

// Filename 由档案主人姓名派生下载文件名；取不到可用姓名时用通用名。
func Filename(p *profile.Profile) string {
	name, ok := p.NameValue()
	if !ok {
		return "biodata.pdf"
	}
	s := unsafeRunes.ReplaceAllString(strings.ToLower(name), "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return "biodata.pdf"
	}
	return s + "_biodata.pdf"
}

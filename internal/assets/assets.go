// Package assets 管理内嵌的装饰矢量资源，并在导出前把它们
// 预先栅格化成带指定强调色的 PNG。PDF 绘制引擎不能像 CSS 那样
// 在绘制时给矢量染色，所以颜色必须在这一步烘焙进位图。
package assets

import (
	"embed"
	"strings"
)

//go:embed svg/*.svg
var svgFS embed.FS

// Icons 列出可供 Header 选用的图标引用名。
func Icons() []string {
	return []string{"icon-om", "icon-lotus", "icon-ring", "icon-dove"}
}

// Lookup 按引用名返回内嵌 SVG 的原始字节；未知引用返回 nil。
func Lookup(ref string) []byte {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil
	}
	data, err := svgFS.ReadFile("svg/" + ref + ".svg")
	if err != nil {
		return nil
	}
	return data
}

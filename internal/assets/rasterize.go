package assets

import (
	"bytes"
	"image"
	"image/png"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

const (
	// 源矢量缺少尺寸信息时使用的默认画布边长。
	defaultCanvas = 512.0
	// 无强调色时 currentColor 的替代值。
	neutralTint = "#888888"
	// 打印清晰度要求：按目标尺寸的 2 倍超采样渲染，
	// 由消费方（PDF 渲染器）在放置时隐式缩回目标尺寸。
	supersample = 2
)

// Rasterize 把矢量图渲染成 PNG 位图，强调色烘焙进 currentColor。
// accent 为空表示不染色。透明度保持不变，以便叠加在任意页面背景上。
// 任何解析或渲染失败都返回 nil（调用方按"省略该装饰"处理），绝不中断导出。
func Rasterize(svg []byte, accent string, width, height int) (out []byte) {
	if len(svg) == 0 || width <= 0 || height <= 0 {
		return nil
	}

	// oksvg 对畸形路径可能 panic，统一收敛为"无图"。
	defer func() {
		if recover() != nil {
			out = nil
		}
	}()

	tint := accent
	if tint == "" {
		tint = neutralTint
	}
	data := bytes.ReplaceAll(svg, []byte("currentColor"), []byte(tint))

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	// oksvg 对非 XML 输入不一定报错，只会解析出一个没有任何路径的
	// 空图标；空图标同样按解析失败处理，不产出空白位图。
	if len(icon.SVGPaths) == 0 {
		return nil
	}
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		icon.ViewBox.X, icon.ViewBox.Y = 0, 0
		icon.ViewBox.W, icon.ViewBox.H = defaultCanvas, defaultCanvas
	}

	w := width * supersample
	h := height * supersample
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil
	}
	return buf.Bytes()
}

// RasterizeRef 是 Lookup + Rasterize 的组合：未知引用同样返回 nil。
func RasterizeRef(ref, accent string, width, height int) []byte {
	return Rasterize(Lookup(ref), accent, width, height)
}

package render

import (
	"bytes"
	"fmt"
)

// 缩略图不截真实渲染结果，而是由布局描述符生成的占位形状 SVG：
// 体积小、无需用户数据、可用 currentColor 跟随主题色。
const (
	thumbW = 120
	thumbH = 170
)

// thumbShape 是缩略图里的一个占位块。
type thumbShape struct {
	Kind             string // rect / circle / lines
	X, Y, W, H       float64
	Accent           bool // 用 currentColor（强调色）而不是灰阶
}

func bar(x, y, w, h float64) thumbShape {
	return thumbShape{Kind: "rect", X: x, Y: y, W: w, H: h, Accent: true}
}

func box(x, y, w, h float64) thumbShape {
	return thumbShape{Kind: "rect", X: x, Y: y, W: w, H: h}
}

func dot(x, y, r float64) thumbShape {
	return thumbShape{Kind: "circle", X: x, Y: y, W: r}
}

func lines(x, y, w, h float64) thumbShape {
	return thumbShape{Kind: "lines", X: x, Y: y, W: w, H: h}
}

// renderThumb 把形状序列拼成一张独立 SVG。
func renderThumb(shapes []thumbShape) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d">`, thumbW, thumbH)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="#fff" stroke="#d0d0d0"/>`, thumbW, thumbH)
	for _, s := range shapes {
		fill := "#c8c8c8"
		if s.Accent {
			fill = "currentColor"
		}
		switch s.Kind {
		case "rect":
			fmt.Fprintf(&b, `<rect x="%.0f" y="%.0f" width="%.0f" height="%.0f" rx="2" fill="%s"/>`, s.X, s.Y, s.W, s.H, fill)
		case "circle":
			fmt.Fprintf(&b, `<circle cx="%.0f" cy="%.0f" r="%.0f" fill="%s"/>`, s.X, s.Y, s.W, fill)
		case "lines":
			// 等距细横线模拟文字段落。
			step := 6.0
			for y := s.Y; y < s.Y+s.H; y += step {
				fmt.Fprintf(&b, `<rect x="%.0f" y="%.0f" width="%.0f" height="2" fill="%s"/>`, s.X, y, s.W, fill)
			}
		}
	}
	b.WriteString(`</svg>`)
	return b.Bytes()
}

// thumbLayouts 按模板 ID 描述各变体的版式轮廓。
var thumbLayouts = map[string][]thumbShape{
	"template1":  {bar(30, 12, 60, 8), dot(60, 38, 14), lines(16, 60, 88, 100)},
	"template2":  {bar(0, 0, 42, 170), dot(21, 26, 13), lines(6, 48, 30, 60), lines(52, 16, 60, 140)},
	"template3":  {box(78, 0, 42, 170), dot(99, 26, 13), lines(84, 48, 30, 60), lines(10, 16, 60, 140)},
	"template4":  {bar(26, 10, 68, 8), dot(60, 40, 15), lines(30, 66, 60, 90)},
	"template5":  {bar(10, 14, 54, 8), dot(14, 40, 3), bar(13, 40, 2, 110), lines(24, 44, 80, 110)},
	"template6":  {bar(30, 8, 60, 6), dot(60, 28, 10), box(10, 48, 48, 50), box(62, 48, 48, 60), box(10, 104, 48, 56), box(62, 114, 48, 44)},
	"template7":  {bar(0, 0, 120, 40), dot(60, 40, 13), lines(14, 64, 92, 94)},
	"template8":  {bar(12, 14, 70, 5), box(12, 24, 96, 1), lines(12, 36, 96, 40), box(12, 84, 96, 1), lines(12, 92, 96, 40)},
	"template9":  {box(6, 6, 108, 158), bar(30, 18, 60, 7), dot(60, 46, 13), lines(24, 70, 72, 80)},
	"template10": {bar(12, 12, 60, 7), box(84, 12, 24, 28), lines(12, 48, 44, 30), lines(64, 48, 44, 30), lines(12, 90, 96, 60)},
	"template11": {dot(96, 26, 18), bar(12, 14, 56, 8), lines(12, 40, 90, 110)},
	"template12": {bar(12, 12, 60, 7), bar(12, 34, 3, 36), lines(20, 34, 88, 36), bar(12, 82, 3, 36), lines(20, 82, 88, 36)},
	"template13": {bar(0, 0, 120, 26), dot(60, 26, 14), bar(34, 48, 52, 7), lines(16, 66, 88, 90)},
	"template14": {bar(12, 12, 52, 7), box(84, 10, 24, 24), box(12, 40, 96, 1), lines(12, 46, 96, 30), box(12, 82, 96, 1), lines(12, 88, 96, 60)},
	"template15": {bar(12, 12, 56, 10), box(86, 8, 24, 24), box(12, 38, 96, 2), lines(12, 50, 96, 100)},
	"template16": {dot(14, 14, 6), dot(106, 14, 6), dot(14, 156, 6), dot(106, 156, 6), bar(30, 24, 60, 7), dot(60, 52, 13), lines(28, 76, 64, 70)},
	"template17": {bar(0, 0, 120, 52), dot(92, 26, 13), lines(10, 64, 100, 90)},
	"template18": {bar(32, 12, 56, 7), box(44, 26, 32, 1), dot(26, 52, 12), lines(46, 44, 62, 40), lines(12, 92, 96, 60)},
	"template19": {box(78, 10, 32, 40), bar(12, 16, 52, 8), lines(12, 40, 60, 50), lines(12, 98, 96, 56)},
	"template20": {bar(30, 8, 60, 7), box(12, 24, 96, 40), box(12, 70, 96, 40), box(12, 116, 96, 40)},
	"template21": {bar(0, 0, 120, 36), lines(12, 48, 70, 40), dot(96, 56, 12), lines(12, 96, 96, 56)},
	"template22": {bar(12, 12, 60, 8), bar(12, 38, 30, 5), bar(48, 36, 1, 30), lines(54, 36, 54, 30), bar(12, 80, 30, 5), bar(48, 78, 1, 30), lines(54, 78, 54, 30)},
	"template23": {bar(30, 10, 60, 7), bar(12, 34, 44, 9), lines(12, 50, 96, 30), bar(12, 90, 44, 9), lines(12, 106, 96, 30)},
	"template24": {bar(12, 12, 60, 8), dot(96, 26, 12), box(12, 44, 96, 50), box(12, 100, 96, 50)},
	"template25": {bar(24, 24, 72, 6), lines(24, 48, 72, 100)},
}

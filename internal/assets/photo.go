package assets

import (
	"bytes"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
)

// NormalizePhoto 把用户照片限制到 maxPx 边长以内，避免导出的 PDF 体积失控。
// 已经够小的图原样返回；解码失败返回 nil，调用方按无照片处理。
func NormalizePhoto(data []byte, maxPx int) []byte {
	if len(data) == 0 || maxPx <= 0 {
		return nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil
	}

	b := img.Bounds()
	if b.Dx() <= maxPx && b.Dy() <= maxPx {
		return data
	}

	w, h := b.Dx(), b.Dy()
	if w >= h {
		h = h * maxPx / w
		w = maxPx
	} else {
		w = w * maxPx / h
		h = maxPx
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 90}); err != nil {
		return nil
	}
	return buf.Bytes()
}

package utils

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// whiteImage 用于 DrawTriangles 填充路径的纯色贴图
// 取 3x3 白图的中心 1x1 子区域，避免采样到边缘
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// DrawRoundedRect 绘制实心圆角矩形
//
// (x, y) 为左上角，radius 会被收紧到不超过宽高较小边的一半。
// radius 接近 0 时退化为 vector.DrawFilledRect。
func DrawRoundedRect(dst *ebiten.Image, x, y, w, h, radius float64, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}

	r := math.Min(radius, math.Min(w, h)/2)
	if r < 0.5 {
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), clr, true)
		return
	}

	fx, fy := float32(x), float32(y)
	fw, fh := float32(w), float32(h)
	fr := float32(r)

	var path vector.Path
	path.MoveTo(fx+fr, fy)
	path.LineTo(fx+fw-fr, fy)
	path.ArcTo(fx+fw, fy, fx+fw, fy+fr, fr)
	path.LineTo(fx+fw, fy+fh-fr)
	path.ArcTo(fx+fw, fy+fh, fx+fw-fr, fy+fh, fr)
	path.LineTo(fx+fr, fy+fh)
	path.ArcTo(fx, fy+fh, fx, fy+fh-fr, fr)
	path.LineTo(fx, fy+fr)
	path.ArcTo(fx, fy, fx+fr, fy, fr)
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)

	cr, cg, cb, ca := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(cr) / 0xffff
		vs[i].ColorG = float32(cg) / 0xffff
		vs[i].ColorB = float32(cb) / 0xffff
		vs[i].ColorA = float32(ca) / 0xffff
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	dst.DrawTriangles(vs, is, whiteSubImage, op)
}

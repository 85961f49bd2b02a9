package utils

import (
	"math"
	"strconv"
	"strings"
)

// Rect 屏幕坐标系下的矩形
// X, Y 为左上角，W, H 为宽高（像素）
type Rect struct {
	X, Y, W, H float64
}

// Right 返回矩形右边界 X 坐标
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom 返回矩形下边界 Y 坐标
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// CenterX 返回矩形中心 X 坐标
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// CenterY 返回矩形中心 Y 坐标
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// Contains 检测点是否在矩形内（含边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// OverlapsSquare 检测以 (cx, cy) 为中心、半边长 half 的正方形是否与矩形重叠
//
// 这是一个 AABB 重叠测试而不是点包含测试：正方形任一部分碰到矩形即算重叠，
// 因此判定会略早于两个图形在视觉上的接触。
func (r Rect) OverlapsSquare(cx, cy, half float64) bool {
	return cx+half >= r.X &&
		cy+half >= r.Y &&
		cx-half <= r.Right() &&
		cy-half <= r.Bottom()
}

// ResolveRadius 解析目标元素的圆角半径（像素）
//
// radius 为样式字符串，允许带 "px" 后缀（如 "8"、"8px"）。
// 规则：
//   - 无法解析或为负值 → 0
//   - pill 为 true（完全圆角标记）→ 返回宽高中较小的一边
//   - 解析值 ≥ 宽高中较小的一边（如 "9999px" 这类药丸写法）→ 返回较小的一边
//   - 其余情况返回解析值
func ResolveRadius(radius string, w, h float64, pill bool) float64 {
	minDim := math.Min(w, h)
	if pill {
		return minDim
	}

	s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(radius), "px"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	if v >= minDim {
		return minDim
	}
	return v
}

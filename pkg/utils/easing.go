package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数用于控制动画的速度曲线，使动画看起来更自然。
// EaseInOutCubic 接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
//
// 参考：https://easings.net/

// EaseInOutCubic 三次方缓入缓出
// 特点：开始慢，中间快，结束慢
// 公式：
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// DecayLag 把每秒衰减速率换算为本帧的插值系数
//
// 指数平滑 value += (target - value) * lag 中的 lag 随帧率变化会导致
// 动画速度不稳定。用 lag = 1 - e^(-rate·dt) 按实测帧间隔换算后，
// 平滑速度与帧率无关。
//
// 换算关系（移植旧的固定 lag 常量时使用）：
//
//	lag@60fps ≈ 1 - e^(-rate/60)
//
// 例如 rate=6 在 60fps 下约等于每帧 lag 0.095。
// 返回值始终在 [0, 1) 区间内；rate 或 dt 非正时返回 0（本帧不移动）。
func DecayLag(rate, dt float64) float64 {
	if rate <= 0 || dt <= 0 {
		return 0
	}
	return 1 - math.Exp(-rate*dt)
}

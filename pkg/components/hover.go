package components

import "github.com/decker502/softcursor/pkg/ecs"

// HoverSessionComponent 悬停会话状态，挂在光标实体上
//
// 每帧由 HoverSystem 写入本帧的目标盒解析结果，
// 由 CursorMorphSystem 消费并推进渲染盒。
type HoverSessionComponent struct {
	// Active 当前活动目标实体，0 表示无目标
	Active ecs.EntityID

	// SavedZIndex 活动目标被提升前的原始层级，离开时恢复
	SavedZIndex int

	// Leaving 从离开目标的那一帧起为 true，
	// 直到渲染盒宽高都收敛到空闲盒的阈值以内
	Leaving bool

	// CurrentRate 渲染盒位置插值使用的混合速率：
	// 悬停时立刻取形变速率，空闲时按固定小速率缓慢回落到跟随速率，
	// 离开目标时由此产生渐进交接而不是瞬间切换
	CurrentRate float64

	// 本帧解析出的目标盒（悬停时为目标几何外扩 padding 后再居中的盒）
	TargetX      float64
	TargetY      float64
	TargetW      float64
	TargetH      float64
	TargetRadius float64

	// PressScale 当前悬停状态对应的按压缩放：
	// 悬停读取目标覆盖值或悬停默认值，空闲取全局默认值。
	// 按下时以最近一次解析出的值为准。
	PressScale float64
}

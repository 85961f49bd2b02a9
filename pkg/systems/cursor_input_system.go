package systems

import (
	"github.com/decker502/softcursor/pkg/components"
	"github.com/decker502/softcursor/pkg/ecs"
	"github.com/decker502/softcursor/pkg/utils"
)

// PointerInput 指针输入接口
// 用于依赖注入，支持测试时 mock
type PointerInput interface {
	CursorPosition() (int, int)
	IsPointerJustPressed() bool
	IsPointerJustReleased() bool
	IsTouchCapable() bool
}

// ebitenPointerInput Ebitengine 默认实现
type ebitenPointerInput struct{}

func (e *ebitenPointerInput) CursorPosition() (int, int) {
	return utils.GetPointerPosition()
}

func (e *ebitenPointerInput) IsPointerJustPressed() bool {
	return utils.IsPointerJustPressed()
}

func (e *ebitenPointerInput) IsPointerJustReleased() bool {
	return utils.IsPointerJustReleased()
}

func (e *ebitenPointerInput) IsTouchCapable() bool {
	return utils.IsTouchCapable()
}

// DefaultPointerInput 默认指针输入实例
var DefaultPointerInput PointerInput = &ebitenPointerInput{}

// CursorInputSystem 指针输入系统
//
// 职责：
//   - 每帧轮询指针位置，观察到移动时写入原始指针位置并点亮光标
//   - 检测按下/释放，切换按压缩放
//
// 首次轮询只记录基准位置不点亮光标：光标初始居中且隐藏，
// 必须等到真正观察到移动才显示。
type CursorInputSystem struct {
	entityManager *ecs.EntityManager
	cursor        ecs.EntityID
	input         PointerInput

	polled      bool
	lastPolledX int
	lastPolledY int
}

// NewCursorInputSystem 创建指针输入系统
func NewCursorInputSystem(em *ecs.EntityManager, cursor ecs.EntityID, input PointerInput) *CursorInputSystem {
	if input == nil {
		input = DefaultPointerInput
	}
	return &CursorInputSystem{
		entityManager: em,
		cursor:        cursor,
		input:         input,
	}
}

// Update 轮询指针状态并转发到各入口
func (s *CursorInputSystem) Update(deltaTime float64) {
	x, y := s.input.CursorPosition()

	if !s.polled {
		// 基准帧：记录位置，不算移动
		s.polled = true
		s.lastPolledX, s.lastPolledY = x, y
	} else if x != s.lastPolledX || y != s.lastPolledY {
		s.lastPolledX, s.lastPolledY = x, y
		s.OnPointerMove(float64(x), float64(y))
	}

	if s.input.IsPointerJustPressed() {
		s.OnPress()
	}
	if s.input.IsPointerJustReleased() {
		s.OnRelease()
	}
}

// OnPointerMove 覆写原始指针位置并在首次移动时点亮光标
// 接受任何有限坐标，视口外的坐标（快速拖动时常见）同样有效
func (s *CursorInputSystem) OnPointerMove(x, y float64) {
	cur, ok := ecs.GetComponent[*components.CursorComponent](s.entityManager, s.cursor)
	if !ok {
		return
	}
	cur.PointerX = x
	cur.PointerY = y
	if !cur.Visible {
		cur.Visible = true
	}
}

// OnPress 按下：取当前悬停状态最近一次解析出的按压缩放
// 悬停带覆盖值的目标时用目标自己的值，空白处用全局默认值
func (s *CursorInputSystem) OnPress() {
	cur, ok := ecs.GetComponent[*components.CursorComponent](s.entityManager, s.cursor)
	if !ok {
		return
	}
	hov, ok := ecs.GetComponent[*components.HoverSessionComponent](s.entityManager, s.cursor)
	if !ok {
		return
	}
	cur.Scale = hov.PressScale
}

// OnRelease 释放：恢复无缩放
func (s *CursorInputSystem) OnRelease() {
	cur, ok := ecs.GetComponent[*components.CursorComponent](s.entityManager, s.cursor)
	if !ok {
		return
	}
	cur.Scale = 1.0
}

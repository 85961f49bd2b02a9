package systems

import (
	"github.com/decker502/softcursor/pkg/components"
	"github.com/decker502/softcursor/pkg/config"
	"github.com/decker502/softcursor/pkg/ecs"
)

// fakePointerInput 测试用指针输入
// 按字段回放指针状态，支持逐帧改写
type fakePointerInput struct {
	x, y         int
	justPressed  bool
	justReleased bool
	touch        bool
}

func (f *fakePointerInput) CursorPosition() (int, int)  { return f.x, f.y }
func (f *fakePointerInput) IsPointerJustPressed() bool  { return f.justPressed }
func (f *fakePointerInput) IsPointerJustReleased() bool { return f.justReleased }
func (f *fakePointerInput) IsTouchCapable() bool        { return f.touch }

// testConfig 测试统一使用默认配置
func testConfig() config.CursorConfig {
	return config.DefaultCursorConfig()
}

// testWorld 系统测试脚手架：一个光标实体加若干目标
type testWorld struct {
	em     *ecs.EntityManager
	cfg    config.CursorConfig
	cursor ecs.EntityID

	cur *components.CursorComponent
	hov *components.HoverSessionComponent
}

// newTestWorld 构建光标实体并挂好会话组件
// 目标由各测试在调用 buildSystems 之前自行创建，保证注册顺序可控
func newTestWorld(cfg config.CursorConfig) *testWorld {
	em := ecs.NewEntityManager()

	cursor := em.CreateEntity()
	cur := &components.CursorComponent{
		X:      400,
		Y:      300,
		W:      cfg.DefaultSize,
		H:      cfg.DefaultSize,
		Radius: cfg.DefaultSize / 2,
		Scale:  1.0,
		ZIndex: 100,

		PointerX:  400,
		PointerY:  300,
		FollowerX: 400,
		FollowerY: 300,
	}
	em.AddComponent(cursor, cur)

	hov := &components.HoverSessionComponent{
		CurrentRate: cfg.FollowerRate,
		PressScale:  cfg.DefaultPressScale,
	}
	em.AddComponent(cursor, hov)

	return &testWorld{
		em:     em,
		cfg:    cfg,
		cursor: cursor,
		cur:    cur,
		hov:    hov,
	}
}

// addTarget 注册一个目标实体
func (w *testWorld) addTarget(x, y, width, height float64, zIndex int, attrs map[string]string) ecs.EntityID {
	id := w.em.CreateEntity()
	w.em.AddComponent(id, &components.TargetComponent{
		X:      x,
		Y:      y,
		W:      width,
		H:      height,
		ZIndex: zIndex,
		Attrs:  attrs,
	})
	return id
}

// target 取目标组件
func (w *testWorld) target(id ecs.EntityID) *components.TargetComponent {
	tgt, _ := ecs.GetComponent[*components.TargetComponent](w.em, id)
	return tgt
}

// snapshot 按注册顺序快照当前全部目标
func (w *testWorld) snapshot() []ecs.EntityID {
	return ecs.GetEntitiesWith1[*components.TargetComponent](w.em)
}

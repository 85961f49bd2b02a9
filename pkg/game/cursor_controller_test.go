package game

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/decker502/softcursor/pkg/components"
	"github.com/decker502/softcursor/pkg/config"
	"github.com/decker502/softcursor/pkg/ecs"
)

// fakePointerInput 测试用指针输入
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

const testDT = 1.0 / 60.0

// newWorldWithCursor 构建带光标节点的世界
func newWorldWithCursor() (*ecs.EntityManager, ecs.EntityID) {
	em := ecs.NewEntityManager()
	cursor := em.CreateEntity()
	em.AddComponent(cursor, &components.CursorComponent{ZIndex: 100})
	return em, cursor
}

// TestNoCursorNode 测试缺少光标节点时构造为静默空操作
func TestNoCursorNode(t *testing.T) {
	em := ecs.NewEntityManager()
	// 只有目标，没有光标节点
	id := em.CreateEntity()
	em.AddComponent(id, &components.TargetComponent{X: 0, Y: 0, W: 100, H: 100})

	ctrl := NewCursorController(em, config.DefaultCursorConfig(), 800, 600, &fakePointerInput{})
	if ctrl != nil {
		t.Error("缺少光标节点时应返回 nil")
	}
}

// TestTouchDeviceSelfDisable 测试触摸环境下构造为静默空操作
func TestTouchDeviceSelfDisable(t *testing.T) {
	em, _ := newWorldWithCursor()

	ctrl := NewCursorController(em, config.DefaultCursorConfig(), 800, 600, &fakePointerInput{touch: true})
	if ctrl != nil {
		t.Error("触摸环境下应返回 nil")
	}
}

// TestConstructorAdvisoryLogged 测试两个构造门禁都各输出一行提示日志
func TestConstructorAdvisoryLogged(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	em, _ := newWorldWithCursor()
	if ctrl := NewCursorController(em, config.DefaultCursorConfig(), 800, 600, &fakePointerInput{touch: true}); ctrl != nil {
		t.Fatal("触摸环境下应返回 nil")
	}
	if !strings.Contains(buf.String(), "[CursorController]") {
		t.Error("触摸门禁未输出提示日志")
	}

	buf.Reset()
	if ctrl := NewCursorController(ecs.NewEntityManager(), config.DefaultCursorConfig(), 800, 600, &fakePointerInput{}); ctrl != nil {
		t.Fatal("缺少光标节点时应返回 nil")
	}
	if !strings.Contains(buf.String(), "[CursorController]") {
		t.Error("缺少光标节点门禁未输出提示日志")
	}
}

// TestInitialState 测试初始状态：视口居中、默认尺寸的圆、隐藏
func TestInitialState(t *testing.T) {
	em, cursor := newWorldWithCursor()
	cfg := config.DefaultCursorConfig()

	ctrl := NewCursorController(em, cfg, 800, 600, &fakePointerInput{})
	if ctrl == nil {
		t.Fatal("构造失败")
	}

	cur, _ := ecs.GetComponent[*components.CursorComponent](em, cursor)
	if cur.X != 400 || cur.Y != 300 {
		t.Errorf("初始中心 = (%v, %v), want (400, 300)", cur.X, cur.Y)
	}
	if cur.W != cfg.DefaultSize || cur.H != cfg.DefaultSize {
		t.Errorf("初始尺寸 = (%v, %v), want %v", cur.W, cur.H, cfg.DefaultSize)
	}
	if cur.Radius != cfg.DefaultSize/2 {
		t.Errorf("初始圆角 = %v, want %v", cur.Radius, cfg.DefaultSize/2)
	}
	if cur.Visible {
		t.Error("收到输入前光标应隐藏")
	}
	if cur.Scale != 1.0 {
		t.Errorf("初始缩放 = %v, want 1.0", cur.Scale)
	}
}

// TestTargetSnapshotIsFixed 测试构造后注册的目标不会被跟踪
func TestTargetSnapshotIsFixed(t *testing.T) {
	em, cursor := newWorldWithCursor()

	ctrl := NewCursorController(em, config.DefaultCursorConfig(), 800, 600, &fakePointerInput{x: 400, y: 300})
	if ctrl == nil {
		t.Fatal("构造失败")
	}

	// 构造之后才注册、且覆盖光标初始位置的目标
	late := em.CreateEntity()
	em.AddComponent(late, &components.TargetComponent{X: 300, Y: 200, W: 200, H: 200})

	for i := 0; i < 10; i++ {
		ctrl.Update(testDT)
	}

	hov, _ := ecs.GetComponent[*components.HoverSessionComponent](em, cursor)
	if hov.Active != 0 {
		t.Errorf("快照后注册的目标被命中了: %v", hov.Active)
	}
}

// TestHoverElevatesAndDetachRestores 测试悬停提升层级、Detach 恢复并停用
func TestHoverElevatesAndDetachRestores(t *testing.T) {
	em, cursor := newWorldWithCursor()

	// 覆盖视口中心的目标（跟随点初始即在其内部）
	target := em.CreateEntity()
	em.AddComponent(target, &components.TargetComponent{
		X: 350, Y: 250, W: 100, H: 100, ZIndex: 5,
		Attrs: map[string]string{"parallax": "24"},
	})

	input := &fakePointerInput{x: 400, y: 300}
	ctrl := NewCursorController(em, config.DefaultCursorConfig(), 800, 600, input)
	if ctrl == nil {
		t.Fatal("构造失败")
	}

	ctrl.Update(testDT)

	tgt, _ := ecs.GetComponent[*components.TargetComponent](em, target)
	hov, _ := ecs.GetComponent[*components.HoverSessionComponent](em, cursor)
	if hov.Active != target {
		t.Fatalf("未命中中心目标: %v", hov.Active)
	}
	if tgt.ZIndex != 101 {
		t.Errorf("悬停目标层级 = %d, want 101", tgt.ZIndex)
	}

	// 按住状态下停用
	input.justPressed = true
	ctrl.Update(testDT)
	input.justPressed = false
	if cur, _ := ecs.GetComponent[*components.CursorComponent](em, cursor); cur.Scale == 1.0 {
		t.Fatal("按下后缩放应小于 1.0")
	}

	ctrl.Detach()

	if tgt.ZIndex != 5 {
		t.Errorf("Detach 后层级 = %d, want 5", tgt.ZIndex)
	}
	if tgt.OffsetX != 0 || tgt.OffsetY != 0 {
		t.Errorf("Detach 后平移 = (%v, %v), want (0, 0)", tgt.OffsetX, tgt.OffsetY)
	}

	cur, _ := ecs.GetComponent[*components.CursorComponent](em, cursor)
	if cur.Visible {
		t.Error("Detach 后光标应隐藏")
	}
	if cur.Scale != 1.0 {
		t.Errorf("Detach 后按压缩放 = %v, want 1.0", cur.Scale)
	}

	// 停用后的 Update 是空操作
	before := *cur
	ctrl.Update(testDT)
	if *cur != before {
		t.Error("Detach 后 Update 不应再修改状态")
	}

	// 重复 Detach 无副作用
	ctrl.Detach()
	if tgt.ZIndex != 5 {
		t.Errorf("重复 Detach 改变了层级: %d", tgt.ZIndex)
	}
}

package scenes

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/decker502/softcursor/pkg/components"
	"github.com/decker502/softcursor/pkg/config"
	"github.com/decker502/softcursor/pkg/ecs"
	"github.com/decker502/softcursor/pkg/game"
	"github.com/decker502/softcursor/pkg/utils"
)

// demoWidget 演示用的可悬停控件：目标实体加上绘制信息
type demoWidget struct {
	id    ecs.EntityID
	label string
	fill  color.RGBA
}

// DemoScene 软光标演示场景
//
// 搭建一组带不同属性的控件（普通按钮、大边距按钮、药丸标签、
// 视差卡片、持续移动的芯片），展示光标的跟随、形变、按压和视差。
// 其中一个控件持续水平往返，验证目标几何是每帧实时读取的。
type DemoScene struct {
	entityManager *ecs.EntityManager
	controller    *game.CursorController
	widgets       []demoWidget

	// 移动芯片的往返动画
	movingWidget ecs.EntityID
	movingBaseX  float64
	elapsed      float64

	cursorZIndex int
}

// NewDemoScene 创建演示场景
//
// 构造顺序即目标注册顺序：控件先于光标节点创建与否无关紧要，
// 但控件之间的先后决定了重叠时的命中优先级。
func NewDemoScene(cfg config.CursorConfig) *DemoScene {
	em := ecs.NewEntityManager()

	s := &DemoScene{
		entityManager: em,
		cursorZIndex:  100,
	}

	s.addWidget("Play", 80, 120, 120, 48, "10", false, 1,
		color.RGBA{R: 0x2d, G: 0x6a, B: 0x4f, A: 0xff}, nil)
	s.addWidget("Settings", 80, 200, 140, 48, "10", false, 1,
		color.RGBA{R: 0x34, G: 0x49, B: 0x66, A: 0xff},
		map[string]string{cfg.PaddingAttr: "28"})
	s.addWidget("v1.2.0", 80, 288, 90, 30, "", true, 1,
		color.RGBA{R: 0x58, G: 0x43, B: 0x6b, A: 0xff}, nil)
	s.addWidget("Parallax card", 460, 140, 220, 140, "16", false, 2,
		color.RGBA{R: 0x3a, G: 0x3f, B: 0x4a, A: 0xff},
		map[string]string{cfg.ParallaxAttr: "24"})
	moving := s.addWidget("Catch me", 360, 430, 110, 36, "9999px", false, 3,
		color.RGBA{R: 0x7a, G: 0x3b, B: 0x3b, A: 0xff},
		map[string]string{cfg.PressScaleAttr: "0.7"})
	s.movingWidget = moving
	s.movingBaseX = 360

	// 光标节点
	cursorEntity := em.CreateEntity()
	em.AddComponent(cursorEntity, &components.CursorComponent{ZIndex: s.cursorZIndex})

	s.controller = game.NewCursorController(em, cfg, config.WindowWidth, config.WindowHeight, nil)
	return s
}

// addWidget 创建一个目标控件实体
func (s *DemoScene) addWidget(label string, x, y, w, h float64, radius string, pill bool, zIndex int, fill color.RGBA, attrs map[string]string) ecs.EntityID {
	id := s.entityManager.CreateEntity()
	s.entityManager.AddComponent(id, &components.TargetComponent{
		X:      x,
		Y:      y,
		W:      w,
		H:      h,
		Radius: radius,
		Pill:   pill,
		ZIndex: zIndex,
		Attrs:  attrs,
	})
	s.widgets = append(s.widgets, demoWidget{id: id, label: label, fill: fill})
	return id
}

// Controller 返回光标控制器，触摸环境下为 nil
func (s *DemoScene) Controller() *game.CursorController {
	return s.controller
}

// movingPeriod 移动芯片往返一个来回的周期（秒）
const movingPeriod = 3.5

// pingPongEased 把流逝时间折算成 [-1, 1] 的往返进度
// 半个周期从 -1 缓动到 1，另外半个周期缓动回来，端点处速度为零
func pingPongEased(elapsed, period float64) float64 {
	ph := math.Mod(elapsed, period) / period * 2
	if ph > 1 {
		ph = 2 - ph
	}
	return utils.EaseInOutCubic(ph)*2 - 1
}

// Update 更新场景
// deltaTime 为距上一帧的秒数
func (s *DemoScene) Update(deltaTime float64) {
	s.elapsed += deltaTime

	// 移动芯片水平往返，证明目标几何每帧实时生效
	if tgt, ok := ecs.GetComponent[*components.TargetComponent](s.entityManager, s.movingWidget); ok {
		tgt.X = s.movingBaseX + 60*pingPongEased(s.elapsed, movingPeriod)
	}

	if s.controller != nil {
		s.controller.Update(deltaTime)
	}
}

// Draw 绘制场景
//
// 控件按 ZIndex 升序绘制，层级不高于光标的先画，然后画光标盒，
// 再画被提升到光标之上的控件（活动目标），使其透出光标盒。
func (s *DemoScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x16, G: 0x18, B: 0x1d, A: 0xff})
	ebitenutil.DebugPrintAt(screen, "softcursor demo - move the mouse, hover, press", 16, 8)

	ordered := make([]demoWidget, len(s.widgets))
	copy(ordered, s.widgets)
	sort.SliceStable(ordered, func(i, j int) bool {
		return s.widgetZIndex(ordered[i].id) < s.widgetZIndex(ordered[j].id)
	})

	for _, w := range ordered {
		if s.widgetZIndex(w.id) <= s.cursorZIndex {
			s.drawWidget(screen, w)
		}
	}

	if s.controller != nil {
		s.controller.Draw(screen)
	}

	for _, w := range ordered {
		if s.widgetZIndex(w.id) > s.cursorZIndex {
			s.drawWidget(screen, w)
		}
	}
}

// widgetZIndex 读取控件当前层级（悬停提升会实时反映在这里）
func (s *DemoScene) widgetZIndex(id ecs.EntityID) int {
	if tgt, ok := ecs.GetComponent[*components.TargetComponent](s.entityManager, id); ok {
		return tgt.ZIndex
	}
	return 0
}

// drawWidget 绘制单个控件，叠加它当前的视差平移
func (s *DemoScene) drawWidget(screen *ebiten.Image, w demoWidget) {
	tgt, ok := ecs.GetComponent[*components.TargetComponent](s.entityManager, w.id)
	if !ok {
		return
	}

	x := tgt.X + tgt.OffsetX
	y := tgt.Y + tgt.OffsetY
	radius := utils.ResolveRadius(tgt.Radius, tgt.W, tgt.H, tgt.Pill)
	utils.DrawRoundedRect(screen, x, y, tgt.W, tgt.H, radius, w.fill)

	labelX := int(x + 10)
	labelY := int(y+tgt.H/2) - 8
	ebitenutil.DebugPrintAt(screen, w.label, labelX, labelY)
}

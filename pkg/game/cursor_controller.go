package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/softcursor/pkg/components"
	"github.com/decker502/softcursor/pkg/config"
	"github.com/decker502/softcursor/pkg/ecs"
	"github.com/decker502/softcursor/pkg/systems"
)

// CursorController 软光标控制器
//
// 一个控制器实例拥有光标的全部可变状态，并按固定顺序驱动更新管线：
//
//	输入轮询 → 跟随点推进 → 命中/悬停迁移 → 视差 → 渲染盒形变
//
// 所有回调和更新都运行在 Ebitengine 的游戏协程里，顺序交错、永不并发，
// 因此共享字段不需要锁。
//
// 目标集合在构造时快照一次（按实体创建顺序），之后动态加入的目标
// 不会被跟踪，这是记录在案的限制而不是缺陷。
type CursorController struct {
	entityManager *ecs.EntityManager
	cfg           config.CursorConfig
	cursor        ecs.EntityID
	targets       []ecs.EntityID

	inputSystem    *systems.CursorInputSystem
	followSystem   *systems.CursorFollowSystem
	hoverSystem    *systems.HoverSystem
	parallaxSystem *systems.ParallaxSystem
	morphSystem    *systems.CursorMorphSystem
	renderSystem   *systems.CursorRenderSystem

	detached bool
}

// NewCursorController 创建并初始化软光标控制器
//
// 两个前置条件不满足时都不算错误：打一行提示日志后返回 nil，
// 不挂接任何系统，调用方照常运行（原生光标生效）。
//   - 世界里不存在光标节点实体（未找到 CursorComponent）
//   - 当前为触摸输入环境
//
// viewportW/viewportH 用于初始居中。input 传 nil 时使用 Ebitengine 默认实现。
func NewCursorController(em *ecs.EntityManager, cfg config.CursorConfig, viewportW, viewportH float64, input systems.PointerInput) *CursorController {
	if input == nil {
		input = systems.DefaultPointerInput
	}

	if input.IsTouchCapable() {
		log.Printf("[CursorController] 检测到触摸输入环境，软光标未启用")
		return nil
	}

	cursorIDs := ecs.GetEntitiesWith1[*components.CursorComponent](em)
	if len(cursorIDs) == 0 {
		log.Printf("[CursorController] 未找到光标节点实体，软光标未启用")
		return nil
	}
	cursor := cursorIDs[0]

	// 目标快照：按创建顺序，生命周期内固定
	targets := ecs.GetEntitiesWith1[*components.TargetComponent](em)

	// 初始化光标状态：视口居中、默认尺寸的圆、隐藏
	cur, _ := ecs.GetComponent[*components.CursorComponent](em, cursor)
	cur.Visible = false
	cur.PointerX = viewportW / 2
	cur.PointerY = viewportH / 2
	cur.FollowerX = cur.PointerX
	cur.FollowerY = cur.PointerY
	cur.X = cur.PointerX
	cur.Y = cur.PointerY
	cur.W = cfg.DefaultSize
	cur.H = cfg.DefaultSize
	cur.Radius = cfg.DefaultSize / 2
	cur.Scale = 1.0

	em.AddComponent(cursor, &components.HoverSessionComponent{
		CurrentRate: cfg.FollowerRate,
		PressScale:  cfg.DefaultPressScale,
	})

	c := &CursorController{
		entityManager:  em,
		cfg:            cfg,
		cursor:         cursor,
		targets:        targets,
		inputSystem:    systems.NewCursorInputSystem(em, cursor, input),
		followSystem:   systems.NewCursorFollowSystem(em, cursor, cfg),
		hoverSystem:    systems.NewHoverSystem(em, cursor, cfg, targets),
		parallaxSystem: systems.NewParallaxSystem(em, cursor, cfg, targets),
		morphSystem:    systems.NewCursorMorphSystem(em, cursor, cfg),
		renderSystem:   systems.NewCursorRenderSystem(em, cursor, cfg),
	}
	log.Printf("[CursorController] 初始化完成，目标数量: %d", len(targets))
	return c
}

// Update 执行一帧更新
// deltaTime 为距上一帧的秒数
func (c *CursorController) Update(deltaTime float64) {
	if c.detached {
		return
	}
	c.inputSystem.Update(deltaTime)
	c.followSystem.Update(deltaTime)
	c.hoverSystem.Update(deltaTime)
	c.parallaxSystem.Update(deltaTime)
	c.morphSystem.Update(deltaTime)
}

// Draw 绘制光标盒
func (c *CursorController) Draw(screen *ebiten.Image) {
	if c.detached {
		return
	}
	c.renderSystem.Draw(screen)
}

// CursorEntity 返回光标节点实体
func (c *CursorController) CursorEntity() ecs.EntityID {
	return c.cursor
}

// Config 返回解析后的配置
func (c *CursorController) Config() config.CursorConfig {
	return c.cfg
}

// Detach 停用控制器
//
// 恢复被提升的目标层级、清零全部视差平移、复位按压缩放、隐藏光标盒；
// 之后的 Update/Draw 都是空操作。可重复调用。
func (c *CursorController) Detach() {
	if c.detached {
		return
	}

	if hov, ok := ecs.GetComponent[*components.HoverSessionComponent](c.entityManager, c.cursor); ok {
		if tgt, found := ecs.GetComponent[*components.TargetComponent](c.entityManager, hov.Active); found {
			tgt.ZIndex = hov.SavedZIndex
		}
		hov.Active = 0
		hov.Leaving = false
	}

	for _, id := range c.targets {
		if tgt, ok := ecs.GetComponent[*components.TargetComponent](c.entityManager, id); ok {
			tgt.OffsetX = 0
			tgt.OffsetY = 0
		}
	}

	if cur, ok := ecs.GetComponent[*components.CursorComponent](c.entityManager, c.cursor); ok {
		cur.Visible = false
		// 按住时被停用也要复位按压缩放
		cur.Scale = 1.0
	}

	c.detached = true
	log.Printf("[CursorController] 已停用")
}

package systems

import (
	"github.com/decker502/softcursor/pkg/components"
	"github.com/decker502/softcursor/pkg/config"
	"github.com/decker502/softcursor/pkg/ecs"
	"github.com/decker502/softcursor/pkg/utils"
)

// HoverSystem 悬停系统
//
// 职责：
//   - 用跟随点对目标快照做命中检测，决出本帧的唯一活动目标
//   - 处理悬停状态迁移：进入/离开/切换目标，以及目标层级的提升和恢复
//   - 悬停期间每帧重新解析目标盒（实时几何外扩 padding）、圆角和按压缩放
//
// 命中检测是以跟随点为中心、空闲光标边长为边的正方形与目标包围盒的
// 重叠测试，因此悬停会在光标视觉上接触到目标之前稍早触发。
// 多个目标同时命中时取快照顺序里最先注册的一个。
type HoverSystem struct {
	entityManager *ecs.EntityManager
	cursor        ecs.EntityID
	cfg           config.CursorConfig
	// 构造时快照的目标列表，成员在控制器生命周期内固定
	targets []ecs.EntityID
}

// NewHoverSystem 创建悬停系统
// targets 为按注册顺序排列的目标实体快照
func NewHoverSystem(em *ecs.EntityManager, cursor ecs.EntityID, cfg config.CursorConfig, targets []ecs.EntityID) *HoverSystem {
	return &HoverSystem{
		entityManager: em,
		cursor:        cursor,
		cfg:           cfg,
		targets:       targets,
	}
}

// Update 执行命中检测和状态迁移，发布本帧的目标盒
func (s *HoverSystem) Update(deltaTime float64) {
	cur, ok := ecs.GetComponent[*components.CursorComponent](s.entityManager, s.cursor)
	if !ok {
		return
	}
	hov, ok := ecs.GetComponent[*components.HoverSessionComponent](s.entityManager, s.cursor)
	if !ok {
		return
	}

	hit := s.hitTest(cur.FollowerX, cur.FollowerY)

	// 仅在命中目标发生变化时迁移状态
	if hit != hov.Active {
		// 先恢复前一个活动目标的层级
		if prev, found := ecs.GetComponent[*components.TargetComponent](s.entityManager, hov.Active); found {
			prev.ZIndex = hov.SavedZIndex
		}

		if hit == 0 {
			// 离开目标：开始向空闲盒收敛
			hov.Leaving = true
		} else {
			hov.Leaving = false
			if tgt, found := ecs.GetComponent[*components.TargetComponent](s.entityManager, hit); found {
				hov.SavedZIndex = tgt.ZIndex
				tgt.ZIndex = cur.ZIndex + 1
			}
		}
		hov.Active = hit
	}

	s.resolveTargetBox(hov)
}

// hitTest 按注册顺序返回第一个与跟随点正方形重叠的目标，无命中返回 0
func (s *HoverSystem) hitTest(fx, fy float64) ecs.EntityID {
	half := s.cfg.DefaultSize / 2
	for _, id := range s.targets {
		tgt, ok := ecs.GetComponent[*components.TargetComponent](s.entityManager, id)
		if !ok {
			continue
		}
		if tgt.Bounds().OverlapsSquare(fx, fy, half) {
			return id
		}
	}
	return 0
}

// resolveTargetBox 解析当前悬停状态对应的目标盒和按压缩放
// 悬停期间每帧重做：目标几何是实时的，从不缓存
func (s *HoverSystem) resolveTargetBox(hov *components.HoverSessionComponent) {
	if hov.Active == 0 {
		hov.PressScale = s.cfg.DefaultPressScale
		return
	}

	tgt, ok := ecs.GetComponent[*components.TargetComponent](s.entityManager, hov.Active)
	if !ok {
		hov.PressScale = s.cfg.DefaultPressScale
		return
	}

	rect := tgt.Bounds()

	padding := s.cfg.DefaultPadding
	if v, found := tgt.AttrFloat(s.cfg.PaddingAttr); found {
		padding = v
	}

	// 外扩 padding 后重新以目标中心为中心
	hov.TargetX = rect.CenterX()
	hov.TargetY = rect.CenterY()
	hov.TargetW = rect.W + padding
	hov.TargetH = rect.H + padding
	hov.TargetRadius = utils.ResolveRadius(tgt.Radius, rect.W, rect.H, tgt.Pill)

	pressScale := s.cfg.HoverPressScale
	if v, found := tgt.AttrFloat(s.cfg.PressScaleAttr); found {
		pressScale = v
	}
	hov.PressScale = pressScale
}

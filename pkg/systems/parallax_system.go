package systems

import (
	"github.com/decker502/softcursor/pkg/components"
	"github.com/decker502/softcursor/pkg/config"
	"github.com/decker502/softcursor/pkg/ecs"
)

// ParallaxSystem 视差系统
//
// 活动目标按指针相对其中心的比例偏移获得平移：
//
//	offset = ((pointer - rect.左上) / rect.宽高 - 0.5) × 强度
//
// 指针在中心时平移为 (0, 0)，在角落时趋近 (±强度/2, ±强度/2)。
// 平移本身不做平滑，只有指针移动让偏移量逐帧变化，
// 所以视差手感比光标自身的平滑跟随更"跟手"。
// 其余所有目标（包括自身非活动时）每帧被重置为零平移。
type ParallaxSystem struct {
	entityManager *ecs.EntityManager
	cursor        ecs.EntityID
	cfg           config.CursorConfig
	targets       []ecs.EntityID
}

// NewParallaxSystem 创建视差系统
func NewParallaxSystem(em *ecs.EntityManager, cursor ecs.EntityID, cfg config.CursorConfig, targets []ecs.EntityID) *ParallaxSystem {
	return &ParallaxSystem{
		entityManager: em,
		cursor:        cursor,
		cfg:           cfg,
		targets:       targets,
	}
}

// Update 更新所有目标的视差平移
func (s *ParallaxSystem) Update(deltaTime float64) {
	cur, ok := ecs.GetComponent[*components.CursorComponent](s.entityManager, s.cursor)
	if !ok {
		return
	}
	hov, ok := ecs.GetComponent[*components.HoverSessionComponent](s.entityManager, s.cursor)
	if !ok {
		return
	}

	for _, id := range s.targets {
		tgt, found := ecs.GetComponent[*components.TargetComponent](s.entityManager, id)
		if !found {
			continue
		}

		strength, has := tgt.AttrFloat(s.cfg.ParallaxAttr)
		if !has || strength <= 0 || id != hov.Active {
			tgt.OffsetX = 0
			tgt.OffsetY = 0
			continue
		}

		rect := tgt.Bounds()
		if rect.W <= 0 || rect.H <= 0 {
			tgt.OffsetX = 0
			tgt.OffsetY = 0
			continue
		}

		// 用原始指针位置而不是跟随点，保证视差即时响应
		fx := (cur.PointerX-rect.X)/rect.W - 0.5
		fy := (cur.PointerY-rect.Y)/rect.H - 0.5
		tgt.OffsetX = fx * strength
		tgt.OffsetY = fy * strength
	}
}

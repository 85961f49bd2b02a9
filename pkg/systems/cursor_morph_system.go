package systems

import (
	"math"

	"github.com/decker502/softcursor/pkg/components"
	"github.com/decker502/softcursor/pkg/config"
	"github.com/decker502/softcursor/pkg/ecs"
	"github.com/decker502/softcursor/pkg/utils"
)

// rateBlendRate 空闲时位置速率回落到跟随速率的固定速率（每秒）
// 60fps 下约等于每帧 0.1，离开目标时产生渐进交接而不是瞬间切换
const rateBlendRate = 6.3

// CursorMorphSystem 光标盒形变系统
//
// 每帧把渲染盒朝本帧的目标盒做指数平滑，五个量各自独立：
//   - 盒位置 x/y 用混合速率：悬停时立刻取形变速率，
//     空闲时按固定小速率缓慢回落到跟随速率
//   - 盒宽/高/圆角恒定用形变速率
//
// 悬停时目标盒来自 HoverSystem 的解析结果，空闲时目标盒是
// 以跟随点为中心的默认光标盒（圆形，圆角 = 边长/2）。
// 离开目标后宽高都收敛到空闲盒阈值以内时清除 Leaving 标志。
type CursorMorphSystem struct {
	entityManager *ecs.EntityManager
	cursor        ecs.EntityID
	cfg           config.CursorConfig
}

// NewCursorMorphSystem 创建形变系统
func NewCursorMorphSystem(em *ecs.EntityManager, cursor ecs.EntityID, cfg config.CursorConfig) *CursorMorphSystem {
	return &CursorMorphSystem{
		entityManager: em,
		cursor:        cursor,
		cfg:           cfg,
	}
}

// Update 推进渲染盒
func (s *CursorMorphSystem) Update(deltaTime float64) {
	cur, ok := ecs.GetComponent[*components.CursorComponent](s.entityManager, s.cursor)
	if !ok {
		return
	}
	hov, ok := ecs.GetComponent[*components.HoverSessionComponent](s.entityManager, s.cursor)
	if !ok {
		return
	}

	// 本帧的目标盒
	var targetX, targetY, targetW, targetH, targetRadius float64
	if hov.Active != 0 {
		targetX = hov.TargetX
		targetY = hov.TargetY
		targetW = hov.TargetW
		targetH = hov.TargetH
		targetRadius = hov.TargetRadius
	} else {
		targetX = cur.FollowerX
		targetY = cur.FollowerY
		targetW = s.cfg.DefaultSize
		targetH = s.cfg.DefaultSize
		targetRadius = s.cfg.DefaultSize / 2
	}

	// 位置的混合速率：悬停当帧即切到形变速率，空闲时缓慢回落
	if hov.Active != 0 {
		hov.CurrentRate = s.cfg.TransitionRate
	} else {
		blend := utils.DecayLag(rateBlendRate, deltaTime)
		hov.CurrentRate = utils.Lerp(hov.CurrentRate, s.cfg.FollowerRate, blend)
	}

	posLag := utils.DecayLag(hov.CurrentRate, deltaTime)
	cur.X = utils.Lerp(cur.X, targetX, posLag)
	cur.Y = utils.Lerp(cur.Y, targetY, posLag)

	morphLag := utils.DecayLag(s.cfg.TransitionRate, deltaTime)
	cur.W = utils.Lerp(cur.W, targetW, morphLag)
	cur.H = utils.Lerp(cur.H, targetH, morphLag)
	cur.Radius = utils.Lerp(cur.Radius, targetRadius, morphLag)

	// 离开完成判定：独立于悬停迁移检查，每帧都做
	if hov.Leaving {
		if math.Abs(cur.W-s.cfg.DefaultSize) < s.cfg.LeaveThreshold &&
			math.Abs(cur.H-s.cfg.DefaultSize) < s.cfg.LeaveThreshold {
			hov.Leaving = false
		}
	}
}

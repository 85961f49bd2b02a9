package systems

import (
	"github.com/decker502/softcursor/pkg/components"
	"github.com/decker502/softcursor/pkg/config"
	"github.com/decker502/softcursor/pkg/ecs"
	"github.com/decker502/softcursor/pkg/utils"
)

// CursorFollowSystem 跟随点系统
//
// 每帧把跟随点朝原始指针位置做指数平滑。跟随点是命中检测的输入，
// 必须在悬停系统之前推进。
type CursorFollowSystem struct {
	entityManager *ecs.EntityManager
	cursor        ecs.EntityID
	cfg           config.CursorConfig
}

// NewCursorFollowSystem 创建跟随点系统
func NewCursorFollowSystem(em *ecs.EntityManager, cursor ecs.EntityID, cfg config.CursorConfig) *CursorFollowSystem {
	return &CursorFollowSystem{
		entityManager: em,
		cursor:        cursor,
		cfg:           cfg,
	}
}

// Update 推进跟随点
// 收敛规律：每帧与指针的距离按 (1 - lag) 收缩，指针静止时指数收敛
func (s *CursorFollowSystem) Update(deltaTime float64) {
	cur, ok := ecs.GetComponent[*components.CursorComponent](s.entityManager, s.cursor)
	if !ok {
		return
	}

	lag := utils.DecayLag(s.cfg.FollowerRate, deltaTime)
	cur.FollowerX = utils.Lerp(cur.FollowerX, cur.PointerX, lag)
	cur.FollowerY = utils.Lerp(cur.FollowerY, cur.PointerY, lag)
}

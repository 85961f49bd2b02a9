package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/softcursor/pkg/components"
	"github.com/decker502/softcursor/pkg/config"
	"github.com/decker502/softcursor/pkg/ecs"
	"github.com/decker502/softcursor/pkg/utils"
)

// CursorRenderSystem 光标渲染系统
//
// 每帧无条件把渲染盒的全部属性画出来，不做脏检查，
// 更新管线本来就每帧运行，简单优先。
type CursorRenderSystem struct {
	entityManager *ecs.EntityManager
	cursor        ecs.EntityID
	cfg           config.CursorConfig
}

// NewCursorRenderSystem 创建光标渲染系统
func NewCursorRenderSystem(em *ecs.EntityManager, cursor ecs.EntityID, cfg config.CursorConfig) *CursorRenderSystem {
	return &CursorRenderSystem{
		entityManager: em,
		cursor:        cursor,
		cfg:           cfg,
	}
}

// Draw 绘制光标盒
// 按压缩放以盒中心为基准；首次指针移动之前不绘制
func (s *CursorRenderSystem) Draw(screen *ebiten.Image) {
	cur, ok := ecs.GetComponent[*components.CursorComponent](s.entityManager, s.cursor)
	if !ok || !cur.Visible {
		return
	}

	w := cur.W * cur.Scale
	h := cur.H * cur.Scale
	if w <= 0 || h <= 0 {
		return
	}

	// 解析出的圆角可能达到较小边的全长（药丸/圆形钳制），
	// 绘制时收紧到较小边的一半
	radius := math.Min(cur.Radius*cur.Scale, math.Min(w, h)/2)

	utils.DrawRoundedRect(screen, cur.X-w/2, cur.Y-h/2, w, h, radius, s.cfg.FillColor)
}

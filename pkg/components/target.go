package components

import (
	"strconv"
	"strings"

	"github.com/decker502/softcursor/pkg/utils"
)

// TargetComponent 标记实体为光标可悬停的目标
//
// 几何字段由宿主每帧维护（目标可以移动），更新管线每帧重新读取，
// 从不跨帧缓存。目标集合在控制器构造时快照一次，之后添加的目标
// 不会被跟踪。
type TargetComponent struct {
	// 实时包围盒，X, Y 为左上角
	X float64
	Y float64
	W float64
	H float64

	// Radius 圆角样式字符串（如 "8"、"9999px"），解析规则见 utils.ResolveRadius
	Radius string
	// Pill 完全圆角标记，等价于 Radius 取不小于较小边的值
	Pill bool

	// ZIndex 绘制层级；成为活动目标时被提升到光标层级之上，离开时恢复
	ZIndex int

	// Attrs 目标上附着的字符串属性，按属性名查数值覆盖
	Attrs map[string]string

	// 视差输出：宿主绘制该目标时叠加的平移（像素）
	// 非活动目标每帧被重置为 (0, 0)
	OffsetX float64
	OffsetY float64
}

// Bounds 返回目标当前的包围盒
func (t *TargetComponent) Bounds() utils.Rect {
	return utils.Rect{X: t.X, Y: t.Y, W: t.W, H: t.H}
}

// AttrFloat 按属性名查找数值覆盖
//
// 属性缺失或不是合法数字都视为"无覆盖"，由调用方回退到全局默认值，
// 不作为错误处理。
func (t *TargetComponent) AttrFloat(name string) (float64, bool) {
	if t.Attrs == nil {
		return 0, false
	}
	raw, ok := t.Attrs[name]
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

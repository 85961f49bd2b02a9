// Package utils 提供通用工具函数
package utils

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GetPointerPosition 获取当前指针位置（鼠标）
func GetPointerPosition() (int, int) {
	return ebiten.CursorPosition()
}

// IsPointerJustPressed 检查本帧是否刚按下指针
func IsPointerJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// IsPointerJustReleased 检查本帧是否刚释放指针
func IsPointerJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

// IsTouchCapable 检测当前是否为触摸输入环境
//
// 有活动触摸点即视为触摸设备。
// 可以通过设置环境变量 SOFTCURSOR_TOUCH_EMULATE=1 强制启用触摸模式（用于本地调试）
func IsTouchCapable() bool {
	if os.Getenv("SOFTCURSOR_TOUCH_EMULATE") == "1" {
		return true
	}
	return len(ebiten.AppendTouchIDs(nil)) > 0
}

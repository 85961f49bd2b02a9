package components

// CursorComponent 标记实体为软光标节点，并持有它的全部可变状态
//
// 状态只在每帧的更新管线里被解释为输出：输入轮询写入原始指针字段，
// 插值阶段推进跟随点和渲染盒。整个流程运行在 Ebitengine 的单一
// 游戏协程内，不需要加锁；移植到多线程环境时必须补上互斥保护。
type CursorComponent struct {
	// Visible 首次观察到指针移动后置 true
	// 防止光标在收到任何输入之前就以初始居中位置显示出来
	Visible bool

	// 原始指针位置（输入回调写入，视口坐标，允许超出视口）
	PointerX float64
	PointerY float64

	// 跟随点：每帧朝原始指针平滑逼近，命中检测以它为准
	FollowerX float64
	FollowerY float64

	// 当前渲染盒，X, Y 为盒中心
	X      float64
	Y      float64
	W      float64
	H      float64
	Radius float64

	// Scale 按压缩放，1.0 = 未按压；按下/释放时直接写入，不做平滑
	Scale float64

	// ZIndex 光标自身的绘制层级；悬停目标会被提升到 ZIndex + 1
	ZIndex int
}

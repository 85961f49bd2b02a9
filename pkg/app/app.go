// Package app 提供演示应用的核心包装器
//
// 该包把初始化逻辑从 main 包提取出来：加载持久化的调参设置、
// 叠加 YAML 配置覆盖、搭建演示场景并接管原生光标。
package app

import (
	"io"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/softcursor/pkg/config"
	"github.com/decker502/softcursor/pkg/game"
	"github.com/decker502/softcursor/pkg/scenes"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 可选的 YAML 配置覆盖文件路径，为空则只用设置与默认值
	ConfigPath string
}

// App 是演示应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	scene           *scenes.DemoScene
	settingsManager *game.SettingsManager
	verbose         bool
	lastUpdate      time.Time
}

// NewApp 创建并初始化演示应用
//
// 配置解析顺序：默认值 ← 持久化设置 ← YAML 文件覆盖。
// gdata 打开失败进入降级模式（设置仅保存在内存里）。
func NewApp(cfg Config) (*App, error) {
	gdataManager, err := gdata.Open(gdata.Config{AppName: "softcursor"})
	if err != nil {
		log.Printf("[App] gdata 打开失败: %v（降级为内存设置）", err)
		gdataManager = nil
	}

	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, err
	}

	cursorCfg := config.DefaultCursorConfig().Apply(settingsManager.Overrides())

	if cfg.ConfigPath != "" {
		overrides, err := config.LoadCursorOverrides(cfg.ConfigPath)
		if err != nil {
			return nil, err
		}
		cursorCfg = cursorCfg.Apply(overrides)
	}

	scene := scenes.NewDemoScene(cursorCfg)
	if scene.Controller() != nil {
		// 软光标接管，隐藏系统光标
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}

	// 启动期的提示日志（触摸门禁、找不到光标节点）始终输出，
	// 只有运行期的调参日志受 -verbose 控制
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	return &App{
		scene:           scene,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// Update 更新演示逻辑
// 每个 tick 调用一次；帧间隔按真实流逝时间测量，卡顿帧收紧到 0.1 秒
func (a *App) Update() error {
	now := time.Now()
	deltaTime := 1.0 / 60.0
	if !a.lastUpdate.IsZero() {
		deltaTime = now.Sub(a.lastUpdate).Seconds()
		if deltaTime > 0.1 {
			deltaTime = 0.1
		}
	}
	a.lastUpdate = now

	a.handleTuningKeys()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if ctrl := a.scene.Controller(); ctrl != nil {
			ctrl.Detach()
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
		}
		return ebiten.Termination
	}

	a.scene.Update(deltaTime)
	return nil
}

// handleTuningKeys 调参快捷键
//
//	↑/↓ 调跟随速率，←/→ 调形变速率，S 保存（下次启动生效）
func (a *App) handleTuningKeys() {
	sm := a.settingsManager
	settings := sm.GetSettings()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		sm.SetFollowerRate(settings.FollowerRate + 1)
		log.Printf("[App] followerRate = %.1f (takes effect next run)", settings.FollowerRate)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		sm.SetFollowerRate(settings.FollowerRate - 1)
		log.Printf("[App] followerRate = %.1f (takes effect next run)", settings.FollowerRate)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		sm.SetTransitionRate(settings.TransitionRate + 1)
		log.Printf("[App] transitionRate = %.1f (takes effect next run)", settings.TransitionRate)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		sm.SetTransitionRate(settings.TransitionRate - 1)
		log.Printf("[App] transitionRate = %.1f (takes effect next run)", settings.TransitionRate)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		if err := sm.Save(); err != nil {
			log.Printf("[App] 保存设置失败: %v", err)
		}
	}
}

// Draw 绘制演示画面
func (a *App) Draw(screen *ebiten.Image) {
	a.scene.Draw(screen)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"

	"github.com/decker502/cubemove/pkg/config"
	"github.com/decker502/cubemove/pkg/game"
	"github.com/decker502/cubemove/pkg/injector"
	"github.com/decker502/cubemove/pkg/logging"
	"github.com/decker502/cubemove/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
	"go.uber.org/zap"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Debug 输出每帧的 Debug 日志（需要同时开启 Verbose）
	Debug bool
	// Fullscreen 以全屏启动，并写入设置
	Fullscreen bool
	// ScenePath 场景配置路径（内嵌资源），为空时使用 config.DefaultScenePath
	ScenePath string
	// Logger 外部传入的日志器，为 nil 时根据 Verbose/Debug 创建
	Logger *zap.Logger
}

// debugOverlayScene 支持调试信息开关的场景
type debugOverlayScene interface {
	SetShowDebugOverlay(show bool)
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	clock           *game.FrameClock
	logger          *zap.Logger

	// applyFullscreen 把全屏状态应用到窗口，测试中可替换
	applyFullscreen func(fullscreen bool)

	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// 场景配置无效、预制体缺失等组合阶段的错误都会返回给调用方。
func NewApp(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		var err error
		logger, err = logging.New(logging.Config{Verbose: cfg.Verbose, Debug: cfg.Debug})
		if err != nil {
			return nil, fmt.Errorf("日志初始化失败: %w", err)
		}
	}
	appLogger := logger.Named("App")

	scenePath := cfg.ScenePath
	if scenePath == "" {
		scenePath = config.DefaultScenePath
	}
	sceneCfg, err := config.LoadSceneConfig(scenePath)
	if err != nil {
		return nil, fmt.Errorf("场景配置加载失败: %w", err)
	}
	appLogger.Info("scene config loaded",
		zap.String("path", scenePath),
		zap.String("prefab", sceneCfg.Prefab),
		zap.Float64("speed", sceneCfg.Speed))

	settingsManager := game.NewSettingsManager(openStorage(appLogger), logger)
	if cfg.Fullscreen {
		settingsManager.SetFullscreen(true)
	}

	axes := utils.NewEbitenAxisReader(config.GameWindowWidth, config.GameWindowHeight)

	sceneManager := game.NewSceneManager(logger)
	sceneManager.SetSceneFactory(func() (game.Scene, error) {
		scene, err := injector.InitializeCubeScene(sceneCfg, axes, logger)
		if err != nil {
			return nil, err
		}
		scene.SetShowDebugOverlay(settingsManager.GetSettings().ShowDebugOverlay)
		return scene, nil
	})
	if err := sceneManager.Reload(); err != nil {
		return nil, err
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		clock:           game.NewFrameClock(config.MaxDeltaTime, nil),
		logger:          appLogger,
		applyFullscreen: setWindowFullscreen,
		verbose:         cfg.Verbose,
	}, nil
}

// openStorage 打开 gdata 存储，失败时返回 nil（设置仅保存在内存中）
func openStorage(logger *zap.Logger) *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		logger.Warn("storage directory unavailable", zap.Error(err))
		return nil
	}
	manager, err := gdata.Open(gdata.Config{AppName: config.AppName})
	if err != nil {
		logger.Warn("failed to open settings storage", zap.Error(err))
		return nil
	}
	return manager
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
// 返回的错误会让 ebiten.RunGame 结束，由 main 按致命错误处理
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.logger.Debug("delayed window size reset",
				zap.Int("width", config.GameWindowWidth),
				zap.Int("height", config.GameWindowHeight))
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// F3 切换调试信息
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		a.toggleDebugOverlay()
	}

	// R 重新组合场景，方块回到出生点
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.reload()
	}

	if err := a.sceneManager.Update(a.clock.Tick()); err != nil {
		a.logger.Error("frame update failed", zap.Error(err))
		return err
	}
	return nil
}

// reload 重新组合场景，方块回到出生点
// 失败不是致命错误：保留当前场景，帧时钟也不重置
func (a *App) reload() {
	if err := a.sceneManager.Reload(); err != nil {
		a.logger.Warn("scene reload failed, keeping current scene", zap.Error(err))
		return
	}
	a.clock.Reset()
}

// toggleFullscreen 以设置中的状态为准切换全屏
// 启动时 main 已按设置应用全屏，二者保持一致
func (a *App) toggleFullscreen() {
	fullscreen := !a.settingsManager.GetSettings().Fullscreen
	a.applyFullscreen(fullscreen)
	if !fullscreen {
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = config.WindowResetDelayFrames
	}
	a.settingsManager.SetFullscreen(fullscreen)
	a.saveSettings()
}

func setWindowFullscreen(fullscreen bool) {
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen && (ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized()) {
		ebiten.RestoreWindow()
	}
}

func (a *App) toggleDebugOverlay() {
	show := a.settingsManager.ToggleDebugOverlay()
	if scene, ok := a.sceneManager.GetCurrentScene().(debugOverlayScene); ok {
		scene.SetShowDebugOverlay(show)
	}
	a.saveSettings()
}

func (a *App) saveSettings() {
	if err := a.settingsManager.Save(); err != nil {
		a.logger.Warn("failed to save settings", zap.Error(err))
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Settings 返回当前显示设置
func (a *App) Settings() *game.DisplaySettings {
	return a.settingsManager.GetSettings()
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// Logger 返回应用日志器
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// Close 保存设置并刷新日志
func (a *App) Close() error {
	a.saveSettings()
	_ = a.logger.Sync()
	return nil
}

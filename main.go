package main

import (
	"flag"
	"log"

	"github.com/decker502/cubemove/pkg/app"
	"github.com/decker502/cubemove/pkg/config"
	"github.com/decker502/cubemove/pkg/embedded"
	"github.com/decker502/cubemove/pkg/logging"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细日志")
	debug      = flag.Bool("debug", false, "输出每帧 Debug 日志（需配合 --verbose）")
	fullscreen = flag.Bool("fullscreen", false, "以全屏模式启动")
	scenePath  = flag.String("scene", config.DefaultScenePath, "场景配置路径（内嵌资源）")
)

func main() {
	flag.Parse()

	logger, err := logging.New(logging.Config{Verbose: *verbose, Debug: *debug})
	if err != nil {
		log.Fatalf("日志初始化失败: %v", err)
	}
	defer logger.Sync()

	// 初始化嵌入资源，dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		Debug:      *debug,
		Fullscreen: *fullscreen,
		ScenePath:  *scenePath,
		Logger:     logger,
	})
	if err != nil {
		logger.Fatal("游戏初始化失败", zap.Error(err))
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.DefaultTPS)
	ebiten.SetFullscreen(gameApp.Settings().Fullscreen)

	// Update 返回的错误（例如控制器未初始化）会结束游戏循环
	err = ebiten.RunGame(gameApp)
	gameApp.Close()
	if err != nil {
		logger.Fatal("游戏循环异常终止", zap.Error(err))
	}
}

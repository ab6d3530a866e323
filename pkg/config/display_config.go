package config

// 显示与帧循环配置常量

const (
	// GameWindowWidth 是游戏逻辑屏幕宽度（像素）
	GameWindowWidth = 800

	// GameWindowHeight 是游戏逻辑屏幕高度（像素）
	GameWindowHeight = 600

	// WindowTitle 是窗口标题
	WindowTitle = "cubemove"

	// AppName 是 gdata 存储使用的应用名
	AppName = "cubemove"

	// WindowResetDelayFrames 是退出全屏后延迟恢复窗口尺寸的帧数
	WindowResetDelayFrames = 3

	// PixelsPerUnit 是世界单位到屏幕像素的缩放
	// 俯视投影：世界X → 屏幕向右，世界Z → 屏幕向上，世界Y不参与投影
	PixelsPerUnit = 40.0

	// MaxDeltaTime 是单帧时间增量上限（秒）
	// 窗口拖动或断点暂停后，防止一次性产生过大的位移
	MaxDeltaTime = 1.0 / 3.0

	// DefaultTPS 是帧循环目标频率（每秒更新次数）
	DefaultTPS = 60
)

package scenes

import (
	"fmt"
	"image/color"

	"github.com/decker502/cubemove/pkg/components"
	"github.com/decker502/cubemove/pkg/ecs"
	"github.com/decker502/cubemove/pkg/game"
	"github.com/decker502/cubemove/pkg/logging"
	"github.com/decker502/cubemove/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"
)

// 帧循环中注册的更新函数名称
const (
	UpdateCubeController = "cube.controller"
	UpdateEntityCleanup  = "ecs.cleanup"
)

// 调试信息面板布局
const (
	overlayX          = 10
	overlayY          = 10
	overlayLineHeight = 16
	overlayWidth      = 260
	overlayPadding    = 5
)

var overlayBackground = color.RGBA{R: 0, G: 0, B: 0, A: 120}

// CubeScene 方块移动场景
//
// 场景持有组合根构建好的对象图：实体管理器、方块实体、移动系统和渲染系统。
// 每帧由帧循环按顺序执行：先是方块控制器（委托移动系统），最后清理已标记删除的实体。
type CubeScene struct {
	entityManager  *ecs.EntityManager
	frameLoop      *game.FrameLoop
	renderSystem   *systems.RenderSystem
	movementSystem *systems.MovementSystem

	cubeID     ecs.EntityID
	controller *components.CubeControllerComponent

	showDebugOverlay bool
	logger           *zap.Logger
}

// NewCubeScene 创建方块场景并把控制器与清理逻辑注册到帧循环
//
// 参数:
//   - em: 实体管理器
//   - frameLoop: 显式帧循环
//   - renderSystem: 渲染系统
//   - movementSystem: 已绑定方块 Transform 的移动系统
//   - cubeID: 方块实体ID
//   - controller: 方块的控制器组件，控制器是否已初始化由帧循环在运行时检查
//   - logger: 日志器，可为 nil
func NewCubeScene(
	em *ecs.EntityManager,
	frameLoop *game.FrameLoop,
	renderSystem *systems.RenderSystem,
	movementSystem *systems.MovementSystem,
	cubeID ecs.EntityID,
	controller *components.CubeControllerComponent,
	logger *zap.Logger,
) (*CubeScene, error) {
	if !ecs.HasComponent[*components.TransformComponent](em, cubeID) {
		return nil, fmt.Errorf("entity %d has no transform", cubeID)
	}
	if controller == nil {
		return nil, fmt.Errorf("entity %d has no cube controller", cubeID)
	}

	s := &CubeScene{
		entityManager:    em,
		frameLoop:        frameLoop,
		renderSystem:     renderSystem,
		movementSystem:   movementSystem,
		cubeID:           cubeID,
		controller:       controller,
		showDebugOverlay: true,
		logger:           logging.OrNop(logger).Named("CubeScene"),
	}

	if err := frameLoop.Register(UpdateCubeController, game.OrderDefault, controller.Update); err != nil {
		return nil, err
	}
	if err := frameLoop.Register(UpdateEntityCleanup, game.OrderLate, s.cleanup); err != nil {
		return nil, err
	}

	s.logger.Info("scene ready",
		zap.Uint64("cube", uint64(cubeID)),
		zap.Float64("speed", movementSystem.Speed()),
		zap.Strings("updates", frameLoop.Names()))
	return s, nil
}

// Update 执行一帧，任何错误都是致命的
func (s *CubeScene) Update(deltaTime float64) error {
	return s.frameLoop.Tick(deltaTime)
}

// cleanup 删除本帧被标记删除的实体
// 方块被删除后控制器从帧循环中注销，移动系统不再被驱动
func (s *CubeScene) cleanup(float64) error {
	if n := s.entityManager.RemoveMarkedEntities(); n > 0 {
		s.logger.Debug("entities removed", zap.Int("count", n))
	}
	if !s.entityManager.Exists(s.cubeID) && s.frameLoop.Unregister(UpdateCubeController) {
		s.logger.Info("cube destroyed, controller unregistered", zap.Uint64("cube", uint64(s.cubeID)))
	}
	return nil
}

// DestroyCube 标记方块删除，实际删除发生在本帧的清理阶段
func (s *CubeScene) DestroyCube() {
	s.entityManager.DestroyEntity(s.cubeID)
}

// Dispose 立即拆除场景中的方块，场景被替换时由 SceneManager 调用
func (s *CubeScene) Dispose() {
	s.DestroyCube()
	_ = s.cleanup(0)
}

// Draw 绘制方块与调试信息
func (s *CubeScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)

	if s.showDebugOverlay {
		s.drawDebugOverlay(screen)
	}
}

// DebugLines 返回调试面板显示的文本行
func (s *CubeScene) DebugLines() []string {
	lines := []string{
		fmt.Sprintf("TPS: %.1f  FPS: %.1f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		fmt.Sprintf("Frame: %d", s.frameLoop.FrameCount()),
		fmt.Sprintf("Speed: %.2f", s.movementSystem.Speed()),
	}

	if transform := s.Transform(); transform != nil {
		p := transform.Position
		lines = append(lines, fmt.Sprintf("Position: (%.2f, %.2f, %.2f)", p.X(), p.Y(), p.Z()))
	} else {
		lines = append(lines, "Position: <destroyed>")
	}

	d := s.movementSystem.LastDirection()
	lines = append(lines,
		fmt.Sprintf("Direction: (%.2f, %.2f, %.2f)", d.X(), d.Y(), d.Z()),
		"Arrows/WASD move  F3 overlay  F11 fullscreen  R reset",
	)
	return lines
}

func (s *CubeScene) drawDebugOverlay(screen *ebiten.Image) {
	lines := s.DebugLines()

	vector.DrawFilledRect(screen,
		overlayX-overlayPadding, overlayY-overlayPadding,
		overlayWidth, float32(len(lines)*overlayLineHeight+2*overlayPadding),
		overlayBackground, false)

	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, overlayX, overlayY+i*overlayLineHeight)
	}
}

// SetShowDebugOverlay 设置是否显示调试信息
func (s *CubeScene) SetShowDebugOverlay(show bool) {
	s.showDebugOverlay = show
}

// ShowDebugOverlay 返回是否显示调试信息
func (s *CubeScene) ShowDebugOverlay() bool {
	return s.showDebugOverlay
}

// CubeID 返回方块实体ID
func (s *CubeScene) CubeID() ecs.EntityID {
	return s.cubeID
}

// Transform 返回方块的 Transform，方块已被删除时返回 nil
func (s *CubeScene) Transform() *components.TransformComponent {
	transform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, s.cubeID)
	if !ok {
		return nil
	}
	return transform
}

// Controller 返回方块控制器
func (s *CubeScene) Controller() *components.CubeControllerComponent {
	return s.controller
}

// MovementSystem 返回移动系统
func (s *CubeScene) MovementSystem() *systems.MovementSystem {
	return s.movementSystem
}

// EntityManager 返回实体管理器
func (s *CubeScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// FrameLoop 返回帧循环
func (s *CubeScene) FrameLoop() *game.FrameLoop {
	return s.frameLoop
}

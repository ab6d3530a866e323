package injector

import (
	"fmt"

	"github.com/decker502/cubemove/pkg/components"
	"github.com/decker502/cubemove/pkg/config"
	"github.com/decker502/cubemove/pkg/ecs"
	"github.com/decker502/cubemove/pkg/entities"
	"github.com/decker502/cubemove/pkg/game"
	"github.com/decker502/cubemove/pkg/scenes"
	"github.com/decker502/cubemove/pkg/systems"
	"github.com/decker502/cubemove/pkg/utils"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/wire"
	"go.uber.org/zap"
)

// CubeSceneSet 方块场景的全部 provider
var CubeSceneSet = wire.NewSet(
	ecs.NewEntityManager,
	ProvidePrefab,
	ProvideCube,
	ProvideCubeTransform,
	ProvideInputSystem,
	wire.Bind(new(components.InputHandler), new(*systems.InputSystem)),
	ProvideMovementSystem,
	ProvideCubeController,
	systems.NewRenderSystem,
	game.NewFrameLoop,
	scenes.NewCubeScene,
)

// ProvidePrefab 加载场景引用的方块预制体，预制体不存在时启动失败
func ProvidePrefab(cfg *config.SceneConfig) (*config.PrefabConfig, error) {
	return entities.LoadPrefab(cfg.Prefab)
}

// ProvideCube 在出生点以单位旋转实例化方块
// 必须先于移动系统执行，移动系统需要方块的 Transform
func ProvideCube(em *ecs.EntityManager, prefab *config.PrefabConfig, cfg *config.SceneConfig, logger *zap.Logger) (ecs.EntityID, error) {
	return entities.NewCubeEntity(em, prefab, cfg.Spawn.Vec3(), mgl64.QuatIdent(), logger)
}

// ProvideCubeTransform 取出方块的 Transform，作为移动系统的直接目标
func ProvideCubeTransform(em *ecs.EntityManager, cubeID ecs.EntityID) (*components.TransformComponent, error) {
	transform, ok := ecs.GetComponent[*components.TransformComponent](em, cubeID)
	if !ok {
		return nil, fmt.Errorf("cube %d: %w: %s", cubeID, entities.ErrMissingComponent, config.ComponentTransform)
	}
	return transform, nil
}

// ProvideInputSystem 基于轴读取器创建输入系统
func ProvideInputSystem(axes utils.AxisReader) *systems.InputSystem {
	return systems.NewInputSystem(axes)
}

// ProvideMovementSystem 使用场景配置中的速度创建移动系统
func ProvideMovementSystem(input components.InputHandler, cfg *config.SceneConfig, target *components.TransformComponent, logger *zap.Logger) (*systems.MovementSystem, error) {
	return systems.NewMovementSystem(input, cfg.Speed, target, logger)
}

// ProvideCubeController 把移动系统注入方块控制器
func ProvideCubeController(em *ecs.EntityManager, cubeID ecs.EntityID, movement *systems.MovementSystem) (*components.CubeControllerComponent, error) {
	controller, ok := ecs.GetComponent[*components.CubeControllerComponent](em, cubeID)
	if !ok {
		return nil, fmt.Errorf("cube %d: %w: %s", cubeID, entities.ErrMissingComponent, config.ComponentCubeController)
	}
	if err := controller.Initialize(movement); err != nil {
		return nil, fmt.Errorf("cube %d: %w", cubeID, err)
	}
	return controller, nil
}

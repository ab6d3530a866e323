package entities

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/decker502/cubemove/pkg/components"
	"github.com/decker502/cubemove/pkg/config"
	"github.com/decker502/cubemove/pkg/ecs"
	"github.com/decker502/cubemove/pkg/embedded"
	"github.com/decker502/cubemove/pkg/logging"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrPrefabNotFound 预制体资源不存在
	ErrPrefabNotFound = errors.New("prefab not found")

	// ErrMissingComponent 预制体缺少实例化所必需的组件
	ErrMissingComponent = errors.New("prefab is missing a required component")
)

// 方块实体必须具备的组件
var requiredCubeComponents = []string{
	config.ComponentTransform,
	config.ComponentCubeController,
}

// LoadPrefab 从嵌入资源加载预制体
//
// 参数:
//   - path: 预制体路径，例如 "data/prefabs/cube.yaml"
//
// 返回:
//   - *config.PrefabConfig: 解析并校验后的预制体
//   - error: 资源不存在时包装 ErrPrefabNotFound，解析失败时返回解析错误
func LoadPrefab(path string) (*config.PrefabConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrPrefabNotFound, path)
		}
		return nil, fmt.Errorf("failed to read prefab %s: %w", path, err)
	}

	prefab, err := config.ParsePrefabConfig(data)
	if err != nil {
		return nil, fmt.Errorf("prefab %s: %w", path, err)
	}
	return prefab, nil
}

// NewCubeEntity 按预制体实例化一个方块实体
//
// 参数:
//   - em: EntityManager 实例
//   - prefab: 方块预制体（nil 视为预制体不存在）
//   - position: 出生点（世界坐标）
//   - rotation: 初始旋转，零值四元数视为单位旋转
//   - logger: 日志器，可为 nil
//
// 返回:
//   - ecs.EntityID: 创建的实体ID
//   - error: 预制体缺少 transform 或 cubeController 组件时返回 ErrMissingComponent
//
// 控制器组件挂载时处于未初始化状态，由组合根注入移动系统。
func NewCubeEntity(em *ecs.EntityManager, prefab *config.PrefabConfig, position mgl64.Vec3, rotation mgl64.Quat, logger *zap.Logger) (ecs.EntityID, error) {
	if prefab == nil {
		return ecs.InvalidEntity, ErrPrefabNotFound
	}
	for _, name := range requiredCubeComponents {
		if !prefab.HasComponent(name) {
			return ecs.InvalidEntity, fmt.Errorf("%w: %s has no %q", ErrMissingComponent, prefab.Name, name)
		}
	}

	id := em.CreateEntity()

	ecs.AddComponent(em, id, components.NewTransformComponent(position, rotation))

	if prefab.HasComponent(config.ComponentCubeRenderer) {
		ecs.AddComponent(em, id, &components.CubeRenderComponent{
			Size:  prefab.Size,
			Color: prefab.RGBA(),
		})
	}

	ecs.AddComponent(em, id, &components.CubeControllerComponent{})

	instance := &components.PrefabInstanceComponent{
		PrefabName: prefab.Name,
		InstanceID: uuid.New(),
	}
	ecs.AddComponent(em, id, instance)

	logging.OrNop(logger).Named("CubeFactory").Info("prefab instantiated",
		zap.String("prefab", prefab.Name),
		zap.Stringer("instance", instance.InstanceID),
		zap.Uint64("entity", uint64(id)),
		logging.Vec3("position", position.X(), position.Y(), position.Z()))

	return id, nil
}

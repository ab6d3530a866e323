package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/decker502/cubemove/pkg/embedded"
	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// 方块场景默认值
const (
	// CubeSpeed 是方块移动速度（世界单位/秒）
	CubeSpeed = 5.0

	// DefaultScenePath 是内嵌场景配置的默认路径
	DefaultScenePath = "data/cube_scene.yaml"

	// DefaultCubePrefab 是默认方块预制体路径
	DefaultCubePrefab = "data/prefabs/cube.yaml"
)

// CubeSpawnPosition 是方块的出生点（世界坐标）
var CubeSpawnPosition = mgl64.Vec3{0, -1.48, 0}

// ErrInvalidSceneConfig 表示场景配置校验失败
var ErrInvalidSceneConfig = errors.New("invalid scene config")

// Vec3Config 是 YAML 中的三维向量
type Vec3Config struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Vec3 转换为 mgl64.Vec3
func (v Vec3Config) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// SceneConfig 方块场景配置
//
// 配置文件位置: data/cube_scene.yaml
// 场景启动时读取一次，之后不再修改（速度在组合时固定）
type SceneConfig struct {
	// Name 场景名称（仅用于日志）
	Name string `yaml:"name"`

	// Prefab 方块预制体路径（内嵌资源路径，必须以 "data/" 开头）
	Prefab string `yaml:"prefab"`

	// Speed 方块移动速度（世界单位/秒）
	Speed float64 `yaml:"speed"`

	// Spawn 方块出生点（世界坐标），旋转固定为单位四元数
	Spawn Vec3Config `yaml:"spawn"`
}

// DefaultSceneConfig 返回与常量一致的默认场景配置
func DefaultSceneConfig() *SceneConfig {
	return &SceneConfig{
		Name:   "cube",
		Prefab: DefaultCubePrefab,
		Speed:  CubeSpeed,
		Spawn: Vec3Config{
			X: CubeSpawnPosition.X(),
			Y: CubeSpawnPosition.Y(),
			Z: CubeSpawnPosition.Z(),
		},
	}
}

// ParseSceneConfig 解析 YAML 格式的场景配置
//
// 未出现在 YAML 中的字段保留默认值。
//
// 参数:
//   - data: YAML 文件内容
//
// 返回:
//   - *SceneConfig: 解析并校验后的配置
//   - error: 解析或校验失败时返回错误
func ParseSceneConfig(data []byte) (*SceneConfig, error) {
	cfg := DefaultSceneConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse scene config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadSceneConfig 从嵌入资源加载场景配置
// path 必须以 "data/" 开头，例如 DefaultScenePath
func LoadSceneConfig(path string) (*SceneConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene config: %w", err)
	}
	return ParseSceneConfig(data)
}

// Validate 验证配置有效性
//
// 检查：
//   - 预制体路径不能为空
//   - 速度必须是非负有限值
//   - 出生点坐标必须是有限值
func (c *SceneConfig) Validate() error {
	if c.Prefab == "" {
		return fmt.Errorf("%w: prefab is required", ErrInvalidSceneConfig)
	}

	if math.IsNaN(c.Speed) || math.IsInf(c.Speed, 0) || c.Speed < 0 {
		return fmt.Errorf("%w: speed must be a finite non-negative number, got %v", ErrInvalidSceneConfig, c.Speed)
	}

	for _, v := range []float64{c.Spawn.X, c.Spawn.Y, c.Spawn.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: spawn position must be finite, got (%v, %v, %v)",
				ErrInvalidSceneConfig, c.Spawn.X, c.Spawn.Y, c.Spawn.Z)
		}
	}

	return nil
}

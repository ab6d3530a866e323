package config

import (
	"errors"
	"fmt"
	"image/color"
	"slices"

	"gopkg.in/yaml.v3"
)

// 预制体可声明的组件名称
const (
	ComponentTransform      = "transform"
	ComponentCubeRenderer   = "cubeRenderer"
	ComponentCubeController = "cubeController"
)

// ErrInvalidPrefab 表示预制体配置校验失败
var ErrInvalidPrefab = errors.New("invalid prefab")

// PrefabConfig 预制体配置
//
// 预制体描述了实例化时挂载到实体上的组件集合，
// 由场景配置通过路径引用（例如 data/prefabs/cube.yaml）。
type PrefabConfig struct {
	// Name 预制体名称
	Name string `yaml:"name"`

	// Size 方块边长（世界单位）
	Size float64 `yaml:"size"`

	// Color 渲染颜色，格式 "#RRGGBB" 或 "#RRGGBBAA"
	Color string `yaml:"color"`

	// Components 实例化时挂载的组件
	Components []string `yaml:"components"`
}

// ParsePrefabConfig 解析 YAML 格式的预制体配置
func ParsePrefabConfig(data []byte) (*PrefabConfig, error) {
	var prefab PrefabConfig
	if err := yaml.Unmarshal(data, &prefab); err != nil {
		return nil, fmt.Errorf("failed to parse prefab: %w", err)
	}

	if err := prefab.Validate(); err != nil {
		return nil, err
	}

	return &prefab, nil
}

// Validate 验证预制体
func (p *PrefabConfig) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidPrefab)
	}
	if p.Size <= 0 {
		return fmt.Errorf("%w: %s: size must be positive, got %v", ErrInvalidPrefab, p.Name, p.Size)
	}
	if _, err := ParseHexColor(p.Color); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidPrefab, p.Name, err)
	}
	for _, name := range p.Components {
		switch name {
		case ComponentTransform, ComponentCubeRenderer, ComponentCubeController:
		default:
			return fmt.Errorf("%w: %s: unknown component %q", ErrInvalidPrefab, p.Name, name)
		}
	}
	return nil
}

// HasComponent 检查预制体是否声明了指定组件
func (p *PrefabConfig) HasComponent(name string) bool {
	return slices.Contains(p.Components, name)
}

// RGBA 返回解析后的渲染颜色（颜色已在 Validate 中校验过）
func (p *PrefabConfig) RGBA() color.RGBA {
	c, _ := ParseHexColor(p.Color)
	return c
}

// ParseHexColor 解析 "#RRGGBB" / "#RRGGBBAA" 格式颜色
func ParseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 0xff}
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 9:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		err = fmt.Errorf("color %q must be #RRGGBB or #RRGGBBAA", s)
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}

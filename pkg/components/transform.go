package components

import "github.com/go-gl/mathgl/mgl64"

// TransformComponent 存储实体的空间变换
// Position 为世界坐标，Rotation 为朝向（单位四元数）
type TransformComponent struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// NewTransformComponent 创建指定位置和朝向的变换组件
// 零值四元数会被替换为单位四元数
func NewTransformComponent(position mgl64.Vec3, rotation mgl64.Quat) *TransformComponent {
	if rotation == (mgl64.Quat{}) {
		rotation = mgl64.QuatIdent()
	}
	return &TransformComponent{
		Position: position,
		Rotation: rotation.Normalize(),
	}
}

// Translate 按相对位移移动实体
// delta 处于实体自身坐标系，先按 Rotation 旋转到世界坐标系再累加；
// 朝向为单位四元数时等价于直接累加世界坐标
func (t *TransformComponent) Translate(delta mgl64.Vec3) {
	t.Position = t.Position.Add(t.Rotation.Rotate(delta))
}

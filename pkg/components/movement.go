package components

import "github.com/go-gl/mathgl/mgl64"

// InputHandler 提供每帧的移动方向
type InputHandler interface {
	// GetInputDirection 返回本帧的方向向量 (horizontal, 0, vertical)
	// Y 分量恒为 0
	GetInputDirection() mgl64.Vec3
}

// Movable 每帧推进一次移动
type Movable interface {
	// Move 根据本帧时间增量（秒）移动目标
	Move(deltaTime float64)
}

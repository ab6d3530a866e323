package components

import "errors"

var (
	// ErrControllerNotInitialized 在 Initialize 之前调用 Update
	ErrControllerNotInitialized = errors.New("cube controller updated before Initialize")

	// ErrControllerAlreadyInitialized 重复调用 Initialize
	ErrControllerAlreadyInitialized = errors.New("cube controller already initialized")

	// ErrNilMovable Initialize 传入了 nil
	ErrNilMovable = errors.New("cube controller requires a non-nil movable")
)

// CubeControllerComponent 方块控制器
//
// 生命周期只有两个阶段：未初始化 → 已初始化。
// 每帧的 Update 完全委托给注入的 Movable；
// 未初始化时 Update 返回 ErrControllerNotInitialized，由帧循环作为致命错误终止游戏。
type CubeControllerComponent struct {
	movementSystem Movable
}

// Initialize 注入移动系统（只能调用一次）
func (c *CubeControllerComponent) Initialize(movementSystem Movable) error {
	if movementSystem == nil {
		return ErrNilMovable
	}
	if c.movementSystem != nil {
		return ErrControllerAlreadyInitialized
	}
	c.movementSystem = movementSystem
	return nil
}

// IsInitialized 返回控制器是否已注入移动系统
func (c *CubeControllerComponent) IsInitialized() bool {
	return c.movementSystem != nil
}

// Update 每帧调用一次，使用移动系统移动方块
func (c *CubeControllerComponent) Update(deltaTime float64) error {
	if c.movementSystem == nil {
		return ErrControllerNotInitialized
	}
	c.movementSystem.Move(deltaTime)
	return nil
}

package systems

import (
	"errors"
	"fmt"
	"math"

	"github.com/decker502/cubemove/pkg/components"
	"github.com/decker502/cubemove/pkg/logging"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

var (
	// ErrNilInputHandler 移动系统缺少输入来源
	ErrNilInputHandler = errors.New("movement system requires an input handler")

	// ErrNilTarget 移动系统缺少目标变换
	ErrNilTarget = errors.New("movement system requires a target transform")

	// ErrInvalidSpeed 速度不是非负有限值
	ErrInvalidSpeed = errors.New("movement speed must be a finite non-negative number")
)

// MovementSystem 根据输入方向移动目标方块
//
// 目标变换在构造时直接注入，系统只会修改这一个变换。
// 速度在构造后不可修改。
type MovementSystem struct {
	inputHandler components.InputHandler
	speed        float64
	target       *components.TransformComponent
	logger       *zap.Logger

	lastDirection    mgl64.Vec3 // 最近一帧的输入方向（调试显示用）
	lastDisplacement mgl64.Vec3 // 最近一帧的位移（调试显示用）
}

var _ components.Movable = (*MovementSystem)(nil)

// NewMovementSystem 创建移动系统
//
// 参数:
//   - inputHandler: 输入来源
//   - speed: 移动速度（世界单位/秒）
//   - target: 被移动的变换组件
//   - logger: 日志器，可为 nil
//
// 返回:
//   - *MovementSystem: 移动系统实例
//   - error: 参数无效时返回错误
func NewMovementSystem(inputHandler components.InputHandler, speed float64, target *components.TransformComponent, logger *zap.Logger) (*MovementSystem, error) {
	if inputHandler == nil {
		return nil, ErrNilInputHandler
	}
	if target == nil {
		return nil, ErrNilTarget
	}
	if math.IsNaN(speed) || math.IsInf(speed, 0) || speed < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidSpeed, speed)
	}

	return &MovementSystem{
		inputHandler: inputHandler,
		speed:        speed,
		target:       target,
		logger:       logging.OrNop(logger).Named("MovementSystem"),
	}, nil
}

// Displacement 计算单帧位移 direction * speed * deltaTime
func Displacement(direction mgl64.Vec3, speed, deltaTime float64) mgl64.Vec3 {
	return direction.Mul(speed * deltaTime)
}

// Move 读取输入并把位移累加到目标变换
// 不做边界和碰撞检查
func (s *MovementSystem) Move(deltaTime float64) {
	direction := s.inputHandler.GetInputDirection()
	displacement := Displacement(direction, s.speed, deltaTime)

	s.target.Translate(displacement)

	s.lastDirection = direction
	s.lastDisplacement = displacement

	if displacement != (mgl64.Vec3{}) {
		pos := s.target.Position
		s.logger.Debug("cube moved",
			logging.Vec3("displacement", displacement.X(), displacement.Y(), displacement.Z()),
			logging.Vec3("position", pos.X(), pos.Y(), pos.Z()),
		)
	}
}

// Speed 返回移动速度
func (s *MovementSystem) Speed() float64 {
	return s.speed
}

// Target 返回被移动的变换组件
func (s *MovementSystem) Target() *components.TransformComponent {
	return s.target
}

// LastDirection 返回最近一帧的输入方向
func (s *MovementSystem) LastDirection() mgl64.Vec3 {
	return s.lastDirection
}

// LastDisplacement 返回最近一帧的位移
func (s *MovementSystem) LastDisplacement() mgl64.Vec3 {
	return s.lastDisplacement
}

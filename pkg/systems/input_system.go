package systems

import (
	"github.com/decker502/cubemove/pkg/components"
	"github.com/decker502/cubemove/pkg/utils"
	"github.com/go-gl/mathgl/mgl64"
)

// InputSystem 把两个输入轴转换为移动方向
type InputSystem struct {
	axes utils.AxisReader
}

var _ components.InputHandler = (*InputSystem)(nil)

// NewInputSystem 创建输入系统
//
// 参数:
//   - axes: 输入轴来源（桌面端为 EbitenAxisReader，测试为 ScriptedAxisReader）
func NewInputSystem(axes utils.AxisReader) *InputSystem {
	return &InputSystem{axes: axes}
}

// GetInputDirection 返回本帧方向 (Horizontal, 0, Vertical)
// 每个分量限制在 [-1, 1]，Y 分量恒为 0
func (s *InputSystem) GetInputDirection() mgl64.Vec3 {
	horizontal := utils.ClampAxis(s.axes.GetAxis(utils.AxisHorizontal))
	vertical := utils.ClampAxis(s.axes.GetAxis(utils.AxisVertical))

	return mgl64.Vec3{horizontal, 0, vertical}
}

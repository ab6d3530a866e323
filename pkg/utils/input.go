// Package utils 提供通用工具函数
package utils

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// 输入轴名称
const (
	AxisHorizontal = "Horizontal"
	AxisVertical   = "Vertical"
)

// GamepadDeadZone 是手柄摇杆死区，绝对值小于该值的读数视为 0
const GamepadDeadZone = 0.19

// TouchStickRadius 是触摸虚拟摇杆的半径（逻辑像素），以屏幕中心为摇杆中心
const TouchStickRadius = 120.0

// AxisReader 读取命名输入轴的当前值
// 未知轴名返回 0
type AxisReader interface {
	GetAxis(name string) float64
}

// ClampAxis 将轴读数限制在 [-1, 1]，NaN 视为 0
func ClampAxis(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}

// ApplyDeadZone 对摇杆读数应用死区，并把死区外的部分重新映射到 [0, 1]
func ApplyDeadZone(v, deadZone float64) float64 {
	abs := math.Abs(v)
	if abs < deadZone {
		return 0
	}
	scaled := (abs - deadZone) / (1 - deadZone)
	return math.Copysign(math.Min(scaled, 1), v)
}

// keyAxis 描述由两组按键组成的数字轴
type keyAxis struct {
	positive []ebiten.Key
	negative []ebiten.Key
}

// read 返回按键轴的读数，以及该轴是否有任何按键按下
// 正反两个方向同时按下时读数为 0，但仍算作键盘输入
func (a keyAxis) read(pressed func(ebiten.Key) bool) (float64, bool) {
	value := 0.0
	held := false
	if anyKeyPressed(a.positive, pressed) {
		value += 1
		held = true
	}
	if anyKeyPressed(a.negative, pressed) {
		value -= 1
		held = true
	}
	return value, held
}

// EbitenAxisReader 基于 Ebitengine 键盘和手柄的输入轴
//
// Horizontal: 右方向键/D 为正，左方向键/A 为负
// Vertical:   上方向键/W 为正，下方向键/S 为负
//
// 该轴没有任何按键按下时回退到第一个标准布局手柄的左摇杆，
// 再回退到触摸虚拟摇杆（第一个触点相对屏幕中心的偏移）。
type EbitenAxisReader struct {
	keys       map[string]keyAxis
	keyPressed func(ebiten.Key) bool
	gamepadID  []ebiten.GamepadID
	touchIDs   []ebiten.TouchID

	centerX, centerY float64
}

// NewEbitenAxisReader 创建默认按键布局的输入轴
// screenWidth/screenHeight 为逻辑屏幕尺寸，用于确定触摸摇杆中心
func NewEbitenAxisReader(screenWidth, screenHeight int) *EbitenAxisReader {
	return &EbitenAxisReader{
		centerX:    float64(screenWidth) / 2,
		centerY:    float64(screenHeight) / 2,
		keyPressed: ebiten.IsKeyPressed,
		keys: map[string]keyAxis{
			AxisHorizontal: {
				positive: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
				negative: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
			},
			AxisVertical: {
				positive: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
				negative: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
			},
		},
	}
}

// GetAxis 读取指定轴的当前值
func (r *EbitenAxisReader) GetAxis(name string) float64 {
	axis, ok := r.keys[name]
	if !ok {
		return 0
	}

	if value, held := axis.read(r.keyPressed); held {
		return value
	}

	if v := r.gamepadAxis(name); v != 0 {
		return ClampAxis(v)
	}
	return r.touchAxis(name)
}

// touchAxis 读取第一个触点形成的虚拟摇杆
func (r *EbitenAxisReader) touchAxis(name string) float64 {
	r.touchIDs = ebiten.AppendTouchIDs(r.touchIDs[:0])
	if len(r.touchIDs) == 0 {
		return 0
	}
	x, y := ebiten.TouchPosition(r.touchIDs[0])
	h, v := TouchStickAxes(float64(x), float64(y), r.centerX, r.centerY, TouchStickRadius)
	switch name {
	case AxisHorizontal:
		return h
	case AxisVertical:
		return v
	}
	return 0
}

// TouchStickAxes 把触点位置换算为摇杆读数
// 屏幕Y向下为正，换算后向上为正；偏移超过半径时按方向归一化。
func TouchStickAxes(x, y, centerX, centerY, radius float64) (float64, float64) {
	if radius <= 0 {
		return 0, 0
	}
	h := (x - centerX) / radius
	v := (centerY - y) / radius
	if length := math.Hypot(h, v); length > 1 {
		h /= length
		v /= length
	}
	return ApplyDeadZone(h, GamepadDeadZone), ApplyDeadZone(v, GamepadDeadZone)
}

// gamepadAxis 读取第一个标准布局手柄的左摇杆
func (r *EbitenAxisReader) gamepadAxis(name string) float64 {
	r.gamepadID = ebiten.AppendGamepadIDs(r.gamepadID[:0])
	for _, id := range r.gamepadID {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		switch name {
		case AxisHorizontal:
			return ApplyDeadZone(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal), GamepadDeadZone)
		case AxisVertical:
			// 摇杆向上为负值，取反使“向上”为正方向
			return ApplyDeadZone(-ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical), GamepadDeadZone)
		}
	}
	return 0
}

func anyKeyPressed(keys []ebiten.Key, pressed func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if pressed(k) {
			return true
		}
	}
	return false
}

// ScriptedAxisReader 可编程的输入轴（测试与无窗口验证用）
//
// 可直接 Set 固定值，也可通过 SetFrames 按帧提供读数：
// 每次 Advance 前进一帧，脚本用完后保持最后一帧的值。
type ScriptedAxisReader struct {
	values map[string]float64
	frames []map[string]float64
	frame  int
}

// NewScriptedAxisReader 创建所有轴为 0 的脚本输入
func NewScriptedAxisReader() *ScriptedAxisReader {
	return &ScriptedAxisReader{values: make(map[string]float64)}
}

// Set 设置轴的固定值
func (r *ScriptedAxisReader) Set(name string, value float64) {
	r.values[name] = value
}

// SetFrames 设置逐帧脚本，并从第 0 帧开始
func (r *ScriptedAxisReader) SetFrames(frames []map[string]float64) {
	r.frames = frames
	r.frame = 0
}

// Advance 前进到脚本的下一帧
func (r *ScriptedAxisReader) Advance() {
	if r.frame < len(r.frames)-1 {
		r.frame++
	}
}

// GetAxis 读取指定轴，脚本帧优先于固定值
func (r *ScriptedAxisReader) GetAxis(name string) float64 {
	if len(r.frames) > 0 {
		if v, ok := r.frames[r.frame][name]; ok {
			return v
		}
	}
	return r.values[name]
}

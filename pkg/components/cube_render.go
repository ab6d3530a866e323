package components

import "image/color"

// CubeRenderComponent 方块渲染数据
// RenderSystem 以俯视投影把方块绘制为正方形
type CubeRenderComponent struct {
	Size  float64    // 边长（世界单位）
	Color color.RGBA // 填充颜色
}

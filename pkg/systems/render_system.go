package systems

import (
	"image/color"
	"sort"

	"github.com/decker502/cubemove/pkg/components"
	"github.com/decker502/cubemove/pkg/config"
	"github.com/decker502/cubemove/pkg/ecs"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 背景与网格颜色
var (
	backgroundColor = color.RGBA{R: 0x1e, G: 0x24, B: 0x2b, A: 0xff}
	gridColor       = color.RGBA{R: 0x2c, G: 0x34, B: 0x3d, A: 0xff}
	axisColor       = color.RGBA{R: 0x45, G: 0x51, B: 0x5e, A: 0xff}
)

// RenderSystem 以俯视投影渲染方块实体
//
// 投影规则：世界原点位于屏幕中心，世界X → 屏幕向右，世界Z → 屏幕向上，
// 世界Y只决定绘制顺序（Y 越大越后绘制）。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	pixelsPerUnit float64
	screenWidth   float64
	screenHeight  float64
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		pixelsPerUnit: config.PixelsPerUnit,
		screenWidth:   config.GameWindowWidth,
		screenHeight:  config.GameWindowHeight,
	}
}

// WorldToScreen 把世界坐标投影为屏幕坐标
func (s *RenderSystem) WorldToScreen(pos mgl64.Vec3) (float64, float64) {
	x := s.screenWidth/2 + pos.X()*s.pixelsPerUnit
	y := s.screenHeight/2 - pos.Z()*s.pixelsPerUnit
	return x, y
}

// renderItem 是一次绘制的快照
type renderItem struct {
	id        ecs.EntityID
	transform *components.TransformComponent
	cube      *components.CubeRenderComponent
}

// collect 收集需要绘制的实体，按世界Y升序排列（同Y按实体ID）
func (s *RenderSystem) collect() []renderItem {
	ids := ecs.GetEntitiesWith2[*components.TransformComponent, *components.CubeRenderComponent](s.entityManager)

	items := make([]renderItem, 0, len(ids))
	for _, id := range ids {
		tr, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		if !ok {
			continue
		}
		cube, ok := ecs.GetComponent[*components.CubeRenderComponent](s.entityManager, id)
		if !ok {
			continue
		}
		items = append(items, renderItem{id: id, transform: tr, cube: cube})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].transform.Position.Y() < items[j].transform.Position.Y()
	})
	return items
}

// Draw 绘制背景网格和所有方块
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.drawGrid(screen)

	for _, item := range s.collect() {
		cx, cy := s.WorldToScreen(item.transform.Position)
		size := item.cube.Size * s.pixelsPerUnit
		vector.DrawFilledRect(screen,
			float32(cx-size/2), float32(cy-size/2),
			float32(size), float32(size),
			item.cube.Color, true)
	}
}

// drawGrid 每个世界单位画一条网格线，原点处画坐标轴
func (s *RenderSystem) drawGrid(screen *ebiten.Image) {
	cx, cy := s.screenWidth/2, s.screenHeight/2

	for x := cx; x < s.screenWidth; x += s.pixelsPerUnit {
		vector.StrokeLine(screen, float32(x), 0, float32(x), float32(s.screenHeight), 1, gridColor, false)
	}
	for x := cx - s.pixelsPerUnit; x > 0; x -= s.pixelsPerUnit {
		vector.StrokeLine(screen, float32(x), 0, float32(x), float32(s.screenHeight), 1, gridColor, false)
	}
	for y := cy; y < s.screenHeight; y += s.pixelsPerUnit {
		vector.StrokeLine(screen, 0, float32(y), float32(s.screenWidth), float32(y), 1, gridColor, false)
	}
	for y := cy - s.pixelsPerUnit; y > 0; y -= s.pixelsPerUnit {
		vector.StrokeLine(screen, 0, float32(y), float32(s.screenWidth), float32(y), 1, gridColor, false)
	}

	vector.StrokeLine(screen, float32(cx), 0, float32(cx), float32(s.screenHeight), 1, axisColor, false)
	vector.StrokeLine(screen, 0, float32(cy), float32(s.screenWidth), float32(cy), 1, axisColor, false)
}

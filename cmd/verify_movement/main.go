// verify_movement 无窗口验证方块移动
//
// 使用脚本输入轴驱动完整组合后的方块场景，逐帧打印位置，
// 并与 出生点 + Σ(方向 × 速度 × dt) 的期望值比对，不一致时以非零状态退出。
//
// 用法（在项目根目录运行）：
//
//	go run ./cmd/verify_movement --frames 10 --dt 0.1 --h 1 --v 0
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/decker502/cubemove/pkg/config"
	"github.com/decker502/cubemove/pkg/embedded"
	"github.com/decker502/cubemove/pkg/injector"
	"github.com/decker502/cubemove/pkg/logging"
	"github.com/decker502/cubemove/pkg/utils"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

const tolerance = 1e-9

var (
	frames    = flag.Int("frames", 10, "模拟的帧数")
	dt        = flag.Float64("dt", 0.1, "每帧时间增量（秒）")
	h         = flag.Float64("h", 1, "Horizontal 轴读数")
	v         = flag.Float64("v", 0, "Vertical 轴读数")
	dataDir   = flag.String("data", ".", "包含 data/ 目录的项目根目录")
	scenePath = flag.String("scene", config.DefaultScenePath, "场景配置路径")
	verbose   = flag.Bool("verbose", false, "显示详细调试信息")
)

func main() {
	flag.Parse()

	logger, err := logging.New(logging.Config{Verbose: *verbose, Debug: *verbose})
	if err != nil {
		log.Fatalf("日志初始化失败: %v", err)
	}
	defer logger.Sync()

	if err := run(logger); err != nil {
		fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("PASS")
}

func run(logger *zap.Logger) error {
	embedded.Init(os.DirFS(*dataDir))

	sceneCfg, err := config.LoadSceneConfig(*scenePath)
	if err != nil {
		return err
	}

	axes := utils.NewScriptedAxisReader()
	axes.Set(utils.AxisHorizontal, *h)
	axes.Set(utils.AxisVertical, *v)

	scene, err := injector.InitializeCubeScene(sceneCfg, axes, logger)
	if err != nil {
		return fmt.Errorf("composition failed: %w", err)
	}

	expected := sceneCfg.Spawn.Vec3()
	fmt.Printf("spawn    (%.4f, %.4f, %.4f) speed %.2f\n", expected.X(), expected.Y(), expected.Z(), scene.MovementSystem().Speed())

	for i := 1; i <= *frames; i++ {
		if err := scene.Update(*dt); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}

		step := scene.MovementSystem().LastDirection()
		if step.Y() != 0 {
			return fmt.Errorf("frame %d: direction Y is %v, want 0", i, step.Y())
		}
		want := step.Mul(sceneCfg.Speed * *dt)
		if got := scene.MovementSystem().LastDisplacement(); !near(got, want) {
			return fmt.Errorf("frame %d: displacement %v, want %v", i, got, want)
		}
		expected = expected.Add(want)

		pos := scene.Transform().Position
		fmt.Printf("frame %3d (%.4f, %.4f, %.4f)\n", i, pos.X(), pos.Y(), pos.Z())

		if !near(pos, expected) {
			return fmt.Errorf("frame %d: position (%v, %v, %v), want (%v, %v, %v)",
				i, pos.X(), pos.Y(), pos.Z(), expected.X(), expected.Y(), expected.Z())
		}
	}

	return nil
}

// near 按分量比较绝对误差
// ApproxEqualThreshold 是相对误差，分量为 0 时会把浮点噪声判为不一致
func near(a, b mgl64.Vec3) bool {
	return a.ApproxFuncEqual(b, func(x, y float64) bool {
		return math.Abs(x-y) < tolerance
	})
}

//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/decker502/cubemove/pkg/config"
	"github.com/decker502/cubemove/pkg/scenes"
	"github.com/decker502/cubemove/pkg/utils"
	"github.com/google/wire"
	"go.uber.org/zap"
)

// InitializeCubeScene 组合根：在场景启动时构建一次完整的对象图
func InitializeCubeScene(cfg *config.SceneConfig, axes utils.AxisReader, logger *zap.Logger) (*scenes.CubeScene, error) {
	wire.Build(CubeSceneSet)
	return nil, nil
}

package embedded

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withTestFS 使用内存文件系统初始化，测试结束后恢复
func withTestFS(t *testing.T) {
	t.Helper()
	prevFS, prevInit := dataFS, initialized
	t.Cleanup(func() {
		dataFS, initialized = prevFS, prevInit
	})

	Init(fstest.MapFS{
		"data/cube_scene.yaml":    {Data: []byte("name: cube\n")},
		"data/prefabs/cube.yaml":  {Data: []byte("name: Cube\n")},
		"data/prefabs/other.yaml": {Data: []byte("name: Other\n")},
	})
}

func TestNotInitialized(t *testing.T) {
	prevFS, prevInit := dataFS, initialized
	t.Cleanup(func() {
		dataFS, initialized = prevFS, prevInit
	})
	Init(nil)

	_, err := ReadFile("data/cube_scene.yaml")
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestReadFile(t *testing.T) {
	withTestFS(t)

	data, err := ReadFile("data/cube_scene.yaml")
	require.NoError(t, err)
	assert.Equal(t, "name: cube\n", string(data))
}

func TestPathNormalization(t *testing.T) {
	withTestFS(t)

	tests := []struct {
		name string
		path string
	}{
		{"plain", "data/prefabs/cube.yaml"},
		{"dot prefix", "./data/prefabs/cube.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			require.NoError(t, err)
			assert.Equal(t, "name: Cube\n", string(data))
		})
	}
}

func TestInvalidPrefix(t *testing.T) {
	withTestFS(t)

	_, err := ReadFile("assets/cube.png")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown resource path prefix")

	_, err = ReadFile("prefabs/cube.yaml")
	assert.Error(t, err)
}

func TestMissingFile(t *testing.T) {
	withTestFS(t)

	_, err := ReadFile("data/prefabs/missing.yaml")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrefabConfig(t *testing.T) {
	prefab, err := ParsePrefabConfig([]byte(`
name: Cube
size: 1.0
color: "#4A90E2"
components: [transform, cubeRenderer, cubeController]
`))
	require.NoError(t, err)

	assert.Equal(t, "Cube", prefab.Name)
	assert.Equal(t, 1.0, prefab.Size)
	assert.Equal(t, color.RGBA{R: 0x4a, G: 0x90, B: 0xe2, A: 0xff}, prefab.RGBA())
	assert.True(t, prefab.HasComponent(ComponentCubeController))
	assert.False(t, prefab.HasComponent("rigidbody"))
}

func TestParsePrefabConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "missing name", yaml: "size: 1\ncolor: \"#ffffff\""},
		{name: "zero size", yaml: "name: Cube\nsize: 0\ncolor: \"#ffffff\""},
		{name: "bad color", yaml: "name: Cube\nsize: 1\ncolor: blue"},
		{name: "unknown component", yaml: "name: Cube\nsize: 1\ncolor: \"#ffffff\"\ncomponents: [rigidbody]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePrefabConfig([]byte(tt.yaml))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidPrefab), "got %v", err)
		})
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#10203040")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, c)

	_, err = ParseHexColor("#12345")
	assert.Error(t, err)

	_, err = ParseHexColor("#GGGGGG")
	assert.Error(t, err)
}

// TestShippedCubePrefab 校验仓库内嵌的方块预制体
func TestShippedCubePrefab(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", DefaultCubePrefab))
	if err != nil {
		t.Skipf("prefab not available: %v", err)
	}

	prefab, err := ParsePrefabConfig(data)
	require.NoError(t, err)
	for _, name := range []string{ComponentTransform, ComponentCubeRenderer, ComponentCubeController} {
		assert.True(t, prefab.HasComponent(name), "shipped prefab missing %s", name)
	}
}

package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTestStorage 在临时 HOME 下打开 gdata 存储
func openTestStorage(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	require.NoError(t, err, "Failed to create gdata manager")
	return gdataManager
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()
	require.NotNil(t, settings)

	assert.False(t, settings.Fullscreen, "Fullscreen should default to false")
	assert.True(t, settings.ShowDebugOverlay, "debug overlay should default to on")
}

// TestNewSettingsManager 测试正常初始化 SettingsManager
func TestNewSettingsManager(t *testing.T) {
	sm := NewSettingsManager(openTestStorage(t, "cubemove_test_settings"), nil)
	require.NotNil(t, sm)

	// 首次启动没有存档，应该使用默认值
	assert.Equal(t, DefaultSettings(), sm.GetSettings())
}

// TestSettingsManagerNilStorage 测试降级模式（nil gdataManager）
func TestSettingsManagerNilStorage(t *testing.T) {
	sm := NewSettingsManager(nil, nil)

	sm.SetFullscreen(true)
	assert.NoError(t, sm.Save(), "Save in degraded mode should not fail")
	assert.NoError(t, sm.Load())
	assert.False(t, sm.GetSettings().Fullscreen, "degraded mode reloads defaults")
}

// TestSettingsManagerSaveAndLoad 测试设置的保存与重新加载
func TestSettingsManagerSaveAndLoad(t *testing.T) {
	storage := openTestStorage(t, "cubemove_test_roundtrip")

	sm := NewSettingsManager(storage, nil)
	sm.SetFullscreen(true)
	require.False(t, sm.ToggleDebugOverlay())
	require.NoError(t, sm.Save())

	reloaded := NewSettingsManager(storage, nil)
	assert.True(t, reloaded.GetSettings().Fullscreen)
	assert.False(t, reloaded.GetSettings().ShowDebugOverlay)
}

// TestSettingsManagerCorruptedData 测试损坏的设置数据回退到默认值
func TestSettingsManagerCorruptedData(t *testing.T) {
	storage := openTestStorage(t, "cubemove_test_corrupted")
	require.NoError(t, storage.SaveObjectProp(settingsObject, settingsProperty, []byte("fullscreen: [not a bool")))

	sm := NewSettingsManager(storage, nil)
	assert.Equal(t, DefaultSettings(), sm.GetSettings())
	assert.Error(t, sm.Load())
}

func TestToggleDebugOverlay(t *testing.T) {
	sm := NewSettingsManager(nil, nil)

	assert.False(t, sm.ToggleDebugOverlay())
	assert.True(t, sm.ToggleDebugOverlay())
}

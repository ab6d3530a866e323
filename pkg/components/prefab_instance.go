package components

import "github.com/google/uuid"

// PrefabInstanceComponent 记录实体由哪个预制体实例化
type PrefabInstanceComponent struct {
	PrefabName string    // 预制体名称
	InstanceID uuid.UUID // 实例唯一ID（用于日志追踪）
}

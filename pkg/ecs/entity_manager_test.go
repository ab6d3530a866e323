package ecs

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y, Z float64
}

type testControllerComponent struct {
	Ticks int
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}

	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}

	if id1 == InvalidEntity || id2 == InvalidEntity {
		t.Error("Created entities must never use InvalidEntity")
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	// 添加组件
	pos := &testPositionComponent{X: 0, Y: -1.48, Z: 0}
	em.AddComponent(id, pos)

	// 获取组件
	comp, found := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}

	retrieved := comp.(*testPositionComponent)
	if retrieved.Y != -1.48 {
		t.Errorf("Component data mismatch, expected Y=-1.48, got %f", retrieved.Y)
	}

	// 返回的是同一个指针，修改会直接生效
	retrieved.X = 3
	if pos.X != 3 {
		t.Error("GetComponent should return the stored pointer")
	}
}

func TestAddComponentToUnknownEntity(t *testing.T) {
	em := NewEntityManager()

	// 未创建的实体添加组件应被忽略
	em.AddComponent(EntityID(42), &testPositionComponent{})

	if em.HasComponent(EntityID(42), reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Unknown entity should not receive components")
	}
	if em.EntityCount() != 0 {
		t.Errorf("Expected 0 entities, got %d", em.EntityCount())
	}
}

func TestHasComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	// 未添加组件前应该返回false
	if em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Should not have component before adding")
	}

	// 添加组件
	em.AddComponent(id, &testPositionComponent{})

	// 添加后应该返回true
	if !em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Should have component after adding")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	// 标记删除
	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !em.Exists(id) {
		t.Error("Entity should still exist before cleanup")
	}

	// 清理后实体消失
	if removed := em.RemoveMarkedEntities(); removed != 1 {
		t.Errorf("Expected 1 removed entity, got %d", removed)
	}
	if em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Entity should be removed after cleanup")
	}
}

func TestDestroyEntityTwiceCountsOnce(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.DestroyEntity(id)
	em.DestroyEntity(id)

	assert.Equal(t, 1, em.RemoveMarkedEntities())
	assert.Equal(t, 0, em.RemoveMarkedEntities(), "marked list should be cleared")
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	// 创建不同组件组合的实体
	id1 := em.CreateEntity()
	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id1, &testControllerComponent{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testPositionComponent{})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &testControllerComponent{})

	// 查询拥有 Position+Controller 的实体
	entities := em.GetEntitiesWith(
		reflect.TypeOf(&testPositionComponent{}),
		reflect.TypeOf(&testControllerComponent{}),
	)
	require.Len(t, entities, 1)
	assert.Equal(t, id1, entities[0])

	// 查询只拥有 Position 的实体，结果按ID升序
	posEntities := em.GetEntitiesWith(reflect.TypeOf(&testPositionComponent{}))
	assert.Equal(t, []EntityID{id1, id2}, posEntities)
}

func TestGetEntitiesWithIsSorted(t *testing.T) {
	em := NewEntityManager()
	for i := 0; i < 50; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPositionComponent{X: float64(i)})
	}

	ids := em.GetEntitiesWith(reflect.TypeOf(&testPositionComponent{}))
	require.Len(t, ids, 50)
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("entities not sorted at %d: %d >= %d", i, ids[i-1], ids[i])
		}
	}
}

func TestGenericComponentAccess(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testPositionComponent{X: 1, Y: 2, Z: 3})
	AddComponent(em, id, &testControllerComponent{Ticks: 7})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	require.True(t, ok)
	assert.Equal(t, 3.0, pos.Z)

	ctrl, ok := GetComponent[*testControllerComponent](em, id)
	require.True(t, ok)
	assert.Equal(t, 7, ctrl.Ticks)

	// 泛型与反射版本共享同一个类型键
	assert.True(t, em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})))
	assert.Equal(t, []EntityID{id}, GetEntitiesWith2[*testPositionComponent, *testControllerComponent](em))
	assert.True(t, HasComponent[*testControllerComponent](em, id))

	other := em.CreateEntity()
	assert.False(t, HasComponent[*testControllerComponent](em, other))
	_, ok = GetComponent[*testControllerComponent](em, other)
	assert.False(t, ok)
}

func TestDestroyMultipleEntities(t *testing.T) {
	em := NewEntityManager()

	// 创建多个实体
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()
	id3 := em.CreateEntity()

	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id2, &testPositionComponent{})
	em.AddComponent(id3, &testPositionComponent{})

	// 标记两个实体删除
	em.DestroyEntity(id1)
	em.DestroyEntity(id3)

	// 清理
	em.RemoveMarkedEntities()

	// 验证只有id2存在
	if em.Exists(id1) {
		t.Error("id1 should be removed")
	}
	if !em.HasComponent(id2, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("id2 should still exist")
	}
	if em.Exists(id3) {
		t.Error("id3 should be removed")
	}
}

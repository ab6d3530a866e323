package game

import (
	"errors"
	"fmt"
	"sort"
)

// 帧循环中的执行顺序，数值越小越先执行
const (
	OrderEarly   = -100 // 输入采样等需要最先执行的逻辑
	OrderDefault = 0    // 常规的实体更新（控制器等）
	OrderLate    = 100  // 帧末清理，例如删除已标记的实体
)

var (
	// ErrDuplicateUpdate 同名更新函数重复注册
	ErrDuplicateUpdate = errors.New("update callable already registered")
	// ErrNilUpdate 注册了 nil 更新函数
	ErrNilUpdate = errors.New("update callable is nil")
)

// UpdateFunc 每帧被调用一次的更新函数
// deltaTime 为上一帧到本帧经过的秒数
type UpdateFunc func(deltaTime float64) error

type updateEntry struct {
	name  string
	order int
	seq   int
	fn    UpdateFunc
}

// FrameLoop 显式的帧循环
//
// 持有一组有序的具名更新函数，每次 Tick 按 order 升序依次调用，
// order 相同时按注册顺序调用。任意一个更新函数返回错误都会中止本帧，
// 错误会带上函数名向上返回。
type FrameLoop struct {
	entries    []updateEntry
	nextSeq    int
	frameCount uint64
}

// NewFrameLoop 创建空的帧循环
func NewFrameLoop() *FrameLoop {
	return &FrameLoop{}
}

// Register 注册更新函数
func (l *FrameLoop) Register(name string, order int, fn UpdateFunc) error {
	if fn == nil {
		return fmt.Errorf("%s: %w", name, ErrNilUpdate)
	}
	for _, e := range l.entries {
		if e.name == name {
			return fmt.Errorf("%s: %w", name, ErrDuplicateUpdate)
		}
	}

	l.entries = append(l.entries, updateEntry{name: name, order: order, seq: l.nextSeq, fn: fn})
	l.nextSeq++
	sort.SliceStable(l.entries, func(i, j int) bool {
		if l.entries[i].order != l.entries[j].order {
			return l.entries[i].order < l.entries[j].order
		}
		return l.entries[i].seq < l.entries[j].seq
	})
	return nil
}

// Unregister 移除更新函数，返回是否存在
// 可以在 Tick 执行的更新函数中调用，本帧剩余的函数照常执行
func (l *FrameLoop) Unregister(name string) bool {
	for i, e := range l.entries {
		if e.name == name {
			l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Tick 执行一帧
func (l *FrameLoop) Tick(deltaTime float64) error {
	l.frameCount++
	for _, e := range l.entries {
		if err := e.fn(deltaTime); err != nil {
			return fmt.Errorf("%s: %w", e.name, err)
		}
	}
	return nil
}

// FrameCount 返回已执行的帧数（包括出错中止的帧）
func (l *FrameLoop) FrameCount() uint64 {
	return l.frameCount
}

// Names 按执行顺序返回已注册的函数名
func (l *FrameLoop) Names() []string {
	names := make([]string, 0, len(l.entries))
	for _, e := range l.entries {
		names = append(names, e.name)
	}
	return names
}

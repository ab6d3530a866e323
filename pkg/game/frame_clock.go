package game

import "time"

// FrameClock 宿主帧时钟
//
// 每次 Tick 返回距上一次 Tick 的真实经过时间（秒），
// 并限制在 maxDelta 以内，避免窗口拖动或断点后出现一次性的大位移。
// 第一次 Tick 返回 0。
type FrameClock struct {
	now      func() time.Time
	last     time.Time
	started  bool
	maxDelta float64
	elapsed  float64
}

// NewFrameClock 创建帧时钟
// now 为 nil 时使用 time.Now；maxDelta <= 0 表示不限制
func NewFrameClock(maxDelta float64, now func() time.Time) *FrameClock {
	if now == nil {
		now = time.Now
	}
	return &FrameClock{
		now:      now,
		maxDelta: maxDelta,
	}
}

// Tick 推进时钟并返回本帧的 deltaTime
func (c *FrameClock) Tick() float64 {
	current := c.now()
	if !c.started {
		c.started = true
		c.last = current
		return 0
	}

	dt := current.Sub(c.last).Seconds()
	c.last = current
	if dt < 0 {
		dt = 0
	}
	if c.maxDelta > 0 && dt > c.maxDelta {
		dt = c.maxDelta
	}
	c.elapsed += dt
	return dt
}

// Elapsed 返回累计的（限制后的）游戏时间
func (c *FrameClock) Elapsed() float64 {
	return c.elapsed
}

// Reset 重置时钟，下一次 Tick 返回 0
func (c *FrameClock) Reset() {
	c.started = false
	c.elapsed = 0
}

//go:build mobile && !debug

package mobile

// verboseLogging 发布构建关闭日志
const verboseLogging = false

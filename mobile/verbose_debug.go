//go:build mobile && debug

package mobile

// verboseLogging 调试构建开启日志
const verboseLogging = true

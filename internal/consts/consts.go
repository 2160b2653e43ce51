package consts

import "runtime"

// CpuCount 表示逻辑 CPU 核心数，未配置并发数时作为默认上限
var CpuCount = runtime.NumCPU()

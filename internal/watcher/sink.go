package watcher

import (
	"sync"

	"dex-cpi-sol/internal/pkg/logger"
)

// LogSink 记录每条识别结果并按协议 / 版本计数
type LogSink struct {
	mu     sync.Mutex
	counts map[string]int
}

func NewLogSink() *LogSink {
	return &LogSink{counts: make(map[string]int)}
}

func (s *LogSink) Handle(obs []Observation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range obs {
		s.counts[o.Protocol+"/"+o.Variant]++
		logger.Infof("[Watcher:LogSink] %s/%s slot=%d tx=%s ix=%d.%d accounts=%d data=%d",
			o.Protocol, o.Variant, o.Slot, o.Signature, o.IxIndex, o.InnerIndex, len(o.Accounts), len(o.Data))
	}
}

// Counts 返回计数快照
func (s *LogSink) Counts() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int, len(s.counts))
	for k, v := range s.counts {
		out[k] = v
	}
	return out
}

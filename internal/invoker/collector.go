package invoker

import (
	"context"
	"sync"

	"dex-cpi-sol/internal/cpi"

	sdktypes "github.com/blocto/solana-go-sdk/types"
)

// Collector 只收集指令不执行，用于由宿主自行组装交易
type Collector struct {
	mu  sync.Mutex
	ixs []cpi.Instruction
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Invoke(_ context.Context, ix cpi.Instruction, _ []cpi.Signer) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ixs = append(c.ixs, ix)
	return nil
}

func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.ixs)
}

// Take 取走已收集的指令并清空
func (c *Collector) Take() []cpi.Instruction {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.ixs
	c.ixs = nil
	return out
}

// SDKInstructions 按收集顺序转换为 blocto 指令
func (c *Collector) SDKInstructions() []sdktypes.Instruction {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]sdktypes.Instruction, len(c.ixs))
	for i, ix := range c.ixs {
		out[i] = ToSDK(ix)
	}
	return out
}

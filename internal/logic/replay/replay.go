package replay

import (
	"context"
	"errors"
	"fmt"

	"dex-cpi-sol/internal/config"
	"dex-cpi-sol/internal/cpi"
	"dex-cpi-sol/internal/pkg/logger"
	"dex-cpi-sol/internal/protocols"
)

var ErrUnknownCapture = errors.New("unknown capture target")

// Result 单条样本的重放结果
type Result struct {
	Name     string
	Dex      string
	Variant  string
	Accounts int
	Err      error
}

// Build 将样本按协议与版本名组装为指令。
// 超出账户表的地址作为追加账户，schema 不允许时返回 *cpi.SchemaError。
func Build(c config.Capture) (cpi.Instruction, error) {
	p, ok := protocols.ProgramByName(c.Dex)
	if !ok {
		return cpi.Instruction{}, fmt.Errorf("%w: dex %q", ErrUnknownCapture, c.Dex)
	}
	v, ok := findVariant(p, c.Variant)
	if !ok {
		return cpi.Instruction{}, fmt.Errorf("%w: %s variant %q", ErrUnknownCapture, c.Dex, c.Variant)
	}

	addrs, data, err := c.Decode()
	if err != nil {
		return cpi.Instruction{}, err
	}
	if got, ok := p.Identify(data, len(addrs)); ok && got.Name != v.Name {
		logger.Warnf("[Replay:Build] 样本版本与数据不一致: name=%s, declared=%s, identified=%s", c.Name, v.Name, got.Name)
	}

	n := min(len(addrs), v.Schema.Arity())
	return v.Instruction(data, addrs[:n], addrs[n:]...)
}

func findVariant(p *cpi.Program, name string) (cpi.Variant, bool) {
	for _, v := range p.Variants() {
		if v.Name == name {
			return v, true
		}
	}
	return cpi.Variant{}, false
}

// Run 依次重放样本，单条失败不影响后续
func Run(ctx context.Context, inv cpi.Invoker, captures []config.Capture) []Result {
	results := make([]Result, 0, len(captures))
	for _, c := range captures {
		r := Result{Name: c.Name, Dex: c.Dex, Variant: c.Variant}
		ix, err := Build(c)
		if err == nil {
			r.Accounts = len(ix.Accounts)
			err = cpi.Invoke(ctx, inv, ix)
		}
		r.Err = err
		if err != nil {
			logger.Warnf("[Replay:Run] 重放失败: name=%s, dex=%s, variant=%s, err=%v", c.Name, c.Dex, c.Variant, err)
		} else {
			logger.Infof("[Replay:Run] 重放成功: name=%s, dex=%s, variant=%s, accounts=%d", c.Name, c.Dex, c.Variant, r.Accounts)
		}
		results = append(results, r)
	}
	return results
}

package cpi

import (
	"fmt"

	"dex-cpi-sol/internal/consts"
	"dex-cpi-sol/internal/types"
)

// Variant 一种指令版本：账户表 + 固定数据长度 + 数据识别规则
type Variant struct {
	Name     string
	Schema   *Schema
	DataSize int
	Match    func(data []byte) bool // 为空时仅按长度与账户数识别
}

// Instruction 以原始数据组装指令，数据长度必须等于 DataSize
func (v Variant) Instruction(data []byte, addrs []types.Pubkey, remaining ...types.Pubkey) (Instruction, error) {
	if len(data) != v.DataSize {
		return Instruction{}, fmt.Errorf("%w: %s got=%d, want=%d", ErrPayloadSize, v.Name, len(data), v.DataSize)
	}
	metas, err := v.Schema.Build(addrs, remaining...)
	if err != nil {
		return Instruction{}, err
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	return Instruction{ProgramID: v.Schema.Program(), Accounts: metas, Data: buf}, nil
}

func (v Variant) matches(data []byte, nAccounts int) bool {
	if len(data) != v.DataSize || !v.Schema.Accepts(nAccounts) {
		return false
	}
	return v.Match == nil || v.Match(data)
}

// Program 外部程序描述：程序地址及其支持的指令版本，进程启动时构造，之后只读
type Program struct {
	dex      int
	id       types.Pubkey
	variants []Variant
}

func NewProgram(dex int, id types.Pubkey, variants ...Variant) *Program {
	vs := make([]Variant, len(variants))
	copy(vs, variants)
	return &Program{dex: dex, id: id, variants: vs}
}

func (p *Program) Dex() int { return p.dex }

func (p *Program) Name() string { return consts.DexName(p.dex) }

func (p *Program) ID() types.Pubkey { return p.id }

// IsProgram 判断任意地址是否为该程序
func (p *Program) IsProgram(addr types.Pubkey) bool { return p.id == addr }

func (p *Program) Variants() []Variant {
	out := make([]Variant, len(p.variants))
	copy(out, p.variants)
	return out
}

// Identify 按数据与账户数识别指令版本，按注册顺序取第一个匹配项
func (p *Program) Identify(data []byte, nAccounts int) (Variant, bool) {
	for _, v := range p.variants {
		if v.matches(data, nAccounts) {
			return v, true
		}
	}
	return Variant{}, false
}

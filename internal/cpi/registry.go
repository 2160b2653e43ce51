package cpi

import (
	"fmt"

	"dex-cpi-sol/internal/types"
)

// Registry 按程序地址索引的协议表，构造后只读，可并发读取
type Registry struct {
	byID     map[types.Pubkey]*Program
	programs []*Program
}

func NewRegistry(programs ...*Program) (*Registry, error) {
	r := &Registry{byID: make(map[types.Pubkey]*Program, len(programs))}
	for _, p := range programs {
		if _, dup := r.byID[p.ID()]; dup {
			return nil, fmt.Errorf("duplicate program %s (%s)", p.ID(), p.Name())
		}
		r.byID[p.ID()] = p
		r.programs = append(r.programs, p)
	}
	return r, nil
}

func (r *Registry) Lookup(id types.Pubkey) (*Program, bool) {
	p, ok := r.byID[id]
	return p, ok
}

func (r *Registry) Programs() []*Program {
	out := make([]*Program, len(r.programs))
	copy(out, r.programs)
	return out
}

func (r *Registry) ProgramIDs() []types.Pubkey {
	out := make([]types.Pubkey, len(r.programs))
	for i, p := range r.programs {
		out[i] = p.ID()
	}
	return out
}

// Classification 一条观测指令的识别结果
type Classification struct {
	Program *Program
	Variant Variant
}

// Classify 识别一条观测到的指令。程序或版本未知时返回 ErrUnrecognizedVariant，
// 调用方应将其视为“未命中”，而非异常。
func (r *Registry) Classify(programID types.Pubkey, data []byte, nAccounts int) (Classification, error) {
	p, ok := r.byID[programID]
	if !ok {
		return Classification{}, fmt.Errorf("%w: program %s", ErrUnrecognizedVariant, programID)
	}
	v, ok := p.Identify(data, nAccounts)
	if !ok {
		return Classification{}, fmt.Errorf("%w: %s data_len=%d, accounts=%d",
			ErrUnrecognizedVariant, p.Name(), len(data), nAccounts)
	}
	return Classification{Program: p, Variant: v}, nil
}

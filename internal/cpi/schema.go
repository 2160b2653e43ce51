package cpi

import (
	"fmt"

	"dex-cpi-sol/internal/types"
)

// Slot 账户列表中的一个位置
type Slot struct {
	Role       string
	Capability Capability

	// Default 非空时，调用方传入零地址则使用该常量账户（sysvar、system program、event authority 等）
	Default *types.Pubkey

	// Optional 表示 Anchor 可选账户，缺省时以程序自身地址占位并降为只读
	Optional bool
}

func Role(name string, c Capability) Slot {
	return Slot{Role: name, Capability: c}
}

func FixedRole(name string, c Capability, addr types.Pubkey) Slot {
	return Slot{Role: name, Capability: c, Default: &addr}
}

func OptionalRole(name string, c Capability) Slot {
	return Slot{Role: name, Capability: c, Optional: true}
}

// Schema 某协议某版本指令的定长、定序账户表，构造后只读
type Schema struct {
	name           string
	program        types.Pubkey
	slots          []Slot
	allowRemaining bool
	remainingCap   Capability
}

func NewSchema(name string, program types.Pubkey, slots ...Slot) *Schema {
	s := make([]Slot, len(slots))
	copy(s, slots)
	return &Schema{name: name, program: program, slots: s}
}

// WithRemaining 允许在固定账户之后追加变长账户（tick array、bin array 等），仅在初始化时调用
func (s *Schema) WithRemaining(c Capability) *Schema {
	s.allowRemaining = true
	s.remainingCap = c
	return s
}

func (s *Schema) Name() string { return s.name }

func (s *Schema) Program() types.Pubkey { return s.program }

// Arity 固定账户数量（不含追加账户）
func (s *Schema) Arity() int { return len(s.slots) }

func (s *Schema) AllowsRemaining() bool { return s.allowRemaining }

func (s *Schema) Roles() []string {
	out := make([]string, len(s.slots))
	for i, sl := range s.slots {
		out[i] = sl.Role
	}
	return out
}

func (s *Schema) Capabilities() []Capability {
	out := make([]Capability, len(s.slots))
	for i, sl := range s.slots {
		out[i] = sl.Capability
	}
	return out
}

// Build 按 schema 顺序展开账户地址，addrs 的顺序必须与 Roles() 一致。
// 数量不符、必填角色为零地址、或不允许追加账户时传入 remaining，均返回 *SchemaError。
func (s *Schema) Build(addrs []types.Pubkey, remaining ...types.Pubkey) ([]AccountMeta, error) {
	if len(addrs) != len(s.slots) {
		return nil, &SchemaError{Schema: s.name, Got: len(addrs), Want: len(s.slots)}
	}
	if len(remaining) > 0 && !s.allowRemaining {
		return nil, &SchemaError{Schema: s.name, Got: len(addrs) + len(remaining), Want: len(s.slots)}
	}

	metas := make([]AccountMeta, 0, len(addrs)+len(remaining))
	for i, sl := range s.slots {
		addr := addrs[i]
		c := sl.Capability
		switch {
		case !addr.IsZero():
		case sl.Default != nil:
			addr = *sl.Default
		case sl.Optional:
			addr, c = s.program, Readonly
		default:
			return nil, &SchemaError{Schema: s.name, Role: sl.Role, Got: len(addrs), Want: len(s.slots)}
		}
		metas = append(metas, NewAccountMeta(addr, c))
	}
	for i, addr := range remaining {
		if addr.IsZero() {
			return nil, &SchemaError{Schema: s.name, Role: fmt.Sprintf("remaining[%d]", i), Got: len(addrs), Want: len(s.slots)}
		}
		metas = append(metas, NewAccountMeta(addr, s.remainingCap))
	}
	return metas, nil
}

// Accepts 判断观测到的账户数量是否符合该 schema
func (s *Schema) Accepts(n int) bool {
	if s.allowRemaining {
		return n >= len(s.slots)
	}
	return n == len(s.slots)
}

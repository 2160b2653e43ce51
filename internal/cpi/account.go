package cpi

import "dex-cpi-sol/internal/types"

// Capability 账户在指令中的权限标记
type Capability uint8

const (
	Readonly Capability = iota
	Writable
	ReadonlySigner
	WritableSigner
)

var capabilityNames = []string{"readonly", "writable", "readonly-signer", "writable-signer"}

func (c Capability) String() string {
	if int(c) < len(capabilityNames) {
		return capabilityNames[c]
	}
	return "unknown"
}

func (c Capability) IsSigner() bool { return c == ReadonlySigner || c == WritableSigner }

func (c Capability) IsWritable() bool { return c == Writable || c == WritableSigner }

func CapabilityOf(isSigner, isWritable bool) Capability {
	switch {
	case isSigner && isWritable:
		return WritableSigner
	case isSigner:
		return ReadonlySigner
	case isWritable:
		return Writable
	default:
		return Readonly
	}
}

type AccountMeta struct {
	PubKey     types.Pubkey
	IsSigner   bool
	IsWritable bool
}

func NewAccountMeta(p types.Pubkey, c Capability) AccountMeta {
	return AccountMeta{PubKey: p, IsSigner: c.IsSigner(), IsWritable: c.IsWritable()}
}

func (m AccountMeta) Capability() Capability { return CapabilityOf(m.IsSigner, m.IsWritable) }

// Instruction 待调用的外部程序指令
type Instruction struct {
	ProgramID types.Pubkey
	Accounts  []AccountMeta
	Data      []byte
}

// Signers 返回需要签名的账户，按出现顺序去重
func (ix Instruction) Signers() []types.Pubkey {
	var out []types.Pubkey
	seen := make(map[types.Pubkey]struct{})
	for _, a := range ix.Accounts {
		if !a.IsSigner {
			continue
		}
		if _, ok := seen[a.PubKey]; ok {
			continue
		}
		seen[a.PubKey] = struct{}{}
		out = append(out, a.PubKey)
	}
	return out
}

package types

import (
	"fmt"

	"github.com/mr-tron/base58"
)

// Pubkey 表示 32 字节的账户或程序地址，按值比较，不可变。
type Pubkey [32]byte

func (p Pubkey) String() string {
	return base58.Encode(p[:])
}

func (p Pubkey) Equals(other Pubkey) bool {
	return p == other
}

// IsZero 判断是否为全 0 地址（注意 System Program 的地址也是全 0）
func (p Pubkey) IsZero() bool {
	return p == Pubkey{}
}

// Bytes 返回地址的拷贝，调用方可自由修改
func (p Pubkey) Bytes() []byte {
	b := make([]byte, 32)
	copy(b, p[:])
	return b
}

// PubkeyFromBytes 从 32 字节切片构造 Pubkey，长度不符时返回 false
func PubkeyFromBytes(b []byte) (Pubkey, bool) {
	var p Pubkey
	if len(b) != 32 {
		return p, false
	}
	copy(p[:], b)
	return p, true
}

// TryPubkeyFromBase58 解析 base58 字符串为 Pubkey，失败时返回 error（用于不信任输入路径）
func TryPubkeyFromBase58(s string) (Pubkey, error) {
	data, err := base58.Decode(s)
	if err != nil {
		return Pubkey{}, fmt.Errorf("failed to decode base58 pubkey %q: %w", s, err)
	}
	if len(data) != 32 {
		return Pubkey{}, fmt.Errorf("invalid pubkey length: got %d, want 32, input=%q", len(data), s)
	}
	var p Pubkey
	copy(p[:], data)
	return p, nil
}

// PubkeyFromBase58 用于编译期常量地址，解析失败直接 panic
func PubkeyFromBase58(s string) Pubkey {
	p, err := TryPubkeyFromBase58(s)
	if err != nil {
		panic(err)
	}
	return p
}

func PubkeysFromBase58(strs []string) []Pubkey {
	result := make([]Pubkey, 0, len(strs))
	for _, s := range strs {
		result = append(result, PubkeyFromBase58(s))
	}
	return result
}

// UnmarshalText 支持在 yaml 配置中直接书写 base58 地址
func (p *Pubkey) UnmarshalText(text []byte) error {
	v, err := TryPubkeyFromBase58(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func (p Pubkey) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

package codec

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/near/borsh-go"
)

// ErrPayloadSize 序列化结果与指令固定长度不符
var ErrPayloadSize = errors.New("payload size mismatch")

// Discriminator Anchor 方法 ID，sha256("global:<name>") 的前 8 字节
type Discriminator [8]byte

func AnchorDiscriminator(name string) Discriminator {
	sum := sha256.Sum256([]byte("global:" + name))
	var d Discriminator
	copy(d[:], sum[:8])
	return d
}

// DiscriminatorFromUint64 将大端书写的方法 ID 常量（如 0xf8c69e91e17587c8）转换为字节形式
func DiscriminatorFromUint64(v uint64) Discriminator {
	var d Discriminator
	binary.BigEndian.PutUint64(d[:], v)
	return d
}

// Uint64 大端读取，便于与 switch 常量比较
func (d Discriminator) Uint64() uint64 {
	return binary.BigEndian.Uint64(d[:])
}

// Matches 判断指令数据是否以该方法 ID 开头
func (d Discriminator) Matches(data []byte) bool {
	return len(data) >= 8 && [8]byte(data[:8]) == d
}

// EncodeAnchor 输出 disc || borsh(args)，总长度必须等于 size
func EncodeAnchor(disc Discriminator, args any, size int) ([]byte, error) {
	body, err := borsh.Serialize(args)
	if err != nil {
		return nil, fmt.Errorf("borsh serialize: %w", err)
	}
	if len(body)+8 != size {
		return nil, fmt.Errorf("%w: got=%d, want=%d", ErrPayloadSize, len(body)+8, size)
	}
	data := make([]byte, size)
	copy(data, disc[:])
	copy(data[8:], body)
	return data, nil
}

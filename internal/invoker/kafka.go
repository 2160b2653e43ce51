package invoker

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"dex-cpi-sol/internal/cpi"
	"dex-cpi-sol/internal/pkg/mq"
	"dex-cpi-sol/internal/pkg/utils"
	"dex-cpi-sol/internal/types"

	"github.com/near/borsh-go"
)

// EnvelopeInstruction 消息类型前缀
const EnvelopeInstruction uint32 = 1

var ErrEnvelope = errors.New("invalid instruction envelope")

type envelopeMeta struct {
	PubKey     [32]byte
	IsSigner   bool
	IsWritable bool
}

// Envelope 转发给下游执行器的指令
type Envelope struct {
	Program  [32]byte
	Accounts []envelopeMeta
	Data     []byte
	Seeds    [][][]byte
}

// EncodeEnvelope 前 4 字节为消息类型（小端），其后为 borsh 编码的 Envelope
func EncodeEnvelope(ix cpi.Instruction, seeds []cpi.Signer) ([]byte, error) {
	env := Envelope{
		Program:  ix.ProgramID,
		Accounts: make([]envelopeMeta, len(ix.Accounts)),
		Data:     ix.Data,
		Seeds:    make([][][]byte, len(seeds)),
	}
	for i, a := range ix.Accounts {
		env.Accounts[i] = envelopeMeta{PubKey: a.PubKey, IsSigner: a.IsSigner, IsWritable: a.IsWritable}
	}
	for i, s := range seeds {
		env.Seeds[i] = s
	}

	body, err := borsh.Serialize(env)
	if err != nil {
		return nil, fmt.Errorf("EncodeEnvelope: %w", err)
	}
	buf := make([]byte, 4, 4+len(body))
	binary.LittleEndian.PutUint32(buf, EnvelopeInstruction)
	return append(buf, body...), nil
}

func DecodeEnvelope(b []byte) (cpi.Instruction, []cpi.Signer, error) {
	if len(b) < 4 || binary.LittleEndian.Uint32(b[:4]) != EnvelopeInstruction {
		return cpi.Instruction{}, nil, ErrEnvelope
	}
	var env Envelope
	if err := borsh.Deserialize(&env, b[4:]); err != nil {
		return cpi.Instruction{}, nil, fmt.Errorf("%w: %v", ErrEnvelope, err)
	}
	ix := cpi.Instruction{
		ProgramID: env.Program,
		Accounts:  make([]cpi.AccountMeta, len(env.Accounts)),
		Data:      env.Data,
	}
	for i, a := range env.Accounts {
		ix.Accounts[i] = cpi.AccountMeta{PubKey: a.PubKey, IsSigner: a.IsSigner, IsWritable: a.IsWritable}
	}
	seeds := make([]cpi.Signer, len(env.Seeds))
	for i, s := range env.Seeds {
		seeds[i] = s
	}
	return ix, seeds, nil
}

// KafkaInvoker 将指令编码后转发到执行器 topic，同一池子的指令落在同一分区
type KafkaInvoker struct {
	producer   mq.Producer
	topic      string
	partitions uint32
	timeout    time.Duration
}

func NewKafkaInvoker(producer mq.Producer, topic string, partitions int, timeout time.Duration) *KafkaInvoker {
	return &KafkaInvoker{
		producer:   producer,
		topic:      topic,
		partitions: uint32(max(partitions, 1)),
		timeout:    timeout,
	}
}

func (k *KafkaInvoker) Invoke(ctx context.Context, ix cpi.Instruction, seeds []cpi.Signer) error {
	value, err := EncodeEnvelope(ix, seeds)
	if err != nil {
		return err
	}
	key := partitionKey(ix)
	return mq.Send(ctx, k.producer, &mq.Job{
		Topic:     k.topic,
		Partition: utils.PartitionOf(key, k.partitions),
		Key:       key[:],
		Value:     value,
	}, k.timeout)
}

// partitionKey 取第一个可写的非签名账户（通常为池子），没有时退回程序地址
func partitionKey(ix cpi.Instruction) types.Pubkey {
	for _, a := range ix.Accounts {
		if a.IsWritable && !a.IsSigner {
			return a.PubKey
		}
	}
	return ix.ProgramID
}

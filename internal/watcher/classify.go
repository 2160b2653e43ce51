package watcher

import (
	"errors"

	"dex-cpi-sol/internal/cpi"
	"dex-cpi-sol/internal/types"

	"github.com/mr-tron/base58"
	pb "github.com/rpcpool/yellowstone-grpc/examples/golang/proto"
)

// Observation 一条被识别为已注册协议调用的指令
type Observation struct {
	Slot       uint64
	Signature  string
	IxIndex    uint16
	InnerIndex uint16
	Dex        int
	Protocol   string
	Variant    string
	Accounts   []types.Pubkey
	Data       []byte
}

// Classifier 根据注册表识别交易中的协议指令
type Classifier struct {
	registry *cpi.Registry
}

func NewClassifier(registry *cpi.Registry) *Classifier {
	return &Classifier{registry: registry}
}

// ClassifyTx 返回识别成功的指令，以及属于已注册程序但无法识别版本的数量。
// 未注册程序的指令直接忽略。
func (c *Classifier) ClassifyTx(slot uint64, tx *pb.SubscribeUpdateTransactionInfo) ([]Observation, int, error) {
	ixs, err := FlattenInstructions(tx)
	if err != nil {
		return nil, 0, err
	}

	var (
		out      []Observation
		misses   int
		sigCache string
	)
	for _, ix := range ixs {
		if _, ok := c.registry.Lookup(ix.ProgramID); !ok {
			continue
		}
		cls, err := c.registry.Classify(ix.ProgramID, ix.Data, len(ix.Accounts))
		if err != nil {
			if errors.Is(err, cpi.ErrUnrecognizedVariant) {
				misses++
				continue
			}
			return nil, misses, err
		}
		if sigCache == "" {
			sigCache = base58.Encode(tx.Transaction.Signatures[0])
		}
		out = append(out, Observation{
			Slot:       slot,
			Signature:  sigCache,
			IxIndex:    ix.IxIndex,
			InnerIndex: ix.InnerIndex,
			Dex:        cls.Program.Dex(),
			Protocol:   cls.Program.Name(),
			Variant:    cls.Variant.Name,
			Accounts:   ix.Accounts,
			Data:       ix.Data,
		})
	}
	return out, misses, nil
}

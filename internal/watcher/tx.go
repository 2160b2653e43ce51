package watcher

import (
	"errors"
	"fmt"

	"dex-cpi-sol/internal/types"

	pb "github.com/rpcpool/yellowstone-grpc/examples/golang/proto"
)

// ObservedInstruction 交易中展开后的一条指令（主指令或 inner 指令）
type ObservedInstruction struct {
	IxIndex    uint16
	InnerIndex uint16 // 0 为主指令，inner 指令从 1 开始
	ProgramID  types.Pubkey
	Accounts   []types.Pubkey
	Data       []byte
}

func validateTx(tx *pb.SubscribeUpdateTransactionInfo) error {
	if tx == nil {
		return errors.New("nil transaction info")
	}
	if tx.Transaction == nil || tx.Transaction.Message == nil {
		return errors.New("missing transaction message")
	}
	if len(tx.Transaction.Signatures) == 0 || len(tx.Transaction.Signatures[0]) != 64 {
		return errors.New("missing or invalid transaction signature")
	}
	if tx.IsVote {
		return errors.New("vote transaction skipped")
	}
	if tx.Meta == nil {
		return errors.New("missing transaction meta data")
	}
	if tx.Meta.Err != nil {
		return fmt.Errorf("transaction execution failed: %v", tx.Meta.Err)
	}
	return nil
}

// buildFullAccountKeys 拼接 message.accountKeys 与 lookup table 中的 writable / readonly 地址
func buildFullAccountKeys(accountKeys, loadedWritable, loadedReadonly [][]byte) ([]types.Pubkey, error) {
	pubkeys := make([]types.Pubkey, 0, len(accountKeys)+len(loadedWritable)+len(loadedReadonly))
	for _, part := range [][][]byte{accountKeys, loadedWritable, loadedReadonly} {
		for _, b := range part {
			p, ok := types.PubkeyFromBytes(b)
			if !ok {
				return nil, fmt.Errorf("invalid pubkey at index %d", len(pubkeys))
			}
			pubkeys = append(pubkeys, p)
		}
	}
	return pubkeys, nil
}

func resolve(keys []types.Pubkey, programIdx uint32, accountIdx []byte) (types.Pubkey, []types.Pubkey, error) {
	if int(programIdx) >= len(keys) {
		return types.Pubkey{}, nil, fmt.Errorf("program index out of range: %d", programIdx)
	}
	accounts := make([]types.Pubkey, len(accountIdx))
	for i, idx := range accountIdx {
		if int(idx) >= len(keys) {
			return types.Pubkey{}, nil, fmt.Errorf("account index out of range: %d", idx)
		}
		accounts[i] = keys[idx]
	}
	return keys[programIdx], accounts, nil
}

// FlattenInstructions 将主指令与 inner 指令按执行顺序展开
func FlattenInstructions(tx *pb.SubscribeUpdateTransactionInfo) ([]ObservedInstruction, error) {
	if err := validateTx(tx); err != nil {
		return nil, err
	}
	keys, err := buildFullAccountKeys(
		tx.Transaction.Message.AccountKeys,
		tx.Meta.LoadedWritableAddresses,
		tx.Meta.LoadedReadonlyAddresses,
	)
	if err != nil {
		return nil, err
	}

	rawInstructions := tx.Transaction.Message.Instructions
	rawInners := tx.Meta.InnerInstructions
	out := make([]ObservedInstruction, 0, max(len(rawInstructions)*2, 16))
	innerIndex := 0

	for i, inst := range rawInstructions {
		program, accounts, err := resolve(keys, inst.ProgramIdIndex, inst.Accounts)
		if err != nil {
			return nil, err
		}
		out = append(out, ObservedInstruction{
			IxIndex:   uint16(i),
			ProgramID: program,
			Accounts:  accounts,
			Data:      inst.Data,
		})

		// inner 列表按主指令索引递增排列，顺序匹配即可
		if innerIndex < len(rawInners) && int(rawInners[innerIndex].Index) == i {
			for j, inner := range rawInners[innerIndex].Instructions {
				program, accounts, err := resolve(keys, inner.ProgramIdIndex, inner.Accounts)
				if err != nil {
					return nil, err
				}
				out = append(out, ObservedInstruction{
					IxIndex:    uint16(i),
					InnerIndex: uint16(j + 1),
					ProgramID:  program,
					Accounts:   accounts,
					Data:       inner.Data,
				})
			}
			innerIndex++
		}
	}
	return out, nil
}

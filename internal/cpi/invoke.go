package cpi

import (
	"context"
	"errors"

	"dex-cpi-sol/internal/pkg/logger"
)

// Signer 程序派生地址的签名种子
type Signer [][]byte

// Invoker 由宿主环境提供的指令执行器
type Invoker interface {
	Invoke(ctx context.Context, ix Instruction, signers []Signer) error
}

// InvokerFunc 函数适配器
type InvokerFunc func(ctx context.Context, ix Instruction, signers []Signer) error

func (f InvokerFunc) Invoke(ctx context.Context, ix Instruction, signers []Signer) error {
	return f(ctx, ix, signers)
}

var errNilInvoker = errors.New("nil invoker")

// Invoke 将指令交给执行器。失败原样包装为 *InvocationError 返回，不重试、不解释。
func Invoke(ctx context.Context, inv Invoker, ix Instruction, signers ...Signer) error {
	if inv == nil {
		return &InvocationError{Program: ix.ProgramID, Err: errNilInvoker}
	}
	if err := inv.Invoke(ctx, ix, signers); err != nil {
		logger.Debugf("[CPI:Invoke] 调用失败: program=%s, accounts=%d, err=%v", ix.ProgramID, len(ix.Accounts), err)
		return &InvocationError{Program: ix.ProgramID, Err: err}
	}
	return nil
}

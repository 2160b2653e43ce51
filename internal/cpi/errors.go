package cpi

import (
	"errors"
	"fmt"

	"dex-cpi-sol/internal/codec"
	"dex-cpi-sol/internal/layout"
	"dex-cpi-sol/internal/types"
)

var (
	// ErrLayoutMismatch 缓冲区或布局定义不匹配
	ErrLayoutMismatch = layout.ErrLayoutMismatch
	// ErrKeysetWidth 密钥组宽度与字段宽度不一致
	ErrKeysetWidth = codec.ErrKeysetWidth
	// ErrPayloadSize 指令数据长度与固定长度不符
	ErrPayloadSize = codec.ErrPayloadSize

	ErrSchemaArity         = errors.New("schema arity mismatch")
	ErrUnrecognizedVariant = errors.New("unrecognized variant")
	ErrInvocationFailed    = errors.New("invocation failed")
	ErrUnknownDirection    = errors.New("unknown direction")
)

// SchemaError 账户列表构造失败，属于调用方编程错误
type SchemaError struct {
	Schema string
	Role   string // 为空表示数量不符
	Got    int
	Want   int
}

func (e *SchemaError) Error() string {
	if e.Role == "" {
		return fmt.Sprintf("%s: %s: got %d accounts, want %d", ErrSchemaArity, e.Schema, e.Got, e.Want)
	}
	return fmt.Sprintf("%s: %s: role %q missing", ErrSchemaArity, e.Schema, e.Role)
}

func (e *SchemaError) Unwrap() error { return ErrSchemaArity }

// InvocationError 包装调用方执行器返回的错误，不做解释
type InvocationError struct {
	Program types.Pubkey
	Err     error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("%s: program=%s: %v", ErrInvocationFailed, e.Program, e.Err)
}

func (e *InvocationError) Unwrap() []error { return []error{ErrInvocationFailed, e.Err} }

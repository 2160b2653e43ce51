package layout

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sort"

	"dex-cpi-sol/internal/codec"
	"dex-cpi-sol/internal/types"
)

// ErrLayoutMismatch 布局定义非法，或缓冲区与布局不匹配
var ErrLayoutMismatch = errors.New("layout mismatch")

// Field 描述账户数据中的一个定长字段
type Field struct {
	Name       string
	Offset     int
	Width      int
	Obfuscated bool // 为 true 时读取后需经 Keyset 解码
}

func (f Field) end() int { return f.Offset + f.Width }

// Layout 某协议账户数据的定长字段表，构造后只读
type Layout struct {
	name    string
	minSize int
	keyset  codec.Keyset
	fields  map[string]Field
}

// New 构造布局并校验：字段不重叠、minSize 覆盖所有字段、混淆字段宽度与密钥组一致
func New(name string, minSize int, keyset codec.Keyset, fields ...Field) (*Layout, error) {
	sorted := make([]Field, len(fields))
	copy(sorted, fields)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Offset < sorted[j].Offset })

	l := &Layout{
		name:    name,
		minSize: minSize,
		keyset:  keyset,
		fields:  make(map[string]Field, len(fields)),
	}
	for i, f := range sorted {
		if f.Name == "" || f.Offset < 0 || f.Width <= 0 {
			return nil, fmt.Errorf("%w: %s.%s invalid field", ErrLayoutMismatch, name, f.Name)
		}
		if _, dup := l.fields[f.Name]; dup {
			return nil, fmt.Errorf("%w: %s.%s duplicated", ErrLayoutMismatch, name, f.Name)
		}
		if i > 0 && sorted[i-1].end() > f.Offset {
			return nil, fmt.Errorf("%w: %s.%s overlaps %s", ErrLayoutMismatch, name, f.Name, sorted[i-1].Name)
		}
		if f.end() > minSize {
			return nil, fmt.Errorf("%w: %s.%s ends at %d beyond min_size %d", ErrLayoutMismatch, name, f.Name, f.end(), minSize)
		}
		if f.Obfuscated && f.Width != keyset.Width() {
			return nil, fmt.Errorf("%w: %s.%s width=%d, keyset=%d", codec.ErrKeysetWidth, name, f.Name, f.Width, keyset.Width())
		}
		l.fields[f.Name] = f
	}
	return l, nil
}

// MustNew 用于编译期常量布局，定义错误直接 panic
func MustNew(name string, minSize int, keyset codec.Keyset, fields ...Field) *Layout {
	l, err := New(name, minSize, keyset, fields...)
	if err != nil {
		panic(err)
	}
	return l
}

func (l *Layout) Name() string { return l.name }

func (l *Layout) MinSize() int { return l.minSize }

// Available 缓冲区是否达到最小长度
func (l *Layout) Available(buf []byte) bool { return len(buf) >= l.minSize }

// Lookup 返回字段定义
func (l *Layout) Lookup(name string) (Field, bool) {
	f, ok := l.fields[name]
	return f, ok
}

// Field 读取字段原始字节（已解码）的拷贝。
// 缓冲区不足 minSize 或不足 offset+width 时返回 false，表示“数据尚不可用”。
func (l *Layout) Field(buf []byte, name string) ([]byte, bool) {
	f, ok := l.fields[name]
	if !ok || len(buf) < l.minSize || len(buf) < f.end() {
		return nil, false
	}
	out := make([]byte, f.Width)
	copy(out, buf[f.Offset:f.end()])
	if f.Obfuscated {
		if err := l.keyset.Transform(out, out); err != nil {
			return nil, false
		}
	}
	return out, true
}

func (l *Layout) Pubkey(buf []byte, name string) (types.Pubkey, bool) {
	b, ok := l.Field(buf, name)
	if !ok {
		return types.Pubkey{}, false
	}
	return types.PubkeyFromBytes(b)
}

func (l *Layout) Uint64(buf []byte, name string) (uint64, bool) {
	b, ok := l.Field(buf, name)
	if !ok || len(b) != 8 {
		return 0, false
	}
	return binary.LittleEndian.Uint64(b), true
}

func (l *Layout) Uint8(buf []byte, name string) (uint8, bool) {
	b, ok := l.Field(buf, name)
	if !ok || len(b) != 1 {
		return 0, false
	}
	return b[0], true
}

// TagSet 账户首字节类型标签的已知集合
type TagSet struct {
	tags map[uint8]struct{}
}

func NewTagSet(tags ...uint8) TagSet {
	m := make(map[uint8]struct{}, len(tags))
	for _, t := range tags {
		m[t] = struct{}{}
	}
	return TagSet{tags: m}
}

// Known 未知标签返回 false，由调用方按“未识别”处理
func (s TagSet) Known(tag uint8) bool {
	_, ok := s.tags[tag]
	return ok
}

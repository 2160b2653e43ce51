package config

import (
	"errors"
	"fmt"
	"os"

	"dex-cpi-sol/internal/types"

	"github.com/mr-tron/base58"
	"gopkg.in/yaml.v3"
)

// Capture 一条链上抓取的原始指令，用于原样重放（raw payload 逃生通道）
type Capture struct {
	Name     string   `yaml:"name"`
	Dex      string   `yaml:"dex"`      // 协议名，对应 consts.DexNames
	Variant  string   `yaml:"variant"`  // 指令版本名
	Accounts []string `yaml:"accounts"` // 按账户表顺序，base58；超出部分作为追加账户
	Data     string   `yaml:"data"`     // 指令数据，base58（与浏览器展示一致）
}

type captureFile struct {
	Captures []Capture `yaml:"captures"`
}

var ErrEmptyCaptures = errors.New("no captures")

// LoadCaptures 读取 yaml 样本文件
func LoadCaptures(path string) ([]Capture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCaptures(raw)
}

func ParseCaptures(raw []byte) ([]Capture, error) {
	var f captureFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse captures: %w", err)
	}
	if len(f.Captures) == 0 {
		return nil, ErrEmptyCaptures
	}
	for i, c := range f.Captures {
		if c.Dex == "" || c.Variant == "" {
			return nil, fmt.Errorf("capture #%d (%s): dex and variant are required", i, c.Name)
		}
	}
	return f.Captures, nil
}

// Decode 解析账户地址与指令数据
func (c *Capture) Decode() ([]types.Pubkey, []byte, error) {
	addrs := make([]types.Pubkey, len(c.Accounts))
	for i, s := range c.Accounts {
		pk, err := types.TryPubkeyFromBase58(s)
		if err != nil {
			return nil, nil, fmt.Errorf("capture %s: account #%d: %w", c.Name, i, err)
		}
		addrs[i] = pk
	}
	data, err := base58.Decode(c.Data)
	if err != nil {
		return nil, nil, fmt.Errorf("capture %s: data: %w", c.Name, err)
	}
	return addrs, data, nil
}

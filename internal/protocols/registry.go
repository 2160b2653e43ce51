package protocols

import (
	"sync"

	"dex-cpi-sol/internal/cpi"
	"dex-cpi-sol/internal/pkg/logger"
	"dex-cpi-sol/internal/protocols/humidifi"
	"dex-cpi-sol/internal/protocols/meteoradlmm"
	"dex-cpi-sol/internal/protocols/orcawhirlpool"
	"dex-cpi-sol/internal/protocols/pumpfun"
	"dex-cpi-sol/internal/protocols/pumpfunamm"
	"dex-cpi-sol/internal/protocols/raydiumclmm"
	"dex-cpi-sol/internal/protocols/raydiumcpmm"
	"dex-cpi-sol/internal/protocols/raydiumv4"
	"dex-cpi-sol/internal/protocols/solfiv2"
	"dex-cpi-sol/internal/types"
)

var (
	once     sync.Once
	registry *cpi.Registry
)

// Init 构造协议注册表，所有协议在此登记，之后只读
func Init() {
	once.Do(func() {
		r, err := cpi.NewRegistry(
			humidifi.Program,
			solfiv2.Program,
			raydiumv4.Program,
			raydiumcpmm.Program,
			raydiumclmm.Program,
			pumpfun.Program,
			pumpfunamm.Program,
			meteoradlmm.Program,
			orcawhirlpool.Program,
		)
		if err != nil {
			// 编译期常量重复，属于代码错误
			panic(err)
		}
		registry = r
		logger.Infof("[Protocols:Init] 已注册协议: count=%d", len(r.Programs()))
	})
}

func Registry() *cpi.Registry {
	Init()
	return registry
}

// IsSupported 判断地址是否为已注册的外部程序
func IsSupported(addr types.Pubkey) bool {
	_, ok := Registry().Lookup(addr)
	return ok
}

// Classify 识别观测到的指令，未命中时返回 ErrUnrecognizedVariant
func Classify(programID types.Pubkey, data []byte, nAccounts int) (cpi.Classification, error) {
	return Registry().Classify(programID, data, nAccounts)
}

// ProgramByName 按协议名（consts.DexNames）查找，大小写敏感
func ProgramByName(name string) (*cpi.Program, bool) {
	for _, p := range Registry().Programs() {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

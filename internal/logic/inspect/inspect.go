package inspect

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"dex-cpi-sol/internal/accountsource"
	"dex-cpi-sol/internal/consts"
	"dex-cpi-sol/internal/cpi"
	"dex-cpi-sol/internal/layout"
	"dex-cpi-sol/internal/protocols"
	"dex-cpi-sol/internal/protocols/humidifi"
	"dex-cpi-sol/internal/protocols/orcawhirlpool"
	"dex-cpi-sol/internal/protocols/pumpfun"
	"dex-cpi-sol/internal/protocols/pumpfunamm"
	"dex-cpi-sol/internal/protocols/solfiv2"
	"dex-cpi-sol/internal/types"
)

var (
	ErrUnsupportedDex = errors.New("pool inspection not supported")
	ErrAccountMissing = errors.New("account not found")
	ErrInvalidTarget  = errors.New("invalid inspect target")
)

// Target 待解析的池子，配置与命令行中写作 <dex>:<address>
type Target struct {
	Dex  int
	Pool types.Pubkey
}

func (t Target) String() string { return consts.DexName(t.Dex) + ":" + t.Pool.String() }

func ParseTarget(s string) (Target, error) {
	name, addr, ok := strings.Cut(s, ":")
	if !ok {
		return Target{}, fmt.Errorf("%w: %q", ErrInvalidTarget, s)
	}
	p, ok := protocols.ProgramByName(name)
	if !ok {
		return Target{}, fmt.Errorf("%w: unknown dex %q", ErrInvalidTarget, name)
	}
	pool, err := types.TryPubkeyFromBase58(addr)
	if err != nil {
		return Target{}, fmt.Errorf("%w: pool %q: %v", ErrInvalidTarget, addr, err)
	}
	return Target{Dex: p.Dex(), Pool: pool}, nil
}

type Field struct {
	Key   string
	Value string
}

// Report 池子账户的解析结果，Vaults 为需要读取余额的 token 账户
type Report struct {
	Dex    string
	Pool   types.Pubkey
	Fields []Field
	Vaults []types.Pubkey
}

func (r *Report) add(key, value string) {
	r.Fields = append(r.Fields, Field{Key: key, Value: value})
}

// Inspect 读取池子账户并解析，再读取 vault 余额
func Inspect(ctx context.Context, src accountsource.Source, dex int, pool types.Pubkey) (*Report, error) {
	parse, ok := parsers[dex]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDex, consts.DexName(dex))
	}

	data, err := fetchOne(ctx, src, pool)
	if err != nil {
		return nil, err
	}
	r := &Report{Dex: consts.DexName(dex), Pool: pool}
	if err := parse(r, data); err != nil {
		return nil, err
	}
	if len(r.Vaults) == 0 {
		return r, nil
	}

	vaults, err := src.GetAccounts(ctx, r.Vaults)
	if err != nil {
		return nil, err
	}
	for i, v := range vaults {
		if bal, ok := layout.TokenAccountBalance(v); ok {
			r.add("reserve:"+r.Vaults[i].String(), strconv.FormatUint(bal, 10))
		}
	}
	return r, nil
}

func fetchOne(ctx context.Context, src accountsource.Source, addr types.Pubkey) ([]byte, error) {
	out, err := src.GetAccounts(ctx, []types.Pubkey{addr})
	if err != nil {
		return nil, err
	}
	if len(out) != 1 || out[0] == nil {
		return nil, fmt.Errorf("%w: %s", ErrAccountMissing, addr)
	}
	return out[0], nil
}

type parser func(r *Report, data []byte) error

var parsers = map[int]parser{
	consts.DexHumidiFi:      parseHumidiFi,
	consts.DexSolFiV2:       parseSolFiV2,
	consts.DexPumpfun:       parsePumpfun,
	consts.DexPumpfunAMM:    parsePumpfunAMM,
	consts.DexOrcaWhirlpool: parseWhirlpool,
}

func mismatch(name string, data []byte) error {
	return fmt.Errorf("%w: %s size=%d", cpi.ErrLayoutMismatch, name, len(data))
}

func parseHumidiFi(r *Report, data []byte) error {
	quote, ok1 := humidifi.ParseQuoteMint(data)
	base, ok2 := humidifi.ParseBaseMint(data)
	tokenAccount, ok3 := humidifi.ParseTokenAccount(data)
	if !ok1 || !ok2 || !ok3 {
		return mismatch("humidifi_pool", data)
	}
	r.add("base_mint", base.String())
	r.add("quote_mint", quote.String())
	r.add("token_account", tokenAccount.String())
	r.Vaults = []types.Pubkey{tokenAccount}
	return nil
}

func parseSolFiV2(r *Report, data []byte) error {
	tag, ok := solfiv2.ParseMarketType(data)
	if !ok {
		return mismatch("solfiv2_market", data)
	}
	base, _ := solfiv2.ParseBaseMint(data)
	quote, _ := solfiv2.ParseQuoteMint(data)
	baseVault, _ := solfiv2.ParseBaseVault(data)
	quoteVault, _ := solfiv2.ParseQuoteVault(data)
	fee, _ := solfiv2.ParseFeeRate(data)

	r.add("market_type", strconv.Itoa(int(tag)))
	r.add("market_type_known", strconv.FormatBool(solfiv2.IsKnownMarketType(tag)))
	r.add("base_mint", base.String())
	r.add("quote_mint", quote.String())
	r.add("fee_rate", strconv.FormatUint(fee, 10))
	r.Vaults = []types.Pubkey{baseVault, quoteVault}
	return nil
}

func parsePumpfun(r *Report, data []byte) error {
	complete, ok := pumpfun.IsComplete(data)
	if !ok {
		return mismatch("pumpfun_bonding_curve", data)
	}
	creator, _ := pumpfun.Creator(data)
	sol, _ := pumpfun.RealSolReserves(data)
	r.add("complete", strconv.FormatBool(complete))
	r.add("creator", creator.String())
	r.add("real_sol_reserves", strconv.FormatUint(sol, 10))
	return nil
}

func parsePumpfunAMM(r *Report, data []byte) error {
	p, ok := pumpfunamm.ParsePool(data)
	if !ok {
		return mismatch("pumpfunamm_pool", data)
	}
	r.add("base_mint", p.BaseMint.String())
	r.add("quote_mint", p.QuoteMint.String())
	r.add("coin_creator", p.CoinCreator.String())
	r.Vaults = []types.Pubkey{p.PoolBaseAccount, p.PoolQuoteAccount}
	return nil
}

func parseWhirlpool(r *Report, data []byte) error {
	p, ok := orcawhirlpool.ParseWhirlpool(data)
	if !ok {
		return mismatch("whirlpool", data)
	}
	price, _ := orcawhirlpool.ParseSqrtPrice(data)
	r.add("token_mint_a", p.TokenMintA.String())
	r.add("token_mint_b", p.TokenMintB.String())
	r.add("sqrt_price", price.String())
	r.Vaults = []types.Pubkey{p.TokenVaultA, p.TokenVaultB}
	return nil
}

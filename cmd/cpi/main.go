package main

import (
	"context"
	"flag"
	"os"
	"runtime/debug"
	"time"

	"dex-cpi-sol/internal/config"
	"dex-cpi-sol/internal/logic/inspect"
	"dex-cpi-sol/internal/logic/replay"
	"dex-cpi-sol/internal/pkg/logger"
	"dex-cpi-sol/internal/svc"

	"github.com/mr-tron/base58"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
)

var (
	configFile   = flag.String("f", "etc/cpi.yaml", "the config file")
	capturesFile = flag.String("captures", "", "override captures file in config")
	inspectPool  = flag.String("inspect", "", "inspect a pool account, format <dex>:<address>")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			logx.Errorf("panic: %+v\nstack: %s", r, debug.Stack())
		}
	}()

	flag.Parse()

	var c config.CpiConfig
	conf.MustLoad(*configFile, &c)
	if err := logger.Init(c.LogConf.ToLogOption()); err != nil {
		logx.Errorf("logger init failed: %v", err)
		os.Exit(1)
	}
	defer logger.Sync()

	serviceContext, err := svc.NewCpiServiceContext(c)
	if err != nil {
		logx.Errorf("service context init failed: %v", err)
		os.Exit(1)
	}
	defer serviceContext.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if *inspectPool != "" {
		if !runInspect(ctx, serviceContext, *inspectPool) {
			os.Exit(1)
		}
		return
	}

	path := c.Captures
	if *capturesFile != "" {
		path = *capturesFile
	}
	if path == "" {
		logx.Error("no captures file configured")
		os.Exit(1)
	}
	captures, err := config.LoadCaptures(path)
	if err != nil {
		logx.Errorf("load captures failed: %v", err)
		os.Exit(1)
	}

	results := replay.Run(ctx, serviceContext.Invoker, captures)
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	if serviceContext.Collector != nil {
		// data 与样本文件同为 base58，可直接贴回 captures
		for i, ix := range serviceContext.Collector.Take() {
			logger.Infof("[CPI] #%d program=%s accounts=%d signers=%d data=%s",
				i, ix.ProgramID, len(ix.Accounts), len(ix.Signers()), base58.Encode(ix.Data))
		}
	}
	logger.Infof("[CPI] 重放完成: total=%d, failed=%d", len(results), failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func runInspect(ctx context.Context, sc *svc.CpiServiceContext, arg string) bool {
	target, err := inspect.ParseTarget(arg)
	if err != nil {
		logx.Errorf("invalid -inspect value: %v", err)
		return false
	}

	report, err := inspect.Inspect(ctx, sc.Accounts, target.Dex, target.Pool)
	if err != nil {
		logger.Errorf("[CPI:Inspect] 解析失败: target=%s, err=%v", target, err)
		return false
	}
	for _, f := range report.Fields {
		logger.Infof("[CPI:Inspect] %s %s = %s", report.Dex, f.Key, f.Value)
	}
	return true
}

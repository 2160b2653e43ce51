package main

import (
	"flag"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"dex-cpi-sol/internal/config"
	"dex-cpi-sol/internal/pkg/logger"
	"dex-cpi-sol/internal/service"
	"dex-cpi-sol/internal/svc"
	"dex-cpi-sol/internal/watcher"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	zerosvc "github.com/zeromicro/go-zero/core/service"
)

var configFile = flag.String("f", "etc/watch.yaml", "the config file")

func main() {
	defer func() {
		if r := recover(); r != nil {
			logx.Errorf("panic: %+v\nstack: %s", r, debug.Stack())
		}
	}()

	flag.Parse()

	var c config.WatchConfig
	conf.MustLoad(*configFile, &c)
	if err := logger.Init(c.LogConf.ToLogOption()); err != nil {
		panic(err)
	}
	defer logger.Sync()

	serviceContext, err := svc.NewWatchServiceContext(c)
	if err != nil {
		panic(err)
	}
	defer serviceContext.Close()

	sg := zerosvc.NewServiceGroup()

	// 订阅账户之外再用 RPC 定期兜底刷新
	if len(serviceContext.WatchAccounts) > 0 {
		syncService, err := service.NewAccountSyncService(&c.RPC, serviceContext.Accounts, serviceContext.WatchAccounts, serviceContext.AccountCache)
		if err != nil {
			panic(err)
		}
		sg.Add(syncService)
	}

	// 池子状态从本地账户缓存读取
	if len(serviceContext.WatchPools) > 0 {
		sg.Add(service.NewPoolReportService(serviceContext.Snapshots, serviceContext.WatchPools,
			time.Duration(c.RPC.SyncIntervalS)*time.Second, time.Duration(c.RPC.TimeoutMs)*time.Millisecond))
	}

	stream, err := watcher.NewStreamManager(serviceContext.Config.Grpc, serviceContext.Registry.ProgramIDs(),
		serviceContext.Classifier, serviceContext.Sink, serviceContext.AccountCache)
	if err != nil {
		panic(err)
	}
	sg.Add(stream)

	logx.Infof("Starting watch service, programs=%d", len(serviceContext.Registry.Programs()))

	// ServiceGroup.Start 阻塞，放到后台
	go sg.Start()

	// 等待退出信号
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logx.Info("Shutting down services...")
	sg.Stop()
	for k, v := range serviceContext.Sink.Counts() {
		logger.Infof("[Watch] %s: %d", k, v)
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/application-board/internal/application"
	"github.com/darkkaiser/application-board/internal/config"
	"github.com/darkkaiser/application-board/internal/pkg/version"
	"github.com/darkkaiser/application-board/internal/service"
	"github.com/darkkaiser/application-board/internal/service/api"
	"github.com/darkkaiser/application-board/internal/service/board"
	"github.com/darkkaiser/application-board/internal/service/discord"
	"github.com/darkkaiser/application-board/internal/service/publisher"
	"github.com/darkkaiser/application-board/internal/storage"
	applog "github.com/darkkaiser/application-board/pkg/log"
)

const banner = `
     _                ____                      _
    / \   _ __  _ __ | __ )  ___   __ _ _ __ __| |
   / _ \ | '_ \| '_ \|  _ \ / _ \ / _' | '__/ _' |
  / ___ \| |_) | |_) | |_) | (_) | (_| | | | (_| |
 /_/   \_\ .__/| .__/|____/ \___/ \__,_|_|  \__,_|
         |_|   |_|                              %s
                                                        developed by DarkKaiser
--------------------------------------------------------------------------------
`

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.Load()
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		logOpts = applog.NewProductionOptions(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 봇 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	// 3. 로그 레벨 최종 확정
	applog.SetDebugMode(appConfig.Debug)

	buildInfo := version.Get()
	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields("main", applog.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("봇 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	// 서비스를 생성하고 초기화한다.
	services, err := newServices(appConfig, buildInfo)
	if err != nil {
		applog.WithComponentAndFields("main", applog.Fields{
			"error": err,
		}).Fatal("서비스 생성 실패로 프로그램을 종료합니다")
	}

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	// 서비스를 시작한다.
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", applog.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel() // 다른 서비스들도 종료
			serviceStopWG.Wait()

			applog.WithComponent("main").Fatal("서비스 초기화 실패로 프로그램을 종료합니다")
		}
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponent("main").Info("봇 가동 완료")

	<-termC

	applog.WithComponent("main").Info("종료 신호를 수신하였습니다. 서비스를 종료합니다")
	cancel()
	serviceStopWG.Wait()

	applog.WithComponent("main").Info("모든 서비스가 종료되었습니다")
}

// newServices 상태 파일을 읽어 저장소를 복원하고, 시작 순서대로 정렬된 서비스 목록을 만듭니다.
//
// 게시판 서비스가 가장 먼저 시작되어야 디스코드 Ready 이벤트에서 요청하는 최초 동기화 작업을 받을 수 있습니다.
func newServices(appConfig *config.AppConfig, buildInfo version.Info) ([]service.Service, error) {
	fileStore, err := storage.NewFileStore(appConfig.Storage.Dir)
	if err != nil {
		return nil, err
	}

	appStore, err := application.Load(fileStore.Blob(appConfig.Storage.ApplicationsFile), appConfig.Applications.Seed)
	if err != nil {
		return nil, err
	}

	ref, err := publisher.LoadReference(fileStore.Blob(appConfig.Storage.ReferenceFile))
	if err != nil {
		return nil, err
	}

	bot, err := discord.New(appConfig.Discord)
	if err != nil {
		return nil, err
	}

	boardService := board.NewService(
		appStore,
		publisher.New(bot, appConfig.Discord.ChannelID, ref),
		board.NewRoleWhitelist(appConfig.Discord.WhitelistedRoles),
		board.WithRefreshSchedule(appConfig.Summary.RefreshSchedule),
	)
	apiService := api.NewService(appConfig, boardService, bot, buildInfo)

	bot.SetDispatcher(boardService)

	return []service.Service{boardService, bot, apiService}, nil
}

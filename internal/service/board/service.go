// Package board 지원서 게시판의 모든 상호작용과 요약 메시지 동기화를 단일 워커에서 순차적으로 처리합니다.
package board

import (
	"context"
	"sync"
	"time"

	"github.com/darkkaiser/application-board/internal/application"
	apperrors "github.com/darkkaiser/application-board/internal/pkg/errors"
	"github.com/darkkaiser/application-board/pkg/cronx"
	applog "github.com/darkkaiser/application-board/pkg/log"
	"github.com/robfig/cron/v3"
)

// component board 서비스의 로깅용 컴포넌트 이름
const component = "board.service"

// defaultQueueSize 대기할 수 있는 최대 작업 수입니다. 가득 차면 새 요청을 거부합니다.
const defaultQueueSize = 32

// job 워커에서 실행할 작업 단위입니다.
type job struct {
	name string
	run  func(ctx context.Context)
}

// Status 서비스의 현재 상태입니다. (헬스체크용)
type Status struct {
	Running       bool
	QueueDepth    int
	QueueCapacity int
	Applications  int
	OpenCount     int
	LastReconcile time.Time
	LastError     string
}

// Service 지원서 저장소, 요약 메시지 동기화, 상호작용 처리를 소유하는 서비스입니다.
//
// 플랫폼 이벤트는 여러 고루틴에서 동시에 도착하지만, 모든 작업은 하나의 워커 고루틴이
// 큐에서 꺼내 한 번에 하나씩 끝까지 실행합니다. 따라서 저장소에는 별도의 락이 필요 없습니다.
type Service struct {
	store  *application.Store
	router *Router

	refreshSchedule string
	cron            *cron.Cron

	jobs chan job

	// 아래 필드는 mu로 보호됩니다.
	mu            sync.Mutex
	running       bool
	accepting     bool
	lastReconcile time.Time
	lastError     string
	openCount     int
}

// Option Service 생성 옵션입니다.
type Option func(*serviceOptions)

type serviceOptions struct {
	queueSize       int
	refreshSchedule string
	now             func() time.Time
}

// WithQueueSize 작업 큐의 크기를 지정합니다.
func WithQueueSize(n int) Option {
	return func(o *serviceOptions) {
		o.queueSize = n
	}
}

// WithRefreshSchedule 요약 메시지를 주기적으로 다시 동기화할 Cron 스케줄을 지정합니다.
func WithRefreshSchedule(spec string) Option {
	return func(o *serviceOptions) {
		o.refreshSchedule = spec
	}
}

// WithClock 요약 메시지의 갱신 시각에 사용할 시계를 지정합니다.
func WithClock(now func() time.Time) Option {
	return func(o *serviceOptions) {
		o.now = now
	}
}

// NewService 새로운 board 서비스 인스턴스를 생성합니다.
func NewService(store *application.Store, reconciler Reconciler, whitelist RoleWhitelist, opts ...Option) *Service {
	if store == nil {
		panic("application.Store는 필수입니다")
	}
	if reconciler == nil {
		panic("Reconciler는 필수입니다")
	}

	o := serviceOptions{queueSize: defaultQueueSize, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.queueSize <= 0 {
		o.queueSize = defaultQueueSize
	}

	s := &Service{
		store:  store,
		router: NewRouter(store, reconciler, whitelist, o.now),

		refreshSchedule: o.refreshSchedule,

		jobs: make(chan job, o.queueSize),

		accepting: true,
		openCount: countOpen(store),
	}
	s.router.afterReconcile = s.recordReconcile

	return s
}

// Start 워커 고루틴과 (설정된 경우) 주기적 동기화 스케줄러를 시작합니다.
//
// serviceStopCtx가 취소되면 새 작업 접수를 중단하고 이미 큐에 들어온 작업을 모두 처리한 뒤
// serviceStopWG.Done()을 호출합니다. 실행 중인 작업은 취소되지 않습니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	applog.WithComponent(component).Info("서비스 시작 진입: Board 서비스 초기화 프로세스를 시작합니다")

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("Board 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	if s.refreshSchedule != "" {
		s.cron = cron.New(
			cron.WithLogger(cron.VerbosePrintfLogger(applog.StandardLogger())),
			cron.WithChain(cron.Recover(cron.VerbosePrintfLogger(applog.StandardLogger()))),
			cron.WithParser(cronx.StandardParser()),
		)
		if _, err := s.cron.AddFunc(s.refreshSchedule, func() { s.RequestReconcile("schedule") }); err != nil {
			serviceStopWG.Done()
			return apperrors.Wrapf(err, apperrors.InvalidInput, "요약 메시지 재동기화 스케줄 등록 실패(%s)", s.refreshSchedule)
		}
		s.cron.Start()
	}

	s.running = true

	// 종료 후에도 진행 중인 게시 작업이 끊기지 않도록 취소 신호를 분리합니다.
	jobCtx := context.WithoutCancel(serviceStopCtx)

	go func() {
		defer serviceStopWG.Done()

		for {
			select {
			case j := <-s.jobs:
				s.runJob(jobCtx, j)

			case <-serviceStopCtx.Done():
				s.shutdown(jobCtx)
				return
			}
		}
	}()

	applog.WithComponentAndFields(component, applog.Fields{
		"queue_size":       cap(s.jobs),
		"refresh_schedule": s.refreshSchedule,
		"applications":     s.store.Len(),
	}).Info("서비스 시작 완료: Board 서비스가 정상적으로 초기화되었습니다")

	return nil
}

// shutdown 새 작업 접수를 중단하고 큐에 남은 작업을 모두 처리합니다.
func (s *Service) shutdown(ctx context.Context) {
	applog.WithComponent(component).Info("서비스 종료 진입: 대기 중인 작업을 처리한 후 종료합니다")

	s.mu.Lock()
	s.accepting = false
	s.mu.Unlock()

	if s.cron != nil {
		<-s.cron.Stop().Done()
	}

	drained := 0
	for {
		select {
		case j := <-s.jobs:
			s.runJob(ctx, j)
			drained++
		default:
			s.mu.Lock()
			s.running = false
			s.mu.Unlock()

			applog.WithComponentAndFields(component, applog.Fields{
				"drained_jobs": drained,
			}).Info("서비스 종료 완료: Board 서비스가 정상적으로 종료되었습니다")
			return
		}
	}
}

// enqueue 작업을 큐에 넣습니다. 종료 중이거나 큐가 가득 차면 false를 반환합니다.
func (s *Service) enqueue(j job) (accepted bool, shuttingDown bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.accepting {
		return false, true
	}

	select {
	case s.jobs <- j:
		return true, false
	default:
		applog.WithComponentAndFields(component, applog.Fields{
			"job":            j.name,
			"queue_capacity": cap(s.jobs),
			"queue_depth":    len(s.jobs),
		}).Warn("작업 큐 용량 초과로 요청 거부됨: 빈번 발생 시 큐 크기 증가 검토 필요")

		return false, false
	}
}

// Dispatch 상호작용을 큐에 넣습니다. 큐에 넣지 못하면 호출한 고루틴에서 즉시 거부 응답을 보냅니다.
func (s *Service) Dispatch(ctx context.Context, in Interaction, resp Responder) bool {
	accepted, shuttingDown := s.enqueue(job{
		name: in.Kind.String(),
		run: func(jobCtx context.Context) {
			s.router.Handle(jobCtx, in, resp)
			s.refreshCounters()
		},
	})
	if accepted {
		return true
	}

	msg := msgBusy
	if shuttingDown {
		msg = msgShuttingDown
	}
	if err := resp.Reply(ctx, msg); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"kind":    in.Kind.String(),
			"user_id": in.UserID,
			"error":   err,
		}).Error("상호작용 거부 응답 전송 실패")
	}

	return false
}

// RequestReconcile 요약 메시지 동기화 작업을 큐에 넣습니다.
func (s *Service) RequestReconcile(reason string) bool {
	accepted, _ := s.enqueue(job{
		name: "reconcile:" + reason,
		run: func(ctx context.Context) {
			_ = s.router.Reconcile(ctx)
		},
	})
	return accepted
}

// Status 서비스의 현재 상태를 반환합니다.
func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Status{
		Running:       s.running,
		QueueDepth:    len(s.jobs),
		QueueCapacity: cap(s.jobs),
		Applications:  s.store.Len(),
		OpenCount:     s.openCount,
		LastReconcile: s.lastReconcile,
		LastError:     s.lastError,
	}
}

func (s *Service) runJob(ctx context.Context, j job) {
	defer func() {
		if r := recover(); r != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"job":   j.name,
				"panic": r,
			}).Error("작업 실행 중 패닉 발생: 워커는 계속 동작합니다")
		}
	}()

	j.run(ctx)
}

func (s *Service) recordReconcile(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastReconcile = s.router.now()
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.lastError = ""
	}
}

// refreshCounters 헬스체크용 집계 값을 갱신합니다. 워커 고루틴에서만 호출됩니다.
func (s *Service) refreshCounters() {
	n := countOpen(s.store)

	s.mu.Lock()
	s.openCount = n
	s.mu.Unlock()
}

func countOpen(store *application.Store) int {
	n := 0
	for _, r := range store.Records() {
		if r.IsOpen() {
			n++
		}
	}
	return n
}

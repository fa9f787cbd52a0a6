package discord

import (
	"context"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/darkkaiser/application-board/internal/config"
	"github.com/darkkaiser/application-board/internal/service/board"
	applog "github.com/darkkaiser/application-board/pkg/log"
)

// Dispatcher 변환된 상호작용과 동기화 요청을 받아 처리하는 대상입니다. (board.Service)
type Dispatcher interface {
	Dispatch(ctx context.Context, in board.Interaction, resp board.Responder) bool
	RequestReconcile(reason string) bool
}

// Bot 디스코드 게이트웨이 연결과 REST 호출을 담당합니다.
//
// publisher.Platform을 구현하므로 board 서비스보다 먼저 생성하고,
// board 서비스를 만든 뒤 SetDispatcher로 연결합니다.
type Bot struct {
	session session

	appID       string
	guildID     string
	commandName string

	dispatcher Dispatcher

	removeHandlers []func()

	// 아래 필드는 mu로 보호됩니다.
	mu      sync.Mutex
	running bool
	self    *discordgo.User
}

// New 설정값으로 디스코드 세션을 만들고 Bot을 생성합니다. 연결은 Start에서 이루어집니다.
func New(cfg config.DiscordConfig) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, NewErrSessionFailed(err, "생성")
	}
	s.Identify.Intents = discordgo.IntentsGuilds

	return newBot(s, cfg), nil
}

func newBot(s session, cfg config.DiscordConfig) *Bot {
	return &Bot{
		session: s,

		appID:       cfg.ClientID,
		guildID:     cfg.GuildID,
		commandName: cfg.CommandName,
	}
}

// SetDispatcher 상호작용을 전달할 대상을 지정합니다. Start 이전에 호출해야 합니다.
func (b *Bot) SetDispatcher(d Dispatcher) {
	b.dispatcher = d
}

// Start 이벤트 핸들러를 등록하고 게이트웨이에 연결한 뒤 슬래시 명령어를 등록합니다.
//
// serviceStopCtx가 취소되면 핸들러를 해제하고 연결을 닫은 뒤 serviceStopWG.Done()을 호출합니다.
func (b *Bot) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	applog.WithComponent(component).Info("서비스 시작 진입: Discord 서비스 초기화 프로세스를 시작합니다")

	if b.dispatcher == nil {
		defer serviceStopWG.Done()
		return ErrDispatcherNotInitialized
	}

	if b.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("Discord 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	b.removeHandlers = []func(){
		b.session.AddHandler(b.onReady),
		b.session.AddHandler(b.onInteractionCreate),
	}

	if err := b.session.Open(); err != nil {
		b.detachHandlers()
		serviceStopWG.Done()
		return NewErrSessionFailed(err, "연결")
	}

	if _, err := b.session.ApplicationCommandBulkOverwrite(b.appID, b.guildID, commands(b.commandName)); err != nil {
		b.detachHandlers()
		_ = b.session.Close()
		serviceStopWG.Done()
		return NewErrCommandRegistrationFailed(err, b.guildID)
	}

	b.running = true

	go b.waitForShutdown(serviceStopCtx, serviceStopWG)

	applog.WithComponentAndFields(component, applog.Fields{
		"guild_id": b.guildID,
		"command":  "/" + b.commandName,
	}).Info("서비스 시작 완료: Discord 서비스가 정상적으로 초기화되었습니다")

	return nil
}

func (b *Bot) waitForShutdown(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	<-serviceStopCtx.Done()

	applog.WithComponent(component).Info("서비스 종료 진입: Discord 연결을 종료합니다")

	b.mu.Lock()
	defer b.mu.Unlock()

	b.detachHandlers()
	if err := b.session.Close(); err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err,
		}).Warn("Discord 세션 종료 중 에러 발생")
	}
	b.running = false

	applog.WithComponent(component).Info("서비스 종료 완료: Discord 서비스가 정상적으로 종료되었습니다")
}

func (b *Bot) detachHandlers() {
	for _, remove := range b.removeHandlers {
		remove()
	}
	b.removeHandlers = nil
}

// Running 게이트웨이에 연결되어 있는지 여부를 반환합니다.
func (b *Bot) Running() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.running
}

func (b *Bot) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	b.mu.Lock()
	b.self = r.User
	b.mu.Unlock()

	fields := applog.Fields{"guilds": len(r.Guilds)}
	if r.User != nil {
		fields["bot_user"] = r.User.Username
	}
	applog.WithComponentAndFields(component, fields).Info("Discord 게이트웨이 연결 완료")

	// 연결될 때마다 요약 메시지를 현재 상태로 맞춥니다. (재연결 포함)
	if !b.dispatcher.RequestReconcile("ready") {
		applog.WithComponent(component).Warn("요약 메시지 동기화 요청이 거부되었습니다")
	}
}

func (b *Bot) onInteractionCreate(_ *discordgo.Session, i *discordgo.InteractionCreate) {
	if i == nil || i.Interaction == nil {
		return
	}

	in, ok := decodeInteraction(i.Interaction, b.commandName)
	if !ok {
		applog.WithComponentAndFields(component, applog.Fields{
			"interaction_type": i.Type.String(),
		}).Debug("처리 대상이 아닌 상호작용을 무시합니다")
		return
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"kind":        in.Kind.String(),
		"user_id":     in.UserID,
		"application": in.Application,
	}).Debug("상호작용 수신")

	ctx := context.Background()
	resp := &responder{session: b.session, interaction: i.Interaction}

	// 입력 폼은 첫 응답으로만 띄울 수 있으므로 지원서 열기 선택을 제외한 상호작용은 지연 응답을 먼저 보냅니다.
	if in.Kind != board.KindOpenSelected {
		if err := deferResponse(ctx, b.session, i.Interaction); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"kind":    in.Kind.String(),
				"user_id": in.UserID,
				"error":   err,
			}).Warn("지연 응답 전송 실패: 즉시 응답으로 처리합니다")
		} else {
			resp.deferred = true
		}
	}

	b.dispatcher.Dispatch(ctx, in, resp)
}

// avatarURL 봇 계정의 아바타 주소를 반환합니다. 게이트웨이 연결 전이면 빈 문자열입니다.
func (b *Bot) avatarURL() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.self == nil {
		return ""
	}
	return b.self.AvatarURL("")
}

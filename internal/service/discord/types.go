// Package discord 디스코드 게이트웨이 및 REST API와 board 서비스를 연결하는 어댑터입니다.
//
// 수신한 상호작용 이벤트는 board.Interaction으로 변환하여 board 서비스의 큐에 넣고,
// 요약 메시지 게시(publisher.Platform)와 상호작용 응답(board.Responder)을 디스코드 API로 수행합니다.
package discord

import (
	"github.com/bwmarrin/discordgo"
)

// component 디스코드 어댑터의 로깅용 컴포넌트 이름
const component = "discord"

const (
	subcommandOpen  = "open"
	subcommandClose = "close"

	// maxOptionLabel 선택 메뉴 항목 라벨의 최대 길이입니다.
	maxOptionLabel = 100
)

// session 디스코드 세션과의 통신을 추상화한 인터페이스입니다.
type session interface {
	// 연결 관리
	Open() error
	Close() error
	AddHandler(handler interface{}) func()

	// 명령어 등록
	ApplicationCommandBulkOverwrite(appID, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)

	// 메시지 게시
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessage(channelID, messageID string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEditEmbed(channelID, messageID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)

	// 상호작용 응답
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// 인터페이스 준수 확인
var _ session = (*discordgo.Session)(nil)

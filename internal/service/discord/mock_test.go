package discord

import (
	"context"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/darkkaiser/application-board/internal/config"
	"github.com/darkkaiser/application-board/internal/service/board"
	"github.com/stretchr/testify/mock"
)

const (
	testAppID     = "100000000000000001"
	testGuildID   = "200000000000000002"
	testChannelID = "300000000000000003"
	testRoleID    = "400000000000000004"
	testUserID    = "500000000000000005"
)

// 컴파일 타임에 session 인터페이스 구현 여부를 검증합니다.
var _ session = (*mockSession)(nil)

// mockSession 디스코드 세션의 Mock 구현체입니다.
type mockSession struct {
	mock.Mock
}

func newMockSession(t *testing.T) *mockSession {
	m := &mockSession{}
	m.Test(t)
	return m
}

func (m *mockSession) Open() error {
	return m.Called().Error(0)
}

func (m *mockSession) Close() error {
	return m.Called().Error(0)
}

func (m *mockSession) AddHandler(handler interface{}) func() {
	args := m.Called(handler)
	if fn, ok := args.Get(0).(func()); ok {
		return fn
	}
	return func() {}
}

func (m *mockSession) ApplicationCommandBulkOverwrite(appID, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
	args := m.Called(appID, guildID, commands)
	if cmds, ok := args.Get(0).([]*discordgo.ApplicationCommand); ok {
		return cmds, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSession) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	args := m.Called(channelID, embed)
	if msg, ok := args.Get(0).(*discordgo.Message); ok {
		return msg, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSession) ChannelMessage(channelID, messageID string, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	args := m.Called(channelID, messageID)
	if msg, ok := args.Get(0).(*discordgo.Message); ok {
		return msg, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSession) ChannelMessageEditEmbed(channelID, messageID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	args := m.Called(channelID, messageID, embed)
	if msg, ok := args.Get(0).(*discordgo.Message); ok {
		return msg, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSession) InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error {
	return m.Called(interaction, resp).Error(0)
}

func (m *mockSession) FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	args := m.Called(interaction, wait, data)
	if msg, ok := args.Get(0).(*discordgo.Message); ok {
		return msg, args.Error(1)
	}
	return nil, args.Error(1)
}

// mockDispatcher Dispatcher의 Mock 구현체입니다.
type mockDispatcher struct {
	mock.Mock
}

func (m *mockDispatcher) Dispatch(ctx context.Context, in board.Interaction, resp board.Responder) bool {
	return m.Called(ctx, in, resp).Bool(0)
}

func (m *mockDispatcher) RequestReconcile(reason string) bool {
	return m.Called(reason).Bool(0)
}

func testDiscordConfig() config.DiscordConfig {
	return config.DiscordConfig{
		Token:            "test-token",
		ClientID:         testAppID,
		GuildID:          testGuildID,
		ChannelID:        testChannelID,
		WhitelistedRoles: []string{testRoleID},
		CommandName:      "application",
	}
}

func unknownMessageError() error {
	return &discordgo.RESTError{
		Response:     &http.Response{Status: "404 Not Found", StatusCode: http.StatusNotFound},
		ResponseBody: []byte(`{"message":"Unknown Message","code":10008}`),
		Message:      &discordgo.APIErrorMessage{Code: discordgo.ErrCodeUnknownMessage, Message: "Unknown Message"},
	}
}

func serverError() error {
	return &discordgo.RESTError{
		Response:     &http.Response{Status: "500 Internal Server Error", StatusCode: http.StatusInternalServerError},
		ResponseBody: []byte(`{"message":"oops"}`),
	}
}

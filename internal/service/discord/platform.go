package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/darkkaiser/application-board/internal/service/publisher"
	"github.com/darkkaiser/application-board/internal/summary"
)

// 인터페이스 준수 확인
var _ publisher.Platform = (*Bot)(nil)

// SendMessage 요약 메시지를 채널에 새로 게시합니다.
func (b *Bot) SendMessage(ctx context.Context, channelID string, doc summary.Document) (publisher.MessageRef, error) {
	msg, err := b.session.ChannelMessageSendEmbed(channelID, toEmbed(doc, b.avatarURL()), discordgo.WithContext(ctx))
	if err != nil {
		return "", classifyAPIError(err, "메시지 게시")
	}
	return publisher.MessageRef(msg.ID), nil
}

// FetchMessage 메시지가 아직 존재하는지 확인합니다.
func (b *Bot) FetchMessage(ctx context.Context, channelID string, ref publisher.MessageRef) error {
	_, err := b.session.ChannelMessage(channelID, string(ref), discordgo.WithContext(ctx))
	return classifyAPIError(err, "메시지 조회")
}

// EditMessage 기존 메시지의 내용을 doc으로 교체합니다.
func (b *Bot) EditMessage(ctx context.Context, channelID string, ref publisher.MessageRef, doc summary.Document) error {
	_, err := b.session.ChannelMessageEditEmbed(channelID, string(ref), toEmbed(doc, b.avatarURL()), discordgo.WithContext(ctx))
	return classifyAPIError(err, "메시지 수정")
}

// toEmbed 요약 메시지를 디스코드 Embed로 변환합니다.
func toEmbed(doc summary.Document, iconURL string) *discordgo.MessageEmbed {
	fields := make([]*discordgo.MessageEmbedField, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  s.Name,
			Value: s.Value,
		})
	}

	embed := &discordgo.MessageEmbed{
		Title:       doc.Title,
		Description: doc.Intro,
		Color:       doc.Color,
		Fields:      fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text:    doc.Footer,
			IconURL: iconURL,
		},
	}
	if !doc.Timestamp.IsZero() {
		embed.Timestamp = doc.Timestamp.UTC().Format(time.RFC3339)
	}

	return embed
}

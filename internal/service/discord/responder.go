package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	apperrors "github.com/darkkaiser/application-board/internal/pkg/errors"
	"github.com/darkkaiser/application-board/internal/service/board"
	"github.com/darkkaiser/application-board/pkg/strutil"
)

// 인터페이스 준수 확인
var _ board.Responder = (*responder)(nil)

// responder 하나의 디스코드 상호작용에 응답합니다. 모든 응답은 요청한 사용자에게만 보입니다.
//
// deferred가 설정된 경우 게이트웨이 수신 시점에 이미 지연 응답을 보낸 상태이므로,
// 이후의 응답은 후속 메시지(followup)로 전송됩니다.
type responder struct {
	session     session
	interaction *discordgo.Interaction
	deferred    bool
}

// deferResponse 처리 결과를 나중에 보낼 것임을 디스코드에 알립니다.
// 디스코드는 상호작용 수신 후 3초 안에 첫 응답을 요구하므로 큐 대기나 파일 저장이 필요한 요청은 먼저 지연 응답을 보냅니다.
func deferResponse(ctx context.Context, s session, interaction *discordgo.Interaction) error {
	return classifyAPIError(s.InteractionRespond(interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}, discordgo.WithContext(ctx)), "지연 응답")
}

func (r *responder) Reply(ctx context.Context, content string) error {
	if r.deferred {
		return r.followup(ctx, &discordgo.WebhookParams{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		})
	}

	return r.respond(ctx, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

func (r *responder) PresentChoices(ctx context.Context, choices board.Choices) error {
	options := make([]discordgo.SelectMenuOption, 0, len(choices.Options))
	for _, name := range choices.Options {
		options = append(options, discordgo.SelectMenuOption{
			Label: strutil.Truncate(name, maxOptionLabel),
			Value: name,
		})
	}

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					MenuType:    discordgo.StringSelectMenu,
					CustomID:    choices.CustomID,
					Placeholder: choices.Placeholder,
					Options:     options,
				},
			},
		},
	}

	if r.deferred {
		return r.followup(ctx, &discordgo.WebhookParams{
			Content:    choices.Prompt,
			Flags:      discordgo.MessageFlagsEphemeral,
			Components: components,
		})
	}

	return r.respond(ctx, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    choices.Prompt,
			Flags:      discordgo.MessageFlagsEphemeral,
			Components: components,
		},
	})
}

func (r *responder) ShowForm(ctx context.Context, form board.Form) error {
	// 입력 폼은 상호작용의 첫 응답으로만 띄울 수 있습니다.
	if r.deferred {
		return apperrors.New(apperrors.Internal, "지연 응답을 보낸 상호작용에는 입력 폼을 띄울 수 없습니다")
	}

	rows := make([]discordgo.MessageComponent, 0, len(form.Fields))
	for _, f := range form.Fields {
		style := discordgo.TextInputShort
		if f.Paragraph {
			style = discordgo.TextInputParagraph
		}

		rows = append(rows, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.TextInput{
					CustomID:  f.CustomID,
					Label:     f.Label,
					Style:     style,
					Required:  f.Required,
					MaxLength: f.MaxLength,
				},
			},
		})
	}

	return r.respond(ctx, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID:   form.CustomID,
			Title:      form.Title,
			Components: rows,
		},
	})
}

func (r *responder) respond(ctx context.Context, resp *discordgo.InteractionResponse) error {
	return classifyAPIError(r.session.InteractionRespond(r.interaction, resp, discordgo.WithContext(ctx)), "상호작용 응답")
}

func (r *responder) followup(ctx context.Context, params *discordgo.WebhookParams) error {
	_, err := r.session.FollowupMessageCreate(r.interaction, true, params, discordgo.WithContext(ctx))
	return classifyAPIError(err, "후속 메시지 전송")
}

package discord

import (
	"context"
	"testing"

	"github.com/bwmarrin/discordgo"
	apperrors "github.com/darkkaiser/application-board/internal/pkg/errors"
	"github.com/darkkaiser/application-board/internal/service/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResponder_Reply(t *testing.T) {
	t.Parallel()

	s := newMockSession(t)
	interaction := &discordgo.Interaction{ID: "1", Token: "token"}
	r := &responder{session: s, interaction: interaction}

	s.On("InteractionRespond", interaction, mock.MatchedBy(func(resp *discordgo.InteractionResponse) bool {
		return resp.Type == discordgo.InteractionResponseChannelMessageWithSource &&
			resp.Data.Content == "hello" &&
			resp.Data.Flags == discordgo.MessageFlagsEphemeral
	})).Return(nil).Once()

	require.NoError(t, r.Reply(context.Background(), "hello"))
	s.AssertExpectations(t)
}

func TestResponder_PresentChoices(t *testing.T) {
	t.Parallel()

	s := newMockSession(t)
	interaction := &discordgo.Interaction{ID: "1", Token: "token"}
	r := &responder{session: s, interaction: interaction}

	var captured *discordgo.InteractionResponse
	s.On("InteractionRespond", interaction, mock.Anything).Run(func(args mock.Arguments) {
		captured = args.Get(1).(*discordgo.InteractionResponse)
	}).Return(nil).Once()

	require.NoError(t, r.PresentChoices(context.Background(), board.Choices{
		CustomID:    board.OpenSelectID,
		Prompt:      "Please select an application:",
		Placeholder: "Select an application",
		Options:     []string{"Support Application", "Trainer Application"},
	}))

	require.NotNil(t, captured)
	assert.Equal(t, "Please select an application:", captured.Data.Content)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, captured.Data.Flags)
	require.Len(t, captured.Data.Components, 1)

	row, ok := captured.Data.Components[0].(discordgo.ActionsRow)
	require.True(t, ok)
	menu, ok := row.Components[0].(discordgo.SelectMenu)
	require.True(t, ok)
	assert.Equal(t, board.OpenSelectID, menu.CustomID)
	assert.Equal(t, "Select an application", menu.Placeholder)
	require.Len(t, menu.Options, 2)
	assert.Equal(t, "Support Application", menu.Options[0].Label)
	assert.Equal(t, "Support Application", menu.Options[0].Value)
}

func TestResponder_ShowForm(t *testing.T) {
	t.Parallel()

	s := newMockSession(t)
	interaction := &discordgo.Interaction{ID: "1", Token: "token"}
	r := &responder{session: s, interaction: interaction}

	var captured *discordgo.InteractionResponse
	s.On("InteractionRespond", interaction, mock.Anything).Run(func(args mock.Arguments) {
		captured = args.Get(1).(*discordgo.InteractionResponse)
	}).Return(nil).Once()

	require.NoError(t, r.ShowForm(context.Background(), board.Form{
		CustomID: board.FormID("Support Application"),
		Title:    "Open Support Application",
		Fields: []board.FormField{
			{CustomID: board.FieldDescription, Label: "Short description", Paragraph: true, Required: true, MaxLength: 4000},
			{CustomID: board.FieldLink, Label: "Application link", Required: true, MaxLength: 512},
		},
	}))

	require.NotNil(t, captured)
	assert.Equal(t, discordgo.InteractionResponseModal, captured.Type)
	assert.Equal(t, "modal_Support Application", captured.Data.CustomID)
	assert.Equal(t, "Open Support Application", captured.Data.Title)
	require.Len(t, captured.Data.Components, 2)

	first := captured.Data.Components[0].(discordgo.ActionsRow).Components[0].(discordgo.TextInput)
	assert.Equal(t, board.FieldDescription, first.CustomID)
	assert.Equal(t, discordgo.TextInputParagraph, first.Style)
	assert.True(t, first.Required)
	assert.Equal(t, 4000, first.MaxLength)

	second := captured.Data.Components[1].(discordgo.ActionsRow).Components[0].(discordgo.TextInput)
	assert.Equal(t, board.FieldLink, second.CustomID)
	assert.Equal(t, discordgo.TextInputShort, second.Style)
	assert.Equal(t, 512, second.MaxLength)
}

func TestResponder_ErrorIsClassified(t *testing.T) {
	t.Parallel()

	s := newMockSession(t)
	r := &responder{session: s, interaction: &discordgo.Interaction{}}
	s.On("InteractionRespond", mock.Anything, mock.Anything).Return(serverError()).Once()

	err := r.Reply(context.Background(), "hello")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ExecutionFailed))
}

func TestResponder_Deferred(t *testing.T) {
	t.Parallel()

	t.Run("지연 응답", func(t *testing.T) {
		s := newMockSession(t)
		interaction := &discordgo.Interaction{ID: "1", Token: "token"}

		s.On("InteractionRespond", interaction, mock.MatchedBy(func(resp *discordgo.InteractionResponse) bool {
			return resp.Type == discordgo.InteractionResponseDeferredChannelMessageWithSource &&
				resp.Data.Flags == discordgo.MessageFlagsEphemeral
		})).Return(nil).Once()

		require.NoError(t, deferResponse(context.Background(), s, interaction))
		s.AssertExpectations(t)
	})

	t.Run("답변은 후속 메시지로 전송", func(t *testing.T) {
		s := newMockSession(t)
		interaction := &discordgo.Interaction{ID: "1", Token: "token"}
		r := &responder{session: s, interaction: interaction, deferred: true}

		s.On("FollowupMessageCreate", interaction, true, mock.MatchedBy(func(p *discordgo.WebhookParams) bool {
			return p.Content == "hello" && p.Flags == discordgo.MessageFlagsEphemeral
		})).Return(&discordgo.Message{ID: "2"}, nil).Once()

		require.NoError(t, r.Reply(context.Background(), "hello"))
		s.AssertExpectations(t)
		s.AssertNotCalled(t, "InteractionRespond", mock.Anything, mock.Anything)
	})

	t.Run("선택 메뉴도 후속 메시지로 전송", func(t *testing.T) {
		s := newMockSession(t)
		interaction := &discordgo.Interaction{ID: "1", Token: "token"}
		r := &responder{session: s, interaction: interaction, deferred: true}

		var captured *discordgo.WebhookParams
		s.On("FollowupMessageCreate", interaction, true, mock.Anything).Run(func(args mock.Arguments) {
			captured = args.Get(2).(*discordgo.WebhookParams)
		}).Return(&discordgo.Message{ID: "2"}, nil).Once()

		require.NoError(t, r.PresentChoices(context.Background(), board.Choices{
			CustomID: board.CloseSelectID,
			Prompt:   "Please select an application to close:",
			Options:  []string{"Support Application"},
		}))

		require.NotNil(t, captured)
		assert.Equal(t, "Please select an application to close:", captured.Content)
		assert.Equal(t, discordgo.MessageFlagsEphemeral, captured.Flags)
		require.Len(t, captured.Components, 1)
		menu := captured.Components[0].(discordgo.ActionsRow).Components[0].(discordgo.SelectMenu)
		assert.Equal(t, board.CloseSelectID, menu.CustomID)
	})

	t.Run("입력 폼은 띄울 수 없음", func(t *testing.T) {
		s := newMockSession(t)
		r := &responder{session: s, interaction: &discordgo.Interaction{}, deferred: true}

		err := r.ShowForm(context.Background(), board.Form{CustomID: board.FormID("Support Application")})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.Internal))
		s.AssertNotCalled(t, "InteractionRespond", mock.Anything, mock.Anything)
	})

	t.Run("후속 메시지 실패는 분류됨", func(t *testing.T) {
		s := newMockSession(t)
		r := &responder{session: s, interaction: &discordgo.Interaction{}, deferred: true}
		s.On("FollowupMessageCreate", mock.Anything, true, mock.Anything).Return(nil, unknownMessageError()).Once()

		err := r.Reply(context.Background(), "hello")
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.NotFound))
	})
}

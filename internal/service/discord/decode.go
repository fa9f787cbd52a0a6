package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/darkkaiser/application-board/internal/service/board"
	"github.com/iancoleman/strcase"
)

// decodeInteraction 디스코드 상호작용 이벤트를 board.Interaction으로 변환합니다.
// 이 봇이 처리하지 않는 이벤트이면 false를 반환합니다.
func decodeInteraction(i *discordgo.Interaction, commandName string) (board.Interaction, bool) {
	if i == nil {
		return board.Interaction{}, false
	}

	in := board.Interaction{}
	if i.Member != nil {
		in.RoleIDs = i.Member.Roles
		if i.Member.User != nil {
			in.UserID = i.Member.User.ID
		}
	} else if i.User != nil {
		// DM에서는 역할 정보가 없으므로 권한 검사에서 거부됩니다.
		in.UserID = i.User.ID
	}

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		data := i.ApplicationCommandData()
		if data.Name != commandName || len(data.Options) == 0 {
			return board.Interaction{}, false
		}

		switch strcase.ToSnake(data.Options[0].Name) {
		case subcommandOpen:
			in.Kind = board.KindOpenCommand
		case subcommandClose:
			in.Kind = board.KindCloseCommand
		default:
			return board.Interaction{}, false
		}
		return in, true

	case discordgo.InteractionMessageComponent:
		data := i.MessageComponentData()
		switch data.CustomID {
		case board.OpenSelectID:
			in.Kind = board.KindOpenSelected
		case board.CloseSelectID:
			in.Kind = board.KindCloseSelected
		default:
			return board.Interaction{}, false
		}

		// 선택값이 없는 선택 메뉴 이벤트도 응답은 한 번 보내야 하므로 버리지 않고 KindUnknown으로 넘깁니다.
		if len(data.Values) == 0 {
			in.Kind = board.KindUnknown
			return in, true
		}
		in.Application = data.Values[0]
		return in, true

	case discordgo.InteractionModalSubmit:
		data := i.ModalSubmitData()
		name, ok := strings.CutPrefix(data.CustomID, board.FormIDPrefix)
		if !ok || name == "" {
			return board.Interaction{}, false
		}

		in.Kind = board.KindFormSubmitted
		in.Application = name

		values := textInputValues(data.Components)
		in.Description = values[board.FieldDescription]
		in.Link = values[board.FieldLink]
		return in, true
	}

	return board.Interaction{}, false
}

// textInputValues 모달 제출 데이터에서 입력 항목의 값을 식별자별로 꺼냅니다.
func textInputValues(components []discordgo.MessageComponent) map[string]string {
	values := make(map[string]string)

	var walk func([]discordgo.MessageComponent)
	walk = func(components []discordgo.MessageComponent) {
		for _, c := range components {
			switch v := c.(type) {
			case *discordgo.ActionsRow:
				walk(v.Components)
			case discordgo.ActionsRow:
				walk(v.Components)
			case *discordgo.TextInput:
				values[v.CustomID] = v.Value
			case discordgo.TextInput:
				values[v.CustomID] = v.Value
			}
		}
	}
	walk(components)

	return values
}

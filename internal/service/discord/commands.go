package discord

import (
	"github.com/bwmarrin/discordgo"
)

// commands 길드에 등록할 슬래시 명령어 목록을 만듭니다.
func commands(name string) []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        name,
			Description: "Application Commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandOpen,
					Description: "Opens an application",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandClose,
					Description: "Closes an application",
				},
			},
		},
	}
}

package board

import "fmt"

// 사용자에게 보여주는 응답 문구입니다.
const (
	msgPermissionDenied = "❌ You do not have permission to use this command."
	msgOpenPrompt       = "Please select an application:"
	msgOpenPlaceholder  = "Select an application"
	msgClosePrompt      = "Which application would you like to close?"
	msgClosePlaceholder = "Select an application to close"
	msgBusy             = "⏳ The bot is busy right now. Please try again in a moment."
	msgShuttingDown     = "⏳ The bot is restarting. Please try again in a moment."
	msgInvalidInput     = "❌ Please provide a description and a valid link starting with http:// or https://."
	msgInternalError    = "❌ Something went wrong. Please try again later."

	formDescriptionLabel = "Short description"
	formLinkLabel        = "Application link"
)

func msgOpened(name string) string {
	return fmt.Sprintf("%s has been opened and the overview embed has been updated.", name)
}

func msgClosed(name string) string {
	return fmt.Sprintf("%s has been closed and the overview embed has been updated.", name)
}

func msgUnknownApplication(name string) string {
	return fmt.Sprintf("❌ Unknown application: %s", name)
}

func msgPublishFailed(name, action string) string {
	return fmt.Sprintf("⚠️ %s has been %s, but the overview embed could not be updated. It will be refreshed with the next change.", name, action)
}

func msgPersistFailed(name, action string) string {
	return fmt.Sprintf("⚠️ %s has been %s, but the change could not be saved to disk. Please contact the bot administrator.", name, action)
}

func formTitle(name string) string {
	return "Open " + name
}

package discord

import (
	"errors"
	"net/http"

	"github.com/bwmarrin/discordgo"
	apperrors "github.com/darkkaiser/application-board/internal/pkg/errors"
)

// ErrDispatcherNotInitialized Start 호출 전에 SetDispatcher가 호출되지 않았을 때 반환됩니다.
var ErrDispatcherNotInitialized = apperrors.New(apperrors.Internal, "Dispatcher 객체가 초기화되지 않았습니다")

// NewErrSessionFailed 디스코드 세션 생성 또는 연결 실패 에러를 생성합니다.
func NewErrSessionFailed(err error, stage string) error {
	return apperrors.Wrapf(err, apperrors.ExecutionFailed, "디스코드 세션 %s 실패", stage)
}

// NewErrCommandRegistrationFailed 슬래시 명령어 등록 실패 에러를 생성합니다.
func NewErrCommandRegistrationFailed(err error, guildID string) error {
	return apperrors.Wrapf(err, apperrors.ExecutionFailed, "슬래시 명령어 등록 실패 (guild_id=%s)", guildID)
}

// classifyAPIError 디스코드 REST API 에러를 분류합니다.
// 메시지나 채널이 존재하지 않는 경우는 NotFound, 그 외는 ExecutionFailed로 감쌉니다.
func classifyAPIError(err error, op string) error {
	if err == nil {
		return nil
	}

	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) {
		if restErr.Message != nil {
			switch restErr.Message.Code {
			case discordgo.ErrCodeUnknownMessage, discordgo.ErrCodeUnknownChannel:
				return apperrors.Wrapf(err, apperrors.NotFound, "디스코드 %s 실패: 대상이 존재하지 않습니다", op)
			}
		}
		if restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound {
			return apperrors.Wrapf(err, apperrors.NotFound, "디스코드 %s 실패: 대상이 존재하지 않습니다", op)
		}
	}

	return apperrors.Wrapf(err, apperrors.ExecutionFailed, "디스코드 %s 실패", op)
}

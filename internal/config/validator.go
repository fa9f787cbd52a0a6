package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	apperrors "github.com/darkkaiser/application-board/internal/pkg/errors"
	"github.com/darkkaiser/application-board/pkg/cronx"
	"github.com/go-playground/validator/v10"
)

// 디스코드 ID(Snowflake)는 17~20자리의 10진수 문자열입니다.
var snowflakeRegex = regexp.MustCompile(`^\d{17,20}$`)

// envNames 필수 설정 누락 시 안내할 환경 변수 이름입니다.
var envNames = map[string]string{
	"discord.token":             "DISCORD_TOKEN",
	"discord.client_id":         "CLIENT_ID",
	"discord.guild_id":          "GUILD_ID",
	"discord.channel_id":        "APPLICATION_CHANNEL",
	"discord.whitelisted_roles": "WHITELISTED_ROLES",
}

// newValidator 새로운 Validator 인스턴스를 생성하고 커스텀 유효성 검사 함수를 등록합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	// 에러 메시지에 Go 구조체 필드명 대신 JSON 이름을 사용합니다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("snowflake", validateSnowflake); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: 'snowflake' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}
	if err := v.RegisterValidation("cron", validateCronSpec); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: 'cron' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}

	return v
}

// validateSnowflake 입력된 문자열이 디스코드 ID 형식인지 검증합니다.
func validateSnowflake(fl validator.FieldLevel) bool {
	return snowflakeRegex.MatchString(fl.Field().String())
}

// validateCronSpec 표준 5필드 Cron 표현식 또는 @every 등의 디스크립터인지 검증합니다.
func validateCronSpec(fl validator.FieldLevel) bool {
	return cronx.Validate(fl.Field().String()) == nil
}

// fieldKey 검증 에러의 네임스페이스에서 루트 구조체 이름을 제거하여 설정 키 형태로 반환합니다.
// 예: "AppConfig.discord.whitelisted_roles[0]" -> "discord.whitelisted_roles[0]"
func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx != -1 {
		return ns[idx+1:]
	}
	return ns
}

// checkStruct 설정 구조체의 유효성을 검사하고, 사용자 친화적인 에러 메시지를 반환합니다.
// 필수 값 누락은 어떤 환경 변수를 설정해야 하는지 함께 안내합니다.
func checkStruct(v *validator.Validate, cfg *AppConfig) error {
	err := v.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return apperrors.Wrap(err, apperrors.InvalidInput, "설정 유효성 검증에 실패했습니다")
	}

	// 첫 번째 에러만 상세히 보고합니다.
	fe := validationErrors[0]
	key := fieldKey(fe)

	tag := fe.Tag()
	if tag == "min" && fe.Kind() == reflect.Slice {
		tag = "required"
	}

	switch tag {
	case "required":
		if strings.ContainsRune(key, '[') {
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("'%s'에 빈 항목이 포함되어 있습니다", key))
		}
		if name, ok := envNames[key]; ok {
			return NewErrConfigMissing(key, name)
		}
		return NewErrConfigMissing(key, EnvPrefix+strings.ToUpper(strings.ReplaceAll(key, ".", "__")))
	case "snowflake":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("'%s'의 값이 올바른 디스코드 ID 형식이 아닙니다: '%v'", key, fe.Value()))
	case "cron":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("'%s'의 Cron 표현식이 올바르지 않습니다: '%v' (예: */10 * * * *, @every 10m)", key, fe.Value()))
	case "unique":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("'%s'에 중복된 항목이 존재합니다", key))
	case "max":
		if fe.Kind() == reflect.String {
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("'%s'의 길이가 %s자를 넘습니다: '%v'", key, fe.Param(), fe.Value()))
		}
	}

	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("'%s'의 설정이 올바르지 않습니다: '%v' (조건: %s)", key, fe.Value(), fe.Tag()))
}

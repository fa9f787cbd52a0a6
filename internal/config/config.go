package config

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"strings"

	apperrors "github.com/darkkaiser/application-board/internal/pkg/errors"
	"github.com/darkkaiser/application-board/pkg/strutil"
	"github.com/go-viper/mapstructure/v2"
	"github.com/iancoleman/strcase"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "application-board"

	// DefaultFilename 실행 인자로 경로가 주어지지 않았을 때 탐색하는 설정 파일명입니다.
	// 파일이 없으면 기본값과 환경 변수만으로 설정을 구성합니다.
	DefaultFilename = AppName + ".json"

	// EnvPrefix 계층형 환경 변수의 접두사입니다.
	// 예: APPBOARD_DISCORD__CHANNEL_ID -> discord.channel_id
	EnvPrefix = "APPBOARD_"

	DefaultListenPort       = 3000
	DefaultCommandName      = "application"
	DefaultStorageDir       = "."
	DefaultApplicationsFile = "applications.json"
	DefaultReferenceFile    = "embedMessageId.json"
)

// DefaultSeed 저장된 지원서 데이터가 없을 때 생성되는 기본 지원서 이름 목록입니다.
var DefaultSeed = []string{
	"Public Relations Application",
	"Human Resources Application",
	"Support Application",
	"Manager Application",
	"Moderation Application",
	"Supervisor Application",
	"Trainer Application",
}

// legacyEnvKeys 접두사 없이 사용되던 기존 환경 변수 이름과 설정 키의 대응표입니다.
var legacyEnvKeys = map[string]string{
	"DISCORD_TOKEN":       "discord.token",
	"CLIENT_ID":           "discord.client_id",
	"GUILD_ID":            "discord.guild_id",
	"APPLICATION_CHANNEL": "discord.channel_id",
	"WHITELISTED_ROLES":   "discord.whitelisted_roles",
	"PORT":                "http.listen_port",
}

// AppConfig 애플리케이션의 모든 설정을 관장하는 최상위 루트 구조체
type AppConfig struct {
	Debug        bool               `json:"debug"`
	Discord      DiscordConfig      `json:"discord"`
	Storage      StorageConfig      `json:"storage"`
	Applications ApplicationsConfig `json:"applications"`
	HTTP         HTTPConfig         `json:"http"`
	Summary      SummaryConfig      `json:"summary"`
}

// DiscordConfig 디스코드 봇 인증 정보와 요약 메시지를 게시할 대상 정보를 정의하는 구조체
type DiscordConfig struct {
	Token            string   `json:"token" validate:"required"`
	ClientID         string   `json:"client_id" validate:"required,snowflake"`
	GuildID          string   `json:"guild_id" validate:"required,snowflake"`
	ChannelID        string   `json:"channel_id" validate:"required,snowflake"`
	WhitelistedRoles []string `json:"whitelisted_roles" validate:"required,min=1,dive,snowflake"`
	CommandName      string   `json:"command_name" validate:"required,max=32"`
}

// StorageConfig 상태 파일이 저장될 디렉토리와 파일명을 정의하는 구조체
type StorageConfig struct {
	Dir              string `json:"dir" validate:"required"`
	ApplicationsFile string `json:"applications_file" validate:"required,excludesall=/\\"`
	ReferenceFile    string `json:"reference_file" validate:"required,excludesall=/\\,nefield=ApplicationsFile"`
}

// ApplicationsConfig 최초 실행 시 생성할 지원서 목록을 정의하는 구조체
//
// 지원서 이름은 선택 메뉴의 값과 입력 폼의 custom_id("modal_" 접두사 포함)에 그대로 쓰이므로
// 디스코드의 100자 제한을 넘지 않도록 최대 94자로 제한합니다.
type ApplicationsConfig struct {
	Seed []string `json:"seed" validate:"required,min=1,unique,dive,required,max=94"`
}

// HTTPConfig 상태 확인용 HTTP 서버 설정 구조체
type HTTPConfig struct {
	ListenPort int `json:"listen_port" validate:"min=1,max=65535"`
}

// SummaryConfig 요약 메시지의 주기적 재동기화 설정 구조체
type SummaryConfig struct {
	// 비어 있으면 주기적 재동기화를 수행하지 않습니다.
	RefreshSchedule string `json:"refresh_schedule" validate:"omitempty,cron"`
}

// VerifyRecommendations 권장 설정 준수 여부를 진단하여 경고 메시지를 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.HTTP.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.HTTP.ListenPort))
	}
	if len(c.Applications.Seed) > 25 {
		warnings = append(warnings, fmt.Sprintf("지원서가 %d개로 설정되었습니다. 요약 메시지에는 최대 25개까지만 표시됩니다", len(c.Applications.Seed)))
	}

	return warnings
}

func newDefaultConfig() AppConfig {
	return AppConfig{
		Discord: DiscordConfig{
			CommandName: DefaultCommandName,
		},
		Storage: StorageConfig{
			Dir:              DefaultStorageDir,
			ApplicationsFile: DefaultApplicationsFile,
			ReferenceFile:    DefaultReferenceFile,
		},
		Applications: ApplicationsConfig{
			Seed: append([]string(nil), DefaultSeed...),
		},
		HTTP: HTTPConfig{
			ListenPort: DefaultListenPort,
		},
	}
}

// normalizeEnvKey APPBOARD_ 접두사가 붙은 환경 변수 이름을 koanf 설정 키로 변환합니다.
// 이중 언더스코어(__)는 계층 구분자(.)로 변환됩니다.
func normalizeEnvKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}

// stringToSliceHook 쉼표로 구분된 문자열을 []string으로 변환하는 디코드 훅입니다.
// 각 항목의 앞뒤 공백과 빈 항목은 제거됩니다. (예: WHITELISTED_ROLES="111, 222")
func stringToSliceHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf([]string{}) {
		return data, nil
	}
	return strutil.SplitAndTrim(data.(string), ","), nil
}

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 기본값, 설정 파일, 환경 변수 순으로 설정을 병합한 뒤 검증하여 AppConfig 객체를 생성합니다.
//
// 우선순위 (높은 순):
//  1. APPBOARD_ 접두사 환경 변수
//  2. 기존 환경 변수 (DISCORD_TOKEN, CLIENT_ID, GUILD_ID, APPLICATION_CHANNEL, WHITELISTED_ROLES, PORT)
//  3. JSON 설정 파일 (없으면 건너뜀)
//  4. 기본값
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 로드
	if err := k.Load(structs.Provider(newDefaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일 로드
	if filename != "" {
		if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
			}
		}
	}

	// 3. 기존 환경 변수 로드
	if err := k.Load(env.Provider("", ".", func(s string) string {
		return legacyEnvKeys[s]
	}), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 접두사 환경 변수 로드
	if err := k.Load(env.Provider(EnvPrefix, ".", normalizeEnvKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 5. 구조체 언마샬링
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.DecodeHookFuncType(stringToSliceHook),
				mapstructure.StringToTimeDurationHookFunc(),
			),
			ErrorUnused:      true, // 구조체에 없는 필드가 설정에 있으면 오타로 간주합니다.
			WeaklyTypedInput: true,
		},
	}
	var appConfig AppConfig
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	appConfig.Discord.CommandName = strcase.ToSnake(strings.TrimSpace(appConfig.Discord.CommandName))

	// 6. 유효성 검사
	if err := checkStruct(newValidator(), &appConfig); err != nil {
		return nil, err
	}

	return &appConfig, nil
}

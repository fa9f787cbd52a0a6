package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/darkkaiser/application-board/internal/config"
	apperrors "github.com/darkkaiser/application-board/internal/pkg/errors"
	"github.com/darkkaiser/application-board/internal/pkg/version"
	"github.com/darkkaiser/application-board/internal/service/api"
	"github.com/darkkaiser/application-board/internal/service/board"
	"github.com/darkkaiser/application-board/internal/service/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(dir string) *config.AppConfig {
	return &config.AppConfig{
		Discord: config.DiscordConfig{
			Token:            "test-token",
			ClientID:         "109876543210987654",
			GuildID:          "209876543210987654",
			ChannelID:        "309876543210987654",
			WhitelistedRoles: []string{"409876543210987654"},
			CommandName:      config.DefaultCommandName,
		},
		Storage: config.StorageConfig{
			Dir:              dir,
			ApplicationsFile: config.DefaultApplicationsFile,
			ReferenceFile:    config.DefaultReferenceFile,
		},
		Applications: config.ApplicationsConfig{
			Seed: config.DefaultSeed,
		},
		HTTP: config.HTTPConfig{
			ListenPort: config.DefaultListenPort,
		},
	}
}

func TestBanner(t *testing.T) {
	t.Parallel()

	out := fmt.Sprintf(banner, "v1.0.0")

	assert.Contains(t, out, "v1.0.0")
	assert.Contains(t, out, "developed by DarkKaiser")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len(line), 80, "배너의 각 줄은 80자를 넘지 않아야 합니다: %q", line)
	}
}

func TestNewServices(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	services, err := newServices(newTestConfig(dir), version.Info{Version: "test"})
	require.NoError(t, err)
	require.Len(t, services, 3)

	assert.IsType(t, &board.Service{}, services[0], "게시판 서비스가 가장 먼저 시작되어야 합니다")
	assert.IsType(t, &discord.Bot{}, services[1])
	assert.IsType(t, &api.Service{}, services[2])

	// 저장된 데이터가 없으므로 기본 목록이 생성되어 있어야 합니다.
	data, err := os.ReadFile(filepath.Join(dir, config.DefaultApplicationsFile))
	require.NoError(t, err)
	for _, name := range config.DefaultSeed {
		assert.Contains(t, string(data), name)
	}

	st := services[0].(*board.Service).Status()
	assert.Equal(t, len(config.DefaultSeed), st.Applications)
	assert.Zero(t, st.OpenCount)
}

func TestNewServices_CorruptState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		file string
	}{
		{"지원서 데이터 손상", config.DefaultApplicationsFile},
		{"메시지 참조 손상", config.DefaultReferenceFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, tt.file), []byte("{not json"), 0644))

			services, err := newServices(newTestConfig(dir), version.Info{})
			require.Error(t, err)
			assert.Nil(t, services)
			assert.True(t, apperrors.Is(err, apperrors.ParsingFailed), "손상된 상태 파일은 ParsingFailed로 분류되어야 합니다: %v", err)
		})
	}
}

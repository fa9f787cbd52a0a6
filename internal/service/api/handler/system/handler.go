// Package system 헬스체크, 버전 정보 등 인증이 필요 없는 시스템 엔드포인트 핸들러를 제공합니다.
package system

import (
	"net/http"
	"time"

	"github.com/darkkaiser/application-board/internal/pkg/version"
	"github.com/darkkaiser/application-board/internal/service/api/constants"
	"github.com/darkkaiser/application-board/internal/service/api/model/system"
	"github.com/darkkaiser/application-board/internal/service/board"
	applog "github.com/darkkaiser/application-board/pkg/log"
	"github.com/labstack/echo/v4"
)

// BoardStatusProvider 게시판 서비스의 현재 상태를 제공합니다. (board.Service)
type BoardStatusProvider interface {
	Status() board.Status
}

// GatewayStatusProvider 디스코드 게이트웨이 연결 상태를 제공합니다. (discord.Bot)
type GatewayStatusProvider interface {
	Running() bool
}

// Handler 시스템 엔드포인트 핸들러
type Handler struct {
	board   BoardStatusProvider
	gateway GatewayStatusProvider

	buildInfo version.Info

	serverStartTime time.Time
}

// NewHandler Handler 인스턴스를 생성합니다. board와 gateway는 nil일 수 있으며, 이 경우 unhealthy로 보고됩니다.
func NewHandler(board BoardStatusProvider, gateway GatewayStatusProvider, buildInfo version.Info) *Handler {
	return &Handler{
		board:   board,
		gateway: gateway,

		buildInfo: buildInfo,

		serverStartTime: time.Now(),
	}
}

// LivenessHandler 프로세스가 살아 있는지 확인하는 용도의 고정 응답을 반환합니다.
func (h *Handler) LivenessHandler(c echo.Context) error {
	return c.String(http.StatusOK, constants.LivenessMessage)
}

// HealthCheckHandler 서버와 의존 서비스의 상태를 반환합니다.
// 하나라도 unhealthy이면 전체 상태도 unhealthy이며, 이때 503을 반환합니다.
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	resp := system.HealthResponse{
		Status:       constants.HealthStatusHealthy,
		Uptime:       int64(time.Since(h.serverStartTime).Seconds()),
		Dependencies: make(map[string]system.DependencyStatus, 2),
	}

	if h.board == nil {
		resp.Dependencies[constants.DependencyBoardService] = unhealthy(constants.MsgDepStatusNotInitialized)
	} else {
		st := h.board.Status()
		resp.Board = boardStatus(st)

		switch {
		case !st.Running:
			resp.Dependencies[constants.DependencyBoardService] = unhealthy(constants.MsgDepStatusNotRunning)
		case st.LastError != "":
			resp.Dependencies[constants.DependencyBoardService] = unhealthy(st.LastError)
		default:
			resp.Dependencies[constants.DependencyBoardService] = healthy()
		}
	}

	switch {
	case h.gateway == nil:
		resp.Dependencies[constants.DependencyDiscordGateway] = unhealthy(constants.MsgDepStatusNotInitialized)
	case !h.gateway.Running():
		resp.Dependencies[constants.DependencyDiscordGateway] = unhealthy(constants.MsgDepStatusDisconnected)
	default:
		resp.Dependencies[constants.DependencyDiscordGateway] = healthy()
	}

	for _, dep := range resp.Dependencies {
		if dep.Status != constants.HealthStatusHealthy {
			resp.Status = constants.HealthStatusUnhealthy
			break
		}
	}

	code := http.StatusOK
	if resp.Status != constants.HealthStatusHealthy {
		code = http.StatusServiceUnavailable
	}

	return c.JSON(code, resp)
}

// VersionHandler 빌드 정보를 반환합니다.
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:    h.buildInfo.Version,
		Commit:     h.buildInfo.Commit,
		BuildDate:  h.buildInfo.BuildDate,
		GoVersion:  h.buildInfo.GoVersion,
		OS:         h.buildInfo.OS,
		Arch:       h.buildInfo.Arch,
		DirtyBuild: h.buildInfo.DirtyBuild,
	})
}

func boardStatus(st board.Status) *system.BoardStatus {
	bs := &system.BoardStatus{
		Applications:     st.Applications,
		OpenApplications: st.OpenCount,
		QueueDepth:       st.QueueDepth,
		QueueCapacity:    st.QueueCapacity,
		LastError:        st.LastError,
	}
	if !st.LastReconcile.IsZero() {
		t := st.LastReconcile.UTC()
		bs.LastReconcile = &t
	}
	return bs
}

func healthy() system.DependencyStatus {
	return system.DependencyStatus{Status: constants.HealthStatusHealthy, Message: constants.MsgDepStatusHealthy}
}

func unhealthy(message string) system.DependencyStatus {
	return system.DependencyStatus{Status: constants.HealthStatusUnhealthy, Message: message}
}

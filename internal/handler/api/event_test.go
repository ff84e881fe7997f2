//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"webhook-gateway/internal/handler/api"
	resdto "webhook-gateway/internal/handler/dto/response"
	"webhook-gateway/internal/pkg/errs"
	"webhook-gateway/internal/usecase/commands"
	"webhook-gateway/tests/common/httptest"
	commandsmock "webhook-gateway/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EventHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockEventCommands
	handler      *api.EventHandler
}

func (s *EventHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockEventCommands(s.mockCtrl)
	s.handler = api.NewEventHandler(s.mockCommands)

	s.router.POST("/api/integration/gitlab/events", s.handler.Receive)
}

func (s *EventHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEventHandlerSuite(t *testing.T) {
	suite.Run(t, new(EventHandlerTestSuite))
}

func (s *EventHandlerTestSuite) TestReceive() {
	url := "/api/integration/gitlab/events"
	payload := []byte(`{"object_kind":"merge_request","object_attributes":{"id":42}}`)
	headers := map[string]string{
		api.HeaderGitlabToken: "shhh-webhook-secret",
		api.HeaderWebhookID:   "9a1f2b3c-0000-0000-0000-000000000001",
		api.HeaderUserID:      "keycloak-user-1",
	}

	s.Run("success: accepted delivery returns 200 OK", func() {
		s.mockCommands.EXPECT().
			Process(gomock.Any(), payload, headers[api.HeaderWebhookID], headers[api.HeaderUserID], headers[api.HeaderGitlabToken]).
			Return(commands.ResultAccepted, nil).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, headers)

		var response resdto.EventResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("GitLab event accepted.", response.Message)
	})

	s.Run("success: duplicate delivery also returns 200 OK", func() {
		s.mockCommands.EXPECT().
			Process(gomock.Any(), payload, headers[api.HeaderWebhookID], headers[api.HeaderUserID], headers[api.HeaderGitlabToken]).
			Return(commands.ResultDuplicate, nil).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, headers)

		var response resdto.EventResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Duplicate GitLab event ignored.", response.Message)
	})

	s.Run("error: 403 Forbidden with one generic message for auth failures", func() {
		for _, tc := range []struct {
			name    string
			headers map[string]string
		}{
			{"wrong secret", map[string]string{
				api.HeaderGitlabToken: "wrong",
				api.HeaderWebhookID:   headers[api.HeaderWebhookID],
				api.HeaderUserID:      headers[api.HeaderUserID],
			}},
			{"missing token header", map[string]string{
				api.HeaderWebhookID: headers[api.HeaderWebhookID],
				api.HeaderUserID:    headers[api.HeaderUserID],
			}},
			{"missing webhook id header", map[string]string{
				api.HeaderGitlabToken: headers[api.HeaderGitlabToken],
				api.HeaderUserID:      headers[api.HeaderUserID],
			}},
			{"no headers at all", map[string]string{}},
		} {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					Process(gomock.Any(), payload, gomock.Any(), gomock.Any(), gomock.Any()).
					Return(commands.ResultRejected, errs.ErrWebhookAuthFailed).Times(1)

				rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, tc.headers)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Invalid webhook credentials")
			})
		}
	})

	s.Run("error: 400 Bad Request on processing failures", func() {
		s.mockCommands.EXPECT().
			Process(gomock.Any(), payload, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(commands.ResultRejected, errs.Mark(errs.New("boom"), errs.ErrInvalidPayload)).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, headers)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid payload.")
	})
}

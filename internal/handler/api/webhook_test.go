//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"webhook-gateway/internal/handler/api"
	resdto "webhook-gateway/internal/handler/dto/response"
	"webhook-gateway/internal/pkg/errs"
	"webhook-gateway/internal/usecase/queries"
	"webhook-gateway/tests/common/builder"
	"webhook-gateway/tests/common/httptest"
	commandsmock "webhook-gateway/tests/mock/commands"
	queriesmock "webhook-gateway/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockWebhookCommands
	mockQueries  *queriesmock.MockWebhookQueries
	handler      *api.WebhookHandler
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockWebhookCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockWebhookQueries(s.mockCtrl)
	s.handler = api.NewWebhookHandler(s.mockCommands, s.mockQueries)

	// Mock middleware behavior: an Authorization header stands in for a
	// validated token.
	authStub := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", "keycloak-user-1")
		}
	}
	s.router.POST("/api/integration/gitlab/reinstall-webhook", authStub, s.handler.Reinstall)
	s.router.GET("/api/integration/gitlab/webhooks", authStub, s.handler.List)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) TestReinstall() {
	url := "/api/integration/gitlab/reinstall-webhook"

	s.Run("success: returns 200 OK with the marked count", func() {
		s.mockCommands.EXPECT().MarkForReinstallation(gomock.Any(), "keycloak-user-1").
			Return(int64(2), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "test-token")

		var response resdto.ReinstallResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Webhook marked for reinstallation", response.Message)
		s.Equal(int64(2), response.WebhookMarked)
	})

	s.Run("success: zero owned webhooks still returns 200 OK", func() {
		s.mockCommands.EXPECT().MarkForReinstallation(gomock.Any(), "keycloak-user-1").
			Return(int64(0), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "test-token")

		var response resdto.ReinstallResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(0), response.WebhookMarked)
	})

	s.Run("error: 401 Unauthorized without user context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "User not authenticated")
	})

	s.Run("error: 500 Internal Server Error on storage failure", func() {
		s.mockCommands.EXPECT().MarkForReinstallation(gomock.Any(), "keycloak-user-1").
			Return(int64(0), errs.Mark(errs.New("update failed"), errs.ErrDatabaseOperationFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "test-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to mark webhook for reinstallation")
	})
}

func (s *WebhookHandlerTestSuite) TestList() {
	url := "/api/integration/gitlab/webhooks"

	s.Run("success: returns the caller's webhooks without secrets", func() {
		view := builder.NewWebhookBuilder().BuildView()
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), "keycloak-user-1").
			Return([]queries.WebhookView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "test-token")

		var response struct {
			Webhooks []resdto.WebhookResponse `json:"webhooks"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Webhooks, 1)
		s.Equal(view.WebhookUUID, response.Webhooks[0].WebhookUUID)
		s.NotContains(rec.Body.String(), "secret")
	})

	s.Run("success: empty list for a user with no webhooks", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), "keycloak-user-1").
			Return([]queries.WebhookView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "test-token")

		var response struct {
			Webhooks []resdto.WebhookResponse `json:"webhooks"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.Webhooks)
	})

	s.Run("error: 401 Unauthorized without user context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "User not authenticated")
	})

	s.Run("error: 500 Internal Server Error on storage failure", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), "keycloak-user-1").
			Return(nil, errs.New("query failed")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "test-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to list webhooks")
	})
}

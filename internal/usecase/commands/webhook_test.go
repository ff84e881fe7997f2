//go:build unit

package commands_test

import (
	"context"
	"testing"

	"webhook-gateway/internal/infra"
	"webhook-gateway/internal/pkg/errs"
	"webhook-gateway/internal/usecase/commands"
	commandsmock "webhook-gateway/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookCommandsTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockRepo *commandsmock.MockWebhookRepository
	uc       commands.WebhookCommands
}

func (s *WebhookCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = commandsmock.NewMockWebhookRepository(s.mockCtrl)
	s.uc = commands.NewWebhookCommands(s.mockRepo)
}

func (s *WebhookCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookCommandsSuite(t *testing.T) {
	suite.Run(t, new(WebhookCommandsTestSuite))
}

func (s *WebhookCommandsTestSuite) TestMarkForReinstallation() {
	ctx := context.Background()

	s.Run("success: reports how many webhooks were marked", func() {
		s.mockRepo.EXPECT().MarkForReinstallation(gomock.Any(), testUserID).
			Return(int64(3), nil).Times(1)

		count, err := s.uc.MarkForReinstallation(ctx, testUserID)
		s.NoError(err)
		s.Equal(int64(3), count)
	})

	s.Run("success: zero webhooks is not an error", func() {
		s.mockRepo.EXPECT().MarkForReinstallation(gomock.Any(), "user-without-hooks").
			Return(int64(0), nil).Times(1)

		count, err := s.uc.MarkForReinstallation(ctx, "user-without-hooks")
		s.NoError(err)
		s.Equal(int64(0), count)
	})

	s.Run("error: storage failure is marked as database failure", func() {
		s.mockRepo.EXPECT().MarkForReinstallation(gomock.Any(), testUserID).
			Return(int64(0), infra.WrapRepoErr("update failed", nil)).Times(1)

		count, err := s.uc.MarkForReinstallation(ctx, testUserID)
		s.ErrorIs(err, errs.ErrDatabaseOperationFailed)
		s.Equal(int64(0), count)
	})
}

package email_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mrz1836/postmark"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/devcodecare/site/pkg/email"
)

type mockPostmark struct {
	mock.Mock
}

func (m *mockPostmark) SendEmail(ctx context.Context, e postmark.Email) (postmark.EmailResponse, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(postmark.EmailResponse), args.Error(1)
}

func postmarkConfig() email.PostmarkConfig {
	return email.PostmarkConfig{ServerToken: "server", AccountToken: "account", From: "site@devcodecare.in"}
}

func TestPostmarkSender(t *testing.T) {
	t.Parallel()

	t.Run("maps message fields", func(t *testing.T) {
		t.Parallel()
		api := &mockPostmark{}
		api.On("SendEmail", mock.Anything, mock.MatchedBy(func(e postmark.Email) bool {
			return e.From == "site@devcodecare.in" &&
				e.To == "contact@devcodecare.in" &&
				e.ReplyTo == "jo@example.com" &&
				e.Subject == "Contact Form: Hello" &&
				e.HTMLBody == "<p>Hello</p>" &&
				e.TextBody == "Hello" &&
				e.Tag == "contact-form"
		})).Return(postmark.EmailResponse{MessageID: "m-1"}, nil).Once()

		s := email.NewPostmarkSender(postmarkConfig(), email.WithPostmarkClient(api))
		require.NoError(t, s.Send(context.Background(), validMessage()))
		api.AssertExpectations(t)
	})

	t.Run("error code is a failure", func(t *testing.T) {
		t.Parallel()
		api := &mockPostmark{}
		api.On("SendEmail", mock.Anything, mock.Anything).
			Return(postmark.EmailResponse{ErrorCode: 300, Message: "Invalid email request"}, nil).Once()

		s := email.NewPostmarkSender(postmarkConfig(), email.WithPostmarkClient(api))
		err := s.Send(context.Background(), validMessage())
		assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
		assert.Contains(t, err.Error(), "Invalid email request")
	})

	t.Run("transport error", func(t *testing.T) {
		t.Parallel()
		api := &mockPostmark{}
		api.On("SendEmail", mock.Anything, mock.Anything).
			Return(postmark.EmailResponse{}, errors.New("timeout")).Once()

		s := email.NewPostmarkSender(postmarkConfig(), email.WithPostmarkClient(api))
		assert.ErrorIs(t, s.Send(context.Background(), validMessage()), email.ErrFailedToSendEmail)
	})

	t.Run("configuration", func(t *testing.T) {
		t.Parallel()
		assert.True(t, email.NewPostmarkSender(postmarkConfig()).Configured())

		cfg := postmarkConfig()
		cfg.From = ""
		assert.False(t, email.NewPostmarkSender(cfg).Configured())
		assert.False(t, email.NewPostmarkSender(email.PostmarkConfig{}).Configured())
	})
}

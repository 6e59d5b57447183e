package email

import (
	"errors"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	args := m.Called(params)
	resp, _ := args.Get(0).(*resend.SendEmailResponse)
	return resp, args.Error(1)
}

func newTestClient(s sender) *Client {
	logger := zerolog.Nop()
	return &Client{emails: s, from: "Edu <hello@example.com>", logger: &logger}
}

func TestRender_AllTemplates(t *testing.T) {
	for name, data := range PreviewData {
		html, err := Render(name, data)
		require.NoError(t, err, name)
		assert.Contains(t, html, data["Name"], name)
	}
}

func TestRender_EscapesInput(t *testing.T) {
	html, err := Render(TemplateFeedbackAck, map[string]string{"Name": "<script>"})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, err := Render("missing", nil)
	require.Error(t, err)
}

func TestSendContactAck(t *testing.T) {
	s := &mockSender{}
	s.On("Send", mock.MatchedBy(func(p *resend.SendEmailRequest) bool {
		return p.From == "Edu <hello@example.com>" &&
			len(p.To) == 1 && p.To[0] == "jane@example.com" &&
			p.Subject == "We received your enquiry: Visa help"
	})).Return(&resend.SendEmailResponse{Id: "abc"}, nil).Once()

	require.NoError(t, newTestClient(s).SendContactAck("jane@example.com", "Jane", "Visa help"))
	s.AssertExpectations(t)
}

func TestSendEmail_ProviderError(t *testing.T) {
	s := &mockSender{}
	s.On("Send", mock.Anything).Return(nil, errors.New("rate limited")).Once()

	err := newTestClient(s).SendWelcomeEmail("jane@example.com", "Jane", "jane")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) SendWelcomeEmail(to, name, username string) error {
	return m.Called(to, name, username).Error(0)
}

func (m *mockMailer) SendContactAck(to, name, subject string) error {
	return m.Called(to, name, subject).Error(0)
}

func (m *mockMailer) SendFeedbackAck(to, name string) error {
	return m.Called(to, name).Error(0)
}

func newTestService(m Mailer) *JobService {
	logger := zerolog.Nop()
	return &JobService{mailer: m, logger: &logger}
}

func TestNewWelcomeEmailTask(t *testing.T) {
	task, err := NewWelcomeEmailTask("jane@example.com", "Jane", "jane")
	require.NoError(t, err)
	assert.Equal(t, TaskWelcome, task.Type())

	var p WelcomeEmailPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	assert.Equal(t, WelcomeEmailPayload{To: "jane@example.com", Name: "Jane", Username: "jane"}, p)
}

func TestAckTasks(t *testing.T) {
	task, err := NewContactAckTask("a@example.com", "A", "Visa")
	require.NoError(t, err)
	assert.Equal(t, TaskContactAck, task.Type())
	assert.JSONEq(t, `{"to":"a@example.com","name":"A","subject":"Visa"}`, string(task.Payload()))

	task, err = NewFeedbackAckTask("b@example.com", "B")
	require.NoError(t, err)
	assert.Equal(t, TaskFeedbackAck, task.Type())
	assert.JSONEq(t, `{"to":"b@example.com","name":"B"}`, string(task.Payload()))
}

func TestMux_RoutesToMailer(t *testing.T) {
	m := &mockMailer{}
	m.On("SendWelcomeEmail", "jane@example.com", "Jane", "jane").Return(nil).Once()
	m.On("SendContactAck", "a@example.com", "A", "Visa").Return(nil).Once()
	m.On("SendFeedbackAck", "b@example.com", "B").Return(nil).Once()

	mux := newTestService(m).Mux()
	ctx := context.Background()

	for _, build := range []func() (*asynq.Task, error){
		func() (*asynq.Task, error) { return NewWelcomeEmailTask("jane@example.com", "Jane", "jane") },
		func() (*asynq.Task, error) { return NewContactAckTask("a@example.com", "A", "Visa") },
		func() (*asynq.Task, error) { return NewFeedbackAckTask("b@example.com", "B") },
	} {
		task, err := build()
		require.NoError(t, err)
		require.NoError(t, mux.ProcessTask(ctx, task))
	}

	m.AssertExpectations(t)
}

func TestHandler_PropagatesSendError(t *testing.T) {
	m := &mockMailer{}
	m.On("SendFeedbackAck", "b@example.com", "B").Return(errors.New("boom")).Once()

	task, err := NewFeedbackAckTask("b@example.com", "B")
	require.NoError(t, err)

	err = newTestService(m).handleFeedbackAckTask(context.Background(), task)
	require.Error(t, err)
	assert.False(t, errors.Is(err, asynq.SkipRetry))
}

func TestHandler_MalformedPayloadSkipsRetry(t *testing.T) {
	m := &mockMailer{}
	err := newTestService(m).handleContactAckTask(context.Background(), asynq.NewTask(TaskContactAck, []byte("{")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, asynq.SkipRetry))
	m.AssertNotCalled(t, "SendContactAck", mock.Anything, mock.Anything, mock.Anything)
}

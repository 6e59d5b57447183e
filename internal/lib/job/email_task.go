package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	TaskWelcome     = "email:welcome"
	TaskContactAck  = "email:contact_ack"
	TaskFeedbackAck = "email:feedback_ack"
)

type WelcomeEmailPayload struct {
	To       string `json:"to"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

type ContactAckPayload struct {
	To      string `json:"to"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
}

type FeedbackAckPayload struct {
	To   string `json:"to"`
	Name string `json:"name"`
}

func newEmailTask(taskType, queue string, payload any) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(
		taskType,
		data,
		asynq.MaxRetry(3),
		asynq.Queue(queue),
		asynq.Timeout(30*time.Second),
	), nil
}

func NewWelcomeEmailTask(to, name, username string) (*asynq.Task, error) {
	return newEmailTask(TaskWelcome, QueueDefault, WelcomeEmailPayload{To: to, Name: name, Username: username})
}

// NewContactAckTask acknowledges a contact enquiry. Acknowledgements go to
// the low priority queue.
func NewContactAckTask(to, name, subject string) (*asynq.Task, error) {
	return newEmailTask(TaskContactAck, QueueLow, ContactAckPayload{To: to, Name: name, Subject: subject})
}

func NewFeedbackAckTask(to, name string) (*asynq.Task, error) {
	return newEmailTask(TaskFeedbackAck, QueueLow, FeedbackAckPayload{To: to, Name: name})
}

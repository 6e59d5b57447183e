package email

// Template names a file under templates/, without the .html suffix.
type Template string

const (
	TemplateWelcome     Template = "welcome"
	TemplateContactAck  Template = "contact_ack"
	TemplateFeedbackAck Template = "feedback_ack"
)

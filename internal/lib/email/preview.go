package email

// PreviewData holds sample values for rendering every template locally.
var PreviewData = map[Template]map[string]string{
	TemplateWelcome: {
		"Name":     "Jane Doe",
		"Username": "jane",
	},
	TemplateContactAck: {
		"Name":    "Jane Doe",
		"Subject": "Study abroad in Canada",
	},
	TemplateFeedbackAck: {
		"Name": "Jane Doe",
	},
}

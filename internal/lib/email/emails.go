package email

func (c *Client) SendWelcomeEmail(to, name, username string) error {
	return c.SendEmail(to, "Welcome to Education Consultancy!", TemplateWelcome, map[string]string{
		"Name":     name,
		"Username": username,
	})
}

// SendContactAck confirms that an enquiry reached the team.
func (c *Client) SendContactAck(to, name, subject string) error {
	return c.SendEmail(to, "We received your enquiry: "+subject, TemplateContactAck, map[string]string{
		"Name":    name,
		"Subject": subject,
	})
}

func (c *Client) SendFeedbackAck(to, name string) error {
	return c.SendEmail(to, "Thank you for your feedback", TemplateFeedbackAck, map[string]string{
		"Name": name,
	})
}

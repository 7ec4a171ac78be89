package mailer

// SendRequest is the request body for the email sender service.
type SendRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

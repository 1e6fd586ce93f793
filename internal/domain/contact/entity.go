package contact

import "strings"

type Subject struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Subjects is the fixed list offered by the contact form.
var Subjects = []Subject{
	{Value: "general", Label: "General Inquiry"},
	{Value: "support", Label: "Technical Support"},
	{Value: "worker-registration", Label: "Worker Registration Help"},
	{Value: "customer-support", Label: "Customer Support"},
	{Value: "partnership", Label: "Partnership Opportunities"},
	{Value: "feedback", Label: "Feedback & Suggestions"},
	{Value: "bug-report", Label: "Bug Report"},
	{Value: "feature-request", Label: "Feature Request"},
}

func IsSubject(v string) bool {
	for _, s := range Subjects {
		if s.Value == v {
			return true
		}
	}
	return false
}

// Message is a contact form submission. Length rules apply to trimmed text.
type Message struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name" validate:"trimmed_min=2,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Subject   string `json:"subject" validate:"trimmed_min=5,max=200"`
	Message   string `json:"message" validate:"trimmed_min=10,max=5000"`
	CreatedAt string `json:"createdAt,omitempty"`
}

func (m Message) Trimmed() Message {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Subject = strings.TrimSpace(m.Subject)
	m.Message = strings.TrimSpace(m.Message)
	return m
}

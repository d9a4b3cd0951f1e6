package dto

import (
	"time"

	"github.com/jsamuelsen/portfolio/internal/app"
)

// ContactRequest is the contact form body. Name, email and message are
// required, matching the form's own constraints.
type ContactRequest struct {
	Name    string `json:"name"    validate:"required,notblank,max=100"`
	Email   string `json:"email"   validate:"required,email,max=254"`
	Subject string `json:"subject" validate:"max=200"`
	Message string `json:"message" validate:"required,notblank,max=5000"`

	// ViewID ties the submission to a view so that a second submit while
	// the first is pending is rejected.
	ViewID string `json:"viewId" validate:"omitempty,uuid"`
}

// ToApp converts the body to the service request. key identifies the
// submitter when no view is given.
func (r *ContactRequest) ToApp(key string) app.ContactRequest {
	if r.ViewID != "" {
		key = r.ViewID
	}

	return app.ContactRequest{
		Name:    r.Name,
		Email:   r.Email,
		Subject: r.Subject,
		Message: r.Message,
		Key:     key,
	}
}

// ContactResponse acknowledges an accepted submission.
type ContactResponse struct {
	ID          string    `json:"id"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// NewContactResponse converts a receipt.
func NewContactResponse(r *app.ContactReceipt) ContactResponse {
	return ContactResponse{ID: r.ID, Status: "accepted", SubmittedAt: r.SubmittedAt}
}

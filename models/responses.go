package models

import "strings"

// SubmissionResult is the user-visible outcome of one form submission.
// Success is true whenever the record was stored; email delivery problems
// are downgraded to the Warning field.
type SubmissionResult struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Warning string   `json:"warning,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// Outcome messages, matching the public website.
const (
	MsgSubmitOK             = "Formulier succesvol verzonden! U ontvangt een bevestigingsmail."
	MsgSubmitNoConfirmation = "Formulier opgeslagen en melding verstuurd. Bevestigingsmail kon niet worden verzonden."
	MsgSubmitNoNotification = "Formulier opgeslagen en bevestigingsmail verzonden. Interne melding mislukt."
	MsgSubmitNoEmail        = "Formulier opgeslagen, maar e-mails konden niet worden verstuurd. We nemen contact met u op."

	WarnConfirmationFailed = "Bevestigingsmail mislukt"
	WarnNotificationFailed = "Interne melding mislukt"
	WarnAllEmailFailed     = "E-mail verzending mislukt"

	MsgValidationFailed = "Validatiefout in formuliergegevens."
	MsgStorageFailed    = "Fout bij opslaan van gegevens."
	MsgUnexpectedError  = "Er is een onverwachte fout opgetreden bij het verwerken van uw aanmelding."
)

// NewSubmissionResult composes the outcome from the two independent email
// results. Storage already succeeded by the time this is called, so all
// four combinations are successes.
func NewSubmissionResult(operatorNotified, submitterConfirmed bool) *SubmissionResult {
	switch {
	case operatorNotified && submitterConfirmed:
		return &SubmissionResult{Success: true, Message: MsgSubmitOK}
	case operatorNotified:
		return &SubmissionResult{Success: true, Message: MsgSubmitNoConfirmation, Warning: WarnConfirmationFailed}
	case submitterConfirmed:
		return &SubmissionResult{Success: true, Message: MsgSubmitNoNotification, Warning: WarnNotificationFailed}
	default:
		return &SubmissionResult{Success: true, Message: MsgSubmitNoEmail, Warning: WarnAllEmailFailed}
	}
}

// ValidationError carries every violated constraint of one submission.
type ValidationError struct {
	Violations []string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Violations, "; ")
}

// ErrorResponse is the JSON body of a failed request.
type ErrorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Database  string `json:"database"`
	Email     string `json:"email"`
}

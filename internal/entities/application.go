package entities

import "time"

type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "PENDING"
	ApplicationAccepted  ApplicationStatus = "ACCEPTED"
	ApplicationRejected  ApplicationStatus = "REJECTED"
	ApplicationCancelled ApplicationStatus = "CANCELLED"
)

// Payment is the sub-record some record-creation responses embed when the
// application requires an up-front fee.
type Payment struct {
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	PaymentLink string  `json:"payment_link"`
}

// Required reports whether the payment carries an actionable link.
func (p *Payment) Required() bool {
	return p != nil && p.PaymentLink != ""
}

// StudentApplication is an enrollment of the signed-in user into a training
// session, as returned by the my-student-applications endpoints.
type StudentApplication struct {
	ID                string            `json:"id"`
	UserID            string            `json:"user_id"`
	TrainingID        string            `json:"training_id"`
	TargetSessionID   string            `json:"target_session_id"`
	ApplicationNumber string            `json:"application_number"`
	Status            ApplicationStatus `json:"status"`
	PaymentID         string            `json:"payment_id"`
	RefusalReason     string            `json:"refusal_reason"`
	RegistrationFee   float64           `json:"registration_fee"`
	TrainingFee       float64           `json:"training_fee"`
	Currency          string            `json:"currency"`
	TrainingTitle     string            `json:"training_title"`
	SessionStartDate  time.Time         `json:"training_session_start_date"`
	SessionEndDate    time.Time         `json:"training_session_end_date"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`

	// Populated by the detail endpoint only.
	Training        *Training        `json:"training,omitempty"`
	TrainingSession *TrainingSession `json:"training_session,omitempty"`
}

// JobApplication is the record created when applying to a job offer.
type JobApplication struct {
	ID                string            `json:"id"`
	JobOfferID        string            `json:"job_offer_id"`
	ApplicationNumber string            `json:"application_number"`
	Status            ApplicationStatus `json:"status"`
	CreatedAt         time.Time         `json:"created_at"`
}

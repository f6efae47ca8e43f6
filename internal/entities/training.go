package entities

import "time"

type TrainingStatus string

const (
	TrainingActive    TrainingStatus = "ACTIVE"
	TrainingInactive  TrainingStatus = "INACTIVE"
	TrainingUpcoming  TrainingStatus = "UPCOMING"
	TrainingCompleted TrainingStatus = "COMPLETED"
)

type TrainingType string

const (
	TrainingOnSite TrainingType = "On-Site"
	TrainingOnline TrainingType = "Online"
	TrainingHybrid TrainingType = "Hybrid"
)

type Training struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Status         TrainingStatus `json:"status"`
	Duration       int            `json:"duration"`
	DurationUnit   string         `json:"duration_unit"`
	TrainingType   TrainingType   `json:"training_type"`
	Presentation   string         `json:"presentation"`
	TargetSkills   string         `json:"target_skills"`
	Program        string         `json:"program"`
	TargetAudience string         `json:"target_audience"`
	Prerequisites  string         `json:"prerequisites"`
	Enrollment     string         `json:"enrollment"`
	CreatedAt      time.Time      `json:"created_at"`
}

type SessionStatus string

const (
	SessionOpenForRegistration SessionStatus = "OPEN_FOR_REGISTRATION"
	SessionClosed              SessionStatus = "CLOSED"
	SessionFull                SessionStatus = "FULL"
	SessionCancelled           SessionStatus = "CANCELLED"
	SessionOngoing             SessionStatus = "ONGOING"
	SessionCompleted           SessionStatus = "COMPLETED"
)

// TrainingSession is a scheduled run of a training.
type TrainingSession struct {
	ID                   string        `json:"id"`
	TrainingID           string        `json:"training_id"`
	StartDate            time.Time     `json:"start_date"`
	EndDate              time.Time     `json:"end_date"`
	RegistrationDeadline time.Time     `json:"registration_deadline"`
	TrainingFee          float64       `json:"training_fee"`
	RegistrationFee      float64       `json:"registration_fee"`
	Currency             string        `json:"currency"`
	AvailableSlots       int           `json:"available_slots"`
	Status               SessionStatus `json:"status"`
	CreatedAt            time.Time     `json:"created_at"`
}

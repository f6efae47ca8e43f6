package entities

import "time"

type JobOffer struct {
	ID                     string           `json:"id"`
	Reference              string           `json:"reference"`
	Title                  string           `json:"title"`
	Location               string           `json:"location"`
	ContractType           string           `json:"contract_type"`
	WeeklyHours            int              `json:"weekly_hours"`
	Salary                 float64          `json:"salary"`
	Currency               string           `json:"currency"`
	Benefits               string           `json:"benefits"`
	SubmissionFee          float64          `json:"submission_fee"`
	SubmissionDeadline     time.Time        `json:"submission_deadline"`
	StartDate              time.Time        `json:"start_date"`
	EndDate                *time.Time       `json:"end_date"`
	DrivingLicenseRequired bool             `json:"driving_license_required"`
	MainMission            string           `json:"main_mission"`
	Responsibilities       string           `json:"responsibilities"`
	Competencies           string           `json:"competencies"`
	Profile                string           `json:"profile"`
	Conditions             string           `json:"conditions"`
	RequiredAttachments    []AttachmentType `json:"attachment"`
	CreatedAt              time.Time        `json:"created_at"`
}

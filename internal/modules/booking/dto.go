package booking

import (
	"strings"
	"time"
)

// SubmitBookingRequest is the lead-capture form, as JSON or form fields.
type SubmitBookingRequest struct {
	FullName      string `json:"full_name" form:"full_name" validate:"required,max=200"`
	CompanyName   string `json:"company_name" form:"company_name" validate:"max=200"`
	Industry      string `json:"industry" form:"industry" validate:"required"`
	OtherIndustry string `json:"other_industry" form:"other_industry" validate:"max=200"`
	WhatsApp      string `json:"whatsapp" form:"whatsapp" validate:"required,max=50"`
	Email         string `json:"email" form:"email" validate:"required,email,max=254"`
	Message       string `json:"message" form:"message" validate:"max=5000"`
	SubmissionKey string `json:"submission_key" form:"submission_key" validate:"max=64"`
}

func (r SubmitBookingRequest) normalized() SubmitBookingRequest {
	r.FullName = strings.TrimSpace(r.FullName)
	r.CompanyName = strings.TrimSpace(r.CompanyName)
	r.Industry = strings.TrimSpace(r.Industry)
	r.OtherIndustry = strings.TrimSpace(r.OtherIndustry)
	r.WhatsApp = strings.TrimSpace(r.WhatsApp)
	r.Email = strings.TrimSpace(r.Email)
	r.Message = strings.TrimSpace(r.Message)
	r.SubmissionKey = strings.TrimSpace(r.SubmissionKey)
	return r
}

// SubmitMeta is request metadata stored alongside the booking.
type SubmitMeta struct {
	IP        string
	UserAgent string
}

type BookingResponse struct {
	ID        int64     `json:"id"`
	Industry  string    `json:"industry"`
	Notified  bool      `json:"notified"`
	Duplicate bool      `json:"duplicate"`
	CreatedAt time.Time `json:"created_at"`
}

type ListQuery struct {
	Limit   int
	Offset  int
	Pending bool
}

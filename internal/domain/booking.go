package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrUnknownIndustry       = errors.New("unknown industry")
	ErrOtherIndustryRequired = errors.New("other industry label is required")
)

type Industry string

const (
	IndustryTech       Industry = "tech"
	IndustryFinance    Industry = "finance"
	IndustryHealthcare Industry = "healthcare"
	IndustryRealEstate Industry = "realestate"
	IndustryRestaurant Industry = "restaurant"
	IndustrySchool     Industry = "school"
	IndustryAgency     Industry = "agency"
	IndustryOther      Industry = "other"
)

type IndustryOption struct {
	Value Industry
	Label string
}

// Industries lists the select options in display order.
var Industries = []IndustryOption{
	{IndustryTech, "Technology / SaaS"},
	{IndustryFinance, "Finance / Fintech"},
	{IndustryHealthcare, "Healthcare"},
	{IndustryRealEstate, "Real Estate"},
	{IndustryRestaurant, "Restaurant"},
	{IndustrySchool, "School"},
	{IndustryAgency, "Agency / Consulting"},
	{IndustryOther, "Other"},
}

var industryAliases = map[string]Industry{
	"technology":  IndustryTech,
	"real-estate": IndustryRealEstate,
	"real_estate": IndustryRealEstate,
}

// ParseIndustry accepts a canonical token or one of its spelled aliases.
func ParseIndustry(raw string) (Industry, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if alias, ok := industryAliases[v]; ok {
		return alias, nil
	}
	for _, opt := range Industries {
		if string(opt.Value) == v {
			return opt.Value, nil
		}
	}
	return "", ErrUnknownIndustry
}

// ResolveIndustry returns the value persisted for a booking: the free-text
// label replaces "other", and the label is ignored for every other token.
// A label that is itself "other" in any case counts as missing.
func ResolveIndustry(ind Industry, otherLabel string) (string, error) {
	if ind != IndustryOther {
		return string(ind), nil
	}
	label := strings.TrimSpace(otherLabel)
	if label == "" || strings.EqualFold(label, string(IndustryOther)) {
		return "", ErrOtherIndustryRequired
	}
	return label, nil
}

// Booking is a lead captured by the "Book Your Strategy Call" form.
type Booking struct {
	ID            int64  `json:"id"`
	SubmissionKey string `json:"submission_key"`

	FullName    string `json:"full_name"`
	CompanyName string `json:"company_name,omitempty"`
	Email       string `json:"email"`
	WhatsApp    string `json:"whatsapp"`
	Industry    string `json:"industry"`
	Message     string `json:"message,omitempty"`

	SourceIP  string `json:"-"`
	UserAgent string `json:"-"`

	NotifiedAt      *time.Time `json:"notified_at,omitempty"`
	NotifyAttempts  int        `json:"notify_attempts"`
	LastNotifyError string     `json:"last_notify_error,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) IsNotified() bool {
	return b.NotifiedAt != nil
}

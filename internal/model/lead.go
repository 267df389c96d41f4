package model

import (
	"encoding/json"
	"time"
)

// LeadRequest represents a lead submission from one of the site's forms
// (contact form or site-visit booking modal). All validation happens in the
// service layer so that error ordering stays deterministic; binding tags are
// deliberately not used here.
type LeadRequest struct {
	Name    string     `json:"name"`
	Phone   FlexString `json:"phone"`
	Email   string     `json:"email"`
	Date    string     `json:"date"`
	Time    string     `json:"time"`
	Message string     `json:"message"`
}

// Lead is an accepted lead record handed to the configured sink.
type Lead struct {
	ID         string    `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Phone      string    `json:"phone" db:"phone"`
	Email      string    `json:"email" db:"email"`
	VisitDate  string    `json:"date,omitempty" db:"visit_date"`
	VisitTime  string    `json:"time,omitempty" db:"visit_time"`
	Message    string    `json:"message,omitempty" db:"message"`
	ReceivedAt time.Time `json:"received_at" db:"received_at"`
}

// Ack is the API response envelope: {ok:true} on success,
// {ok:false, error:"..."} on failure.
type Ack struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// LeadListResponse is the response for the recent-leads listing.
type LeadListResponse struct {
	Leads []Lead `json:"leads"`
	Total int    `json:"total"`
}

// FlexString decodes a JSON string or bare number into a string. The phone
// field historically accepted both `"9876543210"` and `9876543210`; the
// value is coerced to its string form before validation.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler
func (s *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = FlexString(n.String())
	return nil
}

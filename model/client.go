// api/model/client.go
package model

import "time"

// Client is the record every operation targets.
// Password is input only; the stored form is PasswordHash, which never leaves the service.
type Client struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"first_name" validate:"required,max=100"`
	LastName      string    `json:"last_name" validate:"required,max=100"`
	Email         string    `json:"email" validate:"required,email"`
	Phone         string    `json:"phone,omitempty" validate:"omitempty,e164"`
	Address       string    `json:"address,omitempty" validate:"max=500"`
	Password      string    `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
	PasswordHash  string    `json:"-"`
	CreditLimit   float64   `json:"credit_limit" validate:"gte=0"`
	Segment       string    `json:"segment,omitempty" validate:"omitempty,oneof=retail wholesale vip"`
	InternalNotes string    `json:"internal_notes,omitempty" validate:"max=2000"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Field names as they appear on the wire.
const (
	FieldID            = "id"
	FieldFirstName     = "first_name"
	FieldLastName      = "last_name"
	FieldEmail         = "email"
	FieldPhone         = "phone"
	FieldAddress       = "address"
	FieldPassword      = "password"
	FieldCreditLimit   = "credit_limit"
	FieldSegment       = "segment"
	FieldInternalNotes = "internal_notes"
	FieldCreatedAt     = "created_at"
	FieldUpdatedAt     = "updated_at"
)

// ClientFields lists every wire field of Client.
var ClientFields = []string{
	FieldID,
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldPhone,
	FieldAddress,
	FieldPassword,
	FieldCreditLimit,
	FieldSegment,
	FieldInternalNotes,
	FieldCreatedAt,
	FieldUpdatedAt,
}

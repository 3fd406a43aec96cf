package model

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// dialog の入力欄の名前
const (
	FieldChannelName  = "channel_name"
	FieldInvitee      = "invitee"
	FieldOrganization = "organization"
	FieldExpireDays   = "expire_days"
	FieldPurpose      = "purpose"
)

var (
	channelNamePattern = regexp.MustCompile(`^[a-z0-9_-]{1,21}$`)
	expireDaysPattern  = regexp.MustCompile(`^[1-9]\d*$`)
)

var requestValidate *validator.Validate

func init() {
	requestValidate = validator.New()
	_ = requestValidate.RegisterValidation("channelname", func(fl validator.FieldLevel) bool {
		return channelNamePattern.MatchString(fl.Field().String())
	})
	_ = requestValidate.RegisterValidation("expiredays", func(fl validator.FieldLevel) bool {
		v := fl.Field().String()
		if !expireDaysPattern.MatchString(v) {
			return false
		}
		d, err := strconv.ParseInt(v, 10, 64)
		return err == nil && d <= MaxExpireDays
	})
}

// FieldError is a user-facing error attached to one dialog field. An empty
// Field means the error is not about any single field.
type FieldError struct {
	Field   string `json:"name"`
	Message string `json:"error"`
}

// ChannelRequest は channel_request_dialog の送信内容
//
// Field order matters: validation errors are reported in declaration order.
type ChannelRequest struct {
	Invitee      string `validate:"nefield=RequesterID"`
	ChannelName  string `validate:"channelname"`
	ExpireDays   string `validate:"expiredays"`
	RequesterID  string
	Organization string
	Purpose      string
}

// NewChannelRequest reads a dialog submission.
func NewChannelRequest(requesterID string, submission map[string]string) *ChannelRequest {
	r := &ChannelRequest{
		Invitee:      submission[FieldInvitee],
		ChannelName:  submission[FieldChannelName],
		ExpireDays:   submission[FieldExpireDays],
		RequesterID:  requesterID,
		Organization: strings.TrimSpace(submission[FieldOrganization]),
		Purpose:      submission[FieldPurpose],
	}
	r.Normalize()
	return r
}

func (r *ChannelRequest) Normalize() {
	r.ChannelName = strings.ToLower(strings.TrimSpace(r.ChannelName))
}

// Validate checks every rule and returns all failures; nil means valid.
func (r *ChannelRequest) Validate() []FieldError {
	err := requestValidate.Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Message: FatalPlatformError}}
	}

	var errs []FieldError
	for _, fe := range verrs {
		switch fe.StructField() {
		case "Invitee":
			errs = append(errs, FieldError{
				Field:   FieldInvitee,
				Message: "You can't request a private channel with just yourself in it!",
			})
		case "ChannelName":
			errs = append(errs, FieldError{Field: FieldChannelName, Message: "Invalid characters found."})
		case "ExpireDays":
			errs = append(errs, FieldError{Field: FieldExpireDays, Message: "Please enter a valid positive integer."})
		}
	}
	return errs
}

// Days is only meaningful after Validate succeeded.
func (r *ChannelRequest) Days() int {
	d, err := strconv.ParseInt(r.ExpireDays, 10, 64)
	if err != nil || d > MaxExpireDays {
		return MaxExpireDays
	}
	return int(d)
}

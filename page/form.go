package page

import (
	"context"
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/bencyn-cli/bencyn/api"
	"github.com/bencyn-cli/bencyn/content"
	"github.com/bencyn-cli/bencyn/log"
	"github.com/go-playground/validator/v10"
)

// FormStatus is the state of the contact form.
type FormStatus int

const (
	FormIdle FormStatus = iota
	FormInvalid
	FormSubmitting
	FormSucceeded
	FormFailed
)

func (s FormStatus) String() string {
	switch s {
	case FormInvalid:
		return "invalid"
	case FormSubmitting:
		return "submitting"
	case FormSucceeded:
		return "succeeded"
	case FormFailed:
		return "failed"
	default:
		return "idle"
	}
}

const (
	MessageInvalid = "Please fix the errors in the form before submitting."
	MessageSuccess = "Thank you! Your message has been sent successfully."
	MessageTimeout = "Request timed out. Please check your connection and try again."
	MessageFailure = "Sorry, there was an error sending your message. Please try again or contact us directly."
)

// Form field names, as sent to the API.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldSubject = "subject"
	FieldMessage = "message"
)

var Fields = []string{FieldName, FieldEmail, FieldPhone, FieldSubject, FieldMessage}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var fieldMessages = map[string]string{
	FieldName + ".required":       "Name is required",
	FieldEmail + ".required":      "Email is required",
	FieldEmail + ".email_address": "Please enter a valid email address",
	FieldSubject + ".required":    "Subject is required",
	FieldMessage + ".required":    "Message is required",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})
	_ = v.RegisterValidation("email_address", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	return v
}

// FieldErrors maps a field name to its message.
type FieldErrors map[string]string

// Outcome is the result of one submission attempt.
type Outcome struct {
	Status  FormStatus  `json:"status"`
	Message string      `json:"message"`
	Errors  FieldErrors `json:"errors,omitempty"`
}

// Form is the contact form: Idle -> Invalid | Submitting -> Succeeded | Failed.
// Validation is local, an invalid form is never sent.
type Form struct {
	assembler *Assembler

	mu      sync.Mutex
	values  content.ContactMessage
	errors  FieldErrors
	status  FormStatus
	message string
}

func (a *Assembler) NewForm() *Form {
	return &Form{assembler: a, errors: FieldErrors{}}
}

// Set updates one field and clears its error.
func (f *Form) Set(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case FieldName:
		f.values.Name = value
	case FieldEmail:
		f.values.Email = value
	case FieldPhone:
		f.values.Phone = value
	case FieldSubject:
		f.values.Subject = value
	case FieldMessage:
		f.values.Message = value
	default:
		return
	}
	delete(f.errors, field)
}

func (f *Form) Values() content.ContactMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

func (f *Form) Errors() FieldErrors {
	f.mu.Lock()
	defer f.mu.Unlock()

	copied := make(FieldErrors, len(f.errors))
	for k, v := range f.errors {
		copied[k] = v
	}
	return copied
}

func (f *Form) Status() (FormStatus, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status, f.message
}

// Validate checks msg without touching any form state.
func Validate(msg content.ContactMessage) FieldErrors {
	msg = trimmed(msg)
	errs := FieldErrors{}

	err := validate.Struct(msg)
	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return errs
	}

	for _, fe := range invalid {
		if _, seen := errs[fe.Field()]; seen {
			continue
		}
		if text, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
			errs[fe.Field()] = text
		}
	}
	return errs
}

// Submit validates the form and, if it is valid, posts it.
// On success every field is reset.
func (f *Form) Submit(ctx context.Context) Outcome {
	f.mu.Lock()
	if f.status == FormSubmitting {
		f.mu.Unlock()
		return Outcome{Status: FormSubmitting}
	}

	values := trimmed(f.values)
	if errs := Validate(values); len(errs) > 0 {
		f.errors = errs
		f.status = FormInvalid
		f.message = MessageInvalid
		f.mu.Unlock()
		return Outcome{Status: FormInvalid, Message: MessageInvalid, Errors: errs}
	}

	f.errors = FieldErrors{}
	f.status = FormSubmitting
	f.message = ""
	f.mu.Unlock()

	outcome := f.assembler.SendMessage(ctx, values)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = outcome.Status
	f.message = outcome.Message
	if outcome.Status == FormSucceeded {
		f.values = content.ContactMessage{}
	}
	return outcome
}

// SendMessage posts an already validated message.
func (a *Assembler) SendMessage(ctx context.Context, msg content.ContactMessage) Outcome {
	_, err := a.fetcher.Post(ctx, a.registry.Get(api.Contact), msg)
	switch {
	case err == nil:
		return Outcome{Status: FormSucceeded, Message: MessageSuccess}
	case api.IsTimeout(err):
		log.Warnf("page: contact submission timed out: %s", err)
		return Outcome{Status: FormFailed, Message: MessageTimeout}
	default:
		log.Errorf("page: contact submission failed: %s", err)
		return Outcome{Status: FormFailed, Message: MessageFailure}
	}
}

func trimmed(msg content.ContactMessage) content.ContactMessage {
	return content.ContactMessage{
		Name:    strings.TrimSpace(msg.Name),
		Email:   strings.TrimSpace(msg.Email),
		Phone:   strings.TrimSpace(msg.Phone),
		Subject: strings.TrimSpace(msg.Subject),
		Message: strings.TrimSpace(msg.Message),
	}
}

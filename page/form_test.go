package page

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bencyn-cli/bencyn/api"
	"github.com/bencyn-cli/bencyn/content"
	. "github.com/smartystreets/goconvey/convey"
)

func fillForm(f *Form, email string) {
	f.Set(FieldName, "Ama Mensah")
	f.Set(FieldEmail, email)
	f.Set(FieldPhone, "+233 24 000 0000")
	f.Set(FieldSubject, "Opening an account")
	f.Set(FieldMessage, "How do I start a daily susu?")
}

func TestValidate(t *testing.T) {
	Convey("Validate", t, func() {
		Convey("reports every blank required field", func() {
			errs := Validate(content.ContactMessage{Name: "   "})
			So(errs, ShouldResemble, FieldErrors{
				FieldName:    "Name is required",
				FieldEmail:   "Email is required",
				FieldSubject: "Subject is required",
				FieldMessage: "Message is required",
			})
		})

		Convey("rejects malformed addresses", func() {
			for _, email := range []string{"bad-email", "a@b", "a b@c.d", "@c.d"} {
				errs := Validate(content.ContactMessage{Name: "n", Email: email, Subject: "s", Message: "m"})
				So(errs[FieldEmail], ShouldEqual, "Please enter a valid email address")
			}
		})

		Convey("accepts a complete message", func() {
			errs := Validate(content.ContactMessage{Name: "n", Email: "a@b.co", Subject: "s", Message: "m"})
			So(errs, ShouldBeEmpty)
		})
	})
}

func TestFormSubmit(t *testing.T) {
	Convey("Given a form with an invalid email", t, func() {
		a, stub, r := newTestAssembler()
		stub.on(r.Get(api.Contact), nil, `{}`)
		form := a.NewForm()
		fillForm(form, "bad-email")

		outcome := form.Submit(context.Background())

		Convey("No request is made", func() {
			So(stub.postCount(), ShouldEqual, 0)
		})

		Convey("The field error and form message are shown", func() {
			So(outcome.Status, ShouldEqual, FormInvalid)
			So(outcome.Message, ShouldEqual, MessageInvalid)
			So(form.Errors()[FieldEmail], ShouldEqual, "Please enter a valid email address")
		})

		Convey("Editing the field clears its error", func() {
			form.Set(FieldEmail, "ama@example.com")
			So(form.Errors(), ShouldNotContainKey, FieldEmail)
		})
	})

	Convey("Given a valid form and a 200 response", t, func() {
		a, stub, r := newTestAssembler()
		stub.on(r.Get(api.Contact), nil, `{"id":1}`)
		form := a.NewForm()
		fillForm(form, "ama@example.com")

		outcome := form.Submit(context.Background())

		Convey("The success message is shown and the fields are reset", func() {
			So(outcome.Status, ShouldEqual, FormSucceeded)
			So(outcome.Message, ShouldEqual, "Thank you! Your message has been sent successfully.")
			So(form.Values(), ShouldResemble, content.ContactMessage{})
			So(stub.postCount(), ShouldEqual, 1)
		})

		Convey("The submitted body carries every field", func() {
			sent := stub.posts[0].(content.ContactMessage)
			So(sent.Email, ShouldEqual, "ama@example.com")
			So(sent.Phone, ShouldEqual, "+233 24 000 0000")
		})
	})

	Convey("Given a valid form and a failing API", t, func() {
		a, stub, r := newTestAssembler()
		stub.fail(r.Get(api.Contact), nil, errUnavailable)
		form := a.NewForm()
		fillForm(form, "ama@example.com")

		outcome := form.Submit(context.Background())

		Convey("The generic failure is shown and the fields are kept", func() {
			So(outcome.Status, ShouldEqual, FormFailed)
			So(outcome.Message, ShouldEqual, MessageFailure)
			So(form.Values().Name, ShouldEqual, "Ama Mensah")
		})
	})

	Convey("Given a valid form and an API slower than the timeout", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		a := New(api.NewClientWith(server.Client(), 50*time.Millisecond), api.NewRegistry(server.URL))
		form := a.NewForm()
		fillForm(form, "ama@example.com")

		outcome := form.Submit(context.Background())

		Convey("The timeout message is shown", func() {
			So(outcome.Status, ShouldEqual, FormFailed)
			So(outcome.Message, ShouldEqual, "Request timed out. Please check your connection and try again.")
			status, _ := form.Status()
			So(status, ShouldEqual, FormFailed)
		})
	})
}

func TestContactTimeout(t *testing.T) {
	Convey("Given contact-information that times out", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		a := New(api.NewClientWith(server.Client(), 50*time.Millisecond), api.NewRegistry(server.URL))

		Convey("The contact page shows the default address and phone", func() {
			view, withData := a.ContactInfo(context.Background())
			So(withData, ShouldBeFalse)
			So(view.Cards[0].Details, ShouldResemble, []string{"Your Business Address", "City, Country"})
			So(view.Cards[1].Details[0], ShouldEqual, "+233 XX XXX XXXX")
		})

		Convey("The footer shows the default address and phone", func() {
			view, withData := a.Footer(context.Background())
			So(withData, ShouldBeFalse)
			So(view.Address, ShouldEqual, "Your Business Address, City, Country")
			So(view.Phone, ShouldEqual, "+233 XX XXX XXXX")
		})
	})
}

package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestClientGet(t *testing.T) {
	Convey("Given a content API", t, func() {
		var seen *http.Request
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = r
			switch r.URL.Path {
			case "/api/blog-posts/":
				_, _ = io.WriteString(w, `{"results":[{"id":1,"title":"A"}]}`)
			case "/api/services/":
				w.WriteHeader(http.StatusInternalServerError)
			case "/api/updates/":
				time.Sleep(300 * time.Millisecond)
				_, _ = io.WriteString(w, `[]`)
			default:
				http.NotFound(w, r)
			}
		}))
		defer server.Close()

		registry := NewRegistry(server.URL)
		client := NewClientWith(server.Client(), 100*time.Millisecond)

		Convey("A 2xx response yields the raw body", func() {
			raw, err := client.Get(context.Background(), registry.Get(BlogPosts), nil)
			So(err, ShouldBeNil)
			So(Normalize(raw), ShouldHaveLength, 1)

			Convey("and identifying headers are sent", func() {
				So(seen.Header.Get("X-Request-ID"), ShouldNotBeEmpty)
				So(seen.Header.Get("User-Agent"), ShouldStartWith, "bencyn/")
				So(seen.Header.Get("Accept"), ShouldEqual, "application/json")
			})
		})

		Convey("Query parameters are appended", func() {
			params := url.Values{"category": {"Savings Guide"}, "search": {"susu"}}
			_, err := client.Get(context.Background(), registry.Get(BlogPosts), params)
			So(err, ShouldBeNil)
			So(seen.URL.Query().Get("category"), ShouldEqual, "Savings Guide")
			So(seen.URL.Query().Get("search"), ShouldEqual, "susu")
		})

		Convey("A non-2xx response is a RequestError with its status", func() {
			_, err := client.Get(context.Background(), registry.Get(Services), nil)
			var reqErr *RequestError
			So(errors.As(err, &reqErr), ShouldBeTrue)
			So(reqErr.StatusCode, ShouldEqual, http.StatusInternalServerError)
			So(IsTimeout(err), ShouldBeFalse)
		})

		Convey("A slow response is a TimeoutError", func() {
			start := time.Now()
			_, err := client.Get(context.Background(), registry.Get(Updates), nil)
			So(IsTimeout(err), ShouldBeTrue)
			So(time.Since(start), ShouldBeLessThan, 250*time.Millisecond)
		})
	})

	Convey("Given an unreachable base", t, func() {
		server := httptest.NewServer(http.NotFoundHandler())
		base := server.URL
		server.Close()

		client := NewClient(time.Second)
		_, err := client.Get(context.Background(), NewRegistry(base).Get(Gallery), nil)

		Convey("The failure is a RequestError without a status", func() {
			var reqErr *RequestError
			So(errors.As(err, &reqErr), ShouldBeTrue)
			So(reqErr.StatusCode, ShouldEqual, 0)
		})
	})
}

func TestClientPost(t *testing.T) {
	Convey("Given a contact endpoint", t, func() {
		var received map[string]string
		var contentType string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			contentType = r.Header.Get("Content-Type")
			_ = json.NewDecoder(r.Body).Decode(&received)
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"id":7}`)
		}))
		defer server.Close()

		client := NewClientWith(server.Client(), time.Second)
		body := map[string]string{"name": "Ama", "email": "ama@example.com"}

		Convey("The body is sent as JSON", func() {
			raw, err := client.Post(context.Background(), NewRegistry(server.URL).Get(Contact), body)
			So(err, ShouldBeNil)
			So(string(raw), ShouldEqual, `{"id":7}`)
			So(contentType, ShouldEqual, "application/json")
			So(received, ShouldResemble, body)
		})
	})
}

func TestNewClient(t *testing.T) {
	Convey("A non-positive timeout falls back to 30 seconds", t, func() {
		So(NewClient(0).Timeout(), ShouldEqual, DefaultTimeout)
		So(DefaultTimeout, ShouldEqual, 30*time.Second)
	})
}

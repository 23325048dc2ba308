package tui

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"sync"
	"testing"

	"github.com/bencyn-cli/bencyn/api"
	"github.com/bencyn-cli/bencyn/internal/ui"
	"github.com/bencyn-cli/bencyn/page"
	"github.com/bencyn-cli/bencyn/router"
	"github.com/bencyn-cli/bencyn/thumbnail"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	. "github.com/smartystreets/goconvey/convey"
)

// siteStub serves content by full request URL and can be told to panic.
type siteStub struct {
	mu      sync.Mutex
	bodies  map[string]string
	panics  map[string]bool
	posts   int
	postErr error
}

func newSiteStub() *siteStub {
	return &siteStub{bodies: map[string]string{}, panics: map[string]bool{}}
}

func requestURL(e api.Endpoint, params url.Values) string {
	if len(params) == 0 {
		return e.URL()
	}
	return e.URL() + "?" + params.Encode()
}

func (s *siteStub) set(u, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bodies[u] = body
}

func (s *siteStub) setPanic(u string, on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.panics[u] = on
}

func (s *siteStub) Get(_ context.Context, e api.Endpoint, params url.Values) (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := requestURL(e, params)
	if s.panics[u] {
		panic("malformed record")
	}
	body, ok := s.bodies[u]
	if !ok {
		return nil, &api.RequestError{URL: u, StatusCode: http.StatusNotFound, Cause: errors.New("not found")}
	}
	return json.RawMessage(body), nil
}

func (s *siteStub) Post(_ context.Context, e api.Endpoint, _ any) (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.posts++
	if s.postErr != nil {
		return nil, s.postErr
	}
	return json.RawMessage(`{}`), nil
}

func (s *siteStub) postCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.posts
}

func newTestBubble(stub *siteStub) (*statefulBubble, *api.Registry) {
	registry := api.NewRegistry("http://api.test")
	b := newBubble(&Options{}, page.New(stub, registry), thumbnail.NewCache(nil))
	b.resize(100, 40)
	return b, registry
}

// collect runs cmd and every command batched inside it once.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collect(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

// deliver feeds the results of cmd to b, skipping spinner animation, and
// returns whatever b asked to run next.
func deliver(b *statefulBubble, cmd tea.Cmd) []tea.Cmd {
	var next []tea.Cmd
	for _, msg := range collect(cmd) {
		if _, tick := msg.(spinner.TickMsg); tick {
			continue
		}
		_, c := b.Update(msg)
		next = append(next, c)
	}
	return next
}

func press(b *statefulBubble, keys ...tea.KeyMsg) tea.Cmd {
	var cmds []tea.Cmd
	for _, k := range keys {
		_, cmd := b.Update(k)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	right = tea.KeyMsg{Type: tea.KeyRight}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	ctrlS = tea.KeyMsg{Type: tea.KeyCtrlS}
)

func TestPages(t *testing.T) {
	Convey("Given a site with services and testimonials", t, func() {
		stub := newSiteStub()
		b, r := newTestBubble(stub)
		stub.set(r.Get(api.Services).URL(), `{"results":[{"id":1,"title":"Group Susu","service_type":"group","icon":"👥"}]}`)
		stub.set(r.Get(api.Testimonials).URL(), `[{"id":1,"name":"Ama Mensah","message":"Reliable","rating":5}]`)

		Convey("the home page renders its testimonials", func() {
			deliver(b, b.mount(router.Resolve("/")))
			So(b.state, ShouldEqual, pageState)
			So(b.renderPage(), ShouldContainSubstring, "Your Trusted Financial Partner")
			So(b.renderPage(), ShouldContainSubstring, "Ama Mensah")
		})

		Convey("the services page renders the fetched service", func() {
			deliver(b, b.mount(router.Resolve("/services/")))
			So(b.current.Page, ShouldEqual, router.Services)
			So(b.renderPage(), ShouldContainSubstring, "Group Susu")
		})

		Convey("nothing is fetched before a page is visited", func() {
			So(b.services.Status(), ShouldEqual, page.Idle)
			So(b.home.Status(), ShouldEqual, page.Idle)
		})

		Convey("an unknown path suggests the closest route", func() {
			So(b.mount(router.Resolve("/servces")), ShouldBeNil)
			So(b.renderPage(), ShouldContainSubstring, "Page Not Found")
			So(b.renderPage(), ShouldContainSubstring, "/services")
		})

		Convey("esc returns to the previous page", func() {
			deliver(b, b.mount(router.Resolve("/about")))
			deliver(b, b.visit(router.Resolve("/services")))
			deliver(b, press(b, esc))
			So(b.current.Page, ShouldEqual, router.About)
		})

		Convey("the menu opens over the page and navigates", func() {
			deliver(b, b.mount(router.Resolve("/about")))
			press(b, runes("m"))
			So(b.state, ShouldEqual, menuState)

			press(b, esc)
			So(b.state, ShouldEqual, pageState)
			So(b.current.Page, ShouldEqual, router.About)

			press(b, runes("m"))
			deliver(b, press(b, enter))
			So(b.current.Page, ShouldEqual, router.Home)
		})

		Convey("the go to prompt accepts a fuzzy suggestion", func() {
			deliver(b, b.mount(router.Resolve("/")))
			press(b, runes(":"), runes("g"), runes("a"), runes("l"))
			So(b.state, ShouldEqual, gotoState)

			press(b, tab)
			So(b.gotoC.Value(), ShouldEqual, "/gallery")

			press(b, enter)
			So(b.current.Page, ShouldEqual, router.Gallery)
		})
	})
}

func TestErrorBoundary(t *testing.T) {
	Convey("Given a page whose assembly panics", t, func() {
		stub := newSiteStub()
		b, r := newTestBubble(stub)
		updates := r.Get(api.Updates).URL()
		stub.setPanic(updates, true)

		deliver(b, b.mount(router.Resolve("/updates")))

		Convey("the error view is shown instead of crashing", func() {
			So(b.state, ShouldEqual, errorState)
			So(b.View(), ShouldContainSubstring, errorHeadline)
			So(b.View(), ShouldContainSubstring, errorBody)
		})

		Convey("the page is no longer loading", func() {
			So(b.updates.IsLoading(), ShouldBeFalse)
		})

		Convey("retry assembles the page again", func() {
			stub.setPanic(updates, false)
			stub.set(updates, `[{"id":2,"title":"Office closed","type":"alert","priority":"high"}]`)

			deliver(b, press(b, runes("r")))
			So(b.state, ShouldEqual, pageState)
			So(b.renderPage(), ShouldContainSubstring, "Office closed")
		})
	})
}

func TestBlogSearch(t *testing.T) {
	Convey("Given a blog with search results", t, func() {
		stub := newSiteStub()
		b, r := newTestBubble(stub)
		posts := r.Get(api.BlogPosts)
		stub.set(posts.URL(), `[{"id":1,"title":"Everything"}]`)
		stub.set(requestURL(posts, url.Values{"search": {"s"}}), `[{"id":2,"title":"Starts with s"}]`)
		stub.set(requestURL(posts, url.Values{"search": {"su"}}), `[{"id":3,"title":"Susu basics"},{"id":4,"title":"Susu groups"}]`)

		deliver(b, b.mount(router.Resolve("/blog")))
		So(b.blogC.Items(), ShouldHaveLength, 1)

		Convey("a slow result for an older keystroke is discarded", func() {
			first := press(b, runes("s"))
			second := press(b, runes("u"))

			deliver(b, second)
			So(b.blogC.Items(), ShouldHaveLength, 2)

			deliver(b, first)
			So(b.blogC.Items(), ShouldHaveLength, 2)
			So(b.blogC.Items()[0].FilterValue(), ShouldEqual, "Susu basics")
		})

		Convey("enter opens the selected post", func() {
			stub.set(r.BlogPost("1").URL(), `{"id":1,"title":"Everything","content":"<p>Hello</p>"}`)
			deliver(b, press(b, enter))
			So(b.current.Page, ShouldEqual, router.BlogPost)
			So(b.current.Param("id"), ShouldEqual, "1")
			So(b.renderPage(), ShouldContainSubstring, "Hello")
		})

		Convey("tab cycles the category", func() {
			press(b, tab)
			So(b.blogQuery.Category, ShouldEqual, page.BlogCategories[1])
		})
	})
}

func TestLightbox(t *testing.T) {
	Convey("Given a gallery with two items", t, func() {
		stub := newSiteStub()
		b, r := newTestBubble(stub)
		stub.set(r.Get(api.Gallery).URL(), `[
			{"id":1,"title":"Annual Meeting","media_type":"image","image_url":"http://img/1.jpg","is_featured":true},
			{"id":2,"title":"Workshop","media_type":"video","video_file_url":"http://v/2.mp4"}
		]`)

		deliver(b, b.mount(router.Resolve("/gallery")))
		So(b.galleryC.Items(), ShouldHaveLength, 2)

		Convey("opening an item freezes the gallery behind it", func() {
			press(b, enter)
			So(b.state, ShouldEqual, lightboxState)
			So(b.scroll.Held(), ShouldBeTrue)
			So(b.ScrollEnabled(), ShouldBeFalse)
			So(b.View(), ShouldContainSubstring, "Annual Meeting")

			Convey("arrows step through the items", func() {
				press(b, right)
				So(b.View(), ShouldContainSubstring, "Workshop")
				So(b.View(), ShouldContainSubstring, thumbnail.Placeholder)
			})

			Convey("closing restores scrolling", func() {
				press(b, esc)
				So(b.state, ShouldEqual, galleryState)
				So(b.ScrollEnabled(), ShouldBeTrue)
				So(b.scroll.Held(), ShouldBeFalse)
			})

			Convey("leaving the page restores scrolling too", func() {
				b.visit(router.Resolve("/"))
				So(b.ScrollEnabled(), ShouldBeTrue)
				So(b.scroll.Held(), ShouldBeFalse)
			})
		})
	})
}

func TestContactForm(t *testing.T) {
	Convey("Given the contact page", t, func() {
		stub := newSiteStub()
		b, _ := newTestBubble(stub)
		deliver(b, b.mount(router.Resolve("/contact")))
		So(b.state, ShouldEqual, formState)

		fill := func(name, email, subject, message string) {
			b.fieldsC[0].SetValue(name)
			b.fieldsC[1].SetValue(email)
			b.fieldsC[3].SetValue(subject)
			b.messageC.SetValue(message)
		}

		Convey("the default information cards are shown", func() {
			So(b.View(), ShouldContainSubstring, "Business Hours")
		})

		Convey("an invalid email is never sent", func() {
			fill("Kofi", "kofi@", "Hello", "Hi there")
			So(deliver(b, press(b, ctrlS)), ShouldBeEmpty)
			So(stub.postCount(), ShouldEqual, 0)

			status, _ := b.form.Status()
			So(status, ShouldEqual, page.FormInvalid)
			So(b.View(), ShouldContainSubstring, page.MessageInvalid)
		})

		Convey("a valid message is sent and the fields reset", func() {
			fill("Kofi", "kofi@example.com", "Hello", "Hi there")
			next := deliver(b, press(b, ctrlS))
			So(stub.postCount(), ShouldEqual, 1)
			So(b.fieldsC[0].Value(), ShouldBeEmpty)
			So(b.messageC.Value(), ShouldBeEmpty)

			for _, cmd := range next {
				deliver(b, cmd)
			}
			So(b.notifier.Current(), ShouldEqual, page.MessageSuccess)
		})

		Convey("a failed send keeps the fields", func() {
			stub.postErr = &api.RequestError{StatusCode: http.StatusInternalServerError, Cause: errors.New("boom")}
			fill("Kofi", "kofi@example.com", "Hello", "Hi there")
			deliver(b, press(b, ctrlS))
			So(b.fieldsC[0].Value(), ShouldEqual, "Kofi")

			status, message := b.form.Status()
			So(status, ShouldEqual, page.FormFailed)
			So(message, ShouldEqual, page.MessageFailure)
		})
	})
}

func TestNotifications(t *testing.T) {
	Convey("Notifications are appended to the view", t, func() {
		b, _ := newTestBubble(newSiteStub())
		b.mount(router.Resolve("/servces"))
		b.Update(ui.NotificationMsg("Copied"))
		So(b.View(), ShouldContainSubstring, "Copied")
	})
}

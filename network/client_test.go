package network

import (
	"net/http"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTransport(t *testing.T) {
	Convey("Given the shared transport", t, func() {
		transport, ok := Client.Transport.(*http.Transport)
		So(ok, ShouldBeTrue)

		Convey("It negotiates HTTP/2 over TLS", func() {
			So(transport.TLSNextProto, ShouldContainKey, "h2")
		})

		Convey("It keeps a bounded idle pool", func() {
			So(transport.MaxIdleConnsPerHost, ShouldEqual, 16)
		})

		Convey("It does not impose a client-wide timeout", func() {
			So(Client.Timeout, ShouldBeZeroValue)
		})
	})
}

package config

import (
	"testing"

	"github.com/bencyn-cli/bencyn/filesystem"
	"github.com/bencyn-cli/bencyn/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("Should point at the local API with a 30 second timeout", func() {
			_ = Setup()
			So(viper.GetString(key.APIBaseURL), ShouldEqual, "http://localhost:8000")
			So(viper.GetInt(key.APITimeout), ShouldEqual, 30)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("api.base_url")
			So(result, ShouldEqual, "api_base_url")
		})
	})
}

func TestReject(t *testing.T) {
	Convey("Given values that break their rules", t, func() {
		_ = Setup()
		Reset(func() {
			viper.Set(key.ThumbnailQuality, Default[key.ThumbnailQuality].Value)
			viper.Set(key.LogsLevel, Default[key.LogsLevel].Value)
		})

		viper.Set(key.ThumbnailQuality, 500)
		viper.Set(key.LogsLevel, "verbose")

		rejected := reject()

		Convey("They are reported and put back to their defaults", func() {
			So(rejected, ShouldResemble, []string{key.LogsLevel, key.ThumbnailQuality})
			So(viper.GetInt(key.ThumbnailQuality), ShouldEqual, 80)
			So(viper.GetString(key.LogsLevel), ShouldEqual, "info")
		})
	})

	Convey("Given the defaults", t, func() {
		_ = Setup()

		Convey("Nothing is rejected", func() {
			So(Setup(), ShouldBeNil)
			So(Rejected, ShouldBeEmpty)
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given the api.base_url field", t, func() {
		field := Default[key.APIBaseURL]

		Convey("Env should carry the application prefix", func() {
			So(field.Env(), ShouldEqual, "BENCYN_API_BASE_URL")
		})

		Convey("typeName should report a string", func() {
			So(field.typeName(), ShouldEqual, "string")
		})
	})

	Convey("Given the api.timeout field", t, func() {
		field := Default[key.APITimeout]

		Convey("typeName should report an int", func() {
			So(field.typeName(), ShouldEqual, "int")
		})
	})
}

func TestParse(t *testing.T) {
	Convey("Given raw values from the command line", t, func() {
		Convey("Integers are converted", func() {
			v, err := Parse(key.APITimeout, []string{"45"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 45)
		})

		Convey("Booleans are converted", func() {
			v, err := Parse(key.ThumbnailEnable, []string{"false"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, false)
		})

		Convey("A base URL must be an http URL", func() {
			v, err := Parse(key.APIBaseURL, []string{"https://api.bencyn.example"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "https://api.bencyn.example")

			_, err = Parse(key.APIBaseURL, []string{"not a url"})
			So(err, ShouldNotBeNil)
		})

		Convey("Ranges are enforced", func() {
			_, err := Parse(key.ThumbnailQuality, []string{"0"})
			So(err, ShouldNotBeNil)

			_, err = Parse(key.APITimeout, []string{"thirty"})
			So(err, ShouldNotBeNil)
		})

		Convey("Enumerations are enforced", func() {
			_, err := Parse(key.LogsLevel, []string{"loud"})
			So(err, ShouldNotBeNil)

			v, err := Parse(key.IconsVariant, []string{"nerd"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "nerd")
		})

		Convey("Unknown keys are rejected", func() {
			_, err := Parse("api.nope", []string{"1"})
			So(err, ShouldNotBeNil)
		})
	})
}

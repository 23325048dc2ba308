package inline

import (
	"encoding/json"
	"io"
	"path/filepath"
	"reflect"

	"github.com/bencyn-cli/bencyn/page"
	"github.com/bencyn-cli/bencyn/router"
	"github.com/invopop/jsonschema"
)

// Output is the JSON document written by inline mode. Exactly one of the
// page fields is set, matching Page.
type Output struct {
	Route    string            `json:"route"`
	Page     router.Page       `json:"page"`
	Params   map[string]string `json:"params,omitempty"`
	WithData bool              `json:"with_data" jsonschema:"description=false when the page was built from defaults"`

	Home     *page.HomeView     `json:"home,omitempty"`
	About    *page.AboutView    `json:"about,omitempty"`
	Services *page.ServicesView `json:"services,omitempty"`
	Blog     *page.BlogView     `json:"blog,omitempty"`
	Post     *page.BlogPostView `json:"post,omitempty"`
	Gallery  *page.GalleryView  `json:"gallery,omitempty"`
	Updates  *page.UpdatesView  `json:"updates,omitempty"`
	Contact  *page.ContactView  `json:"contact,omitempty"`
	NotFound *NotFound          `json:"not_found,omitempty"`

	Footer *page.FooterView `json:"footer,omitempty"`
}

type NotFound struct {
	Path       string `json:"path"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeJson(out io.Writer, output *Output) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// Schema describes Output.
func Schema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		name := t.Name()
		switch name {
		case "Output", "Page", "Thumbnail", "Source":
			return filepath.Base(t.PkgPath()) + "." + name
		}
		return name
	}
	return reflector.Reflect(&Output{})
}

// Package page assembles the view model of every page of the site.
//
// Read failures never escape this package. A page whose content could not
// be fetched is still returned, filled with built-in defaults or with an
// empty-state message, and the second return value of every operation
// tells whether live data was used.
package page

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/bencyn-cli/bencyn/api"
	"github.com/bencyn-cli/bencyn/log"
	"github.com/samber/mo"
)

// Fetcher is the transport the assembler reads and writes through.
// *api.Client satisfies it.
type Fetcher interface {
	Get(ctx context.Context, e api.Endpoint, params url.Values) (json.RawMessage, error)
	Post(ctx context.Context, e api.Endpoint, body any) (json.RawMessage, error)
}

type Assembler struct {
	fetcher  Fetcher
	registry *api.Registry
}

func New(fetcher Fetcher, registry *api.Registry) *Assembler {
	return &Assembler{fetcher: fetcher, registry: registry}
}

// FromConfig wires a client and registry from the api.* keys.
func FromConfig() *Assembler {
	return New(api.ClientFromConfig(), api.RegistryFromConfig())
}

func (a *Assembler) Registry() *api.Registry {
	return a.registry
}

// list fetches name and decodes its records. Only transport failures are errors.
func list[T any](ctx context.Context, a *Assembler, name api.Name, params url.Values) mo.Result[[]T] {
	raw, err := a.fetcher.Get(ctx, a.registry.Get(name), params)
	if err != nil {
		log.Warnf("page: fetch %s: %s", name, err)
		return mo.Err[[]T](err)
	}
	return mo.Ok(api.Decode[T](raw))
}

// first fetches name and keeps its first record.
func first[T any](ctx context.Context, a *Assembler, name api.Name, params url.Values) mo.Result[mo.Option[T]] {
	records, err := list[T](ctx, a, name, params).Get()
	if err != nil {
		return mo.Err[mo.Option[T]](err)
	}
	if len(records) == 0 {
		return mo.Ok(mo.None[T]())
	}
	return mo.Ok(mo.Some(records[0]))
}

// firstOrNone collapses failures and empty lists alike.
func firstOrNone[T any](ctx context.Context, a *Assembler, name api.Name, params url.Values) mo.Option[T] {
	return first[T](ctx, a, name, params).OrElse(mo.None[T]())
}

func pageImageParams(page, section string) url.Values {
	return url.Values{"page": {page}, "section": {section}}
}

func ptr[T any](o mo.Option[T]) *T {
	if v, ok := o.Get(); ok {
		return &v
	}
	return nil
}

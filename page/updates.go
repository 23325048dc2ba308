package page

import (
	"context"

	"github.com/bencyn-cli/bencyn/api"
	"github.com/bencyn-cli/bencyn/content"
)

type UpdatesView struct {
	Updates []content.Update `json:"updates"`
	Message string           `json:"message,omitempty"`
	Hint    string           `json:"hint,omitempty"`
}

func (a *Assembler) Updates(ctx context.Context) (UpdatesView, bool) {
	result := list[content.Update](ctx, a, api.Updates, nil)
	view := UpdatesView{Updates: result.OrElse([]content.Update{})}
	if len(view.Updates) == 0 {
		view.Message = updatesEmpty
		view.Hint = updatesHint
	}
	return view, result.IsOk()
}

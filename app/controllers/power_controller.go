package controllers

import (
	"net/http"

	"github.com/plugkit/plugboard/app/devices"
	"github.com/plugkit/plugboard/framework/app"
	"github.com/plugkit/plugboard/framework/container"
	gohttp "github.com/plugkit/plugboard/framework/http"
	"github.com/plugkit/plugboard/framework/http/validation"
)

// PowerController serves the smart plug board.
//
// It receives the application container explicitly — no global instance —
// and resolves the "power" capability through a per-request scope, so the
// concrete appliance behind the abstraction is picked from the request's
// own "device" selector at resolution time.
type PowerController struct {
	app.Controller
	App *container.Container
}

// NewPowerController builds the controller on top of the app container.
func NewPowerController(c *container.Container) *PowerController {
	return &PowerController{App: c}
}

// Show handles GET /?device=<fan|light|tv> and renders the board page.
func (pc *PowerController) Show(w http.ResponseWriter, r *http.Request) {
	req := pc.Request(r)
	res := pc.Response(w)

	dev, err := pc.resolve(req.Query("device"))
	if err != nil {
		res.ServerError(err.Error())
		return
	}

	views, err := container.Resolve[*gohttp.ViewEngine](pc.App, "view")
	if err != nil {
		res.ServerError(err.Error())
		return
	}
	views.View(w, "power", map[string]any{
		"Status":  dev.TurnOn(),
		"Devices": devices.Kinds(),
	})
}

// Status handles GET /api/power?device=<selector>.
// Unknown or absent selectors fall back to the board default.
func (pc *PowerController) Status(w http.ResponseWriter, r *http.Request) {
	req := pc.Request(r)
	res := pc.Response(w)

	selector := req.Query("device")
	dev, err := pc.resolve(selector)
	if err != nil {
		res.ServerError(err.Error())
		return
	}

	res.Success(map[string]any{
		"device": devices.ParseKind(selector).String(),
		"status": dev.TurnOn(),
	})
}

// Activate handles POST /api/power with a JSON body {"device": "..."}.
// Unlike the query-string endpoints it rejects unknown selectors with a 422
// error bag instead of defaulting.
func (pc *PowerController) Activate(w http.ResponseWriter, r *http.Request) {
	req := pc.Request(r)
	res := pc.Response(w)

	var body struct {
		Device string `json:"device"`
	}
	if err := req.Bind(&body); err != nil {
		res.Error(http.StatusBadRequest, err.Error())
		return
	}

	v := validation.Make(map[string]string{
		"device": body.Device,
	}, validation.Rules{
		"device": "required|in:fan,light,tv",
	})
	if v.Fails() {
		res.ValidationError(v.Errors())
		return
	}

	dev, err := pc.resolve(body.Device)
	if err != nil {
		res.ServerError(err.Error())
		return
	}

	res.Success(map[string]any{
		"device": body.Device,
		"status": dev.TurnOn(),
	})
}

// Devices handles GET /api/devices — every appliance on the board, resolved
// through the "power.devices" tag.
func (pc *PowerController) Devices(w http.ResponseWriter, r *http.Request) {
	res := pc.Response(w)

	tagged, err := pc.App.Tagged("power.devices")
	if err != nil {
		res.ServerError(err.Error())
		return
	}

	out := make([]map[string]any, 0, len(tagged))
	for i, instance := range tagged {
		dev, ok := instance.(devices.Device)
		if !ok {
			res.ServerError()
			return
		}
		out = append(out, map[string]any{
			"device": devices.Kinds()[i].String(),
			"status": dev.TurnOn(),
		})
	}
	res.Success(out)
}

// resolve binds "power" on a request scope with a factory closing over the
// parsed selector, then resolves it. An empty selector registers nothing, so
// resolution falls through to the application's default "power" binding.
func (pc *PowerController) resolve(selector string) (devices.Device, error) {
	scope := pc.App.Scope()
	if selector != "" {
		kind := devices.ParseKind(selector)
		scope.Bind("power", func(c *container.Container) (any, error) {
			return devices.New(kind), nil
		})
	}
	return container.Resolve[devices.Device](scope, "power")
}

package main

import (
	"net/http"

	"github.com/plugkit/plugboard/app/controllers"
	"github.com/plugkit/plugboard/app/providers"
	"github.com/plugkit/plugboard/framework/app"
	gohttp "github.com/plugkit/plugboard/framework/http"
	"github.com/plugkit/plugboard/framework/routing"
)

func main() {
	application := app.New() // loads .env via the config provider
	application.Register(&providers.PowerServiceProvider{})
	application.Boot()

	r := application.Router()
	power := controllers.NewPowerController(application.Container)

	// ── Plug board page ──────────────────────────────────────────────────────

	// GET /?device=<fan|light|tv> — renders the board with the chosen
	// appliance switched on. Absent or unknown selectors power the fan.
	r.Get("/", power.Show)

	// ── JSON API ─────────────────────────────────────────────────────────────

	r.Prefix("/api", func(api *routing.Router) {
		api.Get("/power", power.Status)
		api.Post("/power", power.Activate)
		api.Get("/devices", power.Devices)
	})

	// ── Admin group with middleware ──────────────────────────────────────────

	r.Group(func(admin *routing.Router) {
		admin.Middleware(AuthMiddleware)

		// Container introspection: every registered abstract key.
		admin.Get("/admin/bindings", func(w http.ResponseWriter, req *http.Request) {
			res := gohttp.NewResponse(w)
			res.Success(application.Bindings())
		})
	})

	application.Run()
}

// AuthMiddleware is an example bearer-token guard for the admin group.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req := gohttp.NewRequest(r)
		res := gohttp.NewResponse(w)

		if req.BearerToken() == "" {
			res.Unauthorized()
			return
		}
		next.ServeHTTP(w, r)
	})
}

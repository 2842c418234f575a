package providers

import (
	"github.com/plugkit/plugboard/app/devices"
	"github.com/plugkit/plugboard/framework/config"
	"github.com/plugkit/plugboard/framework/container"
)

// PowerServiceProvider wires the plug board's appliances into the container.
//
// Bound abstracts:
//   - "power.fan" / "power.light" / "power.tv" → devices.Device (transient),
//     tagged "power.devices"
//   - "power" → devices.Device for the configured default selector
//     (PLUG_DEFAULT_DEVICE, "fan" unless overridden)
//
// The "power" binding is the board's fallback: request handlers shadow it on
// a container scope with a factory closing over the request's own selector,
// so the concrete appliance is decided only when the request is resolved.
type PowerServiceProvider struct {
	container.BaseProvider
}

func (p *PowerServiceProvider) Register(app *container.Container) {
	keys := make([]string, 0, len(devices.Kinds()))
	for _, kind := range devices.Kinds() {
		k := kind // capture
		key := "power." + k.String()
		app.Bind(key, func(c *container.Container) (any, error) {
			return devices.New(k), nil
		})
		keys = append(keys, key)
	}
	app.Tag(keys, "power.devices")

	app.Bind("power", func(c *container.Container) (any, error) {
		cfg, err := container.Resolve[*config.Config](c, "config")
		if err != nil {
			return nil, err
		}
		return devices.New(devices.ParseKind(cfg.Plug.DefaultDevice)), nil
	})
}

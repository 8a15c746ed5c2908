package reactor

import (
	"github.com/bnema/wl-proxy/core"
	"github.com/bnema/wl-proxy/protocol"
)

// bootstrapDisplay seeds both endpoints' object tables with the one
// object every Wayland connection starts with: wl_display at id 1
// (spec 3). Nothing else is pre-populated; every other object a
// session ever sees arrives through a new_id argument and gets bound
// by the protocol package's own handlers.
func bootstrapDisplay(d *core.Dispatcher, client, server *core.Endpoint) error {
	display := protocol.NewWlDisplay(protocol.WlDisplayVersion)
	display.SetID(core.ClientSide, core.DisplayObjectID)
	display.SetID(core.ServerSide, core.DisplayObjectID)
	display.SetEndpoint(core.ClientSide, client)
	display.SetEndpoint(core.ServerSide, server)
	if err := client.Objects.Insert(core.DisplayObjectID, display); err != nil {
		return err
	}
	if err := server.Objects.Insert(core.DisplayObjectID, display); err != nil {
		return err
	}
	return nil
}

package main

// IconSink receives icon-worthy summaries for window-to-tray use cases
// (spec 6's "external collaborators" boundary). A real desktop-shell
// integration would implement this against its own tray API; the
// console sink here stands in for that so the command runs standalone.
type IconSink interface {
	UpdateIcon(appID, title string) error
	RemoveIcon(appID string) error
}

// ChildSupervisor starts and waits for an embedding application's
// spawned command once the downstream socket is ready.
type ChildSupervisor interface {
	Start(env []string) error
	Wait() error
}

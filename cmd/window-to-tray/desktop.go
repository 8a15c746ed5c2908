package main

import "github.com/rs/zerolog"

// consoleIconSink is a stand-in IconSink that logs what a real tray
// integration would show, so this reference application runs without
// a desktop shell's tray protocol wired up (spec 1's note that
// IconSink/ChildSupervisor are external collaborators the runtime core
// never depends on directly).
type consoleIconSink struct {
	log zerolog.Logger
}

func newConsoleIconSink(log zerolog.Logger) *consoleIconSink {
	return &consoleIconSink{log: log}
}

func (s *consoleIconSink) UpdateIcon(appID, title string) error {
	s.log.Info().Str("app_id", appID).Str("title", title).Msg("tray: icon updated")
	return nil
}

func (s *consoleIconSink) RemoveIcon(appID string) error {
	s.log.Info().Str("app_id", appID).Msg("tray: icon removed")
	return nil
}

// Command wlproxy (and its sibling binaries wlproxygen and
// window-to-tray) implement a transparent, in-process Wayland protocol
// proxy: a downstream client connects to the proxy believing it is
// talking to the real compositor, the proxy forwards every request and
// event byte-for-byte by default, decoding only the messages whose
// object ids, new ids or fds need translating between the two sides.
// There is no hook for an embedding application to install its own
// handler on an interface.
//
// # Packages
//
// wire decodes and encodes the Wayland wire format, including the
// out-of-band unix socket ancillary data used to pass file descriptors.
// core drives per-object dispatch, id translation, the per-object
// forwarding switches, and the spec's per-message wire trace. protocol
// holds one generated file per interface the proxy understands; codegen
// and cmd/wlproxygen produce those files from a protocol AST. reactor
// owns the poll loop that multiplexes every client/compositor session.
// cmd/wlproxy is the standalone proxy binary; cmd/window-to-tray spawns
// a single client behind the proxy and shows one tray icon, named after
// its command, while it runs.
//
// wlclient is a minimal client used only by the integration tests under
// tests/ to drive a real roundtrip through a running proxy.
package wlproxy

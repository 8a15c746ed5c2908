// Package protocol holds the generated-style Objects for the Wayland
// interfaces this build of the proxy understands. Every file in this
// package other than doc.go is the kind of output wlproxygen (package
// codegen, cmd/wlproxygen) produces from a protocol XML file: a
// concrete Object type embedding core.ObjectCore, its request/event
// opcode constants, its *_SINCE version-gating constants, and a
// HandleRequest/HandleEvent pair that forwards transparently (spec 4.1,
// 4.7). There is no way for a caller to install a different handler on
// an object.
//
// These particular files are checked in rather than produced by a build
// step, since the proxy only ever needs the same small, stable set of
// core + desktop-shell interfaces; wlproxygen exists so a deployment
// that needs a wider protocol surface (wlr-layer-shell, tablet, text
// input, ...) can regenerate this package against its own XML set
// without touching package core.
package protocol

package sockpath

import "testing"

func TestUpstreamUsesEnvWhenNoOverride(t *testing.T) {
	t.Setenv("WAYLAND_DISPLAY", "wayland-1")
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")

	got, err := Upstream("")
	if err != nil {
		t.Fatalf("Upstream() error = %v", err)
	}
	want := "/run/user/1000/wayland-1"
	if got != want {
		t.Fatalf("Upstream() = %q, want %q", got, want)
	}
}

func TestUpstreamOverrideTakesPrecedence(t *testing.T) {
	t.Setenv("WAYLAND_DISPLAY", "wayland-1")
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")

	got, err := Upstream("wayland-custom")
	if err != nil {
		t.Fatalf("Upstream() error = %v", err)
	}
	want := "/run/user/1000/wayland-custom"
	if got != want {
		t.Fatalf("Upstream() = %q, want %q", got, want)
	}
}

func TestUpstreamAbsolutePathUsedLiterally(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")

	got, err := Upstream("/tmp/some.sock")
	if err != nil {
		t.Fatalf("Upstream() error = %v", err)
	}
	if got != "/tmp/some.sock" {
		t.Fatalf("Upstream() = %q, want literal absolute path", got)
	}
}

func TestUpstreamMissingRuntimeDirErrors(t *testing.T) {
	t.Setenv("WAYLAND_DISPLAY", "wayland-1")
	t.Setenv("XDG_RUNTIME_DIR", "")

	if _, err := Upstream(""); err == nil {
		t.Fatal("Upstream() error = nil, want error when XDG_RUNTIME_DIR unset")
	}
}

func TestDownstreamDefaultsToRuntimeChosenName(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")

	got, err := Downstream("")
	if err != nil {
		t.Fatalf("Downstream() error = %v", err)
	}
	if got == "/run/user/1000/" {
		t.Fatalf("Downstream() produced an empty chosen name")
	}
}

func TestDownstreamExplicitName(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")

	got, err := Downstream("wayland-proxy-test")
	if err != nil {
		t.Fatalf("Downstream() error = %v", err)
	}
	want := "/run/user/1000/wayland-proxy-test"
	if got != want {
		t.Fatalf("Downstream() = %q, want %q", got, want)
	}
}

package config

import (
	"errors"
	"testing"
)

func TestNewDefaultWebConfig(t *testing.T) {
	wc := NewDefaultWebConfig()
	if wc.ListenHost != "0.0.0.0" || wc.ListenPort != 5000 {
		t.Errorf("unexpected default listen address %s", wc.Addr())
	}
	if !wc.Debug {
		t.Errorf("debug should be enabled by default")
	}
	if err := wc.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestNewDefaultConfig(t *testing.T) {
	saved := AppVersion
	AppVersion = "v9.9.9"
	defer func() { AppVersion = saved }()

	cfg := NewDefaultConfig()
	if cfg.AppVersion != "v9.9.9" {
		t.Errorf("AppVersion = %q, want the build-time value", cfg.AppVersion)
	}
	if cfg.Web == nil || cfg.Web.Addr() != "0.0.0.0:5000" {
		t.Errorf("unexpected web config %+v", cfg.Web)
	}
}

func TestWebConfigAddr(t *testing.T) {
	testCases := []struct {
		host     string
		port     int
		expected string
	}{
		{"0.0.0.0", 5000, "0.0.0.0:5000"},
		{"", 8080, ":8080"},
		{"::1", 5000, "[::1]:5000"},
	}
	for _, tc := range testCases {
		wc := &WebConfig{ListenHost: tc.host, ListenPort: tc.port}
		if got := wc.Addr(); got != tc.expected {
			t.Errorf("Addr(%q, %d) = %q, want %q", tc.host, tc.port, got, tc.expected)
		}
	}
}

func TestWebConfigValidate(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      WebConfig
		expected error
	}{
		{"ok", WebConfig{ListenPort: 5000}, nil},
		{"port zero", WebConfig{ListenPort: 0}, ErrInvalidPort},
		{"port too high", WebConfig{ListenPort: 70000}, ErrInvalidPort},
		{"ssl without cert", WebConfig{ListenPort: 443, SSL: true, KeyFile: "k.pem"}, ErrMissingTLSKey},
		{"ssl without key", WebConfig{ListenPort: 443, SSL: true, CertFile: "c.pem"}, ErrMissingTLSKey},
		{"ssl ok", WebConfig{ListenPort: 443, SSL: true, CertFile: "c.pem", KeyFile: "k.pem"}, nil},
	}
	for _, tc := range testCases {
		err := tc.cfg.Validate()
		if tc.expected == nil && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
		if tc.expected != nil && !errors.Is(err, tc.expected) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.expected, err)
		}
	}
}

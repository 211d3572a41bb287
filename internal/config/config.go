// Package config provides configuration management for go-sampleweb.
package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"strconv"
	"time"
)

// AppVersion is set at build time: -ldflags "-X github.com/go-while/go-sampleweb/internal/config.AppVersion=..."
var AppVersion = "-unset-"

const (
	// Default listen settings
	DefaultListenHost = "0.0.0.0"
	DefaultListenPort = 5000

	// http.Server timeouts
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultReadTimeout       = 30 * time.Second
	DefaultWriteTimeout      = 30 * time.Second
	DefaultIdleTimeout       = 120 * time.Second
	DefaultShutdownTimeout   = 10 * time.Second
)

var (
	ErrInvalidPort   = errors.New("invalid listen port")
	ErrMissingTLSKey = errors.New("SSL enabled but cert_file or key_file not specified in config")
)

// MainConfig holds the main configuration for go-sampleweb
type MainConfig struct {
	// Web interface settings
	Web *WebConfig `json:"web"`

	AppVersion string `json:"app_version"` // Application version, set at build time
}

// WebConfig holds web interface configuration
type WebConfig struct {
	ListenHost string `json:"listen_host"`
	ListenPort int    `json:"listen_port"`
	SSL        bool   `json:"ssl"`
	CertFile   string `json:"cert_file,omitempty"`
	KeyFile    string `json:"key_file,omitempty"`
	Debug      bool   `json:"debug"` // gin debug mode, access log and detailed error pages

	ReadHeaderTimeout time.Duration `json:"read_header_timeout"`
	ReadTimeout       time.Duration `json:"read_timeout"`
	WriteTimeout      time.Duration `json:"write_timeout"`
	IdleTimeout       time.Duration `json:"idle_timeout"`
}

// NewDefaultWebConfig returns the web settings the server starts with when no flags are given
func NewDefaultWebConfig() *WebConfig {
	return &WebConfig{
		ListenHost:        DefaultListenHost,
		ListenPort:        DefaultListenPort,
		SSL:               false,
		Debug:             true,
		ReadHeaderTimeout: DefaultReadHeaderTimeout,
		ReadTimeout:       DefaultReadTimeout,
		WriteTimeout:      DefaultWriteTimeout,
		IdleTimeout:       DefaultIdleTimeout,
	}
}

// NewDefaultConfig returns a configuration with sensible defaults
func NewDefaultConfig() *MainConfig {
	maincfg := &MainConfig{
		AppVersion: AppVersion,
		Web:        NewDefaultWebConfig(),
	}

	log.Printf("MainConfig initialized: web=%s debug=%t", maincfg.Web.Addr(), maincfg.Web.Debug)
	return maincfg
}

// Addr returns the host:port the web server listens on
func (wc *WebConfig) Addr() string {
	return net.JoinHostPort(wc.ListenHost, strconv.Itoa(wc.ListenPort))
}

// Validate checks the web config before the server is built
func (wc *WebConfig) Validate() error {
	if wc.ListenPort < 1 || wc.ListenPort > 65535 {
		return fmt.Errorf("%w: %d (must be between 1 and 65535)", ErrInvalidPort, wc.ListenPort)
	}
	if wc.SSL && (wc.CertFile == "" || wc.KeyFile == "") {
		return ErrMissingTLSKey
	}
	return nil
}

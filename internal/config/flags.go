package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d shop database DSN
//	-l local state database path
//	-api-base-url marketing API base URL
//	-api-timeout outbound request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
//	-admin-login admin login
//	-token-sign-key token signing key
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-reconcile-interval batch reconcile interval (e.g., "5m")
//	-store-url public shop base URL
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var shopDSN string
	var localDSN string
	var apiBaseURL string
	var apiTimeout time.Duration
	var jsonConfigPath string
	var adminLogin string
	var tokenSignKey string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var reconcileInterval time.Duration
	var storeURL string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&shopDSN, "d", "", "Shop database DSN")
	flag.StringVar(&localDSN, "l", "", "Local state database path")
	flag.StringVar(&apiBaseURL, "api-base-url", "", "Marketing API base URL")
	flag.DurationVar(&apiTimeout, "api-timeout", 0, "Outbound request timeout (e.g., 30s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&adminLogin, "admin-login", "", "Admin login")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Inbound request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&reconcileInterval, "reconcile-interval", 0, "Batch reconcile interval (e.g., 5m)")
	flag.StringVar(&storeURL, "store-url", "", "Public shop base URL")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			AdminLogin:    adminLogin,
			TokenSignKey:  tokenSignKey,
			TokenDuration: tokenDuration,
			StoreURL:      storeURL,
		},
		API: API{
			BaseURL:        apiBaseURL,
			RequestTimeout: apiTimeout,
		},
		Storage: Storage{
			Shop: DB{
				DSN: shopDSN,
			},
			Local: LocalDB{
				DSN: localDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			ReconcileInterval: reconcileInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

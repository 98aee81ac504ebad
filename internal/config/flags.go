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
//	-a keepno server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-session keepno session cookie value
//	-log-file client log file path
//	-request-timeout request timeout (e.g., "15s", "1m")
//	-poll-interval export status poll interval (e.g., "500ms")
//	-poll-max-attempts export status poll ceiling
//	-note note id to export
//	-format export format (e.g., "pdf")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var sessionCookie string
	var logFile string
	var requestTimeout time.Duration
	var pollInterval time.Duration
	var pollMaxAttempts int
	var noteID int64
	var exportFormat string

	flag.Var(&serverAddress, "a", "keepno server address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&sessionCookie, "session", "", "keepno session cookie")
	flag.StringVar(&logFile, "log-file", "", "Client log file path")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.DurationVar(&pollInterval, "poll-interval", 0, "Export status poll interval (e.g., 500ms)")
	flag.IntVar(&pollMaxAttempts, "poll-max-attempts", 0, "Maximum export status polls")
	flag.Int64Var(&noteID, "note", 0, "Note id to export")
	flag.StringVar(&exportFormat, "format", "", "Export format (e.g., pdf)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			SessionCookie: sessionCookie,
			LogFile:       logFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Poller: Poller{
			Interval:    pollInterval,
			MaxAttempts: pollMaxAttempts,
		},
		Export: Export{
			NoteID: noteID,
			Format: exportFormat,
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
// It validates the port range, accepts "localhost", IP addresses and DNS
// names as host, and returns an error if the format or values are invalid.
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

	if port < 1 || port > 65535 {
		return errors.New("port number is a positive integer up to 65535")
	}

	if host != "localhost" && net.ParseIP(host) == nil && !isHostname(host) {
		return errors.New("incorrect host provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

func isHostname(host string) bool {
	if host == "" || len(host) > 253 {
		return false
	}

	for _, label := range strings.Split(host, ".") {
		if label == "" || len(label) > 63 || label[0] == '-' || label[len(label)-1] == '-' {
			return false
		}
		for _, r := range label {
			if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-') {
				return false
			}
		}
	}

	return true
}

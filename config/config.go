package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("BIBLIOTECA_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("BIBLIOTECA_DEBUG") == "true"
}

// GetDataFolder is where the JSON collection documents live. The original
// deployment keeps them under "dados" next to the binary.
func GetDataFolder() string {
	dataFolder := os.Getenv("BIBLIOTECA_DATA_FOLDER")
	if dataFolder == "" {
		dataFolder = "dados"
	}
	return dataFolder
}

func GetLogFolder() string {
	logFolder := os.Getenv("BIBLIOTECA_LOG_FOLDER")
	if logFolder == "" {
		logFolder = filepath.Join(GetDataFolder(), "log")
	}
	return logFolder
}

func GetListen() string {
	return os.Getenv("BIBLIOTECA_LISTEN")
}

func GetPort() int {
	port, err := strconv.Atoi(os.Getenv("BIBLIOTECA_PORT"))
	if err != nil {
		return 5000
	}
	return port
}

// GetSessionSecret signs the session cookie. Set the env var in production;
// the fallback only exists so a bare checkout still boots.
func GetSessionSecret() string {
	secret := os.Getenv("BIBLIOTECA_SESSION_SECRET")
	if secret == "" {
		secret = "biblioteca123"
	}
	return secret
}

// GetAdminUsername and GetAdminPassword form the single shared admin
// credential pair. Defaults match the original deployment.
func GetAdminUsername() string {
	username := os.Getenv("BIBLIOTECA_ADMIN_USER")
	if username == "" {
		username = "admin"
	}
	return username
}

func GetAdminPassword() string {
	password := os.Getenv("BIBLIOTECA_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	return password
}

// GetSessionMaxAge is the session cookie lifetime in seconds.
func GetSessionMaxAge() int {
	maxAge, err := strconv.Atoi(os.Getenv("BIBLIOTECA_SESSION_MAX_AGE"))
	if err != nil {
		return 3600
	}
	return maxAge
}

// IsSnapshotEnabled toggles the daily data snapshot job.
func IsSnapshotEnabled() bool {
	return os.Getenv("BIBLIOTECA_SNAPSHOT") == "true"
}

func GetSnapshotFolder() string {
	snapshotFolder := os.Getenv("BIBLIOTECA_SNAPSHOT_FOLDER")
	if snapshotFolder == "" {
		snapshotFolder = filepath.Join(GetDataFolder(), "backup")
	}
	return snapshotFolder
}

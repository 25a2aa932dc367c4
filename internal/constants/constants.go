package constants

// Centralized constants for env keys, routes and API strings.
const (
	// Environment variable keys
	EnvConfigPath = "BINGO_CONFIG"
	EnvDBPath     = "BINGO_DB"

	// Defaults
	DefaultConfigPath = "./bingo_config.json"
	DefaultDBPath     = "./data/bingo.db"
	DefaultServerAddr = ":8080"
)

// Routes used by the backend router
const (
	RouteAPIPrefix       = "/api"
	RouteVersion         = "/version"
	RouteSessions        = "/sessions"
	RouteSessionContinue = "/sessions/:sessionKey/continue"
	RouteSessionPause    = "/sessions/:sessionKey/pause"
	RouteSessionStop     = "/sessions/:sessionKey/stop"
	RouteSessionStats    = "/sessions/:sessionKey/stats"
	RouteSessionNumbers  = "/sessions/:sessionKey/numbers"
	RouteSessionVerify   = "/sessions/:sessionKey/verify"
)

// Common JSON response keys
const (
	JSONKeyError    = "error"
	JSONKeyMessage  = "message"
	JSONKeySpeech   = "speech"
	JSONKeyReprompt = "reprompt"
	JSONKeySession  = "session_key"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest     = "Invalid request"
	ErrSessionKeyRequired = "Session key is required"
	ErrSessionNotFound    = "Session not found"
	ErrFailedCreateGame   = "Failed to create game"
	ErrFailedLoadGame     = "Failed to load game"
	ErrFailedSaveGame     = "Failed to save game"
	ErrCardNumbersInvalid = "Card numbers must be between 1 and 90"
)

// Logging field names
const (
	LogFieldSessionKey = "session_key"
	LogFieldSpeed      = "speed"
	LogFieldCalled     = "called"
	LogFieldRemaining  = "remaining"
	LogFieldAddr       = "addr"
	LogFieldConfigPath = "config_path"
)

package constants

// viper configuration keys
const (
	ViperListenAddr    = "listen_addr"
	ViperDatabaseDSN   = "database_dsn"
	ViperGoogleGeoKey  = "google_geo_api_key"
	ViperJWTSecret     = "jwt_secret"
	ViperBasicUsername = "basic_token_username"
	ViperBasicPassword = "basic_token_password"
	ViperSecretKey     = "secret_key"
	ViperSMTPHost      = "smtp_host"
	ViperSMTPPort      = "smtp_port"
	ViperSMTPUser      = "smtp_user"
	ViperSMTPPassword  = "smtp_password"
	ViperMetricsAddr   = "metrics_addr"
)

const (
	CookieKeyAuthToken   = "auth_token"
	CookieKeySecretToken = "secret_token"

	CtxKeyUserID  = "user_id"
	CtxKeyCPOID   = "cpo_owner_id"
	CtxKeyPartyID = "party_id"
)

// DefaultCountryCode is written on every location row; the upstream
// marketplace currently operates in a single country.
const DefaultCountryCode = "PH"

package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client.
var UserAgent = "Go-Hijri/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Go Hijri"
	AppID             = "com.github.tartampluch.go-hijri"
	BinaryName        = "go-hijri"
	KeyringService    = "com.github.tartampluch.go-hijri"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
	EnvPrefix         = "GO_HIJRI"
	ConfigFileName    = "config"
	ConfigFileType    = "yaml"
	DotEnvFile        = ".env"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for sensitive files like logs.
	FilePermUserRW fs.FileMode = 0600

	// FilePermShared represents -rw-r--r--, used for exported feeds.
	FilePermShared fs.FileMode = 0644

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating secure cache directories.
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Commands, Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagDebug     = "debug"
	FlagConfig    = "config"
	FlagOutput    = "output"
	FlagReckoning = "reckoning"
	FlagArabic    = "arabic"
	FlagCalendar  = "calendar"
	FlagFrom      = "from"
	FlagDays      = "days"
	FlagOut       = "out"
	FlagMonths    = "months"
	FlagSource    = "source"
	FlagPath      = "path"
	FlagURL       = "url"
	FlagUser      = "user"
	FlagPort      = "port"
	FlagShort     = "short"
	FlagLang      = "lang"

	FlagDescDebug     = "Enable debug logging on stderr"
	FlagDescConfig    = "Path to a YAML settings file"
	FlagDescOutput    = "Output format: text, json or yaml"
	FlagDescReckoning = "Tabular epoch: civil (Friday) or astronomical (Thursday)"
	FlagDescArabic    = "Include Arabic month and day names"
	FlagDescCalendar  = "Calendar: hijri or gregorian"
	FlagDescFrom      = "Calendar of the input date: hijri or gregorian"
	FlagDescDays      = "Number of days to list"
	FlagDescOut       = "Write the feed to this file instead of stdout"
	FlagDescMonths    = "Include Hijri month-start events"
	FlagDescSource    = "Birthday source mode: local or web"
	FlagDescPath      = "Path to a local .vcf file"
	FlagDescURL       = "CardDAV or WebDAV URL of the vCard source"
	FlagDescUser      = "HTTP Basic Auth user for the web source"
	FlagDescPort      = "Port of the local feed server"
	FlagDescShort     = "Print dates in the numeric YYYY-MM-DD form"
	FlagDescLang      = "Language of labels and event summaries"

	MsgVersionOutput = "%s version %s (%s, %s/%s)\n"
)

// -----------------------------------------------------------------------------
// Output Formats
// -----------------------------------------------------------------------------

const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	SourceModeWeb       = "web"
	SourceModeLocal     = "local"
	DefaultPort         = 18081
	DefaultRefreshMin   = 60
	DefaultUpcomingDays = 14 // Two weeks, as in the list view
	DefaultReckoning    = "civil"
	DefaultOutput       = OutputText
	UIDNamespace        = "go-hijri-v1" // Seed of the UUIDv5 namespace for event UIDs
	DisabledInterval    = 0
	FeedYearsBefore     = 1 // Hijri years generated before the current one
	FeedYearsAfter      = 1 // Hijri years generated after the current one
)

// ISO8601 Duration Components for Reminders
const (
	ISONegativePrefix = "-P"
	ISODay            = "D"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion   = "2.0"
	ICalProdid    = "-//Go Hijri//Engine//EN"
	ICalCalName   = "Hijri Calendar"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"
	ICalDomain    = "gohijri"

	// iCal/vCard Fields
	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDescription = "DESCRIPTION"
	PropCategories  = "CATEGORIES"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropRefresh     = "REFRESH-INTERVAL"
	PropAction      = "ACTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	CategoryMonth    = "HIJRI-MONTH"
	CategoryBirthday = "HIJRI-BIRTHDAY"

	VCardBDAY = "BDAY"
	VCardFN   = "FN"
	VCardN    = "N"

	DefaultICalRefresh = 12 * time.Hour
)

// -----------------------------------------------------------------------------
// Data Formats & Limits
// -----------------------------------------------------------------------------

const (
	// Date layouts used for parsing vCard BDAY fields
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatFullT     = "2006-01-02T15:04:05Z"
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"

	// Limits
	MinPort = 1
	MaxPort = 65535

	// UID Generation
	FormatUIDKey = "%s|%s|%d" // kind, subject, Hijri year
	FormatUID    = "%s@%s"
	UIDKindBirth = "birthday"
	UIDKindMonth = "month"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	HTTPTimeout         = 30 * time.Second
	ShutdownTimeout     = 5 * time.Second
	ServerReadTimeout   = 10 * time.Second
	ServerWriteTimeout  = 30 * time.Second
	ServerIdleTimeout   = 60 * time.Second
	RetryAfterSeconds   = "10"
	AllowedMethods      = "GET, HEAD"
	MaxHTTPResponseSize = 64 * 1024 * 1024 // 64MB, address books with photos
	FetchRatePerMinute  = 6                // Outbound vCard downloads
	FetchRateBurst      = 2
	SchemeHTTP          = "http"
	SchemeHTTPS         = "https"
	RouteRoot           = "/"
	RouteMetrics        = "/metrics"

	// Prometheus metric names
	MetricsNamespace     = "go_hijri"
	MetricRequests       = "feed_requests_total"
	MetricRateLimited    = "feed_rate_limited_total"
	MetricUpdates        = "feed_updates_total"
	MetricFailures       = "feed_generation_failures_total"
	MetricFeedBytes      = "feed_size_bytes"
	MetricBirthdaysToday = "birthdays_today"
	MetricLabelStatus    = "status"
	MetricHelpRequests   = "Feed requests by HTTP status."
	MetricHelpLimited    = "Feed requests rejected by the rate limiter."
	MetricHelpUpdates    = "Successful feed regenerations."
	MetricHelpFailures   = "Failed feed regenerations."
	MetricHelpFeedBytes  = "Size of the served feed."
	MetricHelpBirthdays  = "Hijri birthdays falling today."

	// Feed server rate limit: sustained requests per second and burst.
	RateLimitPerSecond = 5
	RateLimitBurst     = 20
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderUserAgent       = "User-Agent"
	HeaderAccept          = "Accept"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeNoSniff         = "nosniff"
	MimeVCardAccept     = "text/vcard, text/x-vcard;q=0.9, */*;q=0.1"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrLocalPathEmpty   = "configuration error: local path is empty"
	ErrWebURLEmpty      = "configuration error: web URL is empty"
	ErrFetcherMissing   = "internal error: network fetcher is not initialized"
	ErrModeUnsupport    = "configuration error: unsupported source mode"
	ErrConfigRead       = "failed to read settings file"
	ErrConfigDecode     = "failed to decode settings"
	ErrConfigInvalid    = "invalid settings"
	ErrSecretLookup     = "failed to read password from keyring"
	ErrSecretStore      = "failed to store password in keyring"
	ErrUserRequired     = "a web user is required to store a password"
	ErrPasswordRead     = "failed to read password"
	ErrPasswordEmpty    = "password is empty"
	ErrServerStartup    = "server startup failed"
	ErrServerShutdown   = "server shutdown failed"
	ErrPortRequired     = "server port is required"
	ErrInvalidURL       = "invalid URL structure"
	ErrProtocol         = "unsupported protocol scheme (http/https only)"
	ErrVCardParse       = "failed to parse vCard stream"
	ErrICalEncode       = "failed to encode iCalendar data"
	ErrDateParse        = "unable to parse date"
	ErrDateConvert      = "unable to convert date"
	ErrArgCount         = "wrong number of arguments"
	ErrArgDays          = "day offset must be an integer"
	ErrOutputFormat     = "unsupported output format"
	ErrFeedWrite        = "failed to write feed"
	ErrLogFile          = "failed to open log file"
	ErrCacheDir         = "could not determine user cache dir"
	ErrCreateDir        = "could not create app cache dir"
	ErrAppFailed        = "application failed unexpectedly"
	ErrWriteResp        = "failed to write response body"
	ErrLocalesAccess    = "failed to access embedded locales"
	ErrLocaleLoad       = "failed to load locale file"
	ErrLocNotInit       = "localizer not initialized"
	ErrInvalidDate      = "date is not valid"
	ErrReminderTrigger  = "invalid reminder trigger"
	ErrTooManyRequests  = "Too Many Requests"
	ErrRequestBuild     = "failed to create request"
	ErrNetwork          = "network error during fetch"
	ErrHTTPStatus       = "server returned unexpected status"
	ErrResponseTooLarge = "response exceeds size limit"
	ErrRateWait         = "fetch rate limit wait aborted"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Calendar initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
)

// -----------------------------------------------------------------------------
// Fallbacks & Log Messages
// -----------------------------------------------------------------------------

const (
	FallbackName = "Unknown"

	// StubVCalendar is the minimal valid iCalendar object used when no events are found.
	// Using a constant avoids hardcoded magic strings in the engine logic.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

	MsgSyncStarted   = "Feed generation started"
	MsgWorkerStart   = "Background refresh started"
	MsgWorkerStop    = "Refresh stopping due to context cancellation"
	MsgAppStop       = "Application stopped gracefully"
	MsgSkippedCard   = "Skipping malformed vCard"
	MsgSkippedDate   = "Skipping invalid date format"
	MsgSkippedNoYear = "Skipping birthday without a year"
	MsgSkippedRange  = "Skipping birthday outside the Hijri range"
	MsgGenSuccess    = "Calendar generation successful"
	MsgAppStarting   = "Starting application"
	MsgServerListen  = "HTTP server listening"
	MsgServerStop    = "Shutting down HTTP server..."
	MsgCacheUpdated  = "Calendar cache updated"
	MsgRateLimited   = "Request rejected by rate limiter"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgPassFail      = "Password retrieval failed (might be empty)"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
	MsgBdayToday     = "Hijri birthday found today"
	MsgSettings      = "Settings loaded"
	MsgFeedWritten   = "Feed written"
	MsgPassStored    = "Password stored in keyring"
	MsgFetchStart    = "Initiating vCard download"
	MsgFetchStatus   = "Server returned error status"
	MsgFetchOK       = "vCards downloading"
	MsgSyncReq       = "Feed refresh requested"
	MsgSyncFailed    = "Feed refresh failed, keeping the previous feed"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyURL       = "url"
	LogKeyStatus    = "status_code"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyMode      = "mode"
	LogKeyInterval  = "interval"
	LogKeyUser      = "user"
	LogKeyTotal     = "total_cards"
	LogKeyFound     = "birthdays_found"
	LogKeyToday     = "birthdays_today"
	LogKeyMonths    = "month_events"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyValue     = "value"
	LogKeyStats     = "stats"
	LogKeyName      = "name"
	LogKeyDOB       = "date_of_birth"
	LogKeyHijri     = "hijri"
	LogKeyReckoning = "reckoning"
	LogKeyRemote    = "remote"
	LogKeyDuration  = "duration_ms"
	LogKeyLength    = "content_length"
	LogKeyManual    = "manual"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyCommit  = "commit"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompCLI      = "cli"
	CompEngine   = "engine"
	CompServer   = "server"
	CompFetcher  = "fetcher"
	CompWorker   = "worker"
	CompMain     = "main"
	CompI18n     = "i18n"
	CompSettings = "settings"
)

// -----------------------------------------------------------------------------
// Settings Keys (viper)
// -----------------------------------------------------------------------------

const (
	KeySourceMode     = "source_mode"
	KeyLocalPath      = "local_path"
	KeyWebURL         = "web_url"
	KeyWebUser        = "web_user"
	KeyWebPass        = "web_pass"
	KeyReminderDays   = "reminder_days"
	KeyPort           = "port"
	KeyRefreshMinutes = "refresh_minutes"
	KeyReckoning      = "reckoning"
	KeyArabic         = "arabic"
	KeyMonthEvents    = "month_events"
	KeyOutput         = "output"
	KeyUpcomingDays   = "upcoming_days"
	KeyLanguage       = "language"
)

// -----------------------------------------------------------------------------
// Translation Keys (go-i18n)
// -----------------------------------------------------------------------------

const (
	DefaultLanguage = "en"

	TKeyEvtSummaryAge   = "evt_summary_age"
	TKeyEvtSummaryBirth = "evt_summary_birth"
	TKeyEvtSummary      = "evt_summary"
	TKeyEvtMonthStart   = "evt_month_start"
	TKeyEvtDescBirthday = "evt_desc_birthday"

	TKeyLblToday     = "lbl_today"
	TKeyLblHijri     = "lbl_hijri"
	TKeyLblGregorian = "lbl_gregorian"
	TKeyLblWeekday   = "lbl_weekday"
	TKeyLblLeap      = "lbl_leap"
	TKeyLblDays      = "lbl_days"
	TKeyLblValid     = "lbl_valid"
	TKeyLblInvalid   = "lbl_invalid"

	TKeyStatusBirthdays     = "status_birthdays"
	TKeyStatusBirthdaysZero = "status_birthdays_zero"

	TKeyColName  = "col_name"
	TKeyColBorn  = "col_born"
	TKeyColNext  = "col_next"
	TKeyColAge   = "col_age"
	TKeyColDays  = "col_days"
	TKeyColDate  = "col_date"
	TKeyColHijri = "col_hijri"

	// Fallbacks used when a translation is missing.
	FallbackSummary      = "%s (Hijri birthday)"
	FallbackSummaryAge   = "%s (%d)"
	FallbackSummaryBirth = "%s (birth)"
	FallbackMonthStart   = "1 %s %d AH"
	FallbackBirthDesc    = "Born %s (%s)"
)

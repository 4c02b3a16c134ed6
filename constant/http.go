package constant

// HeaderConstants defines HTTP header names used in responses
const (
	// CustomizationVersionHeader carries the version of the customization that served a response
	CustomizationVersionHeader = "X-Customization-Version"
)

// TimeConstants defines timeout and interval values
const (
	// DefaultHTTPTimeoutSeconds is the default timeout for remote document fetches
	DefaultHTTPTimeoutSeconds = 5
	// DefaultRefreshIntervalMinutes is the default customization reload interval, zero disables it
	DefaultRefreshIntervalMinutes = 0
	// DefaultHTTPAddress is the listen address used by dashctl serve
	DefaultHTTPAddress = "127.0.0.1:8080"
)

// Render formats accepted by tab rendering
const (
	FormatHTML = "html"
	FormatText = "text"
)

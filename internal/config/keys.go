package config

const (
	KeyAPIToken        = "cargodham_api_token"
	KeyVendorCode      = "cargodham_vendor_code"
	KeyBaseURL         = "shiprocket_base_url"
	KeyUpstreamTimeout = "upstream_timeout"
	KeyLogLevel        = "log_level"
	KeyEnvironment     = "environment"
)

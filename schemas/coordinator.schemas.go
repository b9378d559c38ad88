package schemas

// HeartbeatSchema struct
type HeartbeatSchema struct {
	Hostname string `validate:"required,hostname_rfc1123"`
	Port     string `validate:"required,numeric"`
	Load     int64  `validate:"gte=0"`
}

// ServerInfoSchema struct
type ServerInfoSchema struct {
	Hostname string
	Port     string
}

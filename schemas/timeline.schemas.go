package schemas

// Timeline stream op codes, both directions
const (
	OpJoin   = 1001
	OpJoined = 1002
	OpPost   = 2000
	OpReject = 3000
)

// JoinSchema is the first frame a client sends on the timeline stream
type JoinSchema struct {
	Username string `validate:"required,min=1,max=32,alphanum"`
}

// PostSchema struct
type PostSchema struct {
	Username  string
	Message   string
	Timestamp int64
}

// RejectSchema struct
type RejectSchema struct {
	Reason string
}

package schemas

// ErrorResponse struct
type ErrorResponse struct {
	Error       bool
	Problem     string
	Description string
}

// StatusResponse carries the semantic outcome of a processed request
type StatusResponse struct {
	OK     bool
	Status string
}

// Status strings surfaced verbatim to clients
const (
	StatusWelcome          = "welcome"
	StatusAlreadyJoined    = "you have already joined"
	StatusFollowed         = "follow successful"
	StatusUnfollowed       = "unfollow successful"
	StatusSelfFollow       = "can't follow yourself"
	StatusUnknownUser      = "requested user does not exist"
	StatusAlreadyFollowing = "already following"
	StatusNotFollowing     = "not following"
	StatusNoShard          = "no available shard"
)

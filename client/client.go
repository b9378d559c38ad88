package client

import (
	"bytes"
	er "errors"
	"io/ioutil"
	"net/http"
	"time"

	"flock_server/schemas"

	"github.com/fasthttp/websocket"
	jsoniter "github.com/json-iterator/go"
)

// ErrNoAvailableShard means the coordinator had no live shard to hand back
var ErrNoAvailableShard = er.New("no available shard")

// ErrNotResolved means Resolve has not succeeded yet
var ErrNotResolved = er.New("shard not resolved")

// Client talks to the coordinator once to resolve its shard, then to that
// shard directly for everything else
type Client struct {
	coordinatorAddr string
	shardAddr       string
	version         string
	username        string
	http            *http.Client
}

// New creates a client for username against the given coordinator.
// version is the shard API prefix, e.g. "/v1".
func New(coordinatorAddr string, version string, username string) *Client {
	return &Client{
		coordinatorAddr: coordinatorAddr,
		version:         version,
		username:        username,
		http:            &http.Client{Timeout: 10 * time.Second},
	}
}

// Resolve asks the coordinator which shard owns this client
func (c *Client) Resolve() error {

	resp, err := c.http.Get("http://" + c.coordinatorAddr + "/server/" + c.username)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusServiceUnavailable {
		return ErrNoAvailableShard
	}
	if resp.StatusCode != http.StatusOK {
		return er.New("coordinator: unexpected status " + resp.Status)
	}

	info := new(schemas.ServerInfoSchema)
	if err = jsoniter.NewDecoder(resp.Body).Decode(info); err != nil {
		return err
	}

	c.shardAddr = info.Hostname + ":" + info.Port
	return nil
}

// ShardAddress returns the resolved shard host:port pair
func (c *Client) ShardAddress() string {
	return c.shardAddr
}

// Login registers this client's username on its shard
func (c *Client) Login() (schemas.StatusResponse, error) {
	return c.postStatus("/user/login", schemas.LoginSchema{Username: c.username})
}

// Follow adds this client to target's followers
func (c *Client) Follow(target string) (schemas.StatusResponse, error) {
	return c.postStatus("/relation/follow", schemas.RelationSchema{Username: c.username, Target: target})
}

// UnFollow removes this client from target's followers
func (c *Client) UnFollow(target string) (schemas.StatusResponse, error) {
	return c.postStatus("/relation/unfollow", schemas.RelationSchema{Username: c.username, Target: target})
}

// List returns all registered usernames on the shard plus this client's followers
func (c *Client) List() (schemas.ListResponseSchema, error) {

	list := schemas.ListResponseSchema{}
	if c.shardAddr == "" {
		return list, ErrNotResolved
	}

	resp, err := c.http.Get("http://" + c.shardAddr + c.version + "/user/list/" + c.username)
	if err != nil {
		return list, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return list, statusError(resp)
	}

	err = jsoniter.NewDecoder(resp.Body).Decode(&list)
	return list, err
}

func (c *Client) postStatus(path string, body interface{}) (schemas.StatusResponse, error) {

	status := schemas.StatusResponse{}
	if c.shardAddr == "" {
		return status, ErrNotResolved
	}

	b, err := jsoniter.Marshal(body)
	if err != nil {
		return status, err
	}

	resp, err := c.http.Post("http://"+c.shardAddr+c.version+path, "application/json", bytes.NewReader(b))
	if err != nil {
		return status, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return status, statusError(resp)
	}

	err = jsoniter.NewDecoder(resp.Body).Decode(&status)
	return status, err
}

func statusError(resp *http.Response) error {
	b, _ := ioutil.ReadAll(resp.Body)
	reject := new(schemas.ErrorResponse)
	if jsoniter.Unmarshal(b, reject) == nil && reject.Description != "" {
		return er.New(reject.Problem + ": " + reject.Description)
	}
	return er.New("unexpected status " + resp.Status)
}

// Timeline is one open duplex stream; Posts carries fanned-in posts until
// the stream dies
type Timeline struct {
	Posts <-chan schemas.PostSchema

	conn *websocket.Conn
}

// OpenTimeline joins the timeline stream on the resolved shard. The
// returned Timeline delivers followed posts on Posts; Send publishes to
// followers. Reconnection after a transport failure is the caller's
// responsibility.
func (c *Client) OpenTimeline() (*Timeline, error) {

	if c.shardAddr == "" {
		return nil, ErrNotResolved
	}

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+c.shardAddr+"/timeline", nil)
	if err != nil {
		return nil, err
	}

	if err = writeFrame(conn, schemas.OpJoin, schemas.JoinSchema{Username: c.username}); err != nil {
		conn.Close()
		return nil, err
	}

	_, b, err := conn.ReadMessage()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if jsoniter.Get(b, "Op").ToInt() != schemas.OpJoined {
		reject := new(schemas.RejectSchema)
		jsoniter.Get(b, "Data").ToVal(reject)
		conn.Close()
		return nil, er.New("timeline join rejected: " + reject.Reason)
	}

	posts := make(chan schemas.PostSchema, 64)
	tl := &Timeline{Posts: posts, conn: conn}
	go tl.readLoop(posts)

	return tl, nil
}

// Send publishes one post to this client's followers
func (t *Timeline) Send(message string) error {
	return writeFrame(t.conn, schemas.OpPost, schemas.PostSchema{
		Message:   message,
		Timestamp: time.Now().UnixMilli(),
	})
}

// Close tears down the stream
func (t *Timeline) Close() error {
	return t.conn.Close()
}

func (t *Timeline) readLoop(posts chan<- schemas.PostSchema) {
	defer close(posts)
	for {
		_, b, err := t.conn.ReadMessage()
		if err != nil {
			return
		}
		if jsoniter.Get(b, "Op").ToInt() != schemas.OpPost {
			continue
		}
		post := new(schemas.PostSchema)
		jsoniter.Get(b, "Data").ToVal(post)
		posts <- *post
	}
}

func writeFrame(conn *websocket.Conn, op int, data interface{}) error {
	b, err := jsoniter.Marshal(struct {
		Op   int
		Data interface{}
	}{Op: op, Data: data})
	if err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, b)
}

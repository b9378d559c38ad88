package socket

import (
	er "errors"
	"time"

	"flock_server/errors"
	"flock_server/global"
	"flock_server/schemas"

	"github.com/gofiber/websocket/v2"
	jsoniter "github.com/json-iterator/go"
)

type ws_message struct {
	Op   int
	Data interface{}
}

func write_message(ws *websocket.Conn, op int, data interface{}) error {

	b, err := jsoniter.Marshal(ws_message{Op: op, Data: data})
	if err != nil {
		errors.HandleWebsocketError(ws, "jsoniter_marshal", err.Error())
		return err
	}

	return ws.WriteMessage(websocket.TextMessage, b)
}

// TimelineSocket runs one duplex timeline session: the calling goroutine
// ingests posts from the client and fans them out, a second goroutine
// drains fanned-in posts to the client. Either direction failing tears
// down this session and no other.
func TimelineSocket(ws *websocket.Conn) {

	defer func() {
		if ws != nil && ws.Conn != nil {
			ws.Close()
		}
	}()

	username, err := join_handshake(ws)
	if err != nil {
		return
	}

	s := add_session(username)
	if s == nil {
		errors.HandleWebsocketError(ws, "add_session", "nanoid generation failed")
		return
	}

	global.Graph.SetConnected(username, true)

	if err = write_message(ws, schemas.OpJoined, nil); err != nil {
		errors.HandleWebsocketError(ws, "write op:1002", err.Error())
		teardown(username, s.id)
		return
	}

	// egress direction; owns all writes from here on
	go egress_loop(ws, s)

	var b []byte
	for {

		if err = ws.SetReadDeadline(time.Now().Add(MAX_WS_CONNECTION_TIME)); err != nil {
			errors.HandleWebsocketError(ws, "websocket_read_deadline", err.Error())
			break
		}

		if _, b, err = ws.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, 1000) {
				errors.HandleWebsocketError(ws, "websocket_read", err.Error())
			}
			break
		}

		switch jsoniter.Get(b, "Op").ToInt() {
		case schemas.OpPost:
			post := new(schemas.PostSchema)
			jsoniter.Get(b, "Data").ToVal(post)
			ingest_post(username, post)
		default:
			errors.HandleWebsocketError(ws, "op_code", "unrecognized")
		}
	}

	teardown(username, s.id)
}

func teardown(username string, id string) {
	// a replaced session must not clear the connected flag of its successor
	if remove_session(username, id) {
		global.Graph.SetConnected(username, false)
	}
}

// join_handshake reads the first frame and binds the stream to a
// registered username
func join_handshake(ws *websocket.Conn) (string, error) {

	if err := ws.SetReadDeadline(time.Now().Add(MAX_CLIENT_RESPONSE)); err != nil {
		errors.HandleWebsocketError(ws, "websocket_read_deadline", err.Error())
		return "", err
	}

	_, b, err := ws.ReadMessage()
	if err != nil {
		errors.HandleWebsocketError(ws, "websocket_read", err.Error())
		return "", err
	}

	if jsoniter.Get(b, "Op").ToInt() != schemas.OpJoin {
		write_message(ws, schemas.OpReject, schemas.RejectSchema{Reason: "expected join"})
		return "", er.New("expected join")
	}

	join := new(schemas.JoinSchema)
	jsoniter.Get(b, "Data").ToVal(join)

	if err = global.Validator.Struct(join); err != nil {
		write_message(ws, schemas.OpReject, schemas.RejectSchema{Reason: "invalid username"})
		return "", err
	}

	if _, err = global.Graph.Lookup(join.Username); err != nil {
		write_message(ws, schemas.OpReject, schemas.RejectSchema{Reason: schemas.StatusUnknownUser})
		return "", err
	}

	return join.Username, nil
}

// ingest_post fans one post out to every follower with an open stream.
// One ingest loop per author plus FIFO session channels keep per-author
// order end to end; there is no ordering across authors.
func ingest_post(username string, post *schemas.PostSchema) {

	post.Username = username
	if post.Timestamp == 0 {
		post.Timestamp = time.Now().UnixMilli()
	}

	payload, err := jsoniter.Marshal(ws_message{Op: schemas.OpPost, Data: post})
	if errors.HandleBasicError(err) {
		return
	}

	followers, err := global.Graph.ListFollowers(username)
	if errors.HandleBasicError(err) {
		return
	}

	for _, follower := range followers {
		deliver(follower, payload)
	}
}

func egress_loop(ws *websocket.Conn, s *session) {

	for b := range s.msg_chan {
		if err := ws.WriteMessage(websocket.TextMessage, b); err != nil {
			errors.HandleWebsocketError(ws, "websocket_write", err.Error())
			break
		}
	}

	// channel closed or write failed; unblock the ingest read
	if ws != nil && ws.Conn != nil {
		ws.Close()
	}
}

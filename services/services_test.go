package services_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"flock_server/config"
	"flock_server/global"
	"flock_server/graph"
	"flock_server/routes"
	"flock_server/schemas"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shardApp(t *testing.T) *fiber.App {
	t.Helper()
	config.Config.Version = "/v1"
	global.Graph = graph.New()

	app := fiber.New()
	routes.SetShardRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()
	b, err := jsoniter.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeStatus(t *testing.T, resp *http.Response) schemas.StatusResponse {
	t.Helper()
	status := schemas.StatusResponse{}
	require.NoError(t, jsoniter.NewDecoder(resp.Body).Decode(&status))
	return status
}

func login(t *testing.T, app *fiber.App, username string) schemas.StatusResponse {
	t.Helper()
	resp := postJSON(t, app, "/v1/user/login", schemas.LoginSchema{Username: username})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decodeStatus(t, resp)
}

func TestLoginStatuses(t *testing.T) {
	app := shardApp(t)

	status := login(t, app, "alice")
	assert.True(t, status.OK)
	assert.Equal(t, schemas.StatusWelcome, status.Status)

	status = login(t, app, "alice")
	assert.True(t, status.OK)
	assert.Equal(t, schemas.StatusAlreadyJoined, status.Status)

	assert.Equal(t, 1, global.Graph.Len())
}

func TestLoginRejectsBadUsername(t *testing.T) {
	app := shardApp(t)

	resp := postJSON(t, app, "/v1/user/login", schemas.LoginSchema{Username: "not a name!"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, app, "/v1/user/login", schemas.LoginSchema{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFollowStatuses(t *testing.T) {
	app := shardApp(t)
	login(t, app, "alice")
	login(t, app, "bob")

	tests := []struct {
		name       string
		req        schemas.RelationSchema
		wantOK     bool
		wantStatus string
	}{
		{"follow", schemas.RelationSchema{Username: "alice", Target: "bob"}, true, schemas.StatusFollowed},
		{"duplicate", schemas.RelationSchema{Username: "alice", Target: "bob"}, false, schemas.StatusAlreadyFollowing},
		{"self", schemas.RelationSchema{Username: "alice", Target: "alice"}, false, schemas.StatusSelfFollow},
		{"unknown", schemas.RelationSchema{Username: "alice", Target: "ghost"}, false, schemas.StatusUnknownUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, app, "/v1/relation/follow", tt.req)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			status := decodeStatus(t, resp)
			assert.Equal(t, tt.wantOK, status.OK)
			assert.Equal(t, tt.wantStatus, status.Status)
		})
	}
}

func TestUnFollowStatuses(t *testing.T) {
	app := shardApp(t)
	login(t, app, "alice")
	login(t, app, "bob")

	resp := postJSON(t, app, "/v1/relation/unfollow", schemas.RelationSchema{Username: "alice", Target: "bob"})
	status := decodeStatus(t, resp)
	assert.False(t, status.OK)
	assert.Equal(t, schemas.StatusNotFollowing, status.Status)

	postJSON(t, app, "/v1/relation/follow", schemas.RelationSchema{Username: "alice", Target: "bob"})

	resp = postJSON(t, app, "/v1/relation/unfollow", schemas.RelationSchema{Username: "alice", Target: "bob"})
	status = decodeStatus(t, resp)
	assert.True(t, status.OK)
	assert.Equal(t, schemas.StatusUnfollowed, status.Status)

	alice, err := global.Graph.Lookup("alice")
	require.NoError(t, err)
	assert.NotContains(t, alice.Following, "bob")
}

func TestList(t *testing.T) {
	app := shardApp(t)
	login(t, app, "alice")
	login(t, app, "bob")
	login(t, app, "carol")
	postJSON(t, app, "/v1/relation/follow", schemas.RelationSchema{Username: "bob", Target: "alice"})
	postJSON(t, app, "/v1/relation/follow", schemas.RelationSchema{Username: "carol", Target: "alice"})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/v1/user/list/alice", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	list := schemas.ListResponseSchema{}
	require.NoError(t, jsoniter.NewDecoder(resp.Body).Decode(&list))
	assert.Equal(t, []string{"alice", "bob", "carol"}, list.AllUsers)
	assert.ElementsMatch(t, []string{"bob", "carol"}, list.Followers)

	// idempotent with no intervening mutation
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/v1/user/list/alice", nil))
	require.NoError(t, err)
	again := schemas.ListResponseSchema{}
	require.NoError(t, jsoniter.NewDecoder(resp.Body).Decode(&again))
	assert.Equal(t, list.AllUsers, again.AllUsers)
	assert.ElementsMatch(t, list.Followers, again.Followers)
}

func TestListUnknownUser(t *testing.T) {
	app := shardApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/v1/user/list/ghost", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)

	reject := schemas.ErrorResponse{}
	require.NoError(t, jsoniter.NewDecoder(resp.Body).Decode(&reject))
	assert.True(t, reject.Error)
	assert.Equal(t, schemas.StatusUnknownUser, reject.Description)
}

package twift

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGetUserWithPinnedTweetExpansion(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/2/users/2244994945" {
			t.Fatalf("path=%s", r.URL.Path)
		}
		q := r.URL.Query()
		if got := q.Get("expansions"); got != "pinned_tweet_id" {
			t.Fatalf("expansions=%q", got)
		}
		if got := q.Get("user.fields"); got != "pinned_tweet_id" {
			t.Fatalf("user.fields=%q", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"id":              "2244994945",
				"name":            "X Dev",
				"username":        "XDevelopers",
				"pinned_tweet_id": "1255542774432063488",
			},
			"includes": map[string]any{
				"tweets": []map[string]any{
					{"id": "1255542774432063488", "text": "During these unprecedented times..."},
				},
			},
		})
	}))
	t.Cleanup(server.Close)

	c, err := NewWithBearerToken(server.URL, "AAAA-test")
	if err != nil {
		t.Fatal(err)
	}
	resp, err := c.GetUser(context.Background(), "2244994945", &UserOpts{
		UserFields: []UserField{UserFieldPinnedTweetID},
		Expansions: []Expansion{ExpansionPinnedTweetID},
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Data.PinnedTweetID != "1255542774432063488" {
		t.Fatalf("pinned_tweet_id=%s", resp.Data.PinnedTweetID)
	}
	if resp.Includes == nil || len(resp.Includes.Tweets) != 1 {
		t.Fatalf("includes=%+v", resp.Includes)
	}
	if resp.Includes.Tweets[0].ID != resp.Data.PinnedTweetID {
		t.Fatalf("tweet id=%s", resp.Includes.Tweets[0].ID)
	}
}

func TestGetUserByUsername(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/2/users/by/username/XDevelopers" {
			t.Fatalf("path=%s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"id": "2244994945", "name": "X Dev", "username": "XDevelopers"},
		})
	}))
	t.Cleanup(server.Close)

	c, err := NewWithBearerToken(server.URL, "AAAA-test")
	if err != nil {
		t.Fatal(err)
	}
	resp, err := c.GetUserByUsername(context.Background(), "XDevelopers", nil)
	if err != nil {
		t.Fatal(err)
	}
	if resp.Data.ID != "2244994945" {
		t.Fatalf("id=%s", resp.Data.ID)
	}
}

func TestGetUsersJoinsIDs(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/2/users" {
			t.Fatalf("path=%s", r.URL.Path)
		}
		if got := r.URL.Query().Get("ids"); got != "2244994945,6253282" {
			t.Fatalf("ids=%q", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"id": "2244994945", "name": "X Dev", "username": "XDevelopers"},
				{"id": "6253282", "name": "API", "username": "API"},
			},
		})
	}))
	t.Cleanup(server.Close)

	c, err := NewWithBearerToken(server.URL, "AAAA-test")
	if err != nil {
		t.Fatal(err)
	}
	resp, err := c.GetUsers(context.Background(), []string{"2244994945", "6253282"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("users=%d", len(resp.Data))
	}
}

func TestGetUsersIDCountBounds(t *testing.T) {
	t.Parallel()

	c, err := New("http://127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}

	_, err = c.GetUsers(context.Background(), nil, nil)
	var re *RangeError
	if !errors.As(err, &re) {
		t.Fatalf("err=%v, want RangeError", err)
	}
	if re.Field != "ids" || re.Actual != 0 {
		t.Fatalf("field=%q actual=%d", re.Field, re.Actual)
	}

	ids := make([]string, 101)
	for i := range ids {
		ids[i] = itoa(i + 1)
	}
	_, err = c.GetUsers(context.Background(), ids, nil)
	if !errors.As(err, &re) {
		t.Fatalf("err=%v, want RangeError", err)
	}
	if re.Max != 100 || re.Actual != 101 {
		t.Fatalf("max=%d actual=%d", re.Max, re.Actual)
	}
}

func TestGetUserEscapesUsername(t *testing.T) {
	t.Parallel()

	c, err := New("http://127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	_, err = c.GetUserByUsername(context.Background(), "bad name", nil)
	var rerr *RouteError
	if !errors.As(err, &rerr) {
		t.Fatalf("err=%v, want RouteError", err)
	}
	if !strings.Contains(rerr.Error(), "username") {
		t.Fatalf("err=%v", rerr)
	}
}

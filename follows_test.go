package twift

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFollowUserPendingFollow(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("method=%s", r.Method)
		}
		if r.URL.Path != "/2/users/1/following" {
			t.Fatalf("path=%s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"following": false, "pending_follow": true},
		})
	}))
	t.Cleanup(server.Close)

	c, err := NewWithBearerToken(server.URL, "AAAA-test")
	if err != nil {
		t.Fatal(err)
	}
	resp, err := c.FollowUser(context.Background(), "1", "2")
	if err != nil {
		t.Fatal(err)
	}
	if resp.Data.Following {
		t.Fatalf("following=%v", resp.Data.Following)
	}
	if !resp.Data.PendingFollow {
		t.Fatalf("pending_follow=%v", resp.Data.PendingFollow)
	}
}

func TestUnfollowUser(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Fatalf("method=%s", r.Method)
		}
		if r.URL.Path != "/2/users/1/following/2" {
			t.Fatalf("path=%s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"following": false},
		})
	}))
	t.Cleanup(server.Close)

	c, err := NewWithBearerToken(server.URL, "AAAA-test")
	if err != nil {
		t.Fatal(err)
	}
	resp, err := c.UnfollowUser(context.Background(), "1", "2")
	if err != nil {
		t.Fatal(err)
	}
	if resp.Data.Following {
		t.Fatalf("following=%v", resp.Data.Following)
	}
}

func TestGetFollowers(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/2/users/2244994945/followers" {
			t.Fatalf("path=%s", r.URL.Path)
		}
		if got := r.URL.Query().Get("max_results"); got != "1000" {
			t.Fatalf("max_results=%q", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"id": "6253282", "name": "API", "username": "XDevelopers"}},
			"meta": map[string]any{"result_count": 1},
		})
	}))
	t.Cleanup(server.Close)

	c, err := NewWithBearerToken(server.URL, "AAAA-test")
	if err != nil {
		t.Fatal(err)
	}
	resp, err := c.GetFollowers(context.Background(), "2244994945", &ListOpts{MaxResults: 1000})
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Data) != 1 || resp.Data[0].ID != "6253282" {
		t.Fatalf("data=%+v", resp.Data)
	}
}

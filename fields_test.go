package twift

import "testing"

func TestJoinFieldsSortsAndDedupes(t *testing.T) {
	t.Parallel()

	got := joinFields([]UserField{
		UserFieldUsername,
		UserFieldCreatedAt,
		UserFieldUsername,
		UserFieldDescription,
	})
	want := "created_at,description,username"
	if got != want {
		t.Fatalf("joined=%q, want %q", got, want)
	}
}

func TestJoinFieldsEmptySet(t *testing.T) {
	t.Parallel()

	if got := joinFields([]UserField(nil)); got != "" {
		t.Fatalf("joined=%q, want empty", got)
	}
	if got := joinFields([]TweetField{}); got != "" {
		t.Fatalf("joined=%q, want empty", got)
	}
}

func TestJoinFieldsSkipsEmptyNames(t *testing.T) {
	t.Parallel()

	got := joinFields([]Expansion{"", ExpansionPinnedTweetID})
	if got != "pinned_tweet_id" {
		t.Fatalf("joined=%q", got)
	}
}

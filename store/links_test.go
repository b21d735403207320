package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkvaultapp/linkvault/testutil"
)

func TestLinkCreate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	links := NewLinkStore(db)
	owner := testutil.CreateTestUser(t, db, "alice@example.com", "alice", "password123", false)

	link, err := links.Create(owner, "  Go Blog  ", "https://go.dev/blog", "Tech, News ,,tech")
	require.NoError(t, err)

	assert.Equal(t, "Go Blog", link.Title)
	assert.Equal(t, "https://go.dev/blog", link.URL)
	assert.Equal(t, 1, link.Votes, "new links carry the submitter's implicit upvote")
	assert.Equal(t, owner, link.UserID)
	assert.Equal(t, "alice", link.Username)
	assert.Equal(t, []string{"tech", "news"}, link.Tags)
	assert.Equal(t, 0, link.CommentCount)
}

func TestLinkCreateDefaultTag(t *testing.T) {
	db := testutil.SetupTestDB(t)
	links := NewLinkStore(db)
	owner := testutil.CreateTestUser(t, db, "alice@example.com", "alice", "password123", false)

	link, err := links.Create(owner, "Untagged", "https://example.com", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"uncategorized"}, link.Tags)
}

func TestLinkCreateValidation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	links := NewLinkStore(db)
	owner := testutil.CreateTestUser(t, db, "alice@example.com", "alice", "password123", false)

	tests := []struct {
		name  string
		title string
		url   string
	}{
		{"missing title", "   ", "https://example.com"},
		{"missing url", "Title", ""},
		{"relative url", "Title", "/just/a/path"},
		{"no host", "Title", "https://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := links.Create(owner, tt.title, tt.url, "")
			assert.True(t, IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

func TestLinkGetNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	links := NewLinkStore(db)

	_, err := links.Get("missing-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLinkGetWithComments(t *testing.T) {
	db := testutil.SetupTestDB(t)
	links := NewLinkStore(db)
	owner := testutil.CreateTestUser(t, db, "alice@example.com", "alice", "password123", false)
	commenter := testutil.CreateTestUser(t, db, "bob@example.com", "bob", "password123", false)

	base := time.Now().UTC().Add(-time.Hour)
	linkID := testutil.CreateTestLink(t, db, owner, "Go Blog", "https://go.dev/blog", 3, []string{"tech"}, base)
	testutil.CreateTestComment(t, db, linkID, commenter, "first", base.Add(time.Minute))
	testutil.CreateTestComment(t, db, linkID, owner, "second", base.Add(2*time.Minute))

	link, err := links.Get(linkID)
	require.NoError(t, err)

	assert.Equal(t, 2, link.CommentCount)
	require.Len(t, link.Comments, 2)
	// Newest comment first
	assert.Equal(t, "second", link.Comments[0].Text)
	assert.Equal(t, "alice", link.Comments[0].Username)
	assert.Equal(t, "first", link.Comments[1].Text)
	assert.Equal(t, "bob", link.Comments[1].Username)
}

func TestLinkListSorting(t *testing.T) {
	db := testutil.SetupTestDB(t)
	links := NewLinkStore(db)
	owner := testutil.CreateTestUser(t, db, "alice@example.com", "alice", "password123", false)

	base := time.Now().UTC().Add(-time.Hour)
	// A is older with fewer votes, B is newer with more
	testutil.CreateTestLink(t, db, owner, "A", "https://a.example.com", 5, []string{"a"}, base)
	testutil.CreateTestLink(t, db, owner, "B", "https://b.example.com", 9, []string{"b"}, base.Add(time.Minute))

	byVotes, err := links.List("", "", "votes")
	require.NoError(t, err)
	require.Len(t, byVotes, 2)
	assert.Equal(t, "B", byVotes[0].Title)
	assert.Equal(t, "A", byVotes[1].Title)

	byNewest, err := links.List("", "", "newest")
	require.NoError(t, err)
	require.Len(t, byNewest, 2)
	assert.Equal(t, "B", byNewest[0].Title)
	assert.Equal(t, "A", byNewest[1].Title)
}

func TestLinkListFilters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	links := NewLinkStore(db)
	owner := testutil.CreateTestUser(t, db, "alice@example.com", "alice", "password123", false)

	base := time.Now().UTC().Add(-time.Hour)
	testutil.CreateTestLink(t, db, owner, "Go Blog", "https://go.dev/blog", 2, []string{"tech", "golang"}, base)
	testutil.CreateTestLink(t, db, owner, "Cooking Weekly", "https://cooking.example.com", 7, []string{"food"}, base.Add(time.Minute))

	t.Run("search matches title case-insensitively", func(t *testing.T) {
		got, err := links.List("go blog", "", "votes")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Go Blog", got[0].Title)
	})

	t.Run("search matches url", func(t *testing.T) {
		got, err := links.List("cooking.example", "", "votes")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Cooking Weekly", got[0].Title)
	})

	t.Run("search matches tags", func(t *testing.T) {
		got, err := links.List("golang", "", "votes")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Go Blog", got[0].Title)
	})

	t.Run("tag filter is exact", func(t *testing.T) {
		got, err := links.List("", "food", "votes")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Cooking Weekly", got[0].Title)
	})

	t.Run("no matches yields empty slice", func(t *testing.T) {
		got, err := links.List("nonexistent", "", "votes")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestLinkVoteFloorsAtZero(t *testing.T) {
	db := testutil.SetupTestDB(t)
	links := NewLinkStore(db)
	owner := testutil.CreateTestUser(t, db, "alice@example.com", "alice", "password123", false)
	linkID := testutil.CreateTestLink(t, db, owner, "A", "https://a.example.com", 1, []string{"a"}, time.Now().UTC())

	link, err := links.Vote(linkID, false)
	require.NoError(t, err)
	assert.Equal(t, 0, link.Votes)

	// Further downvotes stay at zero rather than going negative
	link, err = links.Vote(linkID, false)
	require.NoError(t, err)
	assert.Equal(t, 0, link.Votes)

	link, err = links.Vote(linkID, true)
	require.NoError(t, err)
	assert.Equal(t, 1, link.Votes)
}

func TestLinkVoteNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	links := NewLinkStore(db)

	_, err := links.Vote("missing-id", true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLinkUpdateAuthorization(t *testing.T) {
	db := testutil.SetupTestDB(t)
	links := NewLinkStore(db)
	owner := testutil.CreateTestUser(t, db, "alice@example.com", "alice", "password123", false)
	other := testutil.CreateTestUser(t, db, "bob@example.com", "bob", "password123", false)
	admin := testutil.CreateTestUser(t, db, "admin@example.com", "admin", "password123", true)

	linkID := testutil.CreateTestLink(t, db, owner, "Original", "https://a.example.com", 1, []string{"a"}, time.Now().UTC())

	// A non-owner is rejected and the record is untouched
	_, err := links.Update(linkID, other, false, "Hijacked", "https://evil.example.com", "x")
	assert.ErrorIs(t, err, ErrForbidden)

	link, err := links.Get(linkID)
	require.NoError(t, err)
	assert.Equal(t, "Original", link.Title)
	assert.Equal(t, []string{"a"}, link.Tags)

	// The owner may edit
	link, err = links.Update(linkID, owner, false, "Renamed", "https://a.example.com", "b, c")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", link.Title)
	assert.Equal(t, []string{"b", "c"}, link.Tags)

	// So may an admin
	link, err = links.Update(linkID, admin, true, "Moderated", "https://a.example.com", "b")
	require.NoError(t, err)
	assert.Equal(t, "Moderated", link.Title)
}

func TestLinkDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	links := NewLinkStore(db)
	owner := testutil.CreateTestUser(t, db, "alice@example.com", "alice", "password123", false)
	other := testutil.CreateTestUser(t, db, "bob@example.com", "bob", "password123", false)

	linkID := testutil.CreateTestLink(t, db, owner, "A", "https://a.example.com", 1, []string{"a"}, time.Now().UTC())
	testutil.CreateTestComment(t, db, linkID, other, "nice", time.Now().UTC())

	err := links.Delete(linkID, other, false)
	assert.ErrorIs(t, err, ErrForbidden)

	err = links.Delete(linkID, owner, false)
	require.NoError(t, err)

	_, err = links.Get(linkID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Tags and comments cascade with the link
	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM link_tags WHERE link_id = $1`, linkID).Scan(&count))
	assert.Equal(t, 0, count)
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM comments WHERE link_id = $1`, linkID).Scan(&count))
	assert.Equal(t, 0, count)
}

func TestLinkDeleteNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	links := NewLinkStore(db)

	err := links.Delete("missing-id", "whoever", true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLinkTags(t *testing.T) {
	db := testutil.SetupTestDB(t)
	links := NewLinkStore(db)
	owner := testutil.CreateTestUser(t, db, "alice@example.com", "alice", "password123", false)

	base := time.Now().UTC()
	testutil.CreateTestLink(t, db, owner, "A", "https://a.example.com", 1, []string{"zebra", "tech"}, base)
	testutil.CreateTestLink(t, db, owner, "B", "https://b.example.com", 1, []string{"tech", "apple"}, base)

	tags, err := links.Tags()
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "tech", "zebra"}, tags, "union of tags, alphabetical, no duplicates")
}

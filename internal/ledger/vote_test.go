package ledger

import (
	"errors"
	"math/rand"
	"testing"
)

func TestVoteTallyAndReputation(t *testing.T) {
	l, _ := newTestLedger(t)

	postID, _ := l.CreatePost(2, "post") // author rep 10

	votes, err := l.Vote(3, KindPost, postID, true)
	if err != nil {
		t.Fatalf("upvote: %v", err)
	}
	if votes != 1 {
		t.Errorf("expected tally 1, got %d", votes)
	}
	stats, _ := l.Stats(2)
	if stats.Reputation != 12 {
		t.Errorf("expected author reputation 12, got %d", stats.Reputation)
	}

	votes, err = l.Vote(4, KindPost, postID, false)
	if err != nil {
		t.Fatalf("downvote: %v", err)
	}
	if votes != 0 {
		t.Errorf("expected tally 0, got %d", votes)
	}
	stats, _ = l.Stats(2)
	if stats.Reputation != 11 {
		t.Errorf("expected author reputation 11, got %d", stats.Reputation)
	}
}

func TestSelfVoteRejected(t *testing.T) {
	l, _ := newTestLedger(t)

	postID, _ := l.CreatePost(2, "post")
	before, _ := l.Stats(2)

	if _, err := l.Vote(2, KindPost, postID, true); !errors.Is(err, ErrStateConflict) {
		t.Fatalf("expected ErrStateConflict, got %v", err)
	}

	after, _ := l.Stats(2)
	if after != before {
		t.Errorf("self-vote mutated state: %+v vs %+v", before, after)
	}
	view, _, _, _ := l.PostDetails(postID, 0, 10, 0)
	if view.Votes != 0 {
		t.Errorf("self-vote changed tally: %d", view.Votes)
	}
}

func TestDoubleVoteRejected(t *testing.T) {
	l, _ := newTestLedger(t)

	postID, _ := l.CreatePost(2, "post")
	if _, err := l.Vote(3, KindPost, postID, true); err != nil {
		t.Fatalf("vote: %v", err)
	}
	if _, err := l.Vote(3, KindPost, postID, true); !errors.Is(err, ErrStateConflict) {
		t.Fatalf("same direction: expected ErrStateConflict, got %v", err)
	}
	if _, err := l.Vote(3, KindPost, postID, false); !errors.Is(err, ErrStateConflict) {
		t.Fatalf("opposite direction: expected ErrStateConflict, got %v", err)
	}
}

// TestVoteRevokeCycle walks the full lifecycle: create, upvote, revoke,
// then a re-vote attempt must fail because the record is frozen.
func TestVoteRevokeCycle(t *testing.T) {
	l, _ := newTestLedger(t)

	const a, b Identity = 2, 3
	postID, _ := l.CreatePost(a, "post") // A rep 10

	if _, err := l.Vote(b, KindPost, postID, true); err != nil {
		t.Fatalf("vote: %v", err)
	}
	stats, _ := l.Stats(a)
	if stats.Reputation != 12 {
		t.Fatalf("after upvote: expected rep 12, got %d", stats.Reputation)
	}

	votes, err := l.Revoke(b, KindPost, postID)
	if err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if votes != 0 {
		t.Errorf("after revoke: expected tally 0, got %d", votes)
	}
	stats, _ = l.Stats(a)
	if stats.Reputation != 10 {
		t.Errorf("after revoke: expected rep 10, got %d", stats.Reputation)
	}

	if _, err := l.Vote(b, KindPost, postID, true); !errors.Is(err, ErrStateConflict) {
		t.Fatalf("re-vote after revoke: expected ErrStateConflict, got %v", err)
	}
	if _, err := l.Vote(b, KindPost, postID, false); !errors.Is(err, ErrStateConflict) {
		t.Fatalf("re-vote after revoke: expected ErrStateConflict, got %v", err)
	}
}

func TestRevokeConflicts(t *testing.T) {
	l, _ := newTestLedger(t)

	postID, _ := l.CreatePost(2, "post")

	if _, err := l.Revoke(3, KindPost, postID); !errors.Is(err, ErrStateConflict) {
		t.Fatalf("revoke without vote: expected ErrStateConflict, got %v", err)
	}

	if _, err := l.Vote(3, KindPost, postID, false); err != nil {
		t.Fatalf("vote: %v", err)
	}
	if _, err := l.Revoke(3, KindPost, postID); err != nil {
		t.Fatalf("first revoke: %v", err)
	}
	before, _ := l.Stats(2)
	if _, err := l.Revoke(3, KindPost, postID); !errors.Is(err, ErrStateConflict) {
		t.Fatalf("double revoke: expected ErrStateConflict, got %v", err)
	}
	after, _ := l.Stats(2)
	if after != before {
		t.Errorf("rejected revoke mutated state: %+v vs %+v", before, after)
	}
}

func TestVoteRequiresActiveItem(t *testing.T) {
	l, _ := newTestLedger(t)

	if _, err := l.Vote(3, KindPost, 9, true); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing post: expected ErrNotFound, got %v", err)
	}
	if _, err := l.Vote(3, ItemKind("story"), 1, true); !errors.Is(err, ErrValidation) {
		t.Fatalf("bad kind: expected ErrValidation, got %v", err)
	}

	postID, _ := l.CreatePost(2, "post")
	if _, err := l.Vote(3, KindPost, postID, true); err != nil {
		t.Fatalf("vote: %v", err)
	}
	if err := l.Remove(2, KindPost, postID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := l.Revoke(3, KindPost, postID); !errors.Is(err, ErrInactive) {
		t.Fatalf("revoke on tombstone: expected ErrInactive, got %v", err)
	}
}

func TestCommentVotesAreSeparateNamespace(t *testing.T) {
	l, _ := newTestLedger(t)

	postID, _ := l.CreatePost(2, "post")
	commentID, _ := l.CreateComment(4, postID, "comment")
	if postID != 1 || commentID != 1 {
		t.Fatalf("expected both namespaces to start at 1, got %d/%d", postID, commentID)
	}

	if _, err := l.Vote(3, KindPost, 1, true); err != nil {
		t.Fatalf("post vote: %v", err)
	}
	// Same voter, same numeric id, different namespace.
	if _, err := l.Vote(3, KindComment, 1, true); err != nil {
		t.Fatalf("comment vote: %v", err)
	}

	stats, _ := l.Stats(4)
	if stats.Reputation != RepCommentCreate+RepUpvoteReceived {
		t.Errorf("comment author reputation %d", stats.Reputation)
	}
}

// TestVoteInterleavingProperty drives random vote/revoke sequences from many
// voters against a handful of posts and checks after every call that each
// tally equals live upvotes minus live downvotes, that reputation stays in
// bounds, and that no pair ever votes twice.
func TestVoteInterleavingProperty(t *testing.T) {
	l, _ := newTestLedger(t)
	rng := rand.New(rand.NewSource(1))

	const posts = 5
	const voters = 8
	authors := make([]Identity, posts)
	for i := 0; i < posts; i++ {
		author := Identity(100 + i)
		authors[i] = author
		if _, err := l.CreatePost(author, "post"); err != nil {
			t.Fatalf("CreatePost: %v", err)
		}
	}

	type pair struct {
		voter Identity
		post  uint64
	}
	voted := map[pair]int{} // times the pair reached Voted

	for step := 0; step < 4000; step++ {
		voter := Identity(200 + rng.Intn(voters))
		postID := uint64(1 + rng.Intn(posts))
		p := pair{voter, postID}

		switch rng.Intn(3) {
		case 0:
			if _, err := l.Vote(voter, KindPost, postID, true); err == nil {
				voted[p]++
			}
		case 1:
			if _, err := l.Vote(voter, KindPost, postID, false); err == nil {
				voted[p]++
			}
		default:
			l.Revoke(voter, KindPost, postID)
		}

		for id := uint64(1); id <= posts; id++ {
			var want int64
			for v := Identity(200); v < 200+voters; v++ {
				rec := l.postVotes[voteKey{Voter: v, ItemID: id}]
				if rec == nil || !rec.HasVoted {
					continue
				}
				if rec.IsUpvote {
					want++
				} else {
					want--
				}
			}
			if got := l.posts[id-1].Votes; got != want {
				t.Fatalf("step %d: post %d tally %d, live votes say %d", step, id, got, want)
			}
		}
		for _, author := range authors {
			rep := l.accounts[author].Reputation
			if rep < MinReputation || rep > MaxReputation {
				t.Fatalf("step %d: reputation %d out of bounds", step, rep)
			}
		}
	}

	for p, n := range voted {
		if n > 1 {
			t.Errorf("pair %+v reached Voted %d times", p, n)
		}
	}
}

package ledger

import (
	"fmt"
	"time"
)

// VoteState is the viewer's own vote state on an item; all false for an
// anonymous viewer.
type VoteState struct {
	HasVoted   bool `json:"has_voted"`
	IsUpvote   bool `json:"is_upvote"`
	HasRevoked bool `json:"has_revoked"`
}

// PostView is the read-side projection of a post.
type PostView struct {
	ID               uint64    `json:"id"`
	Author           Identity  `json:"author"`
	Content          string    `json:"content"`
	Votes            int64     `json:"votes"`
	IsActive         bool      `json:"is_active"`
	CommentCount     int       `json:"comment_count"`
	AuthorReputation int64     `json:"author_reputation"`
	ViewerVote       VoteState `json:"viewer_vote"`
	CreatedAt        time.Time `json:"created_at"`
}

// CommentView is the read-side projection of a comment.
type CommentView struct {
	ID               uint64    `json:"id"`
	PostID           uint64    `json:"post_id"`
	Author           Identity  `json:"author"`
	Content          string    `json:"content"`
	Votes            int64     `json:"votes"`
	AuthorReputation int64     `json:"author_reputation"`
	ViewerVote       VoteState `json:"viewer_vote"`
	CreatedAt        time.Time `json:"created_at"`
}

// UserStats projects a single account.
type UserStats struct {
	Reputation   int64  `json:"reputation"`
	IsModerator  bool   `json:"is_moderator"`
	PostCount    uint64 `json:"post_count"`
	CommentCount uint64 `json:"comment_count"`
}

// Totals projects the two id counters plus the mutation counter.
type Totals struct {
	Posts    uint64 `json:"posts"`
	Comments uint64 `json:"comments"`
	Version  uint64 `json:"version"`
}

// Feed scans post ids [startID, startID+batch) clipped to the current
// maximum id and returns the active posts in range. Past-the-end start is
// an empty result, not an error.
func (l *Ledger) Feed(startID uint64, batch int, viewer Identity) ([]PostView, error) {
	if startID == 0 {
		return nil, fmt.Errorf("%w: feed start id must be >= 1", ErrValidation)
	}
	if batch <= 0 || batch > MaxBatchSize {
		return nil, fmt.Errorf("%w: batch size must be in (0, %d]", ErrValidation, MaxBatchSize)
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	views := make([]PostView, 0, batch)
	max := uint64(len(l.posts))
	for id := startID; id <= max && id-startID < uint64(batch); id++ {
		p := l.posts[id-1]
		if !p.IsActive {
			continue
		}
		views = append(views, l.postView(p, viewer))
	}
	return views, nil
}

// PostDetails returns the post projection plus one page of its active
// comments. The post need not be active; commentStart indexes the post's
// append-only comment-id sequence. hasMore reports whether comment ids
// remain beyond the requested slice.
func (l *Ledger) PostDetails(postID uint64, commentStart, commentBatch int, viewer Identity) (PostView, []CommentView, bool, error) {
	if commentStart < 0 {
		return PostView{}, nil, false, fmt.Errorf("%w: negative comment start", ErrValidation)
	}
	if commentBatch <= 0 || commentBatch > MaxBatchSize {
		return PostView{}, nil, false, fmt.Errorf("%w: comment batch must be in (0, %d]", ErrValidation, MaxBatchSize)
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	p, err := l.post(postID)
	if err != nil {
		return PostView{}, nil, false, err
	}

	view := l.postView(p, viewer)
	if commentStart >= len(p.CommentIDs) {
		return view, []CommentView{}, false, nil
	}

	end := commentStart + commentBatch
	if end > len(p.CommentIDs) {
		end = len(p.CommentIDs)
	}
	comments := make([]CommentView, 0, end-commentStart)
	for _, cid := range p.CommentIDs[commentStart:end] {
		c := l.comments[cid-1]
		if !c.IsActive {
			continue
		}
		comments = append(comments, CommentView{
			ID:               c.ID,
			PostID:           c.PostID,
			Author:           c.Author,
			Content:          c.Content,
			Votes:            c.Votes,
			AuthorReputation: l.reputationOf(c.Author),
			ViewerVote:       l.voteStateOf(KindComment, c.ID, viewer),
			CreatedAt:        c.CreatedAt,
		})
	}
	hasMore := end < len(p.CommentIDs)
	return view, comments, hasMore, nil
}

// Stats projects the account of the given identity. Unknown identities have
// zero stats; moderator status comes from the role table.
func (l *Ledger) Stats(id Identity) (UserStats, error) {
	if id == 0 {
		return UserStats{}, fmt.Errorf("%w: zero identity", ErrValidation)
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	stats := UserStats{IsModerator: l.access.IsModerator(id)}
	if acc, ok := l.accounts[id]; ok {
		stats.Reputation = acc.Reputation
		stats.PostCount = acc.PostCount
		stats.CommentCount = acc.CommentCount
	}
	return stats, nil
}

// TotalCounts returns the id counters and the mutation counter.
func (l *Ledger) TotalCounts() Totals {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return Totals{
		Posts:    uint64(len(l.posts)),
		Comments: uint64(len(l.comments)),
		Version:  l.version,
	}
}

// postView builds the projection. Caller holds at least the read lock.
func (l *Ledger) postView(p *Post, viewer Identity) PostView {
	return PostView{
		ID:               p.ID,
		Author:           p.Author,
		Content:          p.Content,
		Votes:            p.Votes,
		IsActive:         p.IsActive,
		CommentCount:     len(p.CommentIDs),
		AuthorReputation: l.reputationOf(p.Author),
		ViewerVote:       l.voteStateOf(KindPost, p.ID, viewer),
		CreatedAt:        p.CreatedAt,
	}
}

func (l *Ledger) reputationOf(id Identity) int64 {
	if acc, ok := l.accounts[id]; ok {
		return acc.Reputation
	}
	return 0
}

func (l *Ledger) voteStateOf(kind ItemKind, id uint64, viewer Identity) VoteState {
	if viewer == 0 {
		return VoteState{}
	}
	rec := l.voteRecords(kind)[voteKey{Voter: viewer, ItemID: id}]
	if rec == nil {
		return VoteState{}
	}
	return VoteState{HasVoted: rec.HasVoted, IsUpvote: rec.IsUpvote, HasRevoked: rec.HasRevoked}
}

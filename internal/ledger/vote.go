package ledger

import "fmt"

// Vote casts a single vote on a live post or comment. The vote record is
// written before the tally and reputation side effects so a re-entrant call
// already sees the (voter, item) pair claimed and cannot double-credit.
// Returns the item's resulting tally.
func (l *Ledger) Vote(voter Identity, kind ItemKind, id uint64, upvote bool) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if voter == 0 {
		return 0, fmt.Errorf("%w: zero voter identity", ErrValidation)
	}
	ref, err := l.activeItem(kind, id)
	if err != nil {
		return 0, err
	}
	if ref.author == voter {
		return 0, fmt.Errorf("%w: cannot vote on your own %s", ErrStateConflict, kind)
	}

	records := l.voteRecords(kind)
	key := voteKey{Voter: voter, ItemID: id}
	if rec := records[key]; rec != nil {
		if rec.HasRevoked {
			return 0, fmt.Errorf("%w: vote on %s %d was revoked", ErrStateConflict, kind, id)
		}
		if rec.HasVoted {
			return 0, fmt.Errorf("%w: already voted on %s %d", ErrStateConflict, kind, id)
		}
	}

	// Guard write first: claim the pair before any further effect.
	records[key] = &VoteRecord{HasVoted: true, IsUpvote: upvote}

	delta, repDelta := int64(1), int64(RepUpvoteReceived)
	label := LabelUpvotePost
	if kind == KindComment {
		label = LabelUpvoteComment
	}
	if !upvote {
		delta, repDelta = -1, RepDownvoteReceived
		label = LabelDownvotePost
		if kind == KindComment {
			label = LabelDownvoteComment
		}
	}
	*ref.votes += delta
	rep := l.adjustReputation(ref.author, repDelta)

	l.bump(Action{Kind: VoteAction, ItemID: id, Actor: voter, Label: label, Reputation: rep})
	return *ref.votes, nil
}

// Revoke permanently withdraws the caller's live vote, undoing its tally
// and reputation contribution exactly once. The record freezes afterwards:
// no further vote or revoke is possible for this pair. Returns the item's
// resulting tally.
func (l *Ledger) Revoke(voter Identity, kind ItemKind, id uint64) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if voter == 0 {
		return 0, fmt.Errorf("%w: zero voter identity", ErrValidation)
	}
	ref, err := l.activeItem(kind, id)
	if err != nil {
		return 0, err
	}

	rec := l.voteRecords(kind)[voteKey{Voter: voter, ItemID: id}]
	if rec == nil || (!rec.HasVoted && !rec.HasRevoked) {
		return 0, fmt.Errorf("%w: no vote to revoke on %s %d", ErrStateConflict, kind, id)
	}
	if rec.HasRevoked {
		return 0, fmt.Errorf("%w: vote on %s %d already revoked", ErrStateConflict, kind, id)
	}

	// Guard write first, then the exact inverse of the original deltas.
	rec.HasVoted = false
	rec.HasRevoked = true

	delta, repDelta := int64(-1), int64(-RepUpvoteReceived)
	if !rec.IsUpvote {
		delta, repDelta = 1, -RepDownvoteReceived
	}
	*ref.votes += delta
	rep := l.adjustReputation(ref.author, repDelta)

	label := LabelRevokePost
	if kind == KindComment {
		label = LabelRevokeComment
	}
	l.bump(Action{Kind: VoteAction, ItemID: id, Actor: voter, Label: label, Reputation: rep})
	return *ref.votes, nil
}

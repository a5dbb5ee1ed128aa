package entities

import (
	"sort"
	"strings"
	"sync"

	domainerrors "podium/contexts/live-competition/leaderboard-service/domain/errors"
)

// MaxScore is the inclusive upper bound for a submitted score.
const MaxScore = 1_000_000_000

// ScoreEntry is an immutable (participant, score) pair. Updates replace
// entries, they never mutate one in place.
type ScoreEntry struct {
	ParticipantID string
	Score         int
}

// rankedBefore is the total order over the board: score descending,
// participant id ascending on ties. Tie-break determinism is load-bearing
// for pagination and neighbor queries.
func rankedBefore(a, b ScoreEntry) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.ParticipantID < b.ParticipantID
}

// ScoreBoard keeps the best score per participant and a total order over
// participants. Mutations take the write lock only for the remove-old/
// insert-new pair; reads copy under the read lock so writers are never
// blocked for the duration of an enumeration by a caller.
type ScoreBoard struct {
	mu     sync.RWMutex
	best   map[string]int
	ranked []ScoreEntry
}

func NewScoreBoard() *ScoreBoard {
	return &ScoreBoard{
		best:   make(map[string]int),
		ranked: make([]ScoreEntry, 0),
	}
}

// Update records a score for a participant. Best score wins: a submission
// that does not improve on the stored score is a silent no-op. The returned
// bool reports whether the board changed.
func (b *ScoreBoard) Update(participantID string, score int) (bool, error) {
	if strings.TrimSpace(participantID) == "" {
		return false, domainerrors.ErrInvalidParticipantID
	}
	if score < 0 || score > MaxScore {
		return false, domainerrors.ErrInvalidScore
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	current, exists := b.best[participantID]
	if exists && score <= current {
		return false, nil
	}
	if exists {
		b.removeLocked(ScoreEntry{ParticipantID: participantID, Score: current})
	}
	b.best[participantID] = score
	b.insertLocked(ScoreEntry{ParticipantID: participantID, Score: score})
	return true, nil
}

// Snapshot returns a consistent point-in-time copy of the full ranking.
func (b *ScoreBoard) Snapshot() []ScoreEntry {
	b.mu.RLock()
	defer b.mu.RUnlock()

	items := make([]ScoreEntry, len(b.ranked))
	copy(items, b.ranked)
	return items
}

// Len reports the number of ranked participants.
func (b *ScoreBoard) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.ranked)
}

// NeighborsAbove returns up to n entries ranked immediately better than the
// participant, best-first, ending just before the participant. Empty when
// the participant is absent, already first, or n <= 0.
func (b *ScoreBoard) NeighborsAbove(participantID string, n int) []ScoreEntry {
	if n <= 0 {
		return []ScoreEntry{}
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	idx := b.indexLocked(participantID)
	if idx <= 0 {
		return []ScoreEntry{}
	}
	from := idx - n
	if from < 0 {
		from = 0
	}
	items := make([]ScoreEntry, idx-from)
	copy(items, b.ranked[from:idx])
	return items
}

// NeighborsBelow returns up to n entries ranked immediately worse than the
// participant, in ascending rank order starting just after the participant.
// Empty when the participant is absent, already last, or n <= 0.
func (b *ScoreBoard) NeighborsBelow(participantID string, n int) []ScoreEntry {
	if n <= 0 {
		return []ScoreEntry{}
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	idx := b.indexLocked(participantID)
	if idx < 0 || idx >= len(b.ranked)-1 {
		return []ScoreEntry{}
	}
	to := idx + 1 + n
	if to > len(b.ranked) {
		to = len(b.ranked)
	}
	items := make([]ScoreEntry, to-idx-1)
	copy(items, b.ranked[idx+1:to])
	return items
}

// indexLocked locates a participant's rank position, or -1 when absent.
// Callers must hold at least the read lock.
func (b *ScoreBoard) indexLocked(participantID string) int {
	score, exists := b.best[participantID]
	if !exists {
		return -1
	}
	target := ScoreEntry{ParticipantID: participantID, Score: score}
	idx := sort.Search(len(b.ranked), func(i int) bool {
		return !rankedBefore(b.ranked[i], target)
	})
	if idx < len(b.ranked) && b.ranked[idx] == target {
		return idx
	}
	return -1
}

func (b *ScoreBoard) insertLocked(entry ScoreEntry) {
	idx := sort.Search(len(b.ranked), func(i int) bool {
		return !rankedBefore(b.ranked[i], entry)
	})
	b.ranked = append(b.ranked, ScoreEntry{})
	copy(b.ranked[idx+1:], b.ranked[idx:])
	b.ranked[idx] = entry
}

func (b *ScoreBoard) removeLocked(entry ScoreEntry) {
	idx := sort.Search(len(b.ranked), func(i int) bool {
		return !rankedBefore(b.ranked[i], entry)
	})
	if idx >= len(b.ranked) || b.ranked[idx] != entry {
		return
	}
	b.ranked = append(b.ranked[:idx], b.ranked[idx+1:]...)
}

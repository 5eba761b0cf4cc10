package watcher

import "github.com/MKhiriev/go-theme-sync/models"

// queue accumulates the coalesced kind per path and remembers the order in
// which paths were first seen.
type queue struct {
	kinds map[string]models.ChangeKind
	order []string
}

func newQueue() *queue {
	return &queue{kinds: make(map[string]models.ChangeKind)}
}

func (q *queue) push(path string, kind models.ChangeKind) {
	prev, ok := q.kinds[path]
	if !ok {
		q.order = append(q.order, path)
		q.kinds[path] = kind
		return
	}

	q.kinds[path] = merge(prev, kind)
}

func (q *queue) drain() []models.ChangeEvent {
	out := make([]models.ChangeEvent, 0, len(q.order))
	for _, p := range q.order {
		out = append(out, models.ChangeEvent{Path: p, Kind: q.kinds[p]})
	}

	q.kinds = make(map[string]models.ChangeKind)
	q.order = q.order[:0]
	return out
}

func (q *queue) len() int {
	return len(q.order)
}

// merge folds next into prev so that the result describes the net change
// against the state before prev.
func merge(prev, next models.ChangeKind) models.ChangeKind {
	switch {
	case prev == models.Deleted && next != models.Deleted:
		// the file existed before, so it was replaced
		return models.Updated
	case prev == models.Created && next != models.Deleted:
		return models.Created
	default:
		return next
	}
}

package dedupe

// Package dedupe provides the shared singleflight group used to serialize
// turns per session. A session record is exclusively owned by the turn
// mutating it; collapsing concurrent requests for the same key keeps
// overlapping "sigue" invocations from double-drawing.

import "golang.org/x/sync/singleflight"

// TurnGroup deduplicates concurrent turn requests keyed by session key.
var TurnGroup singleflight.Group

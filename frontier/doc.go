// Package frontier implements the min-priority queue used by the gridpath
// search drivers.
//
// A Queue holds (state, priority) pairs and always extracts an entry with
// the smallest priority. It keeps a position index per state, so
// PushOrImprove can lower the priority of a queued state in place
// (decrease-key) instead of piling up duplicates.
//
// Contract:
//
//   - PushOrImprove(s, p): insert s if absent; if present with a strictly
//     larger priority, lower it to p; otherwise leave the queue unchanged.
//   - PopMin(): remove and return a minimum entry, or ErrEmpty.
//   - Ties between equal priorities are broken arbitrarily.
//
// Complexity:
//
//   - PushOrImprove: O(log N)
//   - PopMin:        O(log N)
//   - Peek, Len:     O(1)
//   - Space:         O(N) for the heap plus O(N) for the index map.
//
// Drivers still verify popped priorities against their own distance tables
// (lazy staleness check), so the queue may be swapped for a lazy one
// without changing algorithm results.
package frontier

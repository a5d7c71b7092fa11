// Package bus is the in-process lifecycle bus of a reader-sync client.
//
// Trigger sources (settings writes, the file watcher, backend subscriptions,
// the CLI shutdown path) publish named events; the sync orchestrator
// subscribes once per topic. The bus is a watermill gochannel pub/sub, so
// publishers never block on slow subscribers beyond the channel buffer.
package bus

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DatabaseSnapshot is the serialized form of the whole local database: one
// array per table plus the export timestamp. A table missing from a decoded
// snapshot is treated as empty.
type DatabaseSnapshot struct {
	Version    int               `json:"version"`
	ExportedAt string            `json:"exportedAt"`
	Novels     []Novel           `json:"novels"`
	Users      []User            `json:"users"`
	Library    []LibraryItem     `json:"library"`
	Progress   []ReadingProgress `json:"progress"`
	Comments   []Comment         `json:"comments"`
	Reviews    []Review          `json:"reviews"`
}

// LibrarySnapshot is the reduced library shape: the current user's library
// entries and reading progress keyed by novel id.
type LibrarySnapshot struct {
	State LibrarySnapshotState `json:"state"`
}

// LibrarySnapshotState is the body of a [LibrarySnapshot].
type LibrarySnapshotState struct {
	Library         []LibraryItem              `json:"library"`
	ReadingProgress map[string]ReadingProgress `json:"readingProgress"`
}

// ProgressList flattens ReadingProgress into a slice.
func (s LibrarySnapshot) ProgressList() []ReadingProgress {
	out := make([]ReadingProgress, 0, len(s.State.ReadingProgress))
	for _, p := range s.State.ReadingProgress {
		out = append(out, p)
	}
	return out
}

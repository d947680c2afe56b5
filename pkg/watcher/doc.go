// Package watcher revalidates résumé files as they change on disk.
//
// File events come from fsnotify and are debounced so a burst of editor
// writes produces one revalidation. A cron schedule can be configured for
// periodic sweeps of the watched path in addition to event-driven runs,
// which covers files changed through channels fsnotify cannot observe
// (network mounts, some container bind setups).
package watcher

// Package cli provides the interactive Sell It command-line client.
//
// It wires configuration, the namespaced key-value store, services, and an
// interactive REPL. Typical flow: pick a storage backend from config, seed
// the demo accounts on first run, start the cross-process store watcher (file
// backend), and execute user commands.
//
// Key features:
//   - Register / Login / Logout against the local user collection
//   - Create, browse and manage business ideas
//   - On-platform chat with the outbound safety filter
//   - Two-party agreement drafting and signing
//   - Admin moderation queue and audit log
//   - Sandbox namespace switch and namespace reset
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli

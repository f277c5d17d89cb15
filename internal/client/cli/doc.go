// Package cli provides the interactive DataShare command-line client.
//
// It wires configuration, the session store, the API client, and an
// interactive REPL around the upload and download workflows. Typical flow:
// register or log in, upload a file, share the printed link, and manage the
// file collection.
//
// Key features:
//   - Register / Login / Logout with a persisted bearer credential
//   - Upload with optional password, retention choice, and tags
//   - Resolve and download share tokens, password-gated when protected
//   - List the collection with active/expired partitioning
//   - Delete files
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// A background watcher observes the credential file, so logging out in one
// terminal is reflected in every other running instance.
package cli

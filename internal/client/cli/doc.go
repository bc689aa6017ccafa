// Package cli provides the interactive EventHub command-line client.
//
// It wires configuration, the local sqlite store, the action gateway, and an
// interactive REPL over the event catalog. Typical flow: restore the saved
// session, fetch the published events, and execute user commands.
//
// Key features:
//   - Login / Register (password or SMS verification) / password reset
//   - Browse, search, and filter the event catalog
//   - Save events for later
//   - Create an event and pay the publication fee
//   - Join an event through the registration payment flow
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli

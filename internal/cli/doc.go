// Package cli defines the bootplan command tree. Commands stay thin:
// they parse flags, construct an App, and translate operation outcomes
// into process exit codes via ExitError.
package cli

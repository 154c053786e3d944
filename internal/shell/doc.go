// Package shell generates shell export/unset snippets for the active
// environment-variable profiles. On platforms without a persistent user
// environment scope, users eval the output (e.g. eval "$(aictx env)") to
// bring the active credentials into the current shell session.
package shell

// Package dotenv parses .env-style files and exposes them as a runtime
// provider.
//
// The format is line oriented UTF-8: blank lines and lines starting with
// '#' are skipped; everything else is KEY=VALUE, split on the first '='.
// Values may be quoted with matching single or double quotes (stripped)
// and may reference other variables as ${NAME}. References resolve
// against keys defined earlier in the same file, then the OS
// environment, and default to the empty string.
//
// FileProvider re-reads its file on every call, so lookups always
// reflect current file contents. It pairs with provider.Registry as a
// local-development source behind remote secret providers.
package dotenv

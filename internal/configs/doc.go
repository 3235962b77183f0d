// Package configs manages user-level settings for manuka.
//
// Settings live in a TOML file under the user config directory
// (~/.config/manuka/settings.toml, or $XDG_CONFIG_HOME/manuka) and hold
// loader defaults: whether $(...) command substitution runs, and its
// timeout. A missing file means defaults; CLI flags always win over the
// file.
package configs

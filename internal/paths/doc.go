// Package paths resolves the per-user locations where dotconf keeps its
// backing store.
//
// The package wraps github.com/adrg/xdg for cross-platform XDG Base
// Directory Specification compliance. On Linux the default store lands in
// ~/.config/dotconf/config.json; macOS and Windows follow their native
// conventions via xdg.
//
// [DefaultStorePath] is consumed by the persistence layer only when no
// explicit store locator is supplied.
package paths

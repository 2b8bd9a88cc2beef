// Package theme owns the skin identity of a session: the closed set of
// valid skin names, migration of retired names, the per-skin config of
// font and colour roles, and the per-session store that resolves which
// skin is active from a one-shot override, a durable preference, or the
// hardcoded default.
//
// Integration example:
//
//	store := theme.NewStore(prefs, theme.StoreOptions{
//		UserKey:  userKey,
//		Override: sessionOverride,
//		Term:     term,
//	})
//	styles := store.Styles()
//	header = styles.Title.Render(header)
package theme

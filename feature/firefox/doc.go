// Package firefox writes cookies into a Firefox-family profile.
//
// It targets the moz_cookies table of cookies.sqlite as found in Firefox and
// its forks (Zen, LibreWolf). The package contains everything that knows about
// that browser:
//
//   - Store: the reconcile.Adapter over moz_cookies, built on GORM. It also
//     implements reconcile.Maintainer (VACUUM, REINDEX).
//   - VerifySchema: checks the table and its columns before anything is written.
//   - DiscoverProfiles and ResolveProfile: read profiles.ini to list profiles
//     and to turn a profile name into a directory.
//   - Terminate: force-kills running browser processes so the database is
//     not locked or rewritten under the importer.
//
// # Time Units
//
// Records arrive with the expiry in milliseconds. Store writes it unchanged by
// default; ExpirySeconds divides it by 1000 for stores that expect seconds.
// lastAccessed and creationTime are always microseconds.
//
// # Usage
//
//	store, err := firefox.Open(database.Config{Path: dbPath, Mode: "rw"}, firefox.ExpiryMillis)
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	summary, err := reconcile.Upsert(ctx, store, records, reconcile.Options{})
package firefox

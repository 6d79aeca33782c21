// Package importer runs a cookie import from end to end.
//
// A run resolves the profile, reads the export (local file, s3:// object or
// uploaded body), detects and parses it, stops the browser, removes the SQLite
// journal sidecars, backs up cookies.sqlite, upserts every record and finally
// compacts the store. The export is read and parsed before the browser is
// stopped or anything on disk is touched.
//
// # Errors
//
// Setup failures (missing profile, store or export, foreign schema) are
// returned as *SetupError. An unrecognized export wraps
// cookiefile.ErrUnrecognizedFormat. Both are fatal and leave the store
// untouched. Records that fail to write only raise the skipped count.
//
// # Logging
//
// Engine events are logged per run: inserts and updates at debug, skipped
// records at warn, the final counts at info. Entries carry the cookie key and
// never the cookie value.
//
// # HTTP
//
// The Feature mounts POST /import and GET /profiles. StatusFor maps the errors
// above to 400, 404 or 500.
//
// # Usage
//
//	svc := importer.NewService(cfg.Import, cfg.Database, cfg.Storage, client, log)
//	report, err := svc.Run(ctx, importer.Request{Profile: "default-release", Source: "cookies.txt"})
package importer

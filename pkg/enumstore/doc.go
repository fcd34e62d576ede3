// Package enumstore persists metadata overrides of enumerations so that
// changes made with enum.Type.OverrideItemData survive restarts and reach
// every process sharing the same backend.
//
// Declarations stay in code (or YAML, see package enumdef); only the
// overrides are stored, keyed by enumeration name and the member's canonical
// string. A Manager ties a Store to in-process types:
//
//   - Override applies the change to the in-process type first and persists it
//     only when the type accepted it, so the store never holds overrides for
//     members without a metadata record.
//   - Sync replays every stored override into a freshly declared type, usually
//     once at startup.
//
// # Backends
//
//   - MemoryStore: process local, for tests and single-instance tools.
//   - RedisStore: one hash per enumeration, JSON encoded records, merged with
//     an optimistic WATCH/MULTI transaction.
//   - PostgresStore: enum_overrides table with a JSONB column merged by
//     INSERT ... ON CONFLICT. Apply the bundled schema with Migrate.
//
// JSON backed stores return numbers as float64.
//
// # Usage
//
//	client, err := redis.Connect(ctx, redisCfg)
//	// ...
//	mgr := enumstore.NewManager(enumstore.NewRedisStore(client),
//	    enumstore.WithLogger(log),
//	)
//	if _, err := mgr.Sync(ctx, OrderStatus); err != nil {
//	    // ...
//	}
//	ok, err := mgr.Override(ctx, OrderStatus, "paid", enum.Data{"color": "navy"})
package enumstore

// Package redis connects the site to an optional Redis server.
//
// Redis holds the contact-form rate-limit counters when the site runs as more
// than one replica. Connect retries the initial ping; the rate-limit store built
// on the client provides the readiness probe:
//
//	cfg, _ := config.Load[redis.Config]()
//	if cfg.Enabled() {
//	    client, err := redis.Connect(ctx, cfg)
//	    ...
//	    store := ratelimit.NewRedisStore(client, "ratelimit:")
//	    probes = append(probes, store.Ready)
//	}
package redis

// Package environment names the deployment modes the site can run in.
//
// The Environment value is parsed once at startup from APP_ENV and then drives
// environment-dependent defaults: log format and level (see pkg/logger) and
// whether internal error details are exposed in API responses.
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	if env.IsProduction() {
//	    // hide internals
//	}
package environment

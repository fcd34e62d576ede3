// Package environment declares the application environments enumkit tools
// run in and propagates the current one through context.Context.
//
// Environments is an enum.Type over the Environment string type, so the set
// of legal values, their labels and their per-environment defaults live in
// one declaration. Parse accepts the canonical names plus the short aliases
// "dev", "stage" and "prod".
//
// # Usage
//
//	env, err := environment.Parse(os.Getenv("APP_ENV"))
//	if err != nil {
//	    return err
//	}
//	ctx = environment.WithContext(ctx, env)
//
//	if environment.IsProduction(ctx) {
//	    // ...
//	}
//
// LoggerExtractor returns a pkg/logger context extractor that adds the
// environment to every record logged with that context.
package environment

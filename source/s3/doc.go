// Package s3 provides an Amazon S3 implementation of the source.Source interface.
//
// # Usage
//
//	cfg, err := config.LoadDefaultConfig(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	src := s3source.New(s3.NewFromConfig(cfg), "my-bucket", "public/")
//	resolver := assetgo.New(assetgo.WithSource(src))
//
// Or let the package load the default AWS config for you:
//
//	src, err := s3source.NewFromEnv(ctx, "my-bucket", "public/")
//
// Existence probes map to HeadObject and reads to GetObject; consider
// wrapping with source.RateLimited when probing aggressively.
package s3

// Package minio provides a Source implementation using the MinIO client.
//
// MinIO is a high-performance, S3-compatible object storage system. This
// package uses the official MinIO Go client library for optimal
// compatibility with MinIO and other S3-compatible systems like Ceph,
// SeaweedFS, and Garage. Use it when the public asset tree is synced to a
// bucket instead of shipped with the process.
//
// # Basic Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	src := miniosource.New(client, "my-bucket", "public/")
//	resolver := assetgo.New(assetgo.WithSource(src))
//
// Existence probes map to StatObject and reads to GetObject; consider
// wrapping with source.RateLimited when probing aggressively.
package minio

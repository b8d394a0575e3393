// Package s3 implements blobstore.Store on Amazon S3.
//
// Snapshots are written through streaming multipart uploads (via the
// aws-sdk-go-v2 upload manager) and read through ranged GETs, so large
// committed structures never have to be buffered fully in memory.
package s3

// Package minio implements blobstore.Store on any S3-compatible object
// store reachable through the MinIO client (MinIO itself, Ceph, etc.).
package minio

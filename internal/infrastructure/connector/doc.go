// Package connector stores product images in object storage.
// Azure Blob Storage is used in deployments; a local directory backend serves development setups.
package connector

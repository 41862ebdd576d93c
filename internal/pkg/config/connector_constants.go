package config

// AzureCloudProvider represents Microsoft Azure cloud provider
const AzureCloudProvider = "azure"

// LocalCloudProvider keeps product images on the local filesystem (development only)
const LocalCloudProvider = "local"

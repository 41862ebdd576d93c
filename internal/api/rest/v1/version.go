package v1

// BasePath is the prefix of every marketplace route
const BasePath = "/api"

// Version of the REST API
const Version = "v1"

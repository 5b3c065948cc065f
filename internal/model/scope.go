package model

// Scope carries the caller identity of a request through the engine.
// WorkspaceID namespaces every cache key so tenants never share entries.
type Scope struct {
	UserID      string
	WorkspaceID string
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

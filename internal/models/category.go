package models

// Finding categories, one per loader class. New loaders add new labels;
// the derivers match on substrings ("Infrastructure", "Kubernetes") so
// related categories trigger the same advice.
const (
	CategoryContainer      = "Container Vulnerability"
	CategoryDependency     = "Dependency Vulnerability"
	CategoryInfrastructure = "Infrastructure Security"
	CategoryKubernetes     = "Kubernetes Security"
	CategoryCode           = "Code Security"
	CategorySAST           = "SAST"
	CategoryLicense        = "License Compliance"
)

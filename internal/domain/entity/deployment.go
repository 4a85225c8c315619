package entity

import "time"

// DeployRequest asks for a generated project to be published.
type DeployRequest struct {
	ProjectName string  `json:"projectName" validate:"required,min=1,max=100"`
	Files       FileSet `json:"files" validate:"required,min=1"`
}

// Deployment describes a published project on the hosting provider.
type Deployment struct {
	DeploymentID string    `json:"deploymentId"`
	URL          string    `json:"url"`
	Status       string    `json:"status"`
	ProjectName  string    `json:"projectName"`
	CreatedAt    time.Time `json:"createdAt"`
}

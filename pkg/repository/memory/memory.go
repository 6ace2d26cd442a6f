package memory

import "github.com/m-mizutani/shipgate/pkg/domain/interfaces"

// New creates a new in-memory repository
func New() interfaces.DeployRepository {
	return &deployRepository{
		deployments: make(map[string]*record),
	}
}

package memory_test

import (
	"testing"

	"github.com/m-mizutani/shipgate/pkg/domain/interfaces"
	"github.com/m-mizutani/shipgate/pkg/repository/memory"
	"github.com/m-mizutani/shipgate/pkg/repository/testhelper"
)

func TestDeployRepository(t *testing.T) {
	testhelper.TestDeployRepository(t, func(t *testing.T) interfaces.DeployRepository {
		return memory.New()
	})
}

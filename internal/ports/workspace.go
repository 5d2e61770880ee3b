package ports

import "github.com/marshallmcdonnell/advent-of-code-2019/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}

package ports

import "github.com/marshallmcdonnell/advent-of-code-2019/internal/domain"

// InputCatalog lists instruction files available in a workspace.
type InputCatalog interface {
	ListInputs(root string) ([]domain.InputRef, error)
}

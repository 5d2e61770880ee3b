package ports

// InstructionSource loads raw instruction lines, one per path.
type InstructionSource interface {
	LoadInstructions(path string) ([]string, error)
}

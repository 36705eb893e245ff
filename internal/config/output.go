package config

// OutputConfig holds settings for what the command prints.
type OutputConfig struct {
	// Format selects text or JSON output
	Format OutputFormat

	// ListMoves prints the legal moves of the position
	ListMoves bool

	// ShowStatus prints the game-state classification
	ShowStatus bool

	// ShowFEN echoes the normalised FEN of the position
	ShowFEN bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:     Text,
		ListMoves:  true,
		ShowStatus: true,
	}
}

package pyenv

// Config holds configuration for the Python environment.
type Config struct {
	// Interpreter is the system Python used to create the venv.
	Interpreter string `mapstructure:"interpreter" default:"python3"`
	// VenvDir is the directory of the virtual environment.
	VenvDir string `mapstructure:"venv_dir" default:".venv"`
}

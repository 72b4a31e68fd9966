package cli

// Flags holds all command-line flag values
type Flags struct {
	CfgFile  string
	DictPath string
	Verbose  bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		DictPath: "dictionary.txt",
	}
}

package markup

// documentDTO is the on-disk shape shared by the YAML and TOML formats.
type documentDTO struct {
	Grid nodeDTO `yaml:"grid" toml:"grid"`
}

type nodeDTO struct {
	ID           string            `yaml:"id" toml:"id"`
	Role         string            `yaml:"role" toml:"role"`
	Label        string            `yaml:"label" toml:"label"`
	TabIndex     *int              `yaml:"tabindex" toml:"tabindex"`
	RovingTarget bool              `yaml:"roving_target" toml:"roving_target"`
	Attributes   map[string]string `yaml:"attributes" toml:"attributes"`
	Children     []nodeDTO         `yaml:"children" toml:"children"`
}

package config

// Naming holds the three naming templates. Each is a text/template
// executed with the SAM type's simple name as dot.
type Naming struct {
	CheckedInterface string `yaml:"checked_interface,omitempty" toml:"checked_interface"`
	Adapter          string `yaml:"adapter,omitempty" toml:"adapter"`
	DirectInvoke     string `yaml:"direct_invoke,omitempty" toml:"direct_invoke"`
}

// Target is the configuration of one generated file.
type Target struct {
	// Name identifies the target in logs. Defaults to the class name.
	Name string `yaml:"name,omitempty" toml:"name"`
	// Preset supplies defaults for every field left empty.
	Preset string `yaml:"preset,omitempty" toml:"preset"`

	Package   string `yaml:"package,omitempty" toml:"package"`
	Class     string `yaml:"class,omitempty" toml:"class"`
	Checked   string `yaml:"checked,omitempty" toml:"checked"`
	Unchecked string `yaml:"unchecked,omitempty" toml:"unchecked"`
	Naming    Naming `yaml:"naming,omitempty" toml:"naming"`

	// SamTypes are qualified or unique simple names. Defaults to
	// registry.StandardSamTypes.
	SamTypes []string `yaml:"sam_types,omitempty" toml:"sam_types"`
	// Types are extra descriptor files.
	Types []string `yaml:"types,omitempty" toml:"types"`

	Banner  string `yaml:"banner,omitempty" toml:"banner"`
	SiteURL string `yaml:"site_url,omitempty" toml:"site_url"`
	// Output is the path of the generated file. Required in batch files.
	Output string `yaml:"output,omitempty" toml:"output"`

	// dir is the directory relative paths are resolved against.
	dir string
}

// Batch is a file listing several targets.
type Batch struct {
	// Workers limits concurrent generation; 0 means one per target.
	Workers int      `yaml:"workers,omitempty" toml:"workers"`
	Targets []Target `yaml:"targets" toml:"targets"`
}

// withDefaults returns t with empty fields taken from base.
func (t Target) withDefaults(base *Target) Target {
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&t.Package, base.Package)
	fill(&t.Class, base.Class)
	fill(&t.Checked, base.Checked)
	fill(&t.Unchecked, base.Unchecked)
	fill(&t.Naming.CheckedInterface, base.Naming.CheckedInterface)
	fill(&t.Naming.Adapter, base.Naming.Adapter)
	fill(&t.Naming.DirectInvoke, base.Naming.DirectInvoke)
	fill(&t.Banner, base.Banner)
	fill(&t.SiteURL, base.SiteURL)

	if t.SamTypes == nil {
		t.SamTypes = base.SamTypes
	}

	return t
}

// DisplayName is Name, or the class name if Name is empty.
func (t *Target) DisplayName() string {
	if t.Name != "" {
		return t.Name
	}

	return t.Class
}

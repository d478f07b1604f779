package tools

// Pyre runs `pyre analyze`. The exclude list is accepted but never passed
// on; pyre reads its exclusions from .pyre_configuration.
type Pyre struct{}

func NewPyre() *Pyre {
	return &Pyre{}
}

func (p *Pyre) Name() Name { return NamePyreCheck }

func (p *Pyre) DisplayName() string { return "Pyre" }

func (p *Pyre) BuildCommand(path, _ string) []string {
	return []string{"pyre", "analyze", path}
}

func (p *Pyre) NotFoundMessage() string {
	return "Pyre is not installed or not in PATH. Please install Pyre."
}

package config

import (
	"fmt"

	"github.com/tliron/commonlog"

	"unchecker-generator/internal/analyze"
	"unchecker-generator/internal/diagnostic"
	"unchecker-generator/internal/gen"
	"unchecker-generator/internal/registry"
)

var log = commonlog.GetLogger("unchecker.config")

// GenConfig converts a resolved target to the engine's configuration.
// Category names are resolved against g.
func (t *Target) GenConfig(g *analyze.TypeGraph) (gen.Config, error) {
	categories, err := registry.Resolve(g, []string{t.Checked, t.Unchecked})
	if err != nil {
		return gen.Config{}, fmt.Errorf("exception categories: %w", err)
	}

	naming, err := gen.NewTemplatePolicy(t.Naming.CheckedInterface, t.Naming.Adapter, t.Naming.DirectInvoke)
	if err != nil {
		return gen.Config{}, err
	}

	return gen.Config{
		Package:   t.Package,
		Class:     t.Class,
		Checked:   categories[0],
		Unchecked: categories[1],
		Naming:    naming,
		Banner:    t.Banner,
		SiteURL:   t.SiteURL,
	}, nil
}

// Job resolves a target into a generation job: it applies the preset,
// validates, loads the extra descriptor files on top of the standard
// catalog and resolves every type name. output overrides the target's
// own output when non-empty.
func (t *Target) Job(output string) (*gen.Job, error) {
	r, err := t.Resolved()
	if err != nil {
		return nil, err
	}

	if err := report(r.Validate()); err != nil {
		return nil, err
	}

	return r.build(output)
}

func (t *Target) build(output string) (*gen.Job, error) {
	paths := make([]string, len(t.Types))
	for i, p := range t.Types {
		paths[i] = t.resolvePath(p)
	}

	graph, err := registry.Load(paths...)
	if err != nil {
		return nil, err
	}

	cfg, err := t.GenConfig(graph)
	if err != nil {
		return nil, err
	}

	names := t.SamTypes
	if names == nil {
		names = registry.StandardSamTypes
	}

	samTypes, err := registry.Resolve(graph, names)
	if err != nil {
		return nil, fmt.Errorf("sam_types: %w", err)
	}

	if output == "" {
		output = t.resolvePath(t.Output)
	}

	return &gen.Job{
		Name:     t.DisplayName(),
		Graph:    graph,
		Config:   cfg,
		SamTypes: samTypes,
		Output:   output,
	}, nil
}

// Jobs resolves every target of a batch. Presets are applied before the
// batch-level checks.
func (b *Batch) Jobs() ([]gen.Job, error) {
	resolved := Batch{Workers: b.Workers, Targets: make([]Target, len(b.Targets))}

	for i := range b.Targets {
		r, err := b.Targets[i].Resolved()
		if err != nil {
			return nil, fmt.Errorf("target %s: %w", b.Targets[i].DisplayName(), err)
		}

		resolved.Targets[i] = *r
	}

	if err := report(resolved.Validate()); err != nil {
		return nil, err
	}

	jobs := make([]gen.Job, 0, len(b.Targets))

	for i := range resolved.Targets {
		job, err := resolved.Targets[i].build("")
		if err != nil {
			return nil, fmt.Errorf("target %s: %w", resolved.Targets[i].DisplayName(), err)
		}

		jobs = append(jobs, *job)
	}

	return jobs, nil
}

// report logs warnings and infos and returns the errors, if any.
func report(diags diagnostic.Diagnostics) error {
	for _, d := range diags.Warnings {
		log.Warning(d.String())
	}

	for _, d := range diags.Infos {
		log.Info(d.String())
	}

	return diags.Error()
}

// Package knowledge holds the static guidance tables the mentor draws from.
//
// The tables live in YAML files under data/ and are embedded into the
// binary. They are decoded once by Load and are read-only afterwards, so a
// *Base is safe for concurrent use. Every lookup is total: keys without an
// entry resolve to a designated default record or to an empty list.
package knowledge

import (
	"embed"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/zarndearc/learners-coder-mcp/internal/intent"
)

//go:embed data/*.yaml
var embedded embed.FS

// Base is the decoded knowledge base.
type Base struct {
	toolsets       map[string]Record
	defaultToolset string
	stacks         map[string]Record
	defaultStack   string

	companyStacks Record
	production    Record
	comparisons   Record
	libraries     Record

	performance Record
	security    Record
	scalability Record

	gateways           Record
	recommendations    Record
	integrationExample IntegrationExample

	infrastructure Record
	proxmoxGuide   ProxmoxGuide

	questions map[string][]string
	concepts  map[string][]Concept

	service ServiceInfo
}

type toolsFile struct {
	Default  string            `yaml:"default"`
	Toolsets map[string]Record `yaml:"toolsets"`
}

type stacksFile struct {
	Default string            `yaml:"default"`
	Stacks  map[string]Record `yaml:"stacks"`
}

type enterpriseFile struct {
	CompanyStacks Record `yaml:"companyStacks"`
	Production    Record `yaml:"production"`
	Comparisons   Record `yaml:"comparisons"`
}

type performanceFile struct {
	Performance Record `yaml:"performance"`
	Security    Record `yaml:"security"`
	Scalability Record `yaml:"scalability"`
}

type librariesFile struct {
	Libraries Record `yaml:"libraries"`
}

type paymentsFile struct {
	Gateways           Record             `yaml:"gateways"`
	Recommendations    Record             `yaml:"recommendations"`
	IntegrationExample IntegrationExample `yaml:"integrationExample"`
}

type infrastructureFile struct {
	Libraries        Record       `yaml:"libraries"`
	IntegrationGuide ProxmoxGuide `yaml:"integrationGuide"`
}

type teachingFile struct {
	Questions map[string][]string  `yaml:"questions"`
	Concepts  map[string][]Concept `yaml:"concepts"`
}

// Load decodes the embedded knowledge tables.
func Load() (*Base, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("knowledge: open embedded data: %w", err)
	}
	return LoadFS(sub)
}

// LoadFS decodes the knowledge tables from the root of fsys.
func LoadFS(fsys fs.FS) (*Base, error) {
	var (
		tools   toolsFile
		stacks  stacksFile
		ent     enterpriseFile
		perf    performanceFile
		libs    librariesFile
		pay     paymentsFile
		infra   infrastructureFile
		teach   teachingFile
		service ServiceInfo
	)

	files := []struct {
		name string
		dst  any
	}{
		{"tools.yaml", &tools},
		{"stacks.yaml", &stacks},
		{"enterprise.yaml", &ent},
		{"performance.yaml", &perf},
		{"libraries.yaml", &libs},
		{"payments.yaml", &pay},
		{"infrastructure.yaml", &infra},
		{"teaching.yaml", &teach},
		{"service.yaml", &service},
	}
	for _, f := range files {
		if err := decodeFile(fsys, f.name, f.dst); err != nil {
			return nil, err
		}
	}

	if _, ok := tools.Toolsets[tools.Default]; !ok {
		return nil, fmt.Errorf("knowledge: default toolset %q not defined", tools.Default)
	}
	if _, ok := stacks.Stacks[stacks.Default]; !ok {
		return nil, fmt.Errorf("knowledge: default stack %q not defined", stacks.Default)
	}
	proxmox, ok := infra.Libraries["proxmox"]
	if !ok {
		return nil, fmt.Errorf("knowledge: infrastructure table has no proxmox entry")
	}
	proxmoxRecord, ok := proxmox.(Record)
	if !ok {
		return nil, fmt.Errorf("knowledge: proxmox entry is %T, want a mapping", proxmox)
	}

	return &Base{
		toolsets:           tools.Toolsets,
		defaultToolset:     tools.Default,
		stacks:             stacks.Stacks,
		defaultStack:       stacks.Default,
		companyStacks:      ent.CompanyStacks,
		production:         ent.Production,
		comparisons:        ent.Comparisons,
		libraries:          libs.Libraries,
		performance:        perf.Performance,
		security:           perf.Security,
		scalability:        perf.Scalability,
		gateways:           pay.Gateways,
		recommendations:    pay.Recommendations,
		integrationExample: pay.IntegrationExample,
		infrastructure:     proxmoxRecord,
		proxmoxGuide:       infra.IntegrationGuide,
		questions:          teach.Questions,
		concepts:           teach.Concepts,
		service:            service,
	}, nil
}

func decodeFile(fsys fs.FS, name string, dst any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("knowledge: read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("knowledge: parse %s: %w", name, err)
	}
	return nil
}

// Tools returns the recommended toolset for a tools-consumer key, or the
// default toolset.
func (b *Base) Tools(key intent.Key) Record {
	if r, ok := b.toolsets[string(key)]; ok {
		return r
	}
	return b.toolsets[b.defaultToolset]
}

// HasTools reports whether key has its own toolset.
func (b *Base) HasTools(key intent.Key) bool {
	_, ok := b.toolsets[string(key)]
	return ok
}

// TechStack returns the tech stack for a tools-consumer key, or the
// default stack.
func (b *Base) TechStack(key intent.Key) Record {
	if r, ok := b.stacks[string(key)]; ok {
		return r
	}
	return b.stacks[b.defaultStack]
}

// CompanyStacks returns the company-grade stack table.
func (b *Base) CompanyStacks() Record { return b.companyStacks }

// ProductionRecommendations returns the per-role production advice.
func (b *Base) ProductionRecommendations() Record { return b.production }

// LibraryComparison returns the library comparison table.
func (b *Base) LibraryComparison() Record { return b.comparisons }

// Libraries returns the stable library recommendations.
func (b *Base) Libraries() Record { return b.libraries }

// Performance returns the performance optimization advice.
func (b *Base) Performance() Record { return b.performance }

// Security returns the security checklist.
func (b *Base) Security() Record { return b.security }

// Scalability returns the scalability tips.
func (b *Base) Scalability() Record { return b.scalability }

// PaymentGateways returns the gateway table keyed by gateway id.
func (b *Base) PaymentGateways() Record { return b.gateways }

// PaymentRecommendations returns gateway picks per business model.
func (b *Base) PaymentRecommendations() Record { return b.recommendations }

// IntegrationExample returns a copy of the gateway setup guides.
func (b *Base) IntegrationExample() IntegrationExample { return b.integrationExample }

// Proxmox returns the Proxmox VE library record.
func (b *Base) Proxmox() Record { return b.infrastructure }

// ProxmoxGuide returns a copy of the Proxmox integration guide that the
// caller may modify.
func (b *Base) ProxmoxGuide() ProxmoxGuide { return b.proxmoxGuide.clone() }

// Questions returns the clarifying questions for a concepts-consumer key.
// The result is never nil.
func (b *Base) Questions(key intent.Key) []string {
	return append([]string{}, b.questions[string(key)]...)
}

// Concepts returns the concept breakdown for a concepts-consumer key.
// The result is never nil.
func (b *Base) Concepts(key intent.Key) []Concept {
	return append([]Concept{}, b.concepts[string(key)]...)
}

// Service returns the descriptive lists for the info endpoints.
func (b *Base) Service() ServiceInfo { return b.service }

package registries

import (
	"bufio"
	"context"
	"os"
	"strings"

	"loghours/internal/models"
)

//go:generate mockgen -source=domain_registry.go -destination=./mocks/domain_registry_mock.go -package=mocks
type DomainRegistry interface {
	// Load reads the registry and returns the domain -> account owner
	// mapping. A registry that cannot be opened is fatal: without it no
	// domain can be located.
	Load(ctx context.Context) (models.DomainMap, error)
}

type fileDomainRegistry struct {
	path string
}

func NewFileDomainRegistry(path string) DomainRegistry {
	return &fileDomainRegistry{path: path}
}

// Registry record format: fields separated by "==", first field is
// "domain: owner". Example:
//
//	example.com: bob==example.com==bob==...
func (r *fileDomainRegistry) Load(ctx context.Context) (models.DomainMap, error) {
	file, err := os.Open(r.path)
	if err != nil {
		return nil, errRegistryUnreadable(r.path, err)
	}
	defer file.Close()

	domains := make(models.DomainMap)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		fields := strings.Split(strings.TrimSpace(scanner.Text()), "==")
		if len(fields) < 2 {
			continue
		}
		sub := strings.Split(fields[0], ":")
		if len(sub) != 2 {
			continue
		}
		domains[strings.TrimSpace(sub[0])] = strings.TrimSpace(sub[1])
	}
	if err := scanner.Err(); err != nil {
		return nil, errRegistryUnreadable(r.path, err)
	}

	return domains, nil
}

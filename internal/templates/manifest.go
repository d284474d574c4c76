package templates

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"sort"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	oerrors "github.com/rampx/cli/internal/errors"
	"github.com/rampx/cli/internal/patterns"
)

// Dependency sets per project type. Constraints are semver ranges so they can
// be validated and overridden from configuration.
type dependencySet struct {
	runtime map[string]string
	dev     map[string]string
}

func defaultDependencies(t patterns.ProjectType) dependencySet {
	switch t {
	case patterns.Node:
		return dependencySet{
			runtime: map[string]string{
				"express": "^4.18.2",
				"dotenv":  "^16.3.1",
			},
			dev: map[string]string{
				"nodemon": "^3.0.1",
				"jest":    "^29.7.0",
			},
		}
	case patterns.Laravel:
		return dependencySet{
			runtime: map[string]string{
				"php":               "^8.2",
				"laravel/framework": "^11.0",
			},
			dev: map[string]string{
				"phpunit/phpunit": "^11.0",
				"fakerphp/faker":  "^1.23",
			},
		}
	case patterns.Flutter:
		return dependencySet{
			runtime: map[string]string{
				"cupertino_icons": "^1.0.8",
			},
			dev: map[string]string{
				"flutter_lints": "^4.0.0",
			},
		}
	default:
		return dependencySet{runtime: map[string]string{}, dev: map[string]string{}}
	}
}

// DefaultDependencies returns the default runtime and development dependency
// constraints for a project type, merged into one map.
func DefaultDependencies(t patterns.ProjectType) map[string]string {
	set := defaultDependencies(t)
	out := make(map[string]string, len(set.runtime)+len(set.dev))
	maps.Copy(out, set.runtime)
	maps.Copy(out, set.dev)
	return out
}

// ValidateConstraint checks that a dependency constraint is a semver range.
func ValidateConstraint(pkg, constraint string) error {
	if _, err := semver.NewConstraint(constraint); err != nil {
		return oerrors.NewValidationError(
			fmt.Sprintf("invalid version constraint %q for %s: %v", constraint, pkg, err),
			"dependencies."+pkg,
			"Use a semver range such as ^1.2.0 or >=2.0.0 <3.0.0.",
		)
	}
	return nil
}

// ValidateDependencies checks constraint overrides for t without writing
// anything.
func ValidateDependencies(t patterns.ProjectType, overrides map[string]string) error {
	_, err := withOverrides(t, overrides)
	return err
}

// withOverrides applies constraint overrides to the default set. A package
// already listed as a dev dependency stays one.
func withOverrides(t patterns.ProjectType, overrides map[string]string) (dependencySet, error) {
	set := defaultDependencies(t)

	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		constraint := overrides[name]
		if err := ValidateConstraint(name, constraint); err != nil {
			return dependencySet{}, err
		}
		if _, ok := set.dev[name]; ok {
			set.dev[name] = constraint
			continue
		}
		set.runtime[name] = constraint
	}

	return set, nil
}

// ManifestFile returns the manifest file name for a project type.
func ManifestFile(t patterns.ProjectType) string {
	switch t {
	case patterns.Node:
		return "package.json"
	case patterns.Laravel:
		return "composer.json"
	case patterns.Flutter:
		return "pubspec.yaml"
	default:
		return ""
	}
}

type npmScripts struct {
	Start string `json:"start"`
	Dev   string `json:"dev"`
	Test  string `json:"test"`
}

type packageJSON struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Description     string            `json:"description"`
	Main            string            `json:"main"`
	Type            string            `json:"type"`
	Scripts         npmScripts        `json:"scripts"`
	Keywords        []string          `json:"keywords"`
	Author          string            `json:"author"`
	License         string            `json:"license"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

type composerAutoload struct {
	PSR4 map[string]string `json:"psr-4"`
}

type composerJSON struct {
	Name             string            `json:"name"`
	Type             string            `json:"type"`
	Description      string            `json:"description"`
	License          string            `json:"license"`
	Require          map[string]string `json:"require"`
	RequireDev       map[string]string `json:"require-dev"`
	Autoload         composerAutoload  `json:"autoload"`
	MinimumStability string            `json:"minimum-stability"`
	PreferStable     bool              `json:"prefer-stable"`
}

type pubspec struct {
	Name            string            `yaml:"name"`
	Description     string            `yaml:"description"`
	PublishTo       string            `yaml:"publish_to"`
	Version         string            `yaml:"version"`
	Environment     map[string]string `yaml:"environment"`
	Dependencies    map[string]any    `yaml:"dependencies"`
	DevDependencies map[string]any    `yaml:"dev_dependencies"`
	Flutter         map[string]bool   `yaml:"flutter"`
}

// RenderManifest builds the manifest for the project described by opts and
// returns its file name and content.
func RenderManifest(opts Options) (string, []byte, error) {
	deps, err := withOverrides(opts.Type, opts.Dependencies)
	if err != nil {
		return "", nil, err
	}

	var content []byte
	switch opts.Type {
	case patterns.Node:
		content, err = marshalJSON(packageJSON{
			Name:        opts.ProjectName,
			Version:     "1.0.0",
			Description: "",
			Main:        "src/index.js",
			Type:        "module",
			Scripts: npmScripts{
				Start: "node src/index.js",
				Dev:   "nodemon src/index.js",
				Test:  "jest",
			},
			Keywords:        []string{},
			Author:          "",
			License:         "MIT",
			Dependencies:    deps.runtime,
			DevDependencies: deps.dev,
		})

	case patterns.Laravel:
		autoload := map[string]string{"App\\": "app/"}
		if opts.Pattern.Key == "ddd" {
			autoload["Src\\"] = "src/"
		}
		content, err = marshalJSON(composerJSON{
			Name:             ComposerPackageName(opts.ProjectName),
			Type:             "project",
			Description:      "The " + TokenProjectName + " application.",
			License:          "MIT",
			Require:          deps.runtime,
			RequireDev:       deps.dev,
			Autoload:         composerAutoload{PSR4: autoload},
			MinimumStability: "stable",
			PreferStable:     true,
		})

	case patterns.Flutter:
		runtime := map[string]any{"flutter": map[string]string{"sdk": "flutter"}}
		for name, c := range deps.runtime {
			runtime[name] = c
		}
		dev := map[string]any{"flutter_test": map[string]string{"sdk": "flutter"}}
		for name, c := range deps.dev {
			dev[name] = c
		}
		content, err = marshalYAML(pubspec{
			Name:            DartPackageName(opts.ProjectName),
			Description:     "A new Flutter project.",
			PublishTo:       "none",
			Version:         "1.0.0+1",
			Environment:     map[string]string{"sdk": "^3.5.0"},
			Dependencies:    runtime,
			DevDependencies: dev,
			Flutter:         map[string]bool{"uses-material-design": true},
		})

	default:
		return "", nil, fmt.Errorf("unknown project type: %s", opts.Type)
	}
	if err != nil {
		return "", nil, fmt.Errorf("encoding %s: %w", ManifestFile(opts.Type), err)
	}

	return ManifestFile(opts.Type), content, nil
}

func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func marshalYAML(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

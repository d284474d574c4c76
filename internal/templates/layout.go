package templates

import (
	"fmt"

	"github.com/rampx/cli/internal/patterns"
)

var (
	laravelBase = []string{"app", "config", "database", "public", "resources", "routes", "storage", "tests"}
	flutterBase = []string{"lib", "test", "assets"}
)

var layouts = map[patterns.ProjectType]map[string][]string{
	patterns.Node: {
		"simple": {
			"src",
			"src/routes",
			"src/controllers",
			"src/models",
			"tests",
		},
		"modular": {
			"src",
			"src/modules/users",
			"src/modules/users/controllers",
			"src/modules/users/services",
			"src/modules/users/models",
			"src/modules/users/routes",
			"src/shared/middleware",
			"src/shared/utils",
			"src/config",
			"tests",
		},
		"clean": {
			"src",
			"src/domain/entities",
			"src/domain/repositories",
			"src/domain/usecases",
			"src/application/services",
			"src/application/dto",
			"src/infrastructure/database",
			"src/infrastructure/repositories",
			"src/interfaces/http/controllers",
			"src/interfaces/http/routes",
			"src/interfaces/http/middleware",
			"tests",
		},
	},
	patterns.Laravel: {
		"standard": {
			"app/Http/Controllers",
			"app/Models",
			"app/Services",
		},
		"feature": {
			"app/Features/Auth",
			"app/Features/Users",
			"app/Support",
		},
		"ddd": {
			"src/Domain/User/Entities",
			"src/Domain/User/Repositories",
			"src/Domain/User/Services",
			"src/Application/UseCases",
			"src/Infrastructure/Persistence",
			"src/Presentation/Http/Controllers",
		},
	},
	patterns.Flutter: {
		"layered": {
			"lib/presentation/pages",
			"lib/presentation/widgets",
			"lib/domain/models",
			"lib/domain/repositories",
			"lib/data/repositories",
			"lib/data/datasources",
		},
		"feature": {
			"lib/features/auth",
			"lib/features/home",
			"lib/core/theme",
			"lib/core/utils",
		},
		"clean": {
			"lib/core/error",
			"lib/core/usecases",
			"lib/features/domain/entities",
			"lib/features/domain/repositories",
			"lib/features/domain/usecases",
			"lib/features/data/models",
			"lib/features/data/repositories",
			"lib/features/data/datasources",
			"lib/features/presentation/pages",
			"lib/features/presentation/widgets",
			"lib/features/presentation/bloc",
		},
	},
}

// Layout returns the directories, relative to the project root, that make up
// the given pattern. Base directories of the type come first.
func Layout(t patterns.ProjectType, key string) ([]string, error) {
	byPattern, ok := layouts[t]
	if !ok {
		return nil, fmt.Errorf("unknown project type: %s", t)
	}
	dirs, ok := byPattern[key]
	if !ok {
		return nil, fmt.Errorf("no layout for %s pattern %q", t, key)
	}

	var base []string
	switch t {
	case patterns.Laravel:
		base = laravelBase
	case patterns.Flutter:
		base = flutterBase
	case patterns.Node:
		// node layouts are self-contained
	}

	out := make([]string, 0, len(base)+len(dirs))
	out = append(out, base...)
	out = append(out, dirs...)
	return out, nil
}

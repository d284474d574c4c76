package patterns

// builtin is the pattern table shipped with rpx, in display order.
var builtin = []Pattern{
	{
		Type:        Laravel,
		Key:         "standard",
		Label:       "Standard",
		Description: "Laravel default MVC structure (controllers, models, views)",
		Structure:   "Traditional Laravel MVC structure.",
	},
	{
		Type:        Laravel,
		Key:         "feature",
		Label:       "Feature-based",
		Description: "Organize by features/modules for better scalability",
		Structure:   "Feature-based organization for better maintainability.",
		Recommended: true,
	},
	{
		Type:        Laravel,
		Key:         "ddd",
		Label:       "Domain-Driven Design",
		Description: "DDD layers (Domain, Application, Infrastructure)",
		Structure:   "Domain-Driven Design with rich domain models.",
	},

	{
		Type:        Flutter,
		Key:         "layered",
		Label:       "Layered Architecture",
		Description: "Presentation, Domain, Data layers separation",
		Structure:   "Clear separation between Presentation, Domain, and Data layers.",
	},
	{
		Type:        Flutter,
		Key:         "feature",
		Label:       "Feature-first",
		Description: "Group by features with co-located code",
		Structure:   "Features organized by business functionality.",
		Recommended: true,
	},
	{
		Type:        Flutter,
		Key:         "clean",
		Label:       "Clean Architecture",
		Description: "Uncle Bob's clean architecture with strict boundaries",
		Structure:   "Uncle Bob's Clean Architecture principles.",
	},

	{
		Type:        Node,
		Key:         "simple",
		Label:       "Simple",
		Description: "Flat structure for small projects and APIs",
		Structure:   "A flat, simple structure ideal for small APIs and microservices.",
	},
	{
		Type:        Node,
		Key:         "modular",
		Label:       "Modular",
		Description: "Module-based organization for medium projects",
		Structure:   "Feature-based modules for better organization and scalability.",
		Recommended: true,
	},
	{
		Type:        Node,
		Key:         "clean",
		Label:       "Clean Architecture",
		Description: "Layered architecture with dependency inversion",
		Structure:   "Clean Architecture with strict separation of concerns.",
	},
}

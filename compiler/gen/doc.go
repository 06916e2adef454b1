// Package gen turns a validated diagram graph into source files.
//
// # Architecture
//
// Generation runs in three steps:
//
//	graph.Graph (validated)
//	        ↓
//	   Resolve: one ClassDefinition per entity
//	        ↓
//	   Target.Render: java, go (jennifer) or a user template
//	        ↓
//	   Writer: one file per class, goimports for .go files
//
// Every class is rendered in memory before the first file is written, so a
// failing render leaves the output directory untouched.
//
// # Key Types
//
//   - ClassDefinition: name, optional superclass and ordered fields
//   - Target: renders a ClassDefinition in one language
//   - Writer: writes artifacts with a bounded errgroup
//   - Config: generation settings, built with functional options
//
// # Configuration
//
//	cfg, err := gen.NewConfig(
//	    gen.WithTarget("./model"),
//	    gen.WithLanguage(gen.LanguageGo),
//	    gen.WithPluralizer(gen.PluralizerInflect),
//	)
//
// # Error Handling
//
//   - ConfigError: unusable settings, matches ErrMissingConfig
//   - GenerationError: resolve, render, format or write failures, matches
//     ErrGenerationFailed
//
// # Known Limitations
//
// Two entities with the same class name produce one file; the entity that
// comes last in the diagram wins. Fields are not checked for duplicate
// names. The default pluralizer only appends an "s".
package gen

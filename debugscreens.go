// Package debugscreens generates a CSS overlay that shows the active
// responsive breakpoint during front-end development.
//
// The overlay is a fixed ::before pseudo-element on a chosen selector whose
// content changes through min-width media queries as the viewport crosses
// each breakpoint.
//
// # Generation
//
// Generate a rule tree from an ordered breakpoint set:
//
//	screens := debugscreens.Screens{
//		{Name: "sm", Size: "40rem"},
//		{Name: "md", Size: "48rem"},
//	}
//	tree := debugscreens.Generate(screens, debugscreens.Options{})
//	err := debugscreens.WriteCSS(os.Stdout, tree)
//
// Generate never fails: screens with an empty size are skipped and sizes in
// units other than rem get no pixel annotation.
//
// # Host plugins
//
// Build tools that expose a theme lookup and a component registration hook
// can use Handler directly, or New for factory-style registration:
//
//	plugin := debugscreens.New(debugscreens.WithProduction(os.Getenv("NODE_ENV") == "production"))
//	plugin(api)
//
// # CLI Tool
//
// Install the CLI with:
//
//	go install github.com/yacobolo/debugscreens/cmd/debugscreens@latest
package debugscreens

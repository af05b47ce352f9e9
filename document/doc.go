// Package document provides an Fx module that loads a YAML document from a
// file and supplies a named *fieldpath.Accessor to the DI container.
//
// Each module instance is named; the name doubles as the DI named tag for
// the accessor, so an application can load several documents side by side:
//
//	app := fx.New(
//	    document.NewModule("invoice", document.WithPath("invoice.yml")),
//	    document.NewModule("catalog", document.WithPath("catalog.yml")),
//	    fx.Invoke(fx.Annotate(run, fx.ParamTags(`name:"invoice"`, `name:"catalog"`))),
//	)
package document

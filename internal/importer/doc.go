// Package importer discovers foreign-tool configuration files at fixed,
// well-known locations and translates recognized schemas into OpenCode's.
//
// The flow is deliberately two separate, side-effect-free calls so a caller
// can preview raw data before committing to a conversion:
//
//	scanner := importer.NewScanner()
//	sources := scanner.Scan()
//	converted, ok := importer.Convert(src.Type, src.Doc)
//
// followed by [Merge], which unions the converted document into a live one
// and routes every key collision through the caller's decide function;
// this package never silently overwrites anything.
//
// Scan recovers locally from every failure: a missing file is an
// Exists=false entry, a malformed one is present-but-unreadable. Nothing
// here aborts the caller.
package importer

// Package typeregistry provides the runtime lookup of provider enum types.
//
// Provider references are purely textual: a qualified type name and a
// constant name. Turning that text into a live value requires a Registry,
// the single capability the rest of the module depends on. Types is the
// default implementation. Provider packages link their enum types into it
// either eagerly (Register, RegisterAs) or lazily (RegisterLoader), so a
// catalog can name types whose packages are not linked into the binary and
// only fail when resolution is actually attempted.
//
// Example:
//
//	types := typeregistry.NewTypes()
//	if err := types.Register(ml4j.Values()...); err != nil {
//	    log.Fatal(err)
//	}
//	relu, err := types.LookupConstant(ml4j.TypeName, "RELU")
package typeregistry
